package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/happy-paws/internal/domain"
)

func TestTickets_AreIndependentCopies(t *testing.T) {
	a := Tickets()
	b := Tickets()
	require.Len(t, a, 5)

	a[0].Status = domain.TicketStatusResolved
	a[0].Interactions = append(a[0].Interactions, domain.Interaction{Author: "x"})

	assert.Equal(t, domain.TicketStatusUnderReview, b[0].Status)
	assert.Len(t, b[0].Interactions, 1)
	assert.Equal(t, domain.TicketStatusUnderReview, Tickets()[0].Status)
}

func TestTickets_UseKnownTypes(t *testing.T) {
	seen := map[string]bool{}
	for _, tk := range Tickets() {
		assert.True(t, tk.Type.Valid(), tk.ID)
		assert.False(t, seen[tk.ID], "duplicate id %s", tk.ID)
		seen[tk.ID] = true
	}
}
