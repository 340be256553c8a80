// Package triage orders and filters support tickets for the attendant dashboard
// and applies attendant responses to a ticket.
package triage

import (
	"sort"
	"strings"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// Filter holds the dashboard inputs. An empty Type means no type filter.
type Filter struct {
	Query string
	Type  domain.TicketType
}

// Triage returns tickets ordered emergencies first, then by wait time descending,
// restricted to those matching f. The input slice is not modified.
func Triage(tickets []*domain.Ticket, f Filter) []*domain.Ticket {
	ordered := Order(tickets)
	result := make([]*domain.Ticket, 0, len(ordered))
	for _, t := range ordered {
		if f.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}

// Order returns a stably sorted copy of tickets.
func Order(tickets []*domain.Ticket) []*domain.Ticket {
	ordered := make([]*domain.Ticket, len(tickets))
	copy(ordered, tickets)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		ae, be := a.Type == domain.TicketTypeEmergency, b.Type == domain.TicketTypeEmergency
		if ae != be {
			return ae
		}
		return a.WaitTime > b.WaitTime
	})
	return ordered
}

// Matches reports whether t passes both the text and the type filter.
func (f Filter) Matches(t *domain.Ticket) bool {
	if t == nil {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(t.Protocol), q) ||
		strings.Contains(strings.ToLower(t.Subject), q) ||
		strings.Contains(strings.ToLower(t.UserName), q)
}
