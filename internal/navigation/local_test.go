package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/happy-paws/internal/domain"
)

func TestNewLocal(t *testing.T) {
	now := time.Date(2024, 12, 10, 14, 0, 0, 0, time.UTC)

	assert.Nil(t, NewLocal(domain.ScreenHome, now))
	assert.IsType(t, &DashboardLocal{}, NewLocal(domain.ScreenAttendantDashboard, now))
	assert.IsType(t, &ComposeLocal{}, NewLocal(domain.ScreenAttendantTicket, now))
	assert.IsType(t, &RegisterLocal{}, NewLocal(domain.ScreenRegister, now))
	assert.IsType(t, &PhotoLocal{}, NewLocal(domain.ScreenWalkPhotoPost, now))

	walk := NewLocal(domain.ScreenTutorMonitoring, now)
	require.IsType(t, &WalkLocal{}, walk)
	assert.Equal(t, domain.ScreenTutorMonitoring, walk.Screen())
}

func TestWalkLocal_ElapsedExcludesPauses(t *testing.T) {
	start := time.Date(2024, 12, 10, 14, 0, 0, 0, time.UTC)
	w := &WalkLocal{screen: domain.ScreenActiveWalk, StartedAt: start}

	assert.Equal(t, 90*time.Second, w.Elapsed(start.Add(90*time.Second)))

	w.TogglePause(start.Add(2 * time.Minute))
	assert.Equal(t, 2*time.Minute, w.Elapsed(start.Add(10*time.Minute)))

	w.TogglePause(start.Add(5 * time.Minute))
	assert.Equal(t, 3*time.Minute, w.Elapsed(start.Add(6*time.Minute)))
}
