package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/happy-paws/internal/domain"
)

func stateAt(screen domain.Screen, flow domain.Flow) domain.ScreenState {
	return domain.ScreenState{CurrentScreen: screen, ActiveTab: domain.TabHome, Flow: flow}
}

func TestRouter_SelectWalkerKeepsTab(t *testing.T) {
	r := NewRouter()
	in := domain.ScreenState{CurrentScreen: domain.ScreenSearch, ActiveTab: domain.TabProfile, Flow: domain.FlowTutor}

	tr := r.Next(in, Named(EventSelectWalker))

	require.True(t, tr.Handled)
	assert.Equal(t, domain.ScreenWalkerProfile, tr.State.CurrentScreen)
	assert.Equal(t, domain.TabProfile, tr.State.ActiveTab)
}

func TestRouter_TicketSelectedWithoutPayloadIsRefused(t *testing.T) {
	r := NewRouter()
	selected := &domain.Ticket{ID: "9"}
	in := stateAt(domain.ScreenAttendantDashboard, domain.FlowAttendant)
	in.SelectedTicket = selected

	tr := r.Next(in, TicketSelected(nil))

	assert.False(t, tr.Handled)
	assert.Equal(t, in, tr.State)
	assert.Same(t, selected, tr.State.SelectedTicket)
}

func TestRouter_TicketSelectedReferencesTicket(t *testing.T) {
	r := NewRouter()
	ticket := &domain.Ticket{ID: "1", Status: domain.TicketStatusUnderReview}

	tr := r.Next(stateAt(domain.ScreenAttendantDashboard, domain.FlowAttendant), TicketSelected(ticket))

	require.True(t, tr.Handled)
	assert.Equal(t, domain.ScreenAttendantTicket, tr.State.CurrentScreen)
	assert.Same(t, ticket, tr.State.SelectedTicket)

	back := r.Next(tr.State, Named(EventGoBack))
	require.True(t, back.Handled)
	assert.Equal(t, domain.ScreenAttendantDashboard, back.State.CurrentScreen)
	assert.Nil(t, back.State.SelectedTicket)
}

func TestRouter_UnhandledPairsAreNoOps(t *testing.T) {
	r := NewRouter()
	events := []Event{
		Named(EventLogin), Named(EventGoRegister), Named(EventRegistrationCompleted), Named(EventGoBack),
		Named(EventGoHome), Named(EventGoSearch), Named(EventSelectWalker), Named(EventScheduleWalk),
		Named(EventScheduleConfirmed), Named(EventViewWalk), Named(EventWalkStarted), Named(EventAcknowledgeWalk),
		Named(EventWalkEnded), Named(EventTakePhoto), Named(EventPhotoPosted), Named(EventEmergency),
		Named(EventReviewSubmitted), Named(EventGoPets), Named(EventSelectPet), Named(EventAddPet),
		Named(EventPetAdded), Named(EventGoActivityFeed), Named(EventOpenSupport), TicketSelected(nil),
		TabChanged(""), TabChanged("unknown"), Named(EventLogout), Named("does_not_exist"),
	}
	flows := []domain.Flow{domain.FlowNone, domain.FlowTutor, domain.FlowWalker, domain.FlowAttendant}

	for _, screen := range domain.AllScreens() {
		for _, flow := range flows {
			for _, ev := range events {
				in := stateAt(screen, flow)
				if screen == domain.ScreenAttendantTicket {
					in.SelectedTicket = &domain.Ticket{ID: "x"}
				}
				tr := r.Next(in, ev)
				if !tr.Handled {
					assert.Equal(t, in, tr.State, "screen=%s flow=%s event=%s", screen, flow, ev.Name)
					assert.Nil(t, tr.Notice)
				}
			}
		}
	}
}

func TestRouter_AttendantTicketAlwaysHasTicket(t *testing.T) {
	r := NewRouter()
	events := []Event{
		TicketSelected(nil), TicketSelected(&domain.Ticket{ID: "1"}), Named(EventGoBack),
		Named(EventGoHome), TabChanged(domain.TabHome), Named(EventLogout),
	}
	for _, screen := range domain.AllScreens() {
		for _, ev := range events {
			in := stateAt(screen, domain.FlowAttendant)
			if screen == domain.ScreenAttendantTicket {
				in.SelectedTicket = &domain.Ticket{ID: "2"}
			}
			out := r.Next(in, ev).State
			if out.CurrentScreen == domain.ScreenAttendantTicket {
				assert.NotNil(t, out.SelectedTicket, "screen=%s event=%s", screen, ev.Name)
			}
		}
	}
}

func TestRouter_TabChanged(t *testing.T) {
	r := NewRouter()
	tests := []struct {
		name       string
		flow       domain.Flow
		tab        domain.Tab
		wantScreen domain.Screen
		wantNotice bool
	}{
		{name: "home", flow: domain.FlowTutor, tab: domain.TabHome, wantScreen: domain.ScreenHome},
		{name: "search", flow: domain.FlowTutor, tab: domain.TabSearch, wantScreen: domain.ScreenSearch},
		{name: "bookings tutor", flow: domain.FlowTutor, tab: domain.TabBookings, wantScreen: domain.ScreenActivityFeed},
		{name: "bookings walker", flow: domain.FlowWalker, tab: domain.TabBookings, wantScreen: domain.ScreenWalkerBooking},
		{name: "pets", flow: domain.FlowTutor, tab: domain.TabPets, wantScreen: domain.ScreenPets},
		{name: "profile", flow: domain.FlowWalker, tab: domain.TabProfile, wantScreen: domain.ScreenProfile},
		{name: "messages stays put", flow: domain.FlowTutor, tab: domain.TabMessages, wantScreen: domain.ScreenPets, wantNotice: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := stateAt(domain.ScreenPets, tt.flow)
			tr := r.Next(in, TabChanged(tt.tab))

			require.True(t, tr.Handled)
			assert.Equal(t, tt.tab, tr.State.ActiveTab)
			assert.Equal(t, tt.wantScreen, tr.State.CurrentScreen)
			assert.Equal(t, tt.wantNotice, tr.Notice != nil)
		})
	}
}

func TestRouter_TabChangedIgnoredWithoutTabBar(t *testing.T) {
	r := NewRouter()
	for _, screen := range []domain.Screen{domain.ScreenLogin, domain.ScreenSchedule, domain.ScreenAttendantDashboard} {
		in := stateAt(screen, domain.FlowTutor)
		tr := r.Next(in, TabChanged(domain.TabSearch))
		assert.False(t, tr.Handled, screen)
		assert.Equal(t, in, tr.State)
	}
}

func TestRouter_LoginEntryPerFlow(t *testing.T) {
	r := NewRouter()
	tests := []struct {
		flow domain.Flow
		want domain.Screen
	}{
		{domain.FlowTutor, domain.ScreenHome},
		{domain.FlowWalker, domain.ScreenWalkerBooking},
		{domain.FlowAttendant, domain.ScreenAttendantDashboard},
	}
	for _, tt := range tests {
		t.Run(string(tt.flow), func(t *testing.T) {
			tr := r.Next(domain.InitialScreenState(), Login(tt.flow))
			require.True(t, tr.Handled)
			assert.Equal(t, tt.want, tr.State.CurrentScreen)
			assert.Equal(t, tt.flow, tr.State.Flow)
		})
	}

	tr := r.Next(domain.InitialScreenState(), Login("guest"))
	assert.False(t, tr.Handled)
}

func TestRouter_LogoutCyclesToLogin(t *testing.T) {
	r := NewRouter()
	in := domain.ScreenState{
		CurrentScreen:           domain.ScreenAttendantTicket,
		ActiveTab:               domain.TabPets,
		Flow:                    domain.FlowAttendant,
		SelectedTicket:          &domain.Ticket{ID: "1"},
		WalkNotificationPending: true,
	}

	tr := r.Next(in, Named(EventLogout))
	require.True(t, tr.Handled)
	assert.Equal(t, domain.InitialScreenState(), tr.State)

	again := r.Next(tr.State, Named(EventLogout))
	assert.False(t, again.Handled)

	relogged := r.Next(tr.State, Login(domain.FlowTutor))
	assert.Equal(t, domain.ScreenHome, relogged.State.CurrentScreen)
}

func TestRouter_WalkBannerLifecycle(t *testing.T) {
	r := NewRouter()
	state := stateAt(domain.ScreenWalkerBooking, domain.FlowWalker)

	started := r.Next(state, Named(EventWalkStarted))
	require.True(t, started.Handled)
	require.NotNil(t, started.Notice)
	assert.True(t, started.State.WalkNotificationPending)
	assert.Equal(t, domain.ScreenActiveWalk, started.State.CurrentScreen)

	ack := r.Next(started.State, Named(EventAcknowledgeWalk))
	require.True(t, ack.Handled)
	assert.False(t, ack.State.WalkNotificationPending)
	assert.Equal(t, domain.ScreenTutorMonitoring, ack.State.CurrentScreen)

	assert.False(t, r.Accepts(ack.State, Named(EventAcknowledgeWalk)))

	ended := r.Next(ack.State, Named(EventWalkEnded))
	assert.Equal(t, domain.ScreenReview, ended.State.CurrentScreen)
}

func TestRouter_TutorBookingFlow(t *testing.T) {
	r := NewRouter()
	state := r.Next(domain.InitialScreenState(), Login(domain.FlowTutor)).State

	steps := []struct {
		ev   Event
		want domain.Screen
	}{
		{Named(EventGoSearch), domain.ScreenSearch},
		{Named(EventSelectWalker), domain.ScreenWalkerProfile},
		{Named(EventScheduleWalk), domain.ScreenSchedule},
		{Named(EventScheduleConfirmed), domain.ScreenActiveWalk},
		{Named(EventTakePhoto), domain.ScreenWalkPhotoPost},
		{Named(EventPhotoPosted), domain.ScreenActiveWalk},
		{Named(EventWalkEnded), domain.ScreenReview},
		{Named(EventReviewSubmitted), domain.ScreenHome},
	}
	for _, step := range steps {
		tr := r.Next(state, step.ev)
		require.True(t, tr.Handled, "event %s from %s", step.ev.Name, state.CurrentScreen)
		assert.Equal(t, step.want, tr.State.CurrentScreen)
		state = tr.State
	}
	assert.Equal(t, domain.TabSearch, state.ActiveTab)
}

func TestRouter_RegistrationCompletedNotice(t *testing.T) {
	r := NewRouter()
	reg := r.Next(domain.InitialScreenState(), Named(EventGoRegister)).State
	require.Equal(t, domain.ScreenRegister, reg.CurrentScreen)

	tr := r.Next(reg, RegistrationCompleted(domain.FlowWalker))
	require.True(t, tr.Handled)
	require.NotNil(t, tr.Notice)
	assert.Equal(t, "Perfil criado com sucesso", tr.Notice.Title)
	assert.Equal(t, domain.FlowWalker, tr.State.Flow)

	assert.False(t, r.Accepts(reg, RegistrationCompleted(domain.FlowAttendant)))
}

func TestRouter_MemberShortcutsIgnoredForAttendants(t *testing.T) {
	r := NewRouter()
	in := stateAt(domain.ScreenAttendantDashboard, domain.FlowAttendant)
	for _, name := range []EventName{EventGoHome, EventGoSearch, EventAcknowledgeWalk, EventGoBack} {
		tr := r.Next(in, Named(name))
		assert.False(t, tr.Handled, name)
	}
}

func TestDescriptorsCoverEveryScreen(t *testing.T) {
	for _, screen := range domain.AllScreens() {
		d, ok := descriptors[screen]
		require.True(t, ok, "missing descriptor for %s", screen)
		assert.NotEmpty(t, d.Title)
		if d.Back != "" {
			_, ok := descriptors[d.Back]
			assert.True(t, ok, "back target of %s is unknown", screen)
		}
	}
	for screen := range descriptors {
		assert.Contains(t, domain.AllScreens(), screen)
	}
}

func TestEventName_Completion(t *testing.T) {
	for _, n := range []EventName{
		EventLogin, EventRegistrationCompleted, EventScheduleConfirmed,
		EventWalkStarted, EventWalkEnded, EventPhotoPosted,
	} {
		assert.True(t, n.Completion(), n)
	}
	for _, n := range []EventName{EventGoHome, EventGoRegister, EventTicketSelected, EventLogout} {
		assert.False(t, n.Completion(), n)
	}
}
