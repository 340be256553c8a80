package navigation

import "github.com/spec-kit/happy-paws/internal/domain"

// Transition is the outcome of routing one event.
type Transition struct {
	State   domain.ScreenState
	Notice  *domain.Notice
	Handled bool
}

// handler returns the next state, an optional notice request, and whether the event applied.
type handler func(state domain.ScreenState, ev Event) (domain.ScreenState, *domain.Notice, bool)

// Router decides the next ScreenState for a navigation event. It never performs side effects.
type Router struct {
	routes map[domain.Screen]map[EventName]handler
	global map[EventName]handler
}

// NewRouter builds the transition tables.
func NewRouter() *Router {
	r := &Router{}
	r.routes = map[domain.Screen]map[EventName]handler{
		domain.ScreenLogin: {
			EventLogin:      login,
			EventGoRegister: goTo(domain.ScreenRegister),
		},
		domain.ScreenRegister: {
			EventRegistrationCompleted: registrationCompleted,
		},
		domain.ScreenHome: {
			EventViewWalk:       goTo(domain.ScreenActiveWalk),
			EventGoPets:         goToTab(domain.ScreenPets, domain.TabPets),
			EventAddPet:         goTo(domain.ScreenAddPet),
			EventGoActivityFeed: goToTab(domain.ScreenActivityFeed, domain.TabBookings),
		},
		domain.ScreenSearch: {
			EventSelectWalker: goTo(domain.ScreenWalkerProfile),
		},
		domain.ScreenWalkerProfile: {
			EventScheduleWalk: goTo(domain.ScreenSchedule),
		},
		domain.ScreenSchedule: {
			EventScheduleConfirmed: goToWithNotice(domain.ScreenActiveWalk, "Passeio agendado", "Pagamento aprovado e passeio confirmado."),
		},
		domain.ScreenActiveWalk: {
			EventWalkEnded: goTo(domain.ScreenReview),
			EventTakePhoto: goTo(domain.ScreenWalkPhotoPost),
			EventEmergency: goTo(domain.ScreenSupport),
		},
		domain.ScreenWalkPhotoPost: {
			EventPhotoPosted: goToWithNotice(domain.ScreenActiveWalk, "Foto Postada! 📸", "O tutor foi notificado sobre a nova foto no mural"),
		},
		domain.ScreenReview: {
			EventReviewSubmitted: goToWithNotice(domain.ScreenHome, "Avaliação enviada", "Obrigado por avaliar o passeio!"),
		},
		domain.ScreenPets: {
			EventSelectPet: goTo(domain.ScreenPetDetails),
			EventAddPet:    goTo(domain.ScreenAddPet),
		},
		domain.ScreenAddPet: {
			EventPetAdded: goToWithNotice(domain.ScreenPets, "Pet cadastrado", "Seu pet foi adicionado com sucesso!"),
		},
		domain.ScreenProfile: {
			EventOpenSupport: goTo(domain.ScreenSupport),
		},
		domain.ScreenWalkerBooking: {
			EventWalkStarted: walkStarted,
		},
		domain.ScreenTutorMonitoring: {
			EventWalkEnded: goTo(domain.ScreenReview),
		},
		domain.ScreenAttendantDashboard: {
			EventTicketSelected: ticketSelected,
		},
	}
	r.global = map[EventName]handler{
		EventGoBack:          goBack,
		EventGoHome:          memberOnly(goToTab(domain.ScreenHome, domain.TabHome)),
		EventGoSearch:        memberOnly(goToTab(domain.ScreenSearch, domain.TabSearch)),
		EventAcknowledgeWalk: memberOnly(acknowledgeWalk),
		EventTabChanged:      tabChanged,
		EventLogout:          logout,
	}
	return r
}

// Next routes ev from state. Unhandled events return state unchanged.
func (r *Router) Next(state domain.ScreenState, ev Event) Transition {
	if h, ok := r.routes[state.CurrentScreen][ev.Name]; ok {
		if next, n, applied := h(state, ev); applied {
			return Transition{State: next, Notice: n, Handled: true}
		}
		return Transition{State: state}
	}
	if h, ok := r.global[ev.Name]; ok {
		if next, n, applied := h(state, ev); applied {
			return Transition{State: next, Notice: n, Handled: true}
		}
	}
	return Transition{State: state}
}

// Accepts reports whether ev would change anything from state.
func (r *Router) Accepts(state domain.ScreenState, ev Event) bool {
	return r.Next(state, ev).Handled
}

func goTo(screen domain.Screen) handler {
	return func(state domain.ScreenState, _ Event) (domain.ScreenState, *domain.Notice, bool) {
		state.CurrentScreen = screen
		return state, nil, true
	}
}

func goToTab(screen domain.Screen, tab domain.Tab) handler {
	return func(state domain.ScreenState, _ Event) (domain.ScreenState, *domain.Notice, bool) {
		state.CurrentScreen = screen
		state.ActiveTab = tab
		return state, nil, true
	}
}

func goToWithNotice(screen domain.Screen, title, description string) handler {
	return func(state domain.ScreenState, _ Event) (domain.ScreenState, *domain.Notice, bool) {
		state.CurrentScreen = screen
		return state, notice(title, description), true
	}
}

func memberOnly(next handler) handler {
	return func(state domain.ScreenState, ev Event) (domain.ScreenState, *domain.Notice, bool) {
		if Describe(state.CurrentScreen).Audience != AudienceMember {
			return state, nil, false
		}
		return next(state, ev)
	}
}

func login(state domain.ScreenState, ev Event) (domain.ScreenState, *domain.Notice, bool) {
	entry, ok := entryScreens[ev.Flow]
	if !ok {
		return state, nil, false
	}
	state.CurrentScreen = entry
	state.Flow = ev.Flow
	state.ActiveTab = domain.TabHome
	if ev.Flow == domain.FlowWalker {
		state.ActiveTab = domain.TabBookings
	}
	return state, nil, true
}

func registrationCompleted(state domain.ScreenState, ev Event) (domain.ScreenState, *domain.Notice, bool) {
	role := ev.Flow
	if role == domain.FlowNone {
		role = domain.FlowTutor
	}
	if role != domain.FlowTutor && role != domain.FlowWalker {
		return state, nil, false
	}
	state.CurrentScreen = domain.ScreenHome
	state.ActiveTab = domain.TabHome
	state.Flow = role
	return state, notice("Perfil criado com sucesso", "Seu perfil foi salvo com sucesso!"), true
}

func walkStarted(state domain.ScreenState, _ Event) (domain.ScreenState, *domain.Notice, bool) {
	state.CurrentScreen = domain.ScreenActiveWalk
	state.WalkNotificationPending = true
	return state, notice("Passeio iniciado", "O tutor foi notificado do início do passeio."), true
}

func acknowledgeWalk(state domain.ScreenState, _ Event) (domain.ScreenState, *domain.Notice, bool) {
	if !state.WalkNotificationPending {
		return state, nil, false
	}
	state.CurrentScreen = domain.ScreenTutorMonitoring
	state.WalkNotificationPending = false
	return state, nil, true
}

func ticketSelected(state domain.ScreenState, ev Event) (domain.ScreenState, *domain.Notice, bool) {
	if ev.Ticket == nil {
		return state, nil, false
	}
	state.CurrentScreen = domain.ScreenAttendantTicket
	state.SelectedTicket = ev.Ticket
	return state, nil, true
}

func goBack(state domain.ScreenState, _ Event) (domain.ScreenState, *domain.Notice, bool) {
	back := Describe(state.CurrentScreen).Back
	if _, known := descriptors[state.CurrentScreen]; !known || back == "" {
		return state, nil, false
	}
	if state.CurrentScreen == domain.ScreenAttendantTicket {
		state.SelectedTicket = nil
	}
	state.CurrentScreen = back
	return state, nil, true
}

func tabChanged(state domain.ScreenState, ev Event) (domain.ScreenState, *domain.Notice, bool) {
	if !Describe(state.CurrentScreen).TabBar || !ev.Tab.Valid() {
		return state, nil, false
	}
	state.ActiveTab = ev.Tab
	target, mapped := tabScreens[ev.Tab]
	if !mapped {
		return state, notice("Em breve", "Esta seção ainda não está disponível."), true
	}
	state.CurrentScreen = target(state.Flow)
	return state, nil, true
}

func logout(state domain.ScreenState, _ Event) (domain.ScreenState, *domain.Notice, bool) {
	if state.CurrentScreen == domain.ScreenLogin {
		return state, nil, false
	}
	return domain.InitialScreenState(), nil, true
}

func notice(title, description string) *domain.Notice {
	return &domain.Notice{Title: title, Description: description, Variant: domain.NoticeDefault}
}
