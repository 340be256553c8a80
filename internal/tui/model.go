// Package tui is a terminal client that drives a session through the service layer in-process.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/navigation"
	"github.com/spec-kit/happy-paws/internal/notify"
	"github.com/spec-kit/happy-paws/internal/service"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

const (
	refreshInterval = 200 * time.Millisecond
	maxNotices      = 3
)

// Services are the collaborators the client calls into.
type Services struct {
	Auth     *service.AuthService
	Sessions *service.SessionService
	Tickets  *service.TicketService
	Walks    *service.WalkService
	Inbox    *notify.Inbox
}

type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeCompose
)

type tickMsg time.Time

// Model is the bubbletea model of one session.
type Model struct {
	ctx       context.Context
	svc       Services
	sessionID string
	snap      service.Snapshot

	mode    inputMode
	input   string
	search  string
	filter  domain.TicketType
	tickets []*domain.Ticket
	cursor  int

	notices []domain.Notice
	err     string
	width   int
	quit    bool
}

// New starts a session and returns its model.
func New(ctx context.Context, svc Services) (Model, error) {
	snap, err := svc.Sessions.Create(ctx)
	if err != nil {
		return Model{}, err
	}
	return Model{ctx: ctx, svc: svc, sessionID: snap.SessionID, snap: snap}, nil
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		m.refresh()
		return m, tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quit = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			m.updateSearch(msg)
		case modeCompose:
			m.updateCompose(msg)
		default:
			if msg.String() == "q" {
				m.quit = true
				return m, tea.Quit
			}
			m.updateNormal(msg)
		}
		m.refresh()
		return m, nil
	}
	return m, nil
}

// refresh re-reads the session so completions of simulated actions show up.
func (m *Model) refresh() {
	snap, err := m.svc.Sessions.Snapshot(m.sessionID)
	if err != nil {
		m.fail(err)
		return
	}
	m.snap = snap
	if m.svc.Inbox != nil {
		m.notices = append(m.notices, m.svc.Inbox.Drain(m.sessionID)...)
		if len(m.notices) > maxNotices {
			m.notices = m.notices[len(m.notices)-maxNotices:]
		}
	}
	if snap.State.CurrentScreen == domain.ScreenAttendantDashboard {
		m.loadTickets()
	} else {
		m.tickets = nil
	}
	if snap.State.CurrentScreen != domain.ScreenAttendantTicket && m.mode == modeCompose {
		m.mode = modeNormal
		m.input = ""
	}
}

func (m *Model) loadTickets() {
	tickets, err := m.svc.Tickets.List(m.sessionID, service.TicketFilter{Search: m.search, Type: m.filter})
	if err != nil {
		m.fail(err)
		return
	}
	m.tickets = tickets
	if m.cursor >= len(tickets) {
		m.cursor = len(tickets) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) fail(err error) {
	if err == nil {
		m.err = ""
		return
	}
	de := apperrors.ToDomainError(err)
	msg := de.Message
	for _, v := range de.Details {
		if s, ok := v.(string); ok && s != "" {
			msg += ": " + s
			break
		}
	}
	m.err = msg
}

func (m *Model) updateNormal(msg tea.KeyMsg) {
	key := msg.String()
	m.err = ""

	if m.snap.Screen.TabBar {
		if tab, ok := tabKeys[key]; ok {
			m.fail(m.dispatch(navigation.TabChanged(tab)))
			return
		}
	}
	switch key {
	case "esc":
		m.fail(m.dispatch(navigation.Named(navigation.EventGoBack)))
		return
	case "L":
		_, err := m.svc.Auth.Logout(m.ctx, m.sessionID)
		m.fail(err)
		return
	case "b":
		if m.snap.State.WalkNotificationPending {
			m.fail(m.dispatch(navigation.Named(navigation.EventAcknowledgeWalk)))
			return
		}
	}
	for _, a := range actionsFor(m.snap.State.CurrentScreen) {
		if a.key == key {
			m.fail(a.run(m))
			return
		}
	}
}

func (m *Model) dispatch(ev navigation.Event) error {
	res, err := m.svc.Sessions.Dispatch(m.ctx, m.sessionID, ev)
	if err != nil {
		return err
	}
	m.snap = res.Snapshot
	return nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.mode = modeNormal
	default:
		m.search = edit(m.search, msg)
		m.cursor = 0
	}
}

func (m *Model) updateCompose(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		return
	case tea.KeyEnter:
		_, err := m.svc.Tickets.Respond(m.ctx, m.sessionID, "")
		m.fail(err)
		if err == nil {
			m.input = ""
			m.mode = modeNormal
		}
		return
	}
	m.input = edit(m.input, msg)
	_, err := m.svc.Tickets.Draft(m.sessionID, m.input)
	m.fail(err)
}

func edit(s string, msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyBackspace:
		r := []rune(s)
		if len(r) == 0 {
			return s
		}
		return string(r[:len(r)-1])
	case tea.KeySpace:
		return s + " "
	case tea.KeyRunes:
		return s + string(msg.Runes)
	}
	return s
}

var tabKeys = map[string]domain.Tab{
	"1": domain.TabHome,
	"2": domain.TabSearch,
	"3": domain.TabBookings,
	"4": domain.TabPets,
	"5": domain.TabMessages,
	"6": domain.TabProfile,
}

type action struct {
	key   string
	label string
	run   func(m *Model) error
}

func event(name navigation.EventName) func(m *Model) error {
	return func(m *Model) error {
		return m.dispatch(navigation.Named(name))
	}
}

func login(flow domain.Flow) func(m *Model) error {
	return func(m *Model) error {
		_, _, err := m.svc.Auth.Login(m.ctx, m.sessionID, service.LoginInput{
			Email:    string(flow) + "@happypaws.com",
			Password: "happypaws",
			Flow:     flow,
		})
		return err
	}
}

func registerDemo(m *Model) error {
	_, err := m.svc.Auth.Register(m.ctx, m.sessionID, service.RegisterInput{
		Role:     domain.FlowTutor,
		Name:     "Visitante",
		Email:    "visitante@happypaws.com",
		Phone:    "(11) 99999-0000",
		Password: "happypaws",
		PetName:  "Thor",
	})
	return err
}

func finishWalk(m *Model) error {
	_, _, err := m.svc.Walks.EndWalk(m.ctx, m.sessionID)
	return err
}

func togglePause(m *Model) error {
	_, err := m.svc.Walks.TogglePause(m.sessionID)
	return err
}

func postPhoto(m *Model) error {
	_, _, err := m.svc.Walks.PostPhoto(m.ctx, m.sessionID, service.PhotoInput{Photo: "camera://captura", Caption: "Passeio no parque"})
	return err
}

func moveCursor(delta int) func(m *Model) error {
	return func(m *Model) error {
		next := m.cursor + delta
		if next >= 0 && next < len(m.tickets) {
			m.cursor = next
		}
		return nil
	}
}

func cycleFilter(m *Model) error {
	types := append([]domain.TicketType{""}, domain.TicketTypes()...)
	for i, t := range types {
		if t == m.filter {
			m.filter = types[(i+1)%len(types)]
			break
		}
	}
	m.cursor = 0
	return nil
}

func startSearch(m *Model) error {
	m.mode = modeSearch
	return nil
}

func openTicket(m *Model) error {
	if m.cursor >= len(m.tickets) {
		return nil
	}
	_, err := m.svc.Tickets.Select(m.ctx, m.sessionID, m.tickets[m.cursor].ID)
	return err
}

func startCompose(m *Model) error {
	m.mode = modeCompose
	m.input = m.snap.Draft
	return nil
}

func actionsFor(screen domain.Screen) []action {
	switch screen {
	case domain.ScreenLogin:
		return []action{
			{"1", "entrar como tutor", login(domain.FlowTutor)},
			{"2", "entrar como passeador", login(domain.FlowWalker)},
			{"3", "entrar como atendente", login(domain.FlowAttendant)},
			{"r", "criar perfil", event(navigation.EventGoRegister)},
		}
	case domain.ScreenRegister:
		return []action{{"enter", "criar perfil de demonstração", registerDemo}}
	case domain.ScreenHome:
		return []action{
			{"w", "ver passeio", event(navigation.EventViewWalk)},
			{"p", "meus pets", event(navigation.EventGoPets)},
			{"a", "adicionar pet", event(navigation.EventAddPet)},
			{"f", "mural", event(navigation.EventGoActivityFeed)},
		}
	case domain.ScreenSearch:
		return []action{{"enter", "ver passeador", event(navigation.EventSelectWalker)}}
	case domain.ScreenWalkerProfile:
		return []action{{"enter", "agendar passeio", event(navigation.EventScheduleWalk)}}
	case domain.ScreenSchedule:
		return []action{{"enter", "pagar e confirmar", func(m *Model) error {
			_, _, err := m.svc.Walks.ConfirmSchedule(m.ctx, m.sessionID)
			return err
		}}}
	case domain.ScreenActiveWalk:
		return []action{
			{" ", "pausar", togglePause},
			{"c", "tirar foto", event(navigation.EventTakePhoto)},
			{"x", "emergência", event(navigation.EventEmergency)},
			{"enter", "finalizar", finishWalk},
		}
	case domain.ScreenWalkPhotoPost:
		return []action{{"enter", "postar foto", postPhoto}}
	case domain.ScreenReview:
		return []action{{"enter", "enviar avaliação", event(navigation.EventReviewSubmitted)}}
	case domain.ScreenPets:
		return []action{
			{"enter", "ver pet", event(navigation.EventSelectPet)},
			{"a", "adicionar pet", event(navigation.EventAddPet)},
		}
	case domain.ScreenAddPet:
		return []action{{"enter", "salvar pet", event(navigation.EventPetAdded)}}
	case domain.ScreenProfile:
		return []action{{"s", "suporte", event(navigation.EventOpenSupport)}}
	case domain.ScreenWalkerBooking:
		return []action{{"enter", "iniciar passeio", func(m *Model) error {
			_, _, err := m.svc.Walks.StartWalk(m.ctx, m.sessionID)
			return err
		}}}
	case domain.ScreenTutorMonitoring:
		return []action{
			{" ", "pausar", togglePause},
			{"enter", "finalizar passeio", finishWalk},
		}
	case domain.ScreenAttendantDashboard:
		return []action{
			{"up", "subir", moveCursor(-1)},
			{"k", "subir", moveCursor(-1)},
			{"down", "descer", moveCursor(1)},
			{"j", "descer", moveCursor(1)},
			{"t", "filtrar tipo", cycleFilter},
			{"/", "buscar", startSearch},
			{"enter", "abrir chamado", openTicket},
		}
	case domain.ScreenAttendantTicket:
		return []action{{"r", "responder", startCompose}}
	}
	return nil
}

// Help lists the key bindings of the current screen.
func (m Model) Help() string {
	var parts []string
	seen := map[string]bool{}
	for _, a := range actionsFor(m.snap.State.CurrentScreen) {
		if seen[a.label] {
			continue
		}
		seen[a.label] = true
		key := a.key
		if key == " " {
			key = "espaço"
		}
		parts = append(parts, key+" "+a.label)
	}
	if m.snap.Screen.TabBar {
		parts = append(parts, "1-6 abas")
	}
	if m.snap.Screen.Back != "" {
		parts = append(parts, "esc voltar")
	}
	if m.snap.State.Flow != domain.FlowNone {
		parts = append(parts, "L sair")
	}
	parts = append(parts, "q fechar")
	return strings.Join(parts, " · ")
}

// Snapshot exposes the last rendered session state.
func (m Model) Snapshot() service.Snapshot { return m.snap }
