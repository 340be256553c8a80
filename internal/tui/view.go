package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/happy-paws/internal/domain"
)

var tabOrder = []struct {
	key   string
	tab   domain.Tab
	label string
}{
	{"1", domain.TabHome, "Início"},
	{"2", domain.TabSearch, "Buscar"},
	{"3", domain.TabBookings, "Agenda"},
	{"4", domain.TabPets, "Pets"},
	{"5", domain.TabMessages, "Mensagens"},
	{"6", domain.TabProfile, "Perfil"},
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	sections := []string{m.header()}
	if m.snap.State.WalkNotificationPending {
		sections = append(sections, bannerStyle.Render("🐕 Passeio iniciado! (b para acompanhar)"))
	}
	sections = append(sections, m.body())
	if m.snap.Screen.TabBar {
		sections = append(sections, m.tabBar())
	}
	for _, n := range m.notices {
		sections = append(sections, renderNotice(n))
	}
	if m.err != "" {
		sections = append(sections, errorStyle.Render("✗ "+m.err))
	}
	sections = append(sections, helpStyle.Render(m.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header() string {
	title := titleStyle.Render("🐾 Happy Paws · " + m.snap.Screen.Title)
	flow := string(m.snap.State.Flow)
	if flow == "" {
		flow = "visitante"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badgeStyle.Render(flow))
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, len(tabOrder))
	for _, t := range tabOrder {
		label := t.key + " " + t.label
		if t.tab == m.snap.State.ActiveTab {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderNotice(n domain.Notice) string {
	text := lipgloss.NewStyle().Bold(true).Render(n.Title)
	if n.Description != "" {
		text += "\n" + n.Description
	}
	if n.Variant == domain.NoticeDestructive {
		return destructStyle.Render(text)
	}
	return noticeStyle.Render(text)
}

func (m Model) body() string {
	switch m.snap.State.CurrentScreen {
	case domain.ScreenAttendantDashboard:
		return m.dashboardView()
	case domain.ScreenAttendantTicket:
		return m.ticketView()
	case domain.ScreenActiveWalk, domain.ScreenTutorMonitoring:
		return m.walkView()
	case domain.ScreenWalkPhotoPost:
		return m.photoView()
	case domain.ScreenRegister:
		return m.registerView()
	}
	if p := m.snap.Profile; p != nil && m.snap.State.CurrentScreen == domain.ScreenProfile {
		return boxStyle.Render(fmt.Sprintf("%s\n%s · %s", p.Name, p.Email, p.Role))
	}
	return boxStyle.Render(mutedStyle.Render(m.snap.Screen.Title))
}

func (m Model) dashboardView() string {
	var b strings.Builder
	filter := "Todos"
	if m.filter != "" {
		filter = string(m.filter)
	}
	search := m.search
	if m.mode == modeSearch {
		search += "▏"
	}
	fmt.Fprintf(&b, "Buscar: %s   Tipo: %s\n\n", search, filter)
	if len(m.tickets) == 0 {
		b.WriteString(mutedStyle.Render("Nenhum chamado encontrado"))
		return boxStyle.Render(b.String())
	}
	for i, t := range m.tickets {
		line := fmt.Sprintf("%-14s %-11s %-40s %-15s %3d min", t.Protocol, t.Type, truncate(t.Subject, 40), t.Status, t.WaitTime)
		if t.Type == domain.TicketTypeEmergency {
			line = emergencyStyle.Render(line)
		}
		if i == m.cursor {
			line = cursorStyle.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) ticketView() string {
	t := m.snap.State.SelectedTicket
	if t == nil {
		return boxStyle.Render(mutedStyle.Render("Nenhum chamado selecionado"))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s · %s · %s\n", t.Protocol, t.Type, t.Status)
	fmt.Fprintf(&b, "%s\n%s (%s)\n\n", lipgloss.NewStyle().Bold(true).Render(t.Subject), t.UserName, t.CreatedAt)
	b.WriteString(t.Description + "\n")
	if len(t.Attachments) > 0 {
		b.WriteString("\nAnexos:\n")
		for _, a := range t.Attachments {
			fmt.Fprintf(&b, "  📎 %s\n", a.Name)
		}
	}
	b.WriteString("\nHistórico:\n")
	for _, in := range t.Interactions {
		author := in.Author
		if in.FromAttendant() {
			author = cursorStyle.Render(author)
		}
		fmt.Fprintf(&b, "  [%s] %s: %s\n", in.Timestamp, author, in.Message)
	}
	draft := m.snap.Draft
	if m.mode == modeCompose {
		draft = m.input + "▏"
	}
	fmt.Fprintf(&b, "\nResposta: %s", draft)
	return boxStyle.Render(b.String())
}

func (m Model) walkView() string {
	w := m.snap.Walk
	if w == nil {
		return boxStyle.Render("00:00")
	}
	state := "em andamento"
	if w.Paused {
		state = "pausado"
	}
	return boxStyle.Render(fmt.Sprintf("⏱  %s  (%s)", formatElapsed(w.Elapsed), state))
}

func (m Model) photoView() string {
	p := m.snap.Photo
	if p == nil {
		return boxStyle.Render("")
	}
	status := "pronta para postar"
	if p.Posting {
		status = "enviando..."
	}
	return boxStyle.Render(fmt.Sprintf("📷 %s\nLegenda: %s", status, p.Caption))
}

func (m Model) registerView() string {
	if len(m.snap.Register) == 0 {
		return boxStyle.Render(mutedStyle.Render("Preencha seus dados para criar o perfil"))
	}
	var b strings.Builder
	for field, msg := range m.snap.Register {
		fmt.Fprintf(&b, "%s: %s\n", field, errorStyle.Render(msg))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func formatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
