package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorBrand   lipgloss.Color = "#fab387"
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#7f849c"
	colorSurface lipgloss.Color = "#313244"
	colorFocus   lipgloss.Color = "#b4befe"
	colorError   lipgloss.Color = "#f38ba8"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorWarning lipgloss.Color = "#f9e2af"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	badgeStyle     = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
	emergencyStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	bannerStyle    = lipgloss.NewStyle().Foreground(colorSurface).Background(colorWarning).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSurface).Background(colorBrand).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	noticeStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSuccess).Padding(0, 1)
	destructStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorError).Padding(0, 1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface).Padding(0, 1)
	helpStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1)
)
