package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Title     lipgloss.Style
	Body      lipgloss.Style
	Button    lipgloss.Style
	Paused    lipgloss.Style
	Input     lipgloss.Style
	Error     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	// Progress gradient endpoints.
	ProgressFrom string
	ProgressTo   string
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("63"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Body:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1),
		Paused:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Tab:          lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true).Padding(0, 1),
		ProgressFrom: "#5A56E0",
		ProgressTo:   "#EE6FF8",
	},
	"dracula": {
		Name:         "Dracula",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("62"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Body:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("60")).Padding(0, 1),
		Paused:       lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Tab:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true).Padding(0, 1),
		ProgressFrom: "#BD93F9",
		ProgressTo:   "#FF79C6",
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches theme, reporting whether name exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}
