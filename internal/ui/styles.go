package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the admin panel.
type Styles struct {
	Title         lipgloss.Style
	Help          lipgloss.Style
	NoticeSuccess lipgloss.Style
	NoticeError   lipgloss.Style
	TableBorder   lipgloss.Style
	Modal         lipgloss.Style
	ModalTitle    lipgloss.Style
	Label         lipgloss.Style
	FieldError    lipgloss.Style
	Disabled      lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		NoticeSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		NoticeError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		TableBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		FieldError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
