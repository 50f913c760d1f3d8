package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"network-ping/internal/app"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	buttonStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	activeStyle = buttonStyle.Copy().BorderForeground(lipgloss.Color("12")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(Title))
	b.WriteString("\n\n")

	if m.state.Profile.Variant == app.VariantInteractive {
		b.WriteString(m.input.View())
		b.WriteString("\n")

		style := buttonStyle
		if m.focus == focusButton {
			style = activeStyle
		}
		b.WriteString(style.Render("Ping"))
		b.WriteString("\n")
	}

	b.WriteString(app.ResultLine(m.state))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(m.hint()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) hint() string {
	if m.state.Profile.Variant == app.VariantInteractive {
		return "enter: ping • tab: focus • esc: quit"
	}
	return "enter: ping again • esc: quit"
}
