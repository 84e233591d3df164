package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderGate() string {
	var b strings.Builder

	title := styleTitle.Render("Gerador de Petições")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	sub := styleSubtitle.Render("Acesso restrito. Informe a senha para continuar.")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, sub))
	b.WriteString("\n\n")

	inputBox := styleBox.Copy().
		Width(min(50, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.gateInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	if a.state.gateError != "" {
		errLine := styleErrorText.Render(a.state.gateError)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[Enter] Entrar  [Ctrl+C] Sair")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
