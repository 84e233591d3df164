package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	title := styleTitle.Render("Gerando petição")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	line := a.state.spin.View() + " " + styleSubtitle.Render("Aguarde, a minuta está sendo redigida...")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, line))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Ctrl+C] Sair")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
