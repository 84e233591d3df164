package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder

	title := styleTitle.Render("Minuta gerada")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	result := a.state.result

	maxResultHeight := a.height - 10
	if maxResultHeight < 5 {
		maxResultHeight = 5
	}
	resultLines := strings.Split(result, "\n")
	if len(resultLines) > maxResultHeight {
		resultLines = resultLines[:maxResultHeight]
		resultLines = append(resultLines, styleSubtitle.Render("... (texto completo nos arquivos exportados)"))
		result = strings.Join(resultLines, "\n")
	}

	resultBox := styleBox.Copy().
		Width(min(90, a.width-4)).
		BorderForeground(colorPrimary).
		Render(result)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	if a.state.notice != "" {
		notice := lipgloss.NewStyle().Foreground(colorSuccess).Render(a.state.notice)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notice))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[d] Salvar DOCX  [p] Salvar PDF  [c] Copiar  [e] Editar respostas  [Ctrl+C] Sair")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}
