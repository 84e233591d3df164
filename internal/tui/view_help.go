package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gdamasio/peticao/internal/wizard"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Ajuda")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var help strings.Builder
	help.WriteString("Navegação\n")
	help.WriteString("  Tab / Shift+Tab   alterna entre os campos da etapa\n")
	help.WriteString("  Ctrl+N            avança para a próxima etapa\n")
	help.WriteString("  Ctrl+B            volta para a etapa anterior\n")
	help.WriteString("  Espaço            marca opções em listas de seleção\n")
	help.WriteString("  Ctrl+H            abre ou fecha esta ajuda\n")
	help.WriteString("  Ctrl+C            sai do programa\n\n")

	help.WriteString("Etapas\n")
	for i, s := range wizard.Steps() {
		help.WriteString("  " + string(rune('1'+i)) + ". " + s.Name() + "\n")
	}
	help.WriteString("\n")

	help.WriteString("As respostas ficam guardadas ao navegar entre etapas.\n")
	help.WriteString("Na última etapa, Ctrl+N envia o caso para o modelo e\n")
	help.WriteString("a minuta pode ser exportada em DOCX ou PDF.")

	helpBox := styleBox.Copy().
		Width(min(64, a.width-4)).
		Render(help.String())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, helpBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Voltar")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
