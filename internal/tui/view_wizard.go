package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gdamasio/peticao/internal/llm"
	"github.com/gdamasio/peticao/internal/wizard"
)

func (a *App) renderWizard() string {
	var b strings.Builder

	step := a.state.ctrl.Current()
	header := styleTitle.Render(fmt.Sprintf("Etapa %d/%d: %s",
		a.state.ctrl.Index()+1, wizard.TotalSteps, step.Name()))
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(a.renderProgressBar())
	b.WriteString("\n\n")

	for i, c := range a.state.controls {
		focused := i == a.state.focus
		b.WriteString(c.view(focused, a.width))
		b.WriteString("\n\n")
	}

	if len(a.state.stepErrors) > 0 {
		b.WriteString(styleErrorText.Render("Preencha antes de avançar:"))
		b.WriteString("\n")
		for _, m := range a.state.stepErrors {
			b.WriteString(styleErrorText.Render("  - " + m))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if warn := a.providerWarning(); warn != "" {
		b.WriteString(styleWarnText.Render(warn))
		b.WriteString("\n")
	}

	var actions string
	if a.state.ctrl.Index() == wizard.TotalSteps-1 {
		actions = "[Ctrl+N] Gerar petição  [Ctrl+B] Voltar"
	} else {
		actions = "[Ctrl+N] Avançar  [Ctrl+B] Voltar"
	}
	status := styleStatusBar.Render(actions + "  [Tab] Próximo campo  [Ctrl+H] Ajuda  [Ctrl+C] Sair")
	b.WriteString(status)

	return b.String()
}

// providerWarning surfaces configuration problems without blocking the
// form. Only generation itself requires a working provider.
func (a *App) providerWarning() string {
	err := a.state.providerError
	if err == nil {
		return ""
	}
	if errors.Is(err, llm.ErrChaveAusente) {
		return "Aviso: nenhuma chave de API configurada (GEMINI_API_KEY). A geração ficará indisponível."
	}
	return "Aviso: provedor indisponível: " + err.Error()
}

func (a *App) renderProgressBar() string {
	const width = 40
	filled := int(a.state.ctrl.Progress() * width)
	if filled > width {
		filled = width
	}
	bar := lipgloss.NewStyle().Foreground(colorSecondary).Render(strings.Repeat("=", filled)) +
		lipgloss.NewStyle().Foreground(colorMuted).Render(strings.Repeat("-", width-filled))
	return bar
}
