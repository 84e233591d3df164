package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gdamasio/peticao/internal/llm"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("A geração falhou")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errMsg := "Erro desconhecido"
	if a.state.genError != nil {
		errMsg = a.state.genError.Error()
	}

	errBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := errorSuggestions(a.state.genError); len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(70, a.width-4)).
			BorderForeground(colorMuted).
			Render("Sugestões:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[r] Tentar novamente  [e] Editar respostas  [Ctrl+C] Sair")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func errorSuggestions(err error) []string {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, llm.ErrChaveAusente):
		return []string{
			"Defina GEMINI_API_KEY (ou GOOGLE_API_KEY) no ambiente ou no .env",
			"A chave pode ser obtida em https://aistudio.google.com/apikey",
		}
	case errors.Is(err, llm.ErrCotaEsgotada):
		return []string{
			"A cota gratuita da API foi atingida",
			"Aguarde alguns minutos e tente novamente",
		}
	case errors.Is(err, llm.ErrRespostaVazia):
		return []string{
			"O modelo não retornou texto; tente novamente",
			"Se persistir, reduza o volume de fatos informados",
		}
	}

	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "timeout") || strings.Contains(errLower, "connection") || strings.Contains(errLower, "dial") {
		return []string{
			"Verifique a conexão com a internet",
			"Tente novamente em instantes",
		}
	}
	if strings.Contains(errLower, "401") || strings.Contains(errLower, "403") || strings.Contains(errLower, "api key") {
		return []string{
			"Verifique se a chave de API é válida",
			"Confira o arquivo ~/.config/peticao/config.yaml",
		}
	}
	return nil
}
