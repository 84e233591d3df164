package tui

import (
	"context"
	"crypto/subtle"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gdamasio/peticao/internal/caso"
	"github.com/gdamasio/peticao/internal/config"
	"github.com/gdamasio/peticao/internal/export"
	"github.com/gdamasio/peticao/internal/llm"
	"github.com/gdamasio/peticao/internal/prompt"
	"github.com/gdamasio/peticao/internal/wizard"
)

type view int

const (
	viewGate view = iota
	viewWizard
	viewProcessing
	viewResult
	viewError
	viewHelp
)

// tituloDocumento is the heading written into exported files.
const tituloDocumento = "PETICAO INICIAL"

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := newState(cfg)

	v := viewWizard
	if !s.unlocked {
		v = viewGate
	}
	return &App{
		view:  v,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	a.state.rebuildControls()
	if a.view == viewGate {
		a.state.gateInput.Focus()
	}
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.testProvider(),
	)
}

func (a *App) testProvider() tea.Cmd {
	cfg := a.state.config
	return func() tea.Msg {
		if cfg.APIKey == "" {
			return providerErrorMsg{llm.ErrChaveAusente}
		}
		provider, err := llm.NewProvider(cfg)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case spinner.TickMsg:
		if a.view == viewProcessing {
			var cmd tea.Cmd
			a.state.spin, cmd = a.state.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case providerReadyMsg:
		a.state.providerError = nil
		return a, nil

	case providerErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case generationDoneMsg:
		a.state.generating = false
		a.state.result = msg.text
		a.state.notice = ""
		a.view = viewResult
		return a, nil

	case generationErrorMsg:
		a.state.generating = false
		a.state.genError = msg.error
		a.view = viewError
		return a, nil

	case savedMsg:
		a.state.notice = "Arquivo salvo: " + msg.name
		return a, nil

	case saveErrorMsg:
		a.state.notice = "Falha ao salvar: " + msg.error.Error()
		return a, nil

	case copiedMsg:
		a.state.notice = "Texto copiado para a área de transferência"
		return a, nil

	case copyErrorMsg:
		a.state.notice = "Falha ao copiar: " + msg.error.Error()
		return a, nil
	}

	// Blink and other component messages reach the focused widget here.
	if _, ok := msg.(tea.KeyMsg); !ok {
		if a.view == viewGate {
			var cmd tea.Cmd
			a.state.gateInput, cmd = a.state.gateInput.Update(msg)
			cmds = append(cmds, cmd)
		} else if a.view == viewWizard {
			if c := a.focusedControl(); c != nil {
				cmd, _ := c.update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) focusedControl() control {
	if a.state.focus < 0 || a.state.focus >= len(a.state.controls) {
		return nil
	}
	return a.state.controls[a.state.focus]
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		if a.view == viewHelp {
			a.view = viewWizard
		} else if a.view == viewWizard {
			a.view = viewHelp
		}
		return nil
	}

	switch a.view {
	case viewGate:
		return a.handleGateKey(msg)
	case viewWizard:
		return a.handleWizardKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	case viewHelp:
		if msg.String() == "esc" {
			a.view = viewWizard
		}
		return nil
	}
	return nil
}

func (a *App) handleGateKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Enter) {
		typed := a.state.gateInput.Value()
		if subtle.ConstantTimeCompare([]byte(typed), []byte(a.state.config.Password)) == 1 {
			a.state.unlocked = true
			a.state.gateError = ""
			a.view = viewWizard
			if c := a.focusedControl(); c != nil {
				c.focus()
			}
			return textinput.Blink
		}
		a.state.gateError = "Senha incorreta."
		a.state.gateInput.Reset()
		return nil
	}

	var cmd tea.Cmd
	a.state.gateInput, cmd = a.state.gateInput.Update(msg)
	return cmd
}

func (a *App) handleWizardKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.NextField):
		a.moveFocus(1)
		return textinput.Blink

	case key.Matches(msg, keys.PrevField):
		a.moveFocus(-1)
		return textinput.Blink

	case key.Matches(msg, keys.Next):
		a.state.syncAndSnapshot()
		if a.state.ctrl.Index() == wizard.TotalSteps-1 {
			if missing := a.state.ctrl.ValidateAll(); len(missing) > 0 {
				a.state.stepErrors = missing
				return nil
			}
			return a.startGeneration()
		}
		if missing := a.state.ctrl.Advance(); len(missing) > 0 {
			a.state.stepErrors = missing
			return nil
		}
		a.state.rebuildControls()
		return textinput.Blink

	case key.Matches(msg, keys.Back):
		a.state.syncAndSnapshot()
		a.state.ctrl.Back()
		a.state.rebuildControls()
		return textinput.Blink
	}

	c := a.focusedControl()
	if c == nil {
		return nil
	}
	cmd, _ := c.update(msg)
	a.state.syncAndSnapshot()
	return cmd
}

func (a *App) moveFocus(delta int) {
	n := len(a.state.controls)
	if n == 0 {
		return
	}
	if c := a.focusedControl(); c != nil {
		c.blur()
	}
	a.state.focus = (a.state.focus + delta + n) % n
	a.state.controls[a.state.focus].focus()
}

func (a *App) startGeneration() tea.Cmd {
	a.state.generating = true
	a.state.genError = nil
	a.view = viewProcessing

	payload := caso.Collect(a.state.store)
	texto := prompt.Build(payload)

	return tea.Batch(a.state.spin.Tick, generateCmd(a.state.config, texto))
}

// generateCmd builds its provider from the config, independent of the
// startup ping. A failed or still-pending ping must not block
// generation; only a missing key or a failing call does, and both stay
// retryable.
func generateCmd(cfg *config.Config, texto string) tea.Cmd {
	return func() tea.Msg {
		if cfg.APIKey == "" {
			return generationErrorMsg{llm.ErrChaveAusente}
		}
		provider, err := llm.NewProvider(cfg)
		if err != nil {
			return generationErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		out, err := provider.Generate(ctx, texto)
		if err != nil {
			return generationErrorMsg{err}
		}
		return generationDoneMsg{out}
	}
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "d":
		return a.saveDOCX()
	case "p":
		return a.savePDF()
	case "c":
		return a.copyResult()
	case "e", "esc":
		// Back to the wizard with the answers intact.
		a.view = viewWizard
		a.state.rebuildControls()
		return textinput.Blink
	}
	return nil
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		return a.startGeneration()
	case "e", "esc":
		a.view = viewWizard
		a.state.rebuildControls()
		return textinput.Blink
	}
	return nil
}

func (a *App) saveDOCX() tea.Cmd {
	texto := a.state.result
	return func() tea.Msg {
		data, err := export.DOCXBytes(tituloDocumento, texto)
		if err != nil {
			return saveErrorMsg{err}
		}
		name := "peticao_inicial.docx"
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return saveErrorMsg{err}
		}
		return savedMsg{name}
	}
}

func (a *App) savePDF() tea.Cmd {
	texto := a.state.result
	return func() tea.Msg {
		name := "peticao_inicial.pdf"
		if err := os.WriteFile(name, export.PDFBytes(tituloDocumento, texto), 0o644); err != nil {
			return saveErrorMsg{err}
		}
		return savedMsg{name}
	}
}

func (a *App) copyResult() tea.Cmd {
	texto := a.state.result
	return func() tea.Msg {
		if err := clipboard.WriteAll(texto); err != nil {
			return copyErrorMsg{err}
		}
		return copiedMsg{}
	}
}

type providerReadyMsg struct{}
type providerErrorMsg struct{ error }
type generationDoneMsg struct{ text string }
type generationErrorMsg struct{ error }
type savedMsg struct{ name string }
type saveErrorMsg struct{ error }
type copiedMsg struct{}
type copyErrorMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewGate:
		return a.renderGate()
	case viewWizard:
		return a.renderWizard()
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewError:
		return a.renderError()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWizard()
	}
}
