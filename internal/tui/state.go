package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/gdamasio/peticao/internal/config"
	"github.com/gdamasio/peticao/internal/fields"
	"github.com/gdamasio/peticao/internal/form"
	"github.com/gdamasio/peticao/internal/format"
	"github.com/gdamasio/peticao/internal/wizard"
)

type state struct {
	// Config
	config *config.Config

	// Access gate
	unlocked  bool
	gateInput textinput.Model
	gateError string

	// Startup ping outcome, surfaced as a footer warning only
	providerError error

	// Form session
	store *form.Store
	snap  form.Snapshot
	ctrl  *wizard.Controller

	// Current step widgets
	controls   []control
	focus      int
	stepErrors []string

	// Generation
	generating bool
	spin       spinner.Model
	result     string
	genError   error

	// Result view feedback ("arquivo salvo", etc.)
	notice string
}

func newState(cfg *config.Config) *state {
	gate := textinput.New()
	gate.Placeholder = "senha de acesso..."
	gate.EchoMode = textinput.EchoPassword
	gate.CharLimit = 100
	gate.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleTitle

	store := form.NewStore()
	return &state{
		config:    cfg,
		unlocked:  cfg.Password == "",
		gateInput: gate,
		store:     store,
		snap:      make(form.Snapshot),
		ctrl:      wizard.NewController(store),
		spin:      spin,
	}
}

// rebuildControls replaces the widget set with the current step's,
// restoring snapshotted values first so a rebuilt widget starts from
// what the user already typed.
func (s *state) rebuildControls() {
	s.store.Restore(s.snap)
	s.controls = buildControls(s.ctrl.Current(), s.store)
	for _, c := range s.controls {
		c.load(s.store)
		c.blur()
	}
	s.focus = 0
	if len(s.controls) > 0 {
		s.controls[0].focus()
	}
	s.stepErrors = nil
}

// syncAndSnapshot writes every widget value into the store and persists
// the result into the session snapshot.
func (s *state) syncAndSnapshot() {
	for _, c := range s.controls {
		c.sync(s.store)
	}
	s.store.SnapshotInto(s.snap)
}

func buildControls(step wizard.Step, store *form.Store) []control {
	switch step {
	case wizard.StepContexto:
		return []control{
			newSelectControl("area_direito", "Área do direito", fields.AreaNames, false),
			newSelectControl("tipo_acao", "Tipo de ação", fields.TiposAcao, true),
			newSelectControl("rito", "Rito processual", fields.Ritos, false),
			newTextControl("comarca", "Comarca / foro", "", nil),
		}

	case wizard.StepCamposArea:
		return areaControls(store.Str("area_direito"))

	case wizard.StepPartes:
		var out []control
		out = append(out, parteControls("autor", "Autor")...)
		out = append(out, parteControls("reu", "Réu")...)
		return out

	case wizard.StepFatos:
		return []control{
			newTextareaControl("fatos", "Fatos (conte do jeito que aconteceu)", "", 6),
			newTextareaControl("cronologia", "Cronologia", "um evento por linha, com a data", 3),
			newTextareaControl("provas", "Provas", "uma prova por linha", 3),
		}

	case wizard.StepFundamentos:
		return []control{
			newTextareaControl("tese", "Tese jurídica", "", 4),
			newTextareaControl("topicos_direito", "Tópicos de direito", "um tópico por linha", 3),
			newTextareaControl("dispositivos_legais", "Dispositivos legais", "um dispositivo por linha", 3),
		}

	case wizard.StepPedidos:
		return []control{
			newMultiControl("pedidos_base", "Pedidos (marque os aplicáveis)", fields.PedidosBase, false),
			newTextareaControl("pedidos_extras", "Outros pedidos", "um pedido por linha", 3),
		}

	case wizard.StepFinalizacao:
		return []control{
			newCheckControl("tutela_urgencia", "Requerer tutela de urgência"),
			newCheckControl("justica_gratuita", "Requerer gratuidade da justiça"),
			newCheckControl("prioridade_tramitacao", "Requerer prioridade de tramitação"),
			newCheckControl("audiencia_conciliacao", "Requerer audiência de conciliação"),
			newTextControl("valor_causa", "Valor da causa (se souber)", "somente números", format.FormatCurrencyBRL),
			newSelectControl("nivel_detalhe", "Nível de detalhe", fields.NiveisDetalhe, false),
			newTextareaControl("ordem_secoes", "Ordem das seções", "uma seção por linha; vazio usa a padrão", 2),
			newTextareaControl("secoes_extras", "Seções extras", "uma seção por linha", 2),
		}
	}
	return nil
}

// areaControls builds the dynamic widgets for the selected area from
// the field registry.
func areaControls(areaDisplay string) []control {
	key := fields.ResolveAreaKey(areaDisplay)

	var out []control
	for _, d := range fields.FieldsFor(key) {
		stateKey := fields.StateKey(areaDisplay, d.ID)
		switch d.Kind {
		case fields.KindText:
			out = append(out, newTextControl(stateKey, d.Label, d.Help, maskFor(d.ID)))
		case fields.KindTextarea:
			out = append(out, newTextareaControl(stateKey, d.Label, d.Help, 3))
		case fields.KindSelect:
			out = append(out, newSelectControl(stateKey, d.Label, d.Options, d.AllowCustom))
		case fields.KindMultiSelect:
			out = append(out, newMultiControl(stateKey, d.Label, d.Options, d.AllowCustom))
		case fields.KindCheckbox:
			out = append(out, newCheckControl(stateKey, d.Label))
		}
	}
	return out
}

func parteControls(prefix, papel string) []control {
	return []control{
		newSelectControl(prefix+"_tipo", papel+": tipo de parte", fields.TiposParte, false),
		newTextControl(prefix+"_nome", papel+": nome / razão social", "", nil),
		newTextControl(prefix+"_documento", papel+": CPF/CNPJ", "", format.FormatCPFCNPJ),
		newTextControl(prefix+"_endereco", papel+": endereço", "", nil),
		newTextControl(prefix+"_cep", papel+": CEP", "", format.FormatCEP),
		newTextControl(prefix+"_nacionalidade", papel+": nacionalidade", "pessoa física", nil),
		newTextControl(prefix+"_estado_civil", papel+": estado civil", "pessoa física", nil),
		newTextControl(prefix+"_profissao", papel+": profissão", "pessoa física", nil),
		newTextControl(prefix+"_natureza_juridica", papel+": natureza jurídica", "pessoa jurídica", nil),
		newTextControl(prefix+"_representante", papel+": representante legal", "pessoa jurídica", nil),
		newTextControl(prefix+"_qualificacao_extra", papel+": qualificação complementar", "", nil),
	}
}

// maskFor binds input masks to well-known field ids.
func maskFor(fieldID string) func(string) string {
	switch fieldID {
	case "salario":
		return format.FormatCurrencyBRL
	default:
		return nil
	}
}
