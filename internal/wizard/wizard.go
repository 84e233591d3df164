// Package wizard drives the fixed step sequence of the intake form:
// per-step required-field validation decides whether the user may
// advance, and the step index is clamped rather than range-checked.
package wizard

import (
	"strings"

	"github.com/gdamasio/peticao/internal/form"
)

// Step identifies one wizard step, in order.
type Step int

const (
	StepContexto Step = iota
	StepCamposArea
	StepPartes
	StepFatos
	StepFundamentos
	StepPedidos
	StepFinalizacao
)

var stepNames = [...]string{
	"Contexto do processo",
	"Campos da área",
	"Partes",
	"Fatos e provas",
	"Fundamentos jurídicos",
	"Pedidos",
	"Finalização",
}

// TotalSteps is the length of the fixed step sequence.
const TotalSteps = len(stepNames)

func (s Step) Name() string {
	if s < 0 || int(s) >= TotalSteps {
		return ""
	}
	return stepNames[s]
}

// Steps returns the ordered step sequence.
func Steps() []Step {
	out := make([]Step, TotalSteps)
	for i := range out {
		out[i] = Step(i)
	}
	return out
}

type requirement struct {
	key   string
	label string
}

var requiredByStep = map[Step][]requirement{
	StepContexto: {
		{"area_direito", "Área do direito"},
		{"tipo_acao", "Tipo de ação"},
	},
	StepPartes: {
		{"autor_nome", "Nome do autor"},
		{"autor_documento", "CPF/CNPJ do autor"},
		{"autor_endereco", "Endereço do autor"},
		{"reu_nome", "Nome do réu"},
		{"reu_documento", "CPF/CNPJ do réu"},
		{"reu_endereco", "Endereço do réu"},
	},
	StepFatos: {
		{"fatos", "Fatos"},
	},
	StepPedidos: {},
}

// Controller tracks the current step for one session's store.
type Controller struct {
	store *form.Store
	index int
}

func NewController(store *form.Store) *Controller {
	return &Controller{store: store}
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= TotalSteps {
		return TotalSteps - 1
	}
	return i
}

// Index returns the current step index, clamped.
func (c *Controller) Index() int {
	c.index = clampIndex(c.index)
	return c.index
}

// SetIndex assigns the step index. Out-of-range values are silently
// clamped, never rejected.
func (c *Controller) SetIndex(i int) {
	c.index = clampIndex(i)
}

// Current returns the current step.
func (c *Controller) Current() Step {
	return Step(c.Index())
}

// RequiredFields lists the (key, label) requirements of a step, in
// declaration order. Steps with only structural rules return an empty
// list.
func RequiredFields(step Step) [][2]string {
	reqs := requiredByStep[step]
	out := make([][2]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, [2]string{r.key, r.label})
	}
	return out
}

// ValidateStep returns the labels of everything missing for the step,
// in declaration order. An empty result means the step passes.
func (c *Controller) ValidateStep(step Step) []string {
	var missing []string
	for _, r := range requiredByStep[step] {
		if !c.store.Filled(r.key) {
			missing = append(missing, r.label)
		}
	}
	// Pedidos has a structural rule on top of plain presence: the user
	// must either check a base request or write a custom one.
	if step == StepPedidos {
		if !c.store.Filled("pedidos_base") && !c.store.Filled("pedidos_extras") {
			missing = append(missing, "Pedidos (selecione ou descreva ao menos um)")
		}
	}
	return missing
}

// ValidateAll concatenates ValidateStep over every step that has
// requirements, deduplicated case-insensitively in first-seen order.
// This is the single gate before generation.
func (c *Controller) ValidateAll() []string {
	var all []string
	seen := make(map[string]bool)
	for _, step := range Steps() {
		for _, label := range c.ValidateStep(step) {
			key := strings.ToLower(label)
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, label)
		}
	}
	return all
}

// Advance moves to the next step if the current one validates. On
// failure it returns the missing labels and keeps the index unchanged.
func (c *Controller) Advance() []string {
	if missing := c.ValidateStep(c.Current()); len(missing) > 0 {
		return missing
	}
	c.SetIndex(c.Index() + 1)
	return nil
}

// Back always succeeds, clamped at the first step.
func (c *Controller) Back() {
	c.SetIndex(c.Index() - 1)
}

// Progress reports completedSteps/totalSteps, counting the current step
// as complete when it currently validates. Informational only.
func (c *Controller) Progress() float64 {
	completed := c.Index()
	if len(c.ValidateStep(c.Current())) == 0 {
		completed++
	}
	return float64(completed) / float64(TotalSteps)
}
