package wizard

import (
	"testing"

	"github.com/gdamasio/peticao/internal/form"
)

func TestIndexClamping(t *testing.T) {
	c := NewController(form.NewStore())

	c.SetIndex(-5)
	if c.Index() != 0 {
		t.Errorf("negative index clamped to %d, want 0", c.Index())
	}

	c.SetIndex(99)
	if c.Index() != TotalSteps-1 {
		t.Errorf("overflow index clamped to %d, want %d", c.Index(), TotalSteps-1)
	}
}

func TestValidatePartesAllMissing(t *testing.T) {
	c := NewController(form.NewStore())

	missing := c.ValidateStep(StepPartes)
	want := []string{
		"Nome do autor",
		"CPF/CNPJ do autor",
		"Endereço do autor",
		"Nome do réu",
		"CPF/CNPJ do réu",
		"Endereço do réu",
	}
	if len(missing) != len(want) {
		t.Fatalf("got %d missing labels, want %d: %v", len(missing), len(want), missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

func TestValidatePartesAllFilled(t *testing.T) {
	s := form.NewStore()
	for _, key := range []string{
		"autor_nome", "autor_documento", "autor_endereco",
		"reu_nome", "reu_documento", "reu_endereco",
	} {
		s.Set(key, form.String("preenchido"))
	}

	c := NewController(s)
	if missing := c.ValidateStep(StepPartes); len(missing) != 0 {
		t.Errorf("expected no missing labels, got %v", missing)
	}
}

func TestAdvanceBlockedOnValidationFailure(t *testing.T) {
	c := NewController(form.NewStore())

	missing := c.Advance()
	if len(missing) == 0 {
		t.Fatal("advance succeeded with required fields empty")
	}
	if c.Index() != 0 {
		t.Errorf("index moved to %d on failed validation", c.Index())
	}
}

func TestAdvanceOnValidStep(t *testing.T) {
	s := form.NewStore()
	s.Set("area_direito", form.String("Trabalhista"))
	s.Set("tipo_acao", form.String("Reclamatória"))

	c := NewController(s)
	if missing := c.Advance(); missing != nil {
		t.Fatalf("advance failed: %v", missing)
	}
	if c.Index() != 1 {
		t.Errorf("index = %d after advance, want 1", c.Index())
	}
}

func TestBackClampsAtZero(t *testing.T) {
	c := NewController(form.NewStore())
	c.Back()
	if c.Index() != 0 {
		t.Errorf("back from step 0 moved index to %d", c.Index())
	}
}

func TestPedidosStructuralRule(t *testing.T) {
	s := form.NewStore()
	c := NewController(s)

	if missing := c.ValidateStep(StepPedidos); len(missing) != 1 {
		t.Fatalf("expected one structural failure, got %v", missing)
	}

	s.Set("pedidos_base", form.StringList([]string{"Danos morais"}))
	if missing := c.ValidateStep(StepPedidos); len(missing) != 0 {
		t.Errorf("base selection should satisfy the rule, got %v", missing)
	}

	s.Delete("pedidos_base")
	s.Set("pedidos_extras", form.String("- devolução em dobro"))
	if missing := c.ValidateStep(StepPedidos); len(missing) != 0 {
		t.Errorf("free-text requests should satisfy the rule, got %v", missing)
	}
}

func TestValidateAllDeduplicates(t *testing.T) {
	c := NewController(form.NewStore())

	all := c.ValidateAll()
	seen := make(map[string]bool)
	for _, label := range all {
		if seen[label] {
			t.Errorf("duplicate label %q in ValidateAll", label)
		}
		seen[label] = true
	}
	if !seen["Fatos"] || !seen["Nome do autor"] {
		t.Errorf("expected labels missing from ValidateAll: %v", all)
	}
}

func TestProgress(t *testing.T) {
	s := form.NewStore()
	c := NewController(s)

	if got := c.Progress(); got != 0 {
		t.Errorf("progress = %v with nothing filled, want 0", got)
	}

	s.Set("area_direito", form.String("Cível"))
	s.Set("tipo_acao", form.String("Cobrança"))
	if got := c.Progress(); got != 1.0/float64(TotalSteps) {
		t.Errorf("progress = %v with current step valid", got)
	}
}

func TestStepNames(t *testing.T) {
	if StepContexto.Name() != "Contexto do processo" {
		t.Errorf("unexpected first step name %q", StepContexto.Name())
	}
	if Step(99).Name() != "" {
		t.Error("out-of-range step should have empty name")
	}
	if len(Steps()) != TotalSteps {
		t.Errorf("Steps() returned %d steps", len(Steps()))
	}
}
