package tui

import (
	"strings"
	"testing"

	"github.com/gdamasio/peticao/internal/config"
	"github.com/gdamasio/peticao/internal/form"
	"github.com/gdamasio/peticao/internal/wizard"
)

func TestEveryStepHasControls(t *testing.T) {
	store := form.NewStore()
	for _, step := range wizard.Steps() {
		if len(buildControls(step, store)) == 0 {
			t.Errorf("step %q built no controls", step.Name())
		}
	}
}

func TestAreaStepFollowsSelectedArea(t *testing.T) {
	store := form.NewStore()
	store.Set("area_direito", form.String("Trabalhista"))

	var found bool
	for _, c := range buildControls(wizard.StepCamposArea, store) {
		if c.key() == "campo_trabalhista_verbas_pleiteadas" {
			found = true
		}
		if !strings.HasPrefix(c.key(), "campo_trabalhista_") {
			t.Errorf("unexpected state key %q for labor area", c.key())
		}
	}
	if !found {
		t.Error("labor claims multiselect not built")
	}
}

func TestParteControlsCoverBothParties(t *testing.T) {
	store := form.NewStore()
	keys := make(map[string]bool)
	for _, c := range buildControls(wizard.StepPartes, store) {
		keys[c.key()] = true
	}
	for _, want := range []string{
		"autor_tipo", "autor_nome", "autor_documento", "autor_cep",
		"reu_tipo", "reu_nome", "reu_documento", "reu_cep",
	} {
		if !keys[want] {
			t.Errorf("party step missing control for %q", want)
		}
	}
}

func TestMultiSelectCustomItems(t *testing.T) {
	c := newMultiControl("verbas", "Verbas", []string{"Horas extras", "Aviso prévio"}, true)
	c.checked[0] = true
	c.custom.SetValue("Multa do art. 477, Honorários periciais")

	store := form.NewStore()
	c.sync(store)

	got := store.List("verbas")
	want := []string{"Horas extras", "Multa do art. 477", "Honorários periciais"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}

	reloaded := newMultiControl("verbas", "Verbas", []string{"Horas extras", "Aviso prévio"}, true)
	reloaded.load(store)
	if !reloaded.checked[0] {
		t.Error("known item not re-checked on load")
	}
	if reloaded.custom.Value() != "Multa do art. 477, Honorários periciais" {
		t.Errorf("custom row = %q after load", reloaded.custom.Value())
	}
}

func TestLaborClaimsAcceptCustomItems(t *testing.T) {
	store := form.NewStore()
	store.Set("area_direito", form.String("Trabalhista"))

	for _, c := range buildControls(wizard.StepCamposArea, store) {
		if c.key() != "campo_trabalhista_verbas_pleiteadas" {
			continue
		}
		mc, ok := c.(*multiControl)
		if !ok {
			t.Fatalf("claims control is %T, want *multiControl", c)
		}
		if !mc.free {
			t.Error("claims multiselect does not accept custom items")
		}
		return
	}
	t.Fatal("labor claims control not built")
}

func TestControlLoadSyncRoundTrip(t *testing.T) {
	store := form.NewStore()
	store.Set("comarca", form.String("São Paulo"))
	store.Set("pedidos_base", form.StringList([]string{"Danos morais"}))
	store.Set("tutela_urgencia", form.Bool(true))

	steps := []wizard.Step{wizard.StepContexto, wizard.StepPedidos, wizard.StepFinalizacao}
	for _, step := range steps {
		for _, c := range buildControls(step, store) {
			c.load(store)
			c.sync(store)
		}
	}

	if store.Str("comarca") != "São Paulo" {
		t.Errorf("comarca = %q after round trip", store.Str("comarca"))
	}
	if got := store.List("pedidos_base"); len(got) != 1 || got[0] != "Danos morais" {
		t.Errorf("pedidos_base = %v after round trip", got)
	}
	if !store.Flag("tutela_urgencia") {
		t.Error("tutela_urgencia lost after round trip")
	}
}

func TestRebuildControlsRestoresSnapshot(t *testing.T) {
	s := newState(config.DefaultConfig())
	s.rebuildControls()

	s.store.Set("area_direito", form.String("Cível"))
	s.store.SnapshotInto(s.snap)

	s.store.Delete("area_direito")
	s.rebuildControls()

	if s.store.Str("area_direito") != "Cível" {
		t.Error("rebuild did not restore snapshotted answer")
	}
	if s.focus != 0 {
		t.Errorf("focus = %d after rebuild, want 0", s.focus)
	}
}
