package form

import (
	"testing"
)

func TestValueVariants(t *testing.T) {
	s := String("abc")
	if s.Str() != "abc" || s.List() != nil || s.Bool() {
		t.Error("string variant leaked into other kinds")
	}

	l := StringList([]string{"a", "b"})
	if l.Str() != "" || len(l.List()) != 2 || l.Bool() {
		t.Error("list variant leaked into other kinds")
	}

	b := Bool(true)
	if b.Str() != "" || b.List() != nil || !b.Bool() {
		t.Error("bool variant leaked into other kinds")
	}
}

func TestValueCloneIsDeep(t *testing.T) {
	orig := StringList([]string{"a", "b"})
	clone := orig.Clone()
	clone.List()[0] = "mutated"
	if orig.List()[0] != "a" {
		t.Error("mutating a clone changed the original list")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	live := NewStore()
	live.Set("fatos", String("aconteceu X"))
	live.Set("pedidos_base", StringList([]string{"Danos morais"}))
	live.Set("tutela_urgencia", Bool(true))

	snap := make(Snapshot)
	live.SnapshotInto(snap)

	fresh := NewStore()
	fresh.Restore(snap)

	if fresh.Str("fatos") != "aconteceu X" {
		t.Errorf("fatos = %q after restore", fresh.Str("fatos"))
	}
	if got := fresh.List("pedidos_base"); len(got) != 1 || got[0] != "Danos morais" {
		t.Errorf("pedidos_base = %v after restore", got)
	}
	if !fresh.Flag("tutela_urgencia") {
		t.Error("tutela_urgencia lost in round trip")
	}
}

func TestRestoreDoesNotMutateSnapshot(t *testing.T) {
	live := NewStore()
	live.Set("pedidos_base", StringList([]string{"original"}))

	snap := make(Snapshot)
	live.SnapshotInto(snap)

	fresh := NewStore()
	fresh.Restore(snap)
	fresh.List("pedidos_base")[0] = "mutated"

	if snap["pedidos_base"].List()[0] != "original" {
		t.Error("mutating a restored value corrupted the snapshot")
	}
}

func TestRestoreNeverOverwritesLiveValues(t *testing.T) {
	snap := Snapshot{"fatos": String("antigo")}

	live := NewStore()
	live.Set("fatos", String("novo"))
	live.Restore(snap)

	if live.Str("fatos") != "novo" {
		t.Error("restore overwrote a value the current render already set")
	}
}

func TestSnapshotIgnoresUnknownKeys(t *testing.T) {
	live := NewStore()
	live.Set("chave_que_nao_existe", String("x"))

	snap := make(Snapshot)
	live.SnapshotInto(snap)

	if _, ok := snap["chave_que_nao_existe"]; ok {
		t.Error("snapshot copied a key outside the persistable set")
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	live := NewStore()
	live.Set("fatos", String("X"))

	snap := make(Snapshot)
	live.SnapshotInto(snap)
	first := len(snap)
	live.SnapshotInto(snap)

	if len(snap) != first || snap["fatos"].Str() != "X" {
		t.Error("repeated snapshot of unchanged state changed the snapshot")
	}
}

func TestAllPersistableKeysDeduped(t *testing.T) {
	keys := AllPersistableKeys()
	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate persistable key %q", k)
		}
		seen[k] = true
	}
	if !seen["valor_causa"] || !seen["area_direito"] {
		t.Error("base keys missing from persistable set")
	}
	if !seen["campo_trabalhista_verbas_pleiteadas"] {
		t.Error("registry-derived keys missing from persistable set")
	}
}

func TestFilled(t *testing.T) {
	s := NewStore()
	s.Set("vazio", String("   "))
	s.Set("texto", String("ok"))
	s.Set("lista_vazia", StringList(nil))
	s.Set("lista", StringList([]string{"a"}))
	s.Set("falso", Bool(false))
	s.Set("verdadeiro", Bool(true))

	tests := []struct {
		key  string
		want bool
	}{
		{"ausente", false},
		{"vazio", false},
		{"texto", true},
		{"lista_vazia", false},
		{"lista", true},
		{"falso", false},
		{"verdadeiro", true},
	}

	for _, tt := range tests {
		if got := s.Filled(tt.key); got != tt.want {
			t.Errorf("Filled(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
