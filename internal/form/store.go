// Package form holds the session-scoped key-value store behind the
// wizard, and the snapshot/restore pair that lets values survive a full
// re-render of the UI.
package form

import (
	"strings"

	"github.com/gdamasio/peticao/internal/fields"
)

// baseKeys are the fixed top-level state keys, independent of the
// selected legal area.
var baseKeys = []string{
	// Contexto processual
	"area_direito",
	"tipo_acao",
	"rito",
	"comarca",
	// Autor
	"autor_tipo",
	"autor_nome",
	"autor_documento",
	"autor_endereco",
	"autor_cep",
	"autor_nacionalidade",
	"autor_estado_civil",
	"autor_profissao",
	"autor_natureza_juridica",
	"autor_representante",
	"autor_qualificacao_extra",
	// Réu
	"reu_tipo",
	"reu_nome",
	"reu_documento",
	"reu_endereco",
	"reu_cep",
	"reu_nacionalidade",
	"reu_estado_civil",
	"reu_profissao",
	"reu_natureza_juridica",
	"reu_representante",
	"reu_qualificacao_extra",
	// Fatos e provas
	"fatos",
	"cronologia",
	"provas",
	// Fundamentos
	"tese",
	"topicos_direito",
	"dispositivos_legais",
	// Pedidos
	"pedidos_base",
	"pedidos_extras",
	// Estrutura
	"ordem_secoes",
	"secoes_extras",
	"nivel_detalhe",
	// Parâmetros finais
	"tutela_urgencia",
	"justica_gratuita",
	"prioridade_tramitacao",
	"audiencia_conciliacao",
	"valor_causa",
}

// Store is one user session's live form state. Each session owns its
// own instance; there is no process-wide store.
type Store struct {
	values map[string]Value
}

func NewStore() *Store {
	return &Store{values: make(map[string]Value)}
}

func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s *Store) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Store) Set(key string, v Value) {
	s.values[key] = v
}

func (s *Store) Delete(key string) {
	delete(s.values, key)
}

// Str returns the trimmed string stored at key, or "".
func (s *Store) Str(key string) string {
	return strings.TrimSpace(s.values[key].Str())
}

// List returns the list stored at key, or nil.
func (s *Store) List(key string) []string {
	return s.values[key].List()
}

// Flag returns the boolean stored at key, or false.
func (s *Store) Flag(key string) bool {
	return s.values[key].Bool()
}

// Filled reports whether key holds a usable value: a non-blank string,
// a non-empty list, or a true boolean.
func (s *Store) Filled(key string) bool {
	v, ok := s.values[key]
	if !ok {
		return false
	}
	switch v.Kind {
	case KindString:
		return strings.TrimSpace(v.Str()) != ""
	case KindStringList:
		return len(v.List()) > 0
	case KindBool:
		return v.Bool()
	}
	return false
}

// Snapshot is the session-durable copy of form values. The live Store
// is rebuilt on every render pass; the Snapshot is not.
type Snapshot map[string]Value

// AllPersistableKeys returns the union of the fixed base keys and every
// state key derivable from the field registry, first occurrence kept.
func AllPersistableKeys() []string {
	var keys []string
	seen := make(map[string]bool)
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, k := range baseKeys {
		add(k)
	}
	for _, area := range fields.AreaNames {
		for _, d := range fields.FieldsFor(fields.ResolveAreaKey(area)) {
			add(fields.StateKey(area, d.ID))
		}
	}
	return keys
}

// SnapshotInto copies every persistable key present in the store into
// snap, deep-copying values. Idempotent for unchanged state.
func (s *Store) SnapshotInto(snap Snapshot) {
	for _, key := range AllPersistableKeys() {
		if v, ok := s.values[key]; ok {
			snap[key] = v.Clone()
		}
	}
}

// Restore copies snapshotted values into the store for every key the
// store does not already hold. Live values always win over the
// snapshot; restored values are deep copies, so later edits cannot
// corrupt the snapshot.
func (s *Store) Restore(snap Snapshot) {
	for key, v := range snap {
		if _, ok := s.values[key]; !ok {
			s.values[key] = v.Clone()
		}
	}
}
