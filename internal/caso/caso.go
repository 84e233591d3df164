// Package caso assembles the structured case payload from the form
// state. Collect is a pure read: it never mutates the store and never
// fails, because every lookup has a defined fallback.
package caso

import (
	"strings"

	"github.com/gdamasio/peticao/internal/fields"
	"github.com/gdamasio/peticao/internal/form"
	"github.com/gdamasio/peticao/internal/format"
)

// Payload is the full case structure handed to the prompt builder.
type Payload struct {
	Contexto    Contexto    `json:"contexto"`
	Autor       Parte       `json:"autor"`
	Reu         Parte       `json:"reu"`
	CamposArea  []CampoArea `json:"campos_area,omitempty"`
	Narrativa   Narrativa   `json:"narrativa"`
	Fundamentos Fundamentos `json:"fundamentos"`
	Pedidos     Pedidos     `json:"pedidos"`
	Estrutura   Estrutura   `json:"estrutura"`
	Parametros  Parametros  `json:"parametros"`
}

type Contexto struct {
	Area     string `json:"area_direito"`
	TipoAcao string `json:"tipo_acao"`
	Rito     string `json:"rito,omitempty"`
	Comarca  string `json:"comarca,omitempty"`
}

type Parte struct {
	Tipo         string `json:"tipo"`
	Nome         string `json:"nome"`
	Documento    string `json:"documento"`
	Endereco     string `json:"endereco"`
	CEP          string `json:"cep,omitempty"`
	Qualificacao string `json:"qualificacao,omitempty"`
}

// CampoArea is one filled dynamic field, carrying its label so the
// prompt can render it without a second registry lookup. Exactly one of
// Texto, Lista and Marcado is set, mirroring the widget kind.
type CampoArea struct {
	ID      string   `json:"id"`
	Rotulo  string   `json:"rotulo"`
	Texto   string   `json:"texto,omitempty"`
	Lista   []string `json:"lista,omitempty"`
	Marcado bool     `json:"marcado,omitempty"`
}

type Narrativa struct {
	Fatos      string   `json:"fatos"`
	Cronologia []string `json:"cronologia,omitempty"`
	Provas     []string `json:"provas,omitempty"`
}

type Fundamentos struct {
	Tese         string   `json:"tese,omitempty"`
	Topicos      []string `json:"topicos,omitempty"`
	Dispositivos []string `json:"dispositivos,omitempty"`
}

// Pedidos keeps the base and custom lists alongside the merged result,
// so the prompt can describe where each request came from.
type Pedidos struct {
	Base   []string `json:"base,omitempty"`
	Extras []string `json:"extras,omitempty"`
	Finais []string `json:"finais"`
}

type Estrutura struct {
	OrdemSecoes  []string `json:"ordem_secoes,omitempty"`
	SecoesExtras []string `json:"secoes_extras,omitempty"`
	NivelDetalhe string   `json:"nivel_detalhe,omitempty"`
}

type Parametros struct {
	TutelaUrgencia       bool   `json:"tutela_urgencia"`
	JusticaGratuita      bool   `json:"justica_gratuita"`
	Prioridade           bool   `json:"prioridade_tramitacao"`
	AudienciaConciliacao bool   `json:"audiencia_conciliacao"`
	ValorCausa           string `json:"valor_causa,omitempty"`
}

// Collect builds the payload from the live form state.
func Collect(store *form.Store) *Payload {
	area := store.Str("area_direito")

	p := &Payload{
		Contexto: Contexto{
			Area:     area,
			TipoAcao: store.Str("tipo_acao"),
			Rito:     store.Str("rito"),
			Comarca:  store.Str("comarca"),
		},
		Autor:      collectParte(store, "autor"),
		Reu:        collectParte(store, "reu"),
		CamposArea: collectCamposArea(store, area),
		Narrativa: Narrativa{
			Fatos:      store.Str("fatos"),
			Cronologia: format.LinesToList(store.Str("cronologia")),
			Provas:     format.LinesToList(store.Str("provas")),
		},
		Fundamentos: Fundamentos{
			Tese:         store.Str("tese"),
			Topicos:      format.LinesToList(store.Str("topicos_direito")),
			Dispositivos: format.LinesToList(store.Str("dispositivos_legais")),
		},
		Estrutura: Estrutura{
			OrdemSecoes:  format.LinesToList(store.Str("ordem_secoes")),
			SecoesExtras: format.LinesToList(store.Str("secoes_extras")),
			NivelDetalhe: store.Str("nivel_detalhe"),
		},
		Parametros: Parametros{
			TutelaUrgencia:       store.Flag("tutela_urgencia"),
			JusticaGratuita:      store.Flag("justica_gratuita"),
			Prioridade:           store.Flag("prioridade_tramitacao"),
			AudienciaConciliacao: store.Flag("audiencia_conciliacao"),
			// The mask is idempotent, so re-applying it here is safe
			// whether or not the input pass already ran it.
			ValorCausa: format.FormatCurrencyBRL(store.Str("valor_causa")),
		},
	}

	p.Pedidos = collectPedidos(store, p.Parametros)
	return p
}

// collectPedidos merges flag-derived requests, checked base requests
// and free-text custom lines, case-insensitively deduplicated with the
// first occurrence winning. Flag-derived items are unioned in first.
func collectPedidos(store *form.Store, params Parametros) Pedidos {
	var derivados []string
	if params.TutelaUrgencia {
		derivados = append(derivados, "Tutela de urgência")
	}
	if params.JusticaGratuita {
		derivados = append(derivados, "Gratuidade da justiça")
	}
	if params.Prioridade {
		derivados = append(derivados, "Prioridade de tramitação")
	}
	if params.AudienciaConciliacao {
		derivados = append(derivados, "Designação de audiência de conciliação")
	}

	base := store.List("pedidos_base")
	extras := format.LinesToList(store.Str("pedidos_extras"))

	return Pedidos{
		Base:   base,
		Extras: extras,
		Finais: format.MergeUnique(derivados, base, extras),
	}
}

// collectCamposArea filters the area's dynamic fields by value kind:
// blank strings, empty lists, false booleans and absent keys are all
// dropped.
func collectCamposArea(store *form.Store, areaDisplay string) []CampoArea {
	if strings.TrimSpace(areaDisplay) == "" {
		return nil
	}
	key := fields.ResolveAreaKey(areaDisplay)

	var out []CampoArea
	for _, d := range fields.FieldsFor(key) {
		v, ok := store.Get(fields.StateKey(areaDisplay, d.ID))
		if !ok {
			continue
		}
		campo := CampoArea{ID: d.ID, Rotulo: d.Label}
		switch v.Kind {
		case form.KindString:
			s := strings.TrimSpace(v.Str())
			if s == "" {
				continue
			}
			campo.Texto = s
		case form.KindStringList:
			if len(v.List()) == 0 {
				continue
			}
			campo.Lista = v.List()
		case form.KindBool:
			if !v.Bool() {
				continue
			}
			campo.Marcado = true
		default:
			continue
		}
		out = append(out, campo)
	}
	return out
}

// collectParte reads one party's fields by prefix and synthesizes the
// qualification line from whatever sub-fields are present.
func collectParte(store *form.Store, prefix string) Parte {
	tipo := store.Str(prefix + "_tipo")
	if tipo == "" {
		tipo = "Pessoa física"
	}

	return Parte{
		Tipo:         tipo,
		Nome:         store.Str(prefix + "_nome"),
		Documento:    store.Str(prefix + "_documento"),
		Endereco:     store.Str(prefix + "_endereco"),
		CEP:          format.FormatCEP(store.Str(prefix + "_cep")),
		Qualificacao: qualificacao(store, prefix, tipo),
	}
}

func qualificacao(store *form.Store, prefix, tipo string) string {
	type campo struct {
		key   string
		label string
	}

	var campos []campo
	if tipo == "Pessoa jurídica" {
		campos = []campo{
			{prefix + "_natureza_juridica", "Natureza jurídica"},
			{prefix + "_representante", "Representante legal"},
		}
	} else {
		campos = []campo{
			{prefix + "_nacionalidade", "Nacionalidade"},
			{prefix + "_estado_civil", "Estado civil"},
			{prefix + "_profissao", "Profissão"},
		}
	}

	var partes []string
	for _, c := range campos {
		if v := store.Str(c.key); v != "" {
			partes = append(partes, c.label+": "+v)
		}
	}
	if extra := store.Str(prefix + "_qualificacao_extra"); extra != "" {
		partes = append(partes, extra)
	}
	return strings.Join(partes, "; ")
}
