// Package fields holds the static catalog of dynamic form fields shown
// for each legal area, and the key derivation used to persist their
// values in the form state.
package fields

import (
	"strings"

	"github.com/gdamasio/peticao/internal/format"
)

// Kind is the widget kind of a field. The set is closed: rendering and
// payload collection both switch exhaustively over it.
type Kind int

const (
	KindText Kind = iota
	KindTextarea
	KindSelect
	KindMultiSelect
	KindCheckbox
)

// Descriptor describes one dynamic field of an area. Descriptors are
// defined at init and never mutated.
type Descriptor struct {
	ID          string
	Label       string
	Kind        Kind
	Options     []string
	Help        string
	AllowCustom bool
}

// FallbackArea is the canonical key every unresolved area name maps to.
const FallbackArea = "Outro"

// AreaNames lists the area display names offered to the user, in menu
// order.
var AreaNames = []string{
	"Cível",
	"Direito do Consumidor",
	"Trabalhista",
	"Família",
	"Previdenciário",
	"Outro",
}

// Fixed top-level catalogs, independent of the selected area.
var (
	TiposAcao = []string{
		"Indenização por danos morais",
		"Cobrança",
		"Obrigação de fazer",
		"Rescisão contratual",
		"Reclamatória trabalhista",
		"Outro",
	}

	Ritos = []string{
		"Procedimento comum",
		"Juizado especial cível",
		"Rito sumaríssimo trabalhista",
	}

	TiposParte = []string{
		"Pessoa física",
		"Pessoa jurídica",
	}

	// PedidosBase are the checkbox requests offered on the Pedidos
	// step. Flag-derived requests (tutela, gratuidade, prioridade,
	// audiência) come from the Finalização step instead.
	PedidosBase = []string{
		"Danos morais",
		"Danos materiais",
		"Juros e correção monetária",
		"Citação do réu",
		"Condenação em custas e honorários",
		"Obrigação de fazer ou não fazer",
		"Rescisão do contrato",
		"Devolução de valores",
	}

	NiveisDetalhe = []string{
		"Objetivo",
		"Padrão",
		"Detalhado",
	}
)

// areaAliases resolves display names (accents and variants included) to
// canonical area keys.
var areaAliases = map[string]string{
	"Cível":                 "Civel",
	"Direito Civil":         "Civel",
	"Consumidor":            "Consumidor",
	"Direito do Consumidor": "Consumidor",
	"Trabalhista":           "Trabalhista",
	"Direito do Trabalho":   "Trabalhista",
	"Família":               "Familia",
	"Direito de Família":    "Familia",
	"Previdenciário":        "Previdenciario",
	"Outro":                 "Outro",
}

var areaFields = map[string][]Descriptor{
	"Civel": {
		{ID: "relacao_contratual", Label: "Relação contratual", Kind: KindSelect,
			Options: []string{"Contrato escrito", "Contrato verbal", "Sem contrato"}},
		{ID: "objeto_contrato", Label: "Objeto do contrato ou da obrigação", Kind: KindText,
			Help: "Ex.: compra e venda de veículo, prestação de serviço"},
		{ID: "inadimplemento", Label: "Descrição do inadimplemento", Kind: KindTextarea},
		{ID: "clausulas_relevantes", Label: "Cláusulas relevantes", Kind: KindTextarea,
			Help: "Transcreva apenas as cláusulas que importam para o pedido"},
		{ID: "notificacao_previa", Label: "Houve notificação extrajudicial prévia", Kind: KindCheckbox},
	},
	"Consumidor": {
		{ID: "fornecedor_tipo", Label: "Natureza do fornecimento", Kind: KindSelect,
			Options: []string{"Produto", "Serviço", "Ambos"}},
		{ID: "relacao_consumo", Label: "Descrição da relação de consumo", Kind: KindTextarea},
		{ID: "vicio_ou_defeito", Label: "Problema principal", Kind: KindSelect,
			Options: []string{
				"Vício do produto",
				"Defeito na prestação do serviço",
				"Cobrança indevida",
				"Negativação indevida",
			},
			AllowCustom: true},
		{ID: "protocolos_atendimento", Label: "Protocolos de atendimento", Kind: KindTextarea,
			Help: "Um protocolo por linha, com data se houver"},
		{ID: "inversao_onus", Label: "Requerer inversão do ônus da prova", Kind: KindCheckbox},
	},
	"Trabalhista": {
		{ID: "data_admissao", Label: "Data de admissão", Kind: KindText},
		{ID: "data_demissao", Label: "Data de demissão", Kind: KindText},
		{ID: "funcao", Label: "Função exercida", Kind: KindText},
		{ID: "salario", Label: "Último salário", Kind: KindText,
			Help: "Somente números; a máscara de moeda é aplicada"},
		{ID: "jornada", Label: "Jornada de trabalho praticada", Kind: KindTextarea},
		{ID: "verbas_pleiteadas", Label: "Verbas pleiteadas", Kind: KindMultiSelect,
			Options: []string{
				"Horas extras",
				"Aviso prévio",
				"13º salário proporcional",
				"Férias proporcionais + 1/3",
				"FGTS + multa de 40%",
				"Adicional noturno",
			},
			AllowCustom: true},
		{ID: "vinculo_registrado", Label: "Vínculo registrado em carteira", Kind: KindCheckbox},
	},
	"Familia": {
		{ID: "tipo_demanda", Label: "Tipo de demanda", Kind: KindSelect,
			Options: []string{
				"Alimentos",
				"Guarda",
				"Divórcio",
				"Reconhecimento de união estável",
			},
			AllowCustom: true},
		{ID: "filhos_menores", Label: "Há filhos menores envolvidos", Kind: KindCheckbox},
		{ID: "regime_bens", Label: "Regime de bens", Kind: KindText},
		{ID: "acordo_previo", Label: "Acordo prévio entre as partes", Kind: KindTextarea,
			Help: "Descreva o que já foi combinado, se houver"},
	},
	"Previdenciario": {
		{ID: "beneficio_pretendido", Label: "Benefício pretendido", Kind: KindSelect,
			Options: []string{
				"Aposentadoria por idade",
				"Aposentadoria por tempo de contribuição",
				"Auxílio por incapacidade temporária",
				"BPC/LOAS",
			},
			AllowCustom: true},
		{ID: "der", Label: "Data de entrada do requerimento (DER)", Kind: KindText},
		{ID: "indeferimento_motivo", Label: "Motivo do indeferimento administrativo", Kind: KindTextarea},
		{ID: "tempo_contribuicao", Label: "Tempo de contribuição", Kind: KindText},
	},
	"Outro": {
		{ID: "descricao_demanda", Label: "Descrição da demanda", Kind: KindTextarea},
		{ID: "legislacao_aplicavel", Label: "Legislação aplicável, se souber", Kind: KindTextarea},
	},
}

// ResolveAreaKey maps a raw area display name to its canonical key,
// falling back to "Outro". The result is always a key present in the
// field catalog.
func ResolveAreaKey(raw string) string {
	name := strings.TrimSpace(raw)
	if key, ok := areaAliases[name]; ok {
		return key
	}
	if _, ok := areaFields[name]; ok {
		return name
	}
	return FallbackArea
}

// FieldsFor returns the descriptor list for a canonical area key.
func FieldsFor(key string) []Descriptor {
	if list, ok := areaFields[key]; ok {
		return list
	}
	return areaFields[FallbackArea]
}

// StateKey derives the form-state key for an area field. Distinct
// display names that slug identically share a key; that is accepted for
// UI state (the payload is keyed by field id, not by this).
func StateKey(areaDisplayName, fieldID string) string {
	return "campo_" + format.Slug(areaDisplayName) + "_" + format.Slug(fieldID)
}
