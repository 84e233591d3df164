package prompt

import (
	"strings"

	"github.com/gdamasio/peticao/internal/caso"
)

// Outro is the catch-all label both classifiers fall back to.
const Outro = "Outro"

// regra maps a set of required substrings to a canonical label. Rules
// are tested in declared order and the first full match wins, even if a
// later rule would fit better; changing the order changes generated
// output.
type regra struct {
	rotulo string
	termos []string
}

var regrasTipoAcao = []regra{
	{"Indenizacao por danos morais", []string{"dano", "moral"}},
	{"Indenizacao por danos morais", []string{"indeniza"}},
	{"Cobranca", []string{"cobranca"}},
	{"Cobranca", []string{"divida"}},
	{"Obrigacao de fazer", []string{"obrigacao", "fazer"}},
	{"Rescisao contratual", []string{"rescisao"}},
	{"Rescisao contratual", []string{"rescindir", "contrato"}},
	{"Reclamatoria trabalhista", []string{"reclamatoria"}},
	{"Reclamatoria trabalhista", []string{"trabalhista"}},
	{"Reclamatoria trabalhista", []string{"verbas", "rescisorias"}},
	{"Alimentos", []string{"alimentos"}},
}

var regrasArea = []regra{
	{"Trabalhista", []string{"trabalh"}},
	{"Consumidor", []string{"consum"}},
	{"Familia", []string{"famil"}},
	{"Previdenciario", []string{"previden"}},
	{"Previdenciario", []string{"inss"}},
	{"Civel", []string{"civel"}},
	{"Civel", []string{"civil"}},
}

// tipoAcaoPadraoPorArea supplies a default action type when the raw
// text classified to Outro but the area is known.
var tipoAcaoPadraoPorArea = map[string]string{
	"Trabalhista": "Reclamatoria trabalhista",
	"Familia":     "Alimentos",
}

func classify(raw string, regras []regra, orientacoes map[string]string) string {
	texto := Normalize(raw)
	if texto == "" {
		return Outro
	}
	for _, r := range regras {
		match := true
		for _, termo := range r.termos {
			if !strings.Contains(texto, termo) {
				match = false
				break
			}
		}
		if match {
			return r.rotulo
		}
	}
	// No rule fired: accept text that already names a canonical label.
	for rotulo := range orientacoes {
		if texto == Normalize(rotulo) {
			return rotulo
		}
	}
	return Outro
}

// ClassifyTipoAcao maps raw action-type text to a canonical label.
func ClassifyTipoAcao(raw string) string {
	return classify(raw, regrasTipoAcao, orientacoesTipoAcao)
}

// ClassifyArea maps raw legal-area text to a canonical label.
func ClassifyArea(raw string) string {
	return classify(raw, regrasArea, orientacoesArea)
}

// Classificacao is the pair of canonical labels derived from a payload.
type Classificacao struct {
	TipoAcao string
	Area     string
}

// Classify derives both labels, substituting the area's default action
// type when the action text classified to Outro.
func Classify(p *caso.Payload) Classificacao {
	c := Classificacao{
		TipoAcao: ClassifyTipoAcao(p.Contexto.TipoAcao),
		Area:     ClassifyArea(p.Contexto.Area),
	}
	if c.TipoAcao == Outro {
		if padrao, ok := tipoAcaoPadraoPorArea[c.Area]; ok {
			c.TipoAcao = padrao
		}
	}
	return c
}
