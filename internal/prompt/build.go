// Package prompt turns a collected case payload into the single text
// prompt sent to the generation API. Everything here is a pure function
// of the payload: same input, same prompt.
package prompt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gdamasio/peticao/internal/caso"
)

// Placeholder is the literal marker the generated document must use
// wherever an essential fact is missing.
const Placeholder = "[PREENCHER]"

//go:embed regras.md
var regrasBase string

// Build assembles the full generation prompt in fixed section order:
// rule preamble, area guidance, action-type guidance, personalization
// summary, machine-readable payload, closing task and self-check.
func Build(p *caso.Payload) string {
	c := Classify(p)

	var b strings.Builder
	b.WriteString(strings.TrimSpace(regrasBase))
	b.WriteString("\n\n")

	b.WriteString(orientacoesArea[c.Area])
	b.WriteString("\n\n")
	b.WriteString(orientacoesTipoAcao[c.TipoAcao])
	b.WriteString("\n\n")

	writeResumo(&b, p, c)

	b.WriteString("DADOS DO CASO (JSON):\n")
	b.WriteString(payloadJSON(p))
	b.WriteString("\n\n")

	b.WriteString("Gere a petição completa com base apenas nesses dados.\n")
	b.WriteString("Antes de finalizar, confira:\n")
	b.WriteString("- todos os pedidos da lista final aparecem numerados;\n")
	b.WriteString("- nenhum dado informado foi trocado por " + Placeholder + ";\n")
	b.WriteString("- nenhuma data, número ou jurisprudência foi inventada;\n")
	b.WriteString("- o valor da causa consta na seção própria.\n")

	return b.String()
}

// writeResumo emits the human-readable personalization block: every
// payload field, with the placeholder standing in for whatever the user
// left empty.
func writeResumo(b *strings.Builder, p *caso.Payload, c Classificacao) {
	b.WriteString("PERSONALIZAÇÃO DO CASO:\n")
	fmt.Fprintf(b, "- Área do direito: %s (classificada: %s)\n", ou(p.Contexto.Area), c.Area)
	fmt.Fprintf(b, "- Tipo de ação: %s (classificado: %s)\n", ou(p.Contexto.TipoAcao), c.TipoAcao)
	fmt.Fprintf(b, "- Rito: %s\n", ou(p.Contexto.Rito))
	fmt.Fprintf(b, "- Comarca: %s\n", ou(p.Contexto.Comarca))

	writeParte(b, "Autor", p.Autor)
	writeParte(b, "Réu", p.Reu)

	for _, campo := range p.CamposArea {
		switch {
		case campo.Lista != nil:
			fmt.Fprintf(b, "- %s: %s\n", campo.Rotulo, strings.Join(campo.Lista, "; "))
		case campo.Marcado:
			fmt.Fprintf(b, "- %s: sim\n", campo.Rotulo)
		default:
			fmt.Fprintf(b, "- %s: %s\n", campo.Rotulo, campo.Texto)
		}
	}

	fmt.Fprintf(b, "- Fatos: %s\n", ou(p.Narrativa.Fatos))
	fmt.Fprintf(b, "- Cronologia: %s\n", lista(p.Narrativa.Cronologia))
	fmt.Fprintf(b, "- Provas: %s\n", lista(p.Narrativa.Provas))
	fmt.Fprintf(b, "- Tese jurídica: %s\n", ou(p.Fundamentos.Tese))
	fmt.Fprintf(b, "- Tópicos de direito: %s\n", lista(p.Fundamentos.Topicos))
	fmt.Fprintf(b, "- Dispositivos legais: %s\n", lista(p.Fundamentos.Dispositivos))

	fmt.Fprintf(b, "- Pedidos selecionados: %s\n", lista(p.Pedidos.Base))
	fmt.Fprintf(b, "- Pedidos adicionais do usuário: %s\n", lista(p.Pedidos.Extras))
	fmt.Fprintf(b, "- Lista final de pedidos: %s\n", lista(p.Pedidos.Finais))

	fmt.Fprintf(b, "- Ordem das seções: %s\n", lista(p.Estrutura.OrdemSecoes))
	fmt.Fprintf(b, "- Seções extras: %s\n", lista(p.Estrutura.SecoesExtras))
	fmt.Fprintf(b, "- Nível de detalhe: %s\n", ou(p.Estrutura.NivelDetalhe))

	fmt.Fprintf(b, "- Tutela de urgência: %s\n", simNao(p.Parametros.TutelaUrgencia))
	fmt.Fprintf(b, "- Gratuidade da justiça: %s\n", simNao(p.Parametros.JusticaGratuita))
	fmt.Fprintf(b, "- Prioridade de tramitação: %s\n", simNao(p.Parametros.Prioridade))
	fmt.Fprintf(b, "- Audiência de conciliação: %s\n", simNao(p.Parametros.AudienciaConciliacao))
	fmt.Fprintf(b, "- Valor da causa: %s\n", ou(p.Parametros.ValorCausa))
	b.WriteString("\n")
}

func writeParte(b *strings.Builder, papel string, parte caso.Parte) {
	fmt.Fprintf(b, "- %s: %s (%s), %s, %s", papel, ou(parte.Nome), parte.Tipo,
		ou(parte.Documento), ou(parte.Endereco))
	if parte.Qualificacao != "" {
		fmt.Fprintf(b, "; %s", parte.Qualificacao)
	}
	b.WriteString("\n")
}

func payloadJSON(p *caso.Payload) string {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func ou(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func lista(items []string) string {
	if len(items) == 0 {
		return Placeholder
	}
	return strings.Join(items, "; ")
}

func simNao(v bool) string {
	if v {
		return "sim"
	}
	return "não"
}
