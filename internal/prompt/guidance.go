package prompt

// orientacoesArea holds one guidance block per canonical legal area.
// BuildPrompt inserts the block matched by ClassifyArea verbatim.
var orientacoesArea = map[string]string{
	"Civel": "Orientações para a área cível: fundamente a responsabilidade nos arts. 186, 389 e 927 " +
		"do Código Civil conforme o caso, distinga inadimplemento absoluto de mora e trate da boa-fé " +
		"objetiva (art. 422 do CC) quando a relação for contratual.",
	"Consumidor": "Orientações para a área do consumidor: aplique o Código de Defesa do Consumidor, " +
		"caracterize a relação de consumo (arts. 2º e 3º do CDC), avalie a inversão do ônus da prova " +
		"(art. 6º, VIII) e, em cobrança indevida, o art. 42, parágrafo único.",
	"Trabalhista": "Orientações para a área trabalhista: indique os dados do contrato de trabalho " +
		"(admissão, demissão, função, último salário), fundamente cada verba na CLT e requeira a " +
		"incidência de juros e correção na forma da legislação trabalhista.",
	"Familia": "Orientações para a área de família: observe o binômio necessidade-possibilidade em " +
		"alimentos (art. 1.694 do CC), trate do melhor interesse do menor quando houver filhos e " +
		"indique se há acordo prévio a homologar.",
	"Previdenciario": "Orientações para a área previdenciária: indique o benefício pretendido, a DER " +
		"e o motivo do indeferimento administrativo, e fundamente na Lei 8.213/91, observando a " +
		"qualidade de segurado e a carência.",
	Outro: "Orientações gerais: identifique a natureza da relação jurídica descrita nos fatos e " +
		"fundamente nos dispositivos legais pertinentes, sem citar jurisprudência específica.",
}

// orientacoesTipoAcao holds one guidance block per canonical action
// type, matched by ClassifyTipoAcao.
var orientacoesTipoAcao = map[string]string{
	"Indenizacao por danos morais": "Para indenização por danos morais: demonstre o ato ilícito, o " +
		"nexo causal e o dano, peça arbitramento do valor pelo juízo quando não houver valor líquido " +
		"e indique os parâmetros de razoabilidade e proporcionalidade.",
	"Cobranca": "Para ação de cobrança: individualize a origem da dívida, o valor principal, os " +
		"encargos e a data de vencimento; peça juros de mora e correção monetária desde o " +
		"inadimplemento.",
	"Obrigacao de fazer": "Para obrigação de fazer: descreva com precisão a conduta exigida, peça a " +
		"fixação de prazo e de multa diária (astreintes) para o descumprimento, nos termos do art. " +
		"536 do CPC.",
	"Rescisao contratual": "Para rescisão contratual: indique a cláusula ou dever descumprido, peça a " +
		"resolução do contrato com a restituição das parcelas devidas e eventuais perdas e danos.",
	"Reclamatoria trabalhista": "Para reclamatória trabalhista: liste as verbas pleiteadas uma a uma " +
		"com o respectivo fundamento na CLT, indique o período do vínculo e requeira a retificação " +
		"da CTPS quando o vínculo não estiver registrado.",
	"Alimentos": "Para ação de alimentos: qualifique o alimentando e o alimentante, demonstre o " +
		"binômio necessidade-possibilidade e peça a fixação de alimentos provisórios.",
	Outro: "Para a ação indicada nos dados: estruture o pedido principal a partir dos fatos " +
		"narrados, sem presumir rito ou fundamento não informado.",
}
