package llm

import "errors"

// Typed failures of the generation boundary. Each surfaces as its own
// message in the error view; none of them terminates the session, and
// the form state is left untouched for a manual retry.
var (
	ErrChaveAusente = errors.New(
		"configure GEMINI_API_KEY (ou GOOGLE_API_KEY) no .env antes de gerar")

	ErrCotaEsgotada = errors.New(
		"cota da API esgotada (HTTP 429 RESOURCE_EXHAUSTED): habilite faturamento " +
			"no projeto da chave, use outra chave/projeto com cota disponível ou teste " +
			"outro modelo via GEMINI_MODEL no .env")

	ErrRespostaVazia = errors.New("o modelo não retornou texto")
)
