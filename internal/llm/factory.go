package llm

import (
	"fmt"

	"github.com/gdamasio/peticao/internal/config"
)

// NewProvider creates a provider from config. A missing API key is not
// an error here: it surfaces at generation time as ErrChaveAusente so
// the wizard stays usable while only generation is blocked.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiProvider(cfg.APIKey, cfg.Model), nil

	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	default:
		return nil, fmt.Errorf("provedor desconhecido: %s", cfg.Provider)
	}
}
