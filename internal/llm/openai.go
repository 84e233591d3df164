package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAIProvider talks to the OpenAI chat-completions API, or to any
// compatible endpoint via a custom base URL.
type OpenAIProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

func (o *OpenAIProvider) Name() string {
	return "openai"
}

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *OpenAIProvider) Ping(ctx context.Context) error {
	if o.apiKey == "" {
		return ErrChaveAusente
	}

	req, err := http.NewRequestWithContext(ctx, "GET", o.baseURL+"/models", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("não foi possível conectar à API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == 401 {
		return fmt.Errorf("chave de API inválida")
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("erro da API: status %d", resp.StatusCode)
	}

	return nil
}

func (o *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if o.apiKey == "" {
		return "", ErrChaveAusente
	}

	body, _ := json.Marshal(openAIRequest{
		Model:    o.model,
		Messages: []openAIMessage{{Role: "user", Content: prompt}},
	})

	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("falha ao chamar %s (%s): %w", o.Name(), o.model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		raw, _ := io.ReadAll(resp.Body)
		if quotaExceeded(resp.StatusCode, string(raw)) {
			return "", ErrCotaEsgotada
		}
		return "", fmt.Errorf("falha ao chamar %s (%s): status %d: %s",
			o.Name(), o.model, resp.StatusCode, string(raw))
	}

	var apiResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("falha ao ler a resposta: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return "", ErrRespostaVazia
	}
	text := strings.TrimSpace(apiResp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrRespostaVazia
	}
	return text, nil
}
