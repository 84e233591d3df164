package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gdamasio/peticao/internal/config"
)

func geminiForTest(srv *httptest.Server) *GeminiProvider {
	g := NewGeminiProvider("chave-teste", "gemini-2.5-flash")
	g.baseURL = srv.URL
	g.httpClient = srv.Client()
	return g
}

func TestGeminiGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-2.5-flash:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "chave-teste" {
			t.Error("API key header missing")
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  PETIÇÃO INICIAL\n..."}]}}]}`))
	}))
	defer srv.Close()

	got, err := geminiForTest(srv).Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "PETIÇÃO INICIAL\n..." {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGeminiMissingKey(t *testing.T) {
	g := NewGeminiProvider("", "")
	if _, err := g.Generate(context.Background(), "p"); !errors.Is(err, ErrChaveAusente) {
		t.Errorf("want ErrChaveAusente, got %v", err)
	}
	if err := g.Ping(context.Background()); !errors.Is(err, ErrChaveAusente) {
		t.Errorf("Ping want ErrChaveAusente, got %v", err)
	}
}

func TestGeminiQuotaExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
		w.Write([]byte(`{"error":{"status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	_, err := geminiForTest(srv).Generate(context.Background(), "p")
	if !errors.Is(err, ErrCotaEsgotada) {
		t.Errorf("want ErrCotaEsgotada, got %v", err)
	}
}

func TestGeminiQuotaInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte(`{"error":{"message":"Quota exceeded for quota metric"}}`))
	}))
	defer srv.Close()

	_, err := geminiForTest(srv).Generate(context.Background(), "p")
	if !errors.Is(err, ErrCotaEsgotada) {
		t.Errorf("want ErrCotaEsgotada for quota body, got %v", err)
	}
}

func TestGeminiEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := geminiForTest(srv).Generate(context.Background(), "p")
	if !errors.Is(err, ErrRespostaVazia) {
		t.Errorf("want ErrRespostaVazia, got %v", err)
	}
}

func TestGeminiBlankTextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`))
	}))
	defer srv.Close()

	_, err := geminiForTest(srv).Generate(context.Background(), "p")
	if !errors.Is(err, ErrRespostaVazia) {
		t.Errorf("want ErrRespostaVazia for blank text, got %v", err)
	}
}

func TestGeminiTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`internal`))
	}))
	defer srv.Close()

	_, err := geminiForTest(srv).Generate(context.Background(), "p")
	if err == nil || errors.Is(err, ErrCotaEsgotada) || errors.Is(err, ErrRespostaVazia) {
		t.Errorf("want a plain transport error, got %v", err)
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(&config.Config{Provider: "gemini", Model: "m"})
	if err != nil || p.Name() != "gemini" {
		t.Errorf("gemini factory: %v %v", p, err)
	}

	p, err = NewProvider(&config.Config{Provider: "openai", Model: "m"})
	if err != nil || p.Name() != "openai" {
		t.Errorf("openai factory: %v %v", p, err)
	}

	if _, err = NewProvider(&config.Config{Provider: "nao-existe"}); err == nil {
		t.Error("unknown provider should error")
	}
}
