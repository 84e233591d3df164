package tui

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gdamasio/peticao/internal/config"
	"github.com/gdamasio/peticao/internal/llm"
)

func TestGenerateCmdRequiresKey(t *testing.T) {
	cfg := config.DefaultConfig()
	msg := generateCmd(cfg, "texto")()

	errMsg, ok := msg.(generationErrorMsg)
	if !ok {
		t.Fatalf("got %T, want generationErrorMsg", msg)
	}
	if !errors.Is(errMsg.error, llm.ErrChaveAusente) {
		t.Errorf("err = %v, want ErrChaveAusente", errMsg.error)
	}
}

func TestGenerateCmdIgnoresFailedPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"minuta"}}]}`))
	}))
	defer srv.Close()

	cfg := &config.Config{Provider: "openai", APIKey: "chave-valida", BaseURL: srv.URL}

	a := NewApp(cfg)
	a.Update(providerErrorMsg{errors.New("ping: connection refused")})

	msg := generateCmd(a.state.config, "texto")()
	done, ok := msg.(generationDoneMsg)
	if !ok {
		t.Fatalf("got %T (%v), want generationDoneMsg", msg, msg)
	}
	if done.text != "minuta" {
		t.Errorf("text = %q, want %q", done.text, "minuta")
	}
}

func TestGenerateCmdRetriesWithFreshProvider(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"minuta"}}]}`))
	}))
	defer srv.Close()

	cfg := &config.Config{Provider: "openai", APIKey: "chave-valida", BaseURL: srv.URL}

	if _, ok := generateCmd(cfg, "texto")().(generationErrorMsg); !ok {
		t.Fatal("first call should fail with the server error")
	}
	if _, ok := generateCmd(cfg, "texto")().(generationDoneMsg); !ok {
		t.Fatal("retry should reach the API again and succeed")
	}
}
