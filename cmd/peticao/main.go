package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/gdamasio/peticao/internal/config"
	"github.com/gdamasio/peticao/internal/tui"
)

var version = "dev"

func main() {
	// .env is optional; real env vars take precedence either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	// First run: write the config file so the user has something to edit.
	if path, perr := config.ConfigPath(); perr == nil {
		if _, serr := os.Stat(path); os.IsNotExist(serr) {
			_ = cfg.Save()
		}
	}

	p := tea.NewProgram(
		tui.NewApp(cfg),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
