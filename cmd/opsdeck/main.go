package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haldane/opsdeck/internal/config"
	"github.com/haldane/opsdeck/internal/storage"
	"github.com/haldane/opsdeck/internal/ticket"
	"github.com/haldane/opsdeck/internal/tui"
	"github.com/haldane/opsdeck/palette"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := storage.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := ticket.NewRepo(db)
	if err := repo.SeedIfEmpty(ctx); err != nil {
		log.Fatalf("seed: %v", err)
	}

	store, err := historyStore(cfg, db)
	if err != nil {
		log.Printf("warn: %v, palette history disabled for this session", err)
		store = palette.NewMemoryStore()
	}

	p := tea.NewProgram(tui.New(ctx, cfg, repo, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// historyStore picks the palette.Store backend: the shared sqlite handle, or
// JSON files under the config dir.
func historyStore(cfg config.Config, db *sql.DB) (palette.Store, error) {
	if strings.EqualFold(strings.TrimSpace(cfg.Storage.Backend), "sqlite") {
		return storage.NewSQLiteStore(db), nil
	}
	return storage.NewFileStore(cfg.Storage.Dir)
}
