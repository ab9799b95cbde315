package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadhifstar/nadhif/internal/catalog"
	"github.com/nadhifstar/nadhif/internal/config"
	"github.com/nadhifstar/nadhif/internal/database"
	"github.com/nadhifstar/nadhif/internal/database/repository"
	"github.com/nadhifstar/nadhif/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	migrations := os.Getenv("NADHIF_MIGRATIONS")
	if migrations == "" {
		migrations = "internal/database/migrations"
	}
	if err := database.EnsureSchema(cfg.Database.Path, migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	bookings := repository.NewBookingRepo(db)

	p := tea.NewProgram(tui.New(ctx, cfg, cat, bookings), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
