package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stclaire/cardbrain/internal/carddata"
	cardrepo "github.com/stclaire/cardbrain/internal/repositories/card"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a YAML card catalog into a repository",
	Long:  `Load a card catalog from YAML and store every card in the configured Redis or SQLite repository.`,
	RunE:  runSeed,
}

func init() {
	registerBoardFlags(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cardsPath == "" {
		return fmt.Errorf("a catalog is required: set --cards")
	}

	catalog, err := carddata.LoadCatalog(cardsPath)
	if err != nil {
		return err
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}
	if repo == nil {
		return fmt.Errorf("a repository is required: set --redis or --sqlite")
	}

	for id, card := range catalog {
		if _, err := repo.Put(ctx, cardrepo.PutInput{Card: card}); err != nil {
			return fmt.Errorf("failed to store card %s: %w", id, err)
		}
	}

	slog.Info("catalog seeded", "cards", len(catalog))
	cmd.Printf("stored %d cards\n", len(catalog))
	return nil
}
