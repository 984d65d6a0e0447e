package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stclaire/cardbrain/internal/analyzers/actions"
	"github.com/stclaire/cardbrain/internal/analyzers/energyattach"
	"github.com/stclaire/cardbrain/internal/analyzers/opponent"
	"github.com/stclaire/cardbrain/internal/analyzers/trainer"
	"github.com/stclaire/cardbrain/internal/carddata"
	"github.com/stclaire/cardbrain/internal/cards"
	"github.com/stclaire/cardbrain/internal/entities"
	redisclient "github.com/stclaire/cardbrain/internal/redis"
	cardrepo "github.com/stclaire/cardbrain/internal/repositories/card"
)

var (
	cardsPath  string
	statePath  string
	playerFlag string
	redisAddr  string
	sqlitePath string
)

func registerBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cardsPath, "cards", os.Getenv("CARDBRAIN_CARDS"), "card catalog YAML file")
	cmd.Flags().StringVar(&statePath, "state", os.Getenv("CARDBRAIN_STATE"), "game state YAML file")
	cmd.Flags().StringVar(&playerFlag, "player", "player1", "acting player (player1 or player2)")
	cmd.Flags().StringVar(&redisAddr, "redis", os.Getenv("CARDBRAIN_REDIS_ADDR"), "redis endpoint backing the card catalog")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", os.Getenv("CARDBRAIN_SQLITE_PATH"), "sqlite catalog database path")
}

func resolvePlayer() (entities.PlayerID, error) {
	switch playerFlag {
	case string(entities.Player1):
		return entities.Player1, nil
	case string(entities.Player2):
		return entities.Player2, nil
	default:
		return "", fmt.Errorf("unknown player %q: use player1 or player2", playerFlag)
	}
}

// openRepository builds the catalog repository from flags, nil when
// only a YAML catalog is in play.
func openRepository() (cardrepo.Repository, error) {
	switch {
	case redisAddr != "":
		client, err := redisclient.NewClient(redisAddr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return cardrepo.NewRedisRepository(&cardrepo.RedisConfig{Client: client})
	case sqlitePath != "":
		db, err := cardrepo.OpenSQLite(sqlitePath)
		if err != nil {
			return nil, err
		}
		return cardrepo.NewSQLiteRepository(&cardrepo.SQLiteConfig{DB: db})
	default:
		return nil, nil
	}
}

// buildSource assembles the card source for an analysis pass: the
// YAML catalog warms the cache, a repository (if configured) backs
// misses, and every id the state references is resolvable up front.
func buildSource(ctx context.Context, state *entities.GameState) (cards.Source, error) {
	var warm map[string]*entities.Card
	if cardsPath != "" {
		catalog, err := carddata.LoadCatalog(cardsPath)
		if err != nil {
			return nil, err
		}
		slog.Info("catalog loaded", "path", cardsPath, "cards", len(catalog))
		warm = catalog
	}

	repo, err := openRepository()
	if err != nil {
		return nil, err
	}
	if repo == nil && warm == nil {
		return nil, fmt.Errorf("a card catalog is required: set --cards, --redis, or --sqlite")
	}

	if repo == nil {
		if missing := carddata.MissingCardIDs(state, warm); len(missing) > 0 {
			return nil, fmt.Errorf("state references cards missing from the catalog: %v", missing)
		}
	}

	resolver, err := cards.NewResolver(&cards.Config{Repository: repo, Warm: warm})
	if err != nil {
		return nil, err
	}

	if repo != nil {
		if err := resolver.WarmBatch(ctx, carddata.ReferencedCardIDs(state)); err != nil {
			return nil, err
		}
	}

	return resolver, nil
}

// analyzerSet is the full advisor assembly over one card source
type analyzerSet struct {
	opponent opponent.Service
	actions  actions.Service
	energy   energyattach.Service
	trainer  trainer.Service
}

func newAnalyzers(source cards.Source) (*analyzerSet, error) {
	opp, err := opponent.NewOrchestrator(&opponent.Config{CardSource: source})
	if err != nil {
		return nil, err
	}

	act, err := actions.NewOrchestrator(&actions.Config{CardSource: source})
	if err != nil {
		return nil, err
	}

	energy, err := energyattach.NewOrchestrator(&energyattach.Config{
		CardSource:       source,
		OpponentAnalyzer: opp,
	})
	if err != nil {
		return nil, err
	}

	tr, err := trainer.NewOrchestrator(&trainer.Config{
		CardSource:       source,
		OpponentAnalyzer: opp,
		ActionsAnalyzer:  act,
	})
	if err != nil {
		return nil, err
	}

	return &analyzerSet{
		opponent: opp,
		actions:  act,
		energy:   energy,
		trainer:  tr,
	}, nil
}

// loadBoard loads state, resolves the acting player, and assembles
// the analyzers. Shared by advise and demo.
func loadBoard(ctx context.Context) (*entities.GameState, entities.PlayerID, *analyzerSet, cards.Source, error) {
	if statePath == "" {
		return nil, "", nil, nil, fmt.Errorf("a game state is required: set --state")
	}

	state, err := carddata.LoadGameState(statePath)
	if err != nil {
		return nil, "", nil, nil, err
	}

	player, err := resolvePlayer()
	if err != nil {
		return nil, "", nil, nil, err
	}

	source, err := buildSource(ctx, state)
	if err != nil {
		return nil, "", nil, nil, err
	}

	set, err := newAnalyzers(source)
	if err != nil {
		return nil, "", nil, nil, err
	}

	return state, player, set, source, nil
}
