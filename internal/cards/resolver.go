// Package cards provides the card lookup capability analyzers consume:
// a warm map plus cache-or-fetch against the catalog repository. The
// same card id is queried dozens of times within one analysis pass, so
// the memoization here is required behavior, not an optimization.
package cards

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/errors"
	cardrepo "github.com/stclaire/cardbrain/internal/repositories/card"
)

//go:generate mockgen -destination=mock/mock_source.go -package=cardsmock github.com/stclaire/cardbrain/internal/cards Source

// Source is the lookup capability handed to analyzers. It must be
// total for any id referenced by active play; NotFound from Card is a
// contract violation the analyzer propagates as fatal for the pass.
type Source interface {
	Card(ctx context.Context, cardID string) (*entities.Card, error)
}

// Map is a pure in-memory Source for tests and pre-resolved sets
type Map map[string]*entities.Card

// Card looks the card up in the map
func (m Map) Card(_ context.Context, cardID string) (*entities.Card, error) {
	if c, ok := m[cardID]; ok {
		return c, nil
	}
	return nil, errors.NotFoundf("card not found: %s", cardID).WithMeta("card_id", cardID)
}

// Config holds the dependencies for a Resolver
type Config struct {
	// Repository backs cache misses; optional when Warm covers every
	// id the pass will touch
	Repository cardrepo.Repository

	// Warm pre-populates the cache
	Warm map[string]*entities.Card
}

// Resolver is a memoizing Source: warm map first, then fetch-once per
// card id from the repository. Safe for concurrent use by parallel
// what-if branches; concurrent misses on the same id share one fetch.
type Resolver struct {
	repo  cardrepo.Repository
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]*entities.Card
}

// NewResolver creates a Resolver from the given config
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if cfg.Repository == nil && len(cfg.Warm) == 0 {
		return nil, errors.InvalidArgument("either a repository or a warm card map is required")
	}

	cache := make(map[string]*entities.Card, len(cfg.Warm))
	for id, c := range cfg.Warm {
		cache[id] = c
	}

	return &Resolver{
		repo:  cfg.Repository,
		cache: cache,
	}, nil
}

var _ Source = (*Resolver)(nil)

// Card returns the card definition for an id, fetching and memoizing
// on first use.
func (r *Resolver) Card(ctx context.Context, cardID string) (*entities.Card, error) {
	if cardID == "" {
		return nil, errors.InvalidArgument("card ID cannot be empty")
	}

	r.mu.RLock()
	c, ok := r.cache[cardID]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}

	if r.repo == nil {
		return nil, errors.NotFoundf("card not found: %s", cardID).WithMeta("card_id", cardID)
	}

	v, err, _ := r.group.Do(cardID, func() (interface{}, error) {
		out, err := r.repo.Get(ctx, cardrepo.GetInput{CardID: cardID})
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[cardID] = out.Card
		r.mu.Unlock()

		return out.Card, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*entities.Card), nil
}

// WarmBatch fetches a batch of ids into the cache ahead of an
// analysis pass. Missing ids are tolerated here; they surface later
// only if the pass actually needs them.
func (r *Resolver) WarmBatch(ctx context.Context, cardIDs []string) error {
	if r.repo == nil || len(cardIDs) == 0 {
		return nil
	}

	r.mu.RLock()
	var missing []string
	for _, id := range cardIDs {
		if _, ok := r.cache[id]; !ok {
			missing = append(missing, id)
		}
	}
	r.mu.RUnlock()
	if len(missing) == 0 {
		return nil
	}

	out, err := r.repo.GetBatch(ctx, cardrepo.GetBatchInput{CardIDs: missing})
	if err != nil {
		return errors.Wrap(err, "failed to warm card cache")
	}

	r.mu.Lock()
	for id, c := range out.Cards {
		r.cache[id] = c
	}
	r.mu.Unlock()

	return nil
}

// Snapshot returns a copy of the current cache contents
func (r *Resolver) Snapshot() map[string]*entities.Card {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*entities.Card, len(r.cache))
	for id, c := range r.cache {
		out[id] = c
	}
	return out
}
