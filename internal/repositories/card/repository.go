// Package card provides the card catalog repository: lookup of
// immutable card definitions by card id. The catalog must be total
// for any id referenced by active play; a missing id there is a
// contract violation surfaced as NotFound.
package card

import (
	"context"

	"github.com/stclaire/cardbrain/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=cardmock github.com/stclaire/cardbrain/internal/repositories/card Repository

// Repository stores and retrieves card definitions
type Repository interface {
	// Get retrieves a single card by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetBatch retrieves several cards at once, for warming analyzer
	// caches before an analysis pass
	GetBatch(ctx context.Context, input GetBatchInput) (*GetBatchOutput, error)

	// Put stores a card definition
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// List returns every card in the catalog
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput contains parameters for retrieving a card
type GetInput struct {
	CardID string
}

// GetOutput contains the retrieved card
type GetOutput struct {
	Card *entities.Card
}

// GetBatchInput contains parameters for retrieving several cards
type GetBatchInput struct {
	CardIDs []string
}

// GetBatchOutput maps each found card id to its card. Missing ids are
// simply absent; callers decide whether absence is fatal.
type GetBatchOutput struct {
	Cards map[string]*entities.Card
}

// PutInput contains the card to store
type PutInput struct {
	Card *entities.Card
}

// PutOutput is the result of storing a card
type PutOutput struct {
	Card *entities.Card
}

// ListInput contains parameters for listing the catalog
type ListInput struct{}

// ListOutput contains every card in the catalog
type ListOutput struct {
	Cards []*entities.Card
}
