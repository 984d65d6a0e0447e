package card

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/errors"
	redisclient "github.com/stclaire/cardbrain/internal/redis"
)

const (
	// Key pattern: card:{card_id}
	cardKeyPrefix = "card:"

	errCardNil     = "card cannot be nil"
	errCardIDEmpty = "card ID cannot be empty"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed card catalog
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves a single card by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CardID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	data, err := r.client.Get(ctx, cardKey(input.CardID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, errors.NotFoundf("card not found: %s", input.CardID).
				WithMeta("card_id", input.CardID)
		}
		return nil, errors.Wrapf(err, "failed to get card %s from Redis", input.CardID)
	}

	var c entities.Card
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal card").
			WithMeta("card_id", input.CardID)
	}

	return &GetOutput{Card: &c}, nil
}

// GetBatch retrieves several cards at once via MGET
func (r *redisRepository) GetBatch(ctx context.Context, input GetBatchInput) (*GetBatchOutput, error) {
	out := &GetBatchOutput{Cards: make(map[string]*entities.Card, len(input.CardIDs))}
	if len(input.CardIDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(input.CardIDs))
	for i, id := range input.CardIDs {
		if id == "" {
			return nil, errors.InvalidArgument(errCardIDEmpty)
		}
		keys[i] = cardKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to batch get cards from Redis")
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// missing key; absence is the caller's call
			continue
		}
		var c entities.Card
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal card").
				WithMeta("card_id", input.CardIDs[i])
		}
		out.Cards[input.CardIDs[i]] = &c
	}

	return out, nil
}

// Put stores a card definition. Catalog entries have no TTL; card
// definitions are immutable reference data.
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.CardID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	data, err := json.Marshal(input.Card)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal card")
	}

	if err := r.client.Set(ctx, cardKey(input.Card.CardID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store card %s in Redis", input.Card.CardID)
	}

	return &PutOutput{Card: input.Card}, nil
}

// List returns every card in the catalog by scanning the key prefix
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	out := &ListOutput{}

	iter := r.client.Scan(ctx, 0, cardKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan card keys")
	}
	if len(keys) == 0 {
		return out, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch cards for list")
	}

	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var c entities.Card
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal card")
		}
		out.Cards = append(out.Cards, &c)
	}

	return out, nil
}

func cardKey(cardID string) string {
	return cardKeyPrefix + cardID
}
