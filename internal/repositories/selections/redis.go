package selections

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/raid-gold-api/internal/redis"
)

const (
	// Key pattern: selections:{identity}
	keyPrefix = "selections:"

	// Set of every identity that has a saved record
	identitiesKey = "selections:identities"
)

// RedisConfig holds the configuration for the Redis repository.
// Clock and IDGenerator default to the real clock and UUID revisions.
type RedisConfig struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ids    idgen.Generator
}

// NewRedisRepository creates a Redis backed selection store. Records never expire.
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk, ids := defaults(cfg.Clock, cfg.IDGenerator)

	return &redisRepository{
		client: cfg.Client,
		clock:  clk,
		ids:    ids,
	}, nil
}

// Get loads the saved record for an identity
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Identity == "" {
		return nil, errors.InvalidArgument(errIdentityEmpty)
	}

	raw, err := r.client.Get(ctx, buildKey(input.Identity)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("no saved selections for %s", input.Identity)
		}
		return nil, errors.Wrap(err, "failed to get selections from Redis")
	}

	var record entities.SelectionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal selections")
	}
	if record.State == nil {
		record.State = entities.NewSelectionState()
	}

	return &GetOutput{Record: &record}, nil
}

// Save writes the record and indexes the identity in one transaction
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}

	record := newRecord(input, r.clock, r.ids)

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal selections")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, buildKey(input.Identity), data, 0)
	pipe.SAdd(ctx, identitiesKey, input.Identity)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to save selections to Redis")
	}

	return &SaveOutput{Record: record}, nil
}

// List returns the indexed identities
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	identities, err := r.client.SMembers(ctx, identitiesKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list selection identities")
	}
	sort.Strings(identities)

	return &ListOutput{Identities: identities}, nil
}

func buildKey(identity string) string {
	return keyPrefix + identity
}
