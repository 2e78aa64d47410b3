package workspace

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/raid-gold-api/internal/redis"
)

const (
	// Key pattern: workspace:{identity}
	keyPrefix = "workspace:"

	// DefaultTTL is how long an untouched workspace survives
	DefaultTTL = 2 * time.Hour

	errWorkspaceNil  = "workspace cannot be nil"
	errIdentityEmpty = "identity cannot be empty"
	errStateNil      = "workspace state cannot be nil"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "cannot be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for workspaces
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get retrieves the live workspace for an identity
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Identity == "" {
		return nil, errors.InvalidArgument(errIdentityEmpty)
	}

	raw, err := r.client.Get(ctx, buildKey(input.Identity)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("no workspace for %s", input.Identity)
		}
		return nil, errors.Wrap(err, "failed to get workspace from Redis")
	}

	var ws Workspace
	if err := json.Unmarshal([]byte(raw), &ws); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal workspace")
	}
	if ws.State == nil {
		return nil, errors.Internalf("workspace for %s has no state", input.Identity)
	}

	return &GetOutput{Workspace: &ws}, nil
}

// Save stores the workspace and resets its TTL
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateWorkspace(input.Workspace); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	ws := *input.Workspace
	ws.UpdatedAt = now
	ws.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(&ws)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal workspace")
	}

	if err := r.client.Set(ctx, buildKey(ws.Identity), data, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store workspace in Redis")
	}

	return &SaveOutput{Workspace: &ws}, nil
}

// Delete removes a workspace
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Identity == "" {
		return nil, errors.InvalidArgument(errIdentityEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.Identity)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete workspace from Redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

func validateWorkspace(ws *Workspace) error {
	if ws == nil {
		return errors.InvalidArgument(errWorkspaceNil)
	}
	if ws.Identity == "" {
		return errors.InvalidArgument(errIdentityEmpty)
	}
	if ws.State == nil {
		return errors.InvalidArgument(errStateNil)
	}
	return nil
}

func buildKey(identity string) string {
	return keyPrefix + identity
}
