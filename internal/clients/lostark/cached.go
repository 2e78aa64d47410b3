package lostark

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	redisclient "github.com/KirkDiggler/raid-gold-api/internal/redis"
)

const (
	// Key pattern: roster:{character name}
	rosterKeyPrefix = "roster:"

	// DefaultCacheTTL keeps rosters long enough to cover a planning session
	DefaultCacheTTL = 10 * time.Minute

	// DefaultFetchTimeout bounds a shared upstream lookup
	DefaultFetchTimeout = 30 * time.Second
)

// CachedConfig configures the caching decorator
type CachedConfig struct {
	Client      Client
	RedisClient redisclient.Client
	TTL         time.Duration

	// FetchTimeout bounds the upstream request shared by concurrent lookups
	FetchTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *CachedConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.RedisClient == nil {
		vb.RequiredField("RedisClient")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "cannot be negative")
	}
	if c.FetchTimeout < 0 {
		vb.Field("FetchTimeout", "cannot be negative")
	}
	return vb.Build()
}

type cachedClient struct {
	next         Client
	redis        redisclient.Client
	ttl          time.Duration
	fetchTimeout time.Duration
	group        singleflight.Group
}

// NewCachedClient wraps a Client so rosters are served from Redis while fresh.
// Concurrent lookups for the same name share one upstream request. The shared
// request is detached from the caller that started it, so one caller giving up
// does not fail the others; each caller still returns when its own context ends.
func NewCachedClient(cfg *CachedConfig) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid cached client config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = DefaultFetchTimeout
	}

	return &cachedClient{
		next:         cfg.Client,
		redis:        cfg.RedisClient,
		ttl:          ttl,
		fetchTimeout: fetchTimeout,
	}, nil
}

func (c *cachedClient) GetSiblings(ctx context.Context, characterName string) ([]*entities.CharacterSummary, error) {
	characterName = strings.TrimSpace(characterName)
	if characterName == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	key := rosterKeyPrefix + characterName

	if cached, ok := c.lookup(ctx, key); ok {
		return cached, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		summaries, err := c.next.GetSiblings(fetchCtx, characterName)
		if err != nil {
			return nil, err
		}
		// Empty rosters are usually typos and are not worth remembering
		if len(summaries) > 0 {
			c.store(fetchCtx, key, summaries)
		}
		return summaries, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "roster lookup for %s abandoned", characterName)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return copySummaries(res.Val.([]*entities.CharacterSummary)), nil
	}
}

// lookup treats any cache failure as a miss
func (c *cachedClient) lookup(ctx context.Context, key string) ([]*entities.CharacterSummary, bool) {
	raw, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redisclient.Nil) {
			slog.Warn("roster cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var summaries []*entities.CharacterSummary
	if err := json.Unmarshal([]byte(raw), &summaries); err != nil {
		slog.Warn("roster cache entry corrupt", "key", key, "error", err)
		return nil, false
	}

	return summaries, true
}

func (c *cachedClient) store(ctx context.Context, key string, summaries []*entities.CharacterSummary) {
	data, err := json.Marshal(summaries)
	if err != nil {
		slog.Warn("failed to marshal roster for cache", "key", key, "error", err)
		return
	}

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("roster cache write failed", "key", key, "error", err)
	}
}

func copySummaries(summaries []*entities.CharacterSummary) []*entities.CharacterSummary {
	out := make([]*entities.CharacterSummary, len(summaries))
	for i, summary := range summaries {
		s := *summary
		out[i] = &s
	}
	return out
}
