package herocatalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
	redisclient "github.com/KirkDiggler/hero-planner/internal/redis"
)

const (
	cacheListKey         = "hero_catalog:list"
	cacheHeroKeyPrefix   = "hero_catalog:hero:"
	cacheDetailKeyPrefix = "hero_catalog:detail:"
	defaultCacheTTL      = 10 * time.Minute
)

type cachedRepository struct {
	source Repository
	client redisclient.Client
	ttl    time.Duration
}

// CacheConfig contains configuration for the redis read-through cache.
type CacheConfig struct {
	Source Repository
	Client redisclient.Client
	// TTL for cached entries (optional, defaults to 10 minutes)
	TTL time.Duration
}

// Validate validates the CacheConfig and sets defaults if not provided.
func (cfg *CacheConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultCacheTTL
	}
	return nil
}

// NewCache wraps source with a redis read-through cache. Misses are not
// cached, so a hero added to the source is visible on the next lookup.
func NewCache(cfg *CacheConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cachedRepository{
		source: cfg.Source,
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

func (r *cachedRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var heroes []entities.HeroSpec
	if r.load(ctx, cacheListKey, &heroes) {
		return &ListOutput{Heroes: heroes}, nil
	}

	out, err := r.source.List(ctx, input)
	if err != nil {
		return nil, err
	}
	r.store(ctx, cacheListKey, out.Heroes)
	return out, nil
}

func (r *cachedRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	key := cacheHeroKeyPrefix + input.Name
	var hero entities.HeroSpec
	if r.load(ctx, key, &hero) {
		return &GetOutput{Hero: &hero}, nil
	}

	out, err := r.source.Get(ctx, input)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, out.Hero)
	return out, nil
}

func (r *cachedRepository) GetDetail(ctx context.Context, input GetDetailInput) (*GetDetailOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	key := cacheDetailKeyPrefix + input.Name
	var detail entities.HeroDetail
	if r.load(ctx, key, &detail) {
		return &GetDetailOutput{Detail: &detail}, nil
	}

	out, err := r.source.GetDetail(ctx, input)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, out.Detail)
	return out, nil
}

// load reports whether key was found and decoded into dst. Cache failures
// are logged and treated as misses.
func (r *cachedRepository) load(ctx context.Context, key string, dst interface{}) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		slog.WarnContext(ctx, "catalog cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (r *cachedRepository) store(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.WarnContext(ctx, "failed to encode catalog cache entry", "key", key, "error", err)
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
	}
}
