package heroprogress

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
	"github.com/KirkDiggler/hero-planner/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/hero-planner/internal/redis"
)

const (
	recordKeyPrefix = "hero_progress:record:"
	userIndexPrefix = "hero_progress:user:"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis progress store.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed progress store. Each user's heroes are
// indexed in a sorted set scored by the time they were added.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func recordKey(userID, hero string) string {
	return recordKeyPrefix + userID + ":" + hero
}

func userIndexKey(userID string) string {
	return userIndexPrefix + userID
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	p, err := r.load(ctx, input.UserID, input.HeroName)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Progress: p}, nil
}

func (r *redisRepository) ListByUser(ctx context.Context, input ListByUserInput) (*ListByUserOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	heroes, err := r.client.ZRange(ctx, userIndexKey(input.UserID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list heroes for user %s", input.UserID)
	}
	if len(heroes) == 0 {
		return &ListByUserOutput{}, nil
	}

	keys := make([]string, len(heroes))
	for i, hero := range heroes {
		keys[i] = recordKey(input.UserID, hero)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load heroes for user %s", input.UserID)
	}

	out := make([]*entities.HeroProgress, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// index entry without a record
			slog.WarnContext(ctx, "dangling hero progress index entry", "user_id", input.UserID, "hero", heroes[i])
			continue
		}
		var p entities.HeroProgress
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal progress for %s", heroes[i])
		}
		out = append(out, &p)
	}

	return &ListByUserOutput{Progress: out}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateProgress(input.Progress); err != nil {
		return nil, err
	}
	p := input.Progress

	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal progress")
	}

	created, err := r.client.SetNX(ctx, recordKey(p.UserID, p.HeroName), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create progress")
	}
	if !created {
		return nil, errors.AlreadyExistsf("%s is already tracked by user %s", p.HeroName, p.UserID)
	}

	score := float64(r.clock.Now().UnixNano())
	if err := r.client.ZAdd(ctx, userIndexKey(p.UserID), redis.Z{Score: score, Member: p.HeroName}).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index progress")
	}

	return &CreateOutput{Progress: p.Clone()}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateProgress(input.Progress); err != nil {
		return nil, err
	}

	existing, err := r.load(ctx, input.Progress.UserID, input.Progress.HeroName)
	if err != nil {
		return nil, err
	}

	updated := input.Progress.Clone()
	updated.Needs = existing.Needs
	if err := r.save(ctx, updated); err != nil {
		return nil, err
	}

	return &UpdateOutput{Progress: updated}, nil
}

func (r *redisRepository) UpdateNeeds(ctx context.Context, input UpdateNeedsInput) (*UpdateNeedsOutput, error) {
	if err := validateKey(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	existing, err := r.load(ctx, input.UserID, input.HeroName)
	if err != nil {
		return nil, err
	}

	needs := input.Needs
	existing.Needs = &needs
	if err := r.save(ctx, existing); err != nil {
		return nil, err
	}

	return &UpdateNeedsOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	deleted, err := r.client.Del(ctx, recordKey(input.UserID, input.HeroName)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete progress")
	}
	if err := r.client.ZRem(ctx, userIndexKey(input.UserID), input.HeroName).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to unindex progress")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("%s is not tracked by user %s", input.HeroName, input.UserID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, userID, hero string) (*entities.HeroProgress, error) {
	result, err := r.client.Get(ctx, recordKey(userID, hero)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s is not tracked by user %s", hero, userID)
		}
		return nil, errors.Wrapf(err, "failed to get progress")
	}

	var p entities.HeroProgress
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal progress")
	}
	return &p, nil
}

// save only overwrites. A record deleted since it was loaded stays deleted.
func (r *redisRepository) save(ctx context.Context, p *entities.HeroProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal progress")
	}

	ok, err := r.client.SetXX(ctx, recordKey(p.UserID, p.HeroName), data, 0).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to save progress")
	}
	if !ok {
		return errors.NotFoundf("%s is not tracked by user %s", p.HeroName, p.UserID)
	}
	return nil
}
