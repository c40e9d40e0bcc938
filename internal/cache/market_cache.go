package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// invalidationHold is how long an invalidated projection refuses to be repopulated
const invalidationHold = 2 * time.Second

// setIfFreshLua writes the projection unless the key carries an invalidation tombstone
const setIfFreshLua = `
if redis.call('HEXISTS', KEYS[1], 'invalidated') == 1 then
    return 0
end
redis.call('HSET', KEYS[1], 'data', ARGV[1])
redis.call('PEXPIRE', KEYS[1], ARGV[2])
return 1
`

// CachedMarketRepository serves read-only GetMarket calls from Redis.
// Calls made inside a transaction always reach the database, so no decision
// that moves money is taken on a cached market.
//
// A reader that loaded a market before a commit may try to store it after the
// post-commit invalidation. The invalidation leaves a tombstone for
// invalidationHold that rejects such writes; a reader slower than the hold can
// still store a stale projection, which lives at most until the cache TTL.
//
// Key schema:
//
//	market:{id} - hash with field "data" containing JSON, or field
//	              "invalidated" while the tombstone is held
type CachedMarketRepository struct {
	repository.MarketRepository
	rdb    *redis.Client
	setSc  *redis.Script
	ttl    time.Duration
	hold   time.Duration
	logger zerolog.Logger
}

var _ repository.MarketRepository = (*CachedMarketRepository)(nil)

func NewCachedMarketRepository(inner repository.MarketRepository, c *Client, ttl time.Duration, logger zerolog.Logger) *CachedMarketRepository {
	return &CachedMarketRepository{
		MarketRepository: inner,
		rdb:              c.rdb,
		setSc:            redis.NewScript(setIfFreshLua),
		ttl:              ttl,
		hold:             invalidationHold,
		logger:           logger,
	}
}

func marketKey(id string) string { return "market:" + id }

func (r *CachedMarketRepository) GetMarket(ctx context.Context, marketID string, tx ...pgx.Tx) (*model.Market, error) {
	if len(tx) > 0 {
		return r.MarketRepository.GetMarket(ctx, marketID, tx...)
	}

	m, err := r.get(ctx, marketID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, redis.Nil) {
		r.logger.Warn().Err(err).Str("market_id", marketID).Msg("market cache read failed")
	}

	m, err = r.MarketRepository.GetMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}
	if _, err := r.set(ctx, m); err != nil {
		r.logger.Warn().Err(err).Str("market_id", marketID).Msg("market cache write failed")
	}
	return m, nil
}

// InvalidateMarket replaces the cached projection with a short-lived tombstone after a committed change
func (r *CachedMarketRepository) InvalidateMarket(ctx context.Context, marketID string) error {
	key := marketKey(marketID)
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, "invalidated", 1)
	pipe.PExpire(ctx, key, r.hold)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis: invalidate market %s: %w", marketID, err)
	}
	return nil
}

func (r *CachedMarketRepository) get(ctx context.Context, marketID string) (*model.Market, error) {
	data, err := r.rdb.HGet(ctx, marketKey(marketID), "data").Bytes()
	if err != nil {
		return nil, err
	}

	m := &model.Market{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("redis: unmarshal market %s: %w", marketID, err)
	}
	return m, nil
}

// set stores the projection and reports false when a tombstone refused it
func (r *CachedMarketRepository) set(ctx context.Context, m *model.Market) (bool, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return false, fmt.Errorf("redis: marshal market %s: %w", m.ID, err)
	}

	stored, err := r.setSc.Run(ctx, r.rdb, []string{marketKey(m.ID)}, data, r.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("redis: set market %s: %w", m.ID, err)
	}
	return stored == 1, nil
}
