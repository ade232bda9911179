package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/chainfolio/chainfolio/internal/types"
)

// priceCacheTTL bounds how long a fetched rate stays reusable.
const priceCacheTTL = 30 * time.Minute

// PriceCache keeps recently fetched exchange rates and oracle prices in
// redis. Cache errors degrade to misses so a flaky redis never fails a
// price query.
type PriceCache struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewPriceCache wraps an already-connected redis client.
func NewPriceCache(client *redis.Client, logger zerolog.Logger) *PriceCache {
	return &PriceCache{client: client, logger: logger}
}

func priceKey(from, to types.Asset) string {
	return fmt.Sprintf("price:current:%s:%s", from.Identifier, to.Identifier)
}

func historicalPriceKey(oracle types.HistoricalPriceOracle, from, to types.Asset, ts types.Timestamp) string {
	return fmt.Sprintf("price:historical:%s:%s:%s:%d", oracle, from.Identifier, to.Identifier, ts)
}

// GetCurrentPrice returns the cached rate of from in to, reporting a miss
// when absent or on any cache error.
func (c *PriceCache) GetCurrentPrice(ctx context.Context, from, to types.Asset) (types.Price, bool) {
	if c.client == nil {
		return types.ZeroAmount, false
	}
	value, err := c.client.Get(ctx, priceKey(from, to)).Result()
	if err == redis.Nil {
		return types.ZeroAmount, false
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("price cache read failed, treating as miss")
		return types.ZeroAmount, false
	}
	price, err := decimal.NewFromString(value)
	if err != nil {
		return types.ZeroAmount, false
	}
	return price, true
}

// SetCurrentPrice stores a freshly fetched rate. Write failures are logged
// and dropped.
func (c *PriceCache) SetCurrentPrice(ctx context.Context, from, to types.Asset, price types.Price) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, priceKey(from, to), price.String(), priceCacheTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("price cache write failed")
	}
}

// GetHistoricalPrice returns the cached historical price of an oracle for
// an asset pair at a timestamp.
func (c *PriceCache) GetHistoricalPrice(ctx context.Context, oracle types.HistoricalPriceOracle, from, to types.Asset, ts types.Timestamp) (types.Price, bool) {
	if c.client == nil {
		return types.ZeroAmount, false
	}
	value, err := c.client.Get(ctx, historicalPriceKey(oracle, from, to, ts)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("price cache read failed, treating as miss")
		}
		return types.ZeroAmount, false
	}
	price, err := decimal.NewFromString(value)
	if err != nil {
		return types.ZeroAmount, false
	}
	return price, true
}

// SetHistoricalPrice stores a historical price permanently: past prices do
// not change, so no TTL applies.
func (c *PriceCache) SetHistoricalPrice(ctx context.Context, oracle types.HistoricalPriceOracle, from, to types.Asset, ts types.Timestamp, price types.Price) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, historicalPriceKey(oracle, from, to, ts), price.String(), 0).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("price cache write failed")
	}
}

// PurgeHistoricalPrices drops every cached historical price of one oracle
// for an asset pair. It returns how many entries were removed.
func (c *PriceCache) PurgeHistoricalPrices(ctx context.Context, oracle types.HistoricalPriceOracle, from, to types.Asset) (int64, error) {
	if c.client == nil {
		return 0, nil
	}
	pattern := fmt.Sprintf("price:historical:%s:%s:%s:*", oracle, from.Identifier, to.Identifier)
	var removed int64
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, iter.Err()
}

// CachedPairs lists the asset pairs one oracle has historical prices for.
func (c *PriceCache) CachedPairs(ctx context.Context, oracle types.HistoricalPriceOracle) ([]map[string]any, error) {
	if c.client == nil {
		return nil, nil
	}
	pattern := fmt.Sprintf("price:historical:%s:*", oracle)
	counts := make(map[[2]string]int64)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		parts := splitKey(iter.Val())
		if len(parts) != 6 {
			continue
		}
		counts[[2]string{parts[3], parts[4]}]++
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	pairs := make([]map[string]any, 0, len(counts))
	for pair, count := range counts {
		pairs = append(pairs, map[string]any{
			"from_asset": pair[0],
			"to_asset":   pair[1],
			"count":      count,
		})
	}
	return pairs, nil
}

func splitKey(key string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			parts = append(parts, key[start:i])
			start = i + 1
		}
	}
	return append(parts, key[start:])
}
