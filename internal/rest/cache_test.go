package rest_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/rest"
	"github.com/chainfolio/chainfolio/internal/types"
)

func newCache(t *testing.T) (*rest.PriceCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return rest.NewPriceCache(client, zerolog.Nop()), mr
}

var (
	btc = types.Asset{Identifier: "BTC"}
	eur = types.Asset{Identifier: "EUR"}
	usd = types.Asset{Identifier: "USD"}
)

func TestCurrentPriceRoundTrip(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	_, ok := cache.GetCurrentPrice(ctx, btc, eur)
	assert.False(t, ok)

	price := decimal.RequireFromString("26145.34")
	cache.SetCurrentPrice(ctx, btc, eur, price)

	got, ok := cache.GetCurrentPrice(ctx, btc, eur)
	require.True(t, ok)
	assert.True(t, price.Equal(got))

	// The key layout is part of the cache contract.
	assert.True(t, mr.Exists("price:current:BTC:EUR"))

	ttl := mr.TTL("price:current:BTC:EUR")
	assert.Equal(t, 30*time.Minute, ttl)

	// Entries expire.
	mr.FastForward(31 * time.Minute)
	_, ok = cache.GetCurrentPrice(ctx, btc, eur)
	assert.False(t, ok)
}

func TestHistoricalPriceHasNoTTL(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	ts := types.Timestamp(1609537953)
	cache.SetHistoricalPrice(ctx, types.HistoricalPriceCryptocompare, btc, eur, ts, decimal.NewFromInt(20000))

	key := "price:historical:cryptocompare:BTC:EUR:1609537953"
	require.True(t, mr.Exists(key))
	assert.Zero(t, mr.TTL(key))

	mr.FastForward(24 * time.Hour)
	got, ok := cache.GetHistoricalPrice(ctx, types.HistoricalPriceCryptocompare, btc, eur, ts)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(20000).Equal(got))

	// Other oracles do not see the entry.
	_, ok = cache.GetHistoricalPrice(ctx, types.HistoricalPriceCoingecko, btc, eur, ts)
	assert.False(t, ok)
}

func TestPurgeHistoricalPrices(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	oracle := types.HistoricalPriceCryptocompare
	cache.SetHistoricalPrice(ctx, oracle, btc, eur, 1000, decimal.NewFromInt(1))
	cache.SetHistoricalPrice(ctx, oracle, btc, eur, 2000, decimal.NewFromInt(2))
	cache.SetHistoricalPrice(ctx, oracle, btc, usd, 1000, decimal.NewFromInt(3))

	removed, err := cache.PurgeHistoricalPrices(ctx, oracle, btc, eur)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, ok := cache.GetHistoricalPrice(ctx, oracle, btc, eur, 1000)
	assert.False(t, ok)
	_, ok = cache.GetHistoricalPrice(ctx, oracle, btc, usd, 1000)
	assert.True(t, ok)
}

func TestCachedPairs(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	oracle := types.HistoricalPriceCoingecko
	cache.SetHistoricalPrice(ctx, oracle, btc, eur, 1000, decimal.NewFromInt(1))
	cache.SetHistoricalPrice(ctx, oracle, btc, eur, 2000, decimal.NewFromInt(2))
	cache.SetHistoricalPrice(ctx, oracle, btc, usd, 3000, decimal.NewFromInt(3))
	cache.SetHistoricalPrice(ctx, types.HistoricalPriceCryptocompare, btc, eur, 1000, decimal.NewFromInt(4))

	pairs, err := cache.CachedPairs(ctx, oracle)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	counts := make(map[string]int64, len(pairs))
	for _, pair := range pairs {
		counts[pair["from_asset"].(string)+"_"+pair["to_asset"].(string)] = pair["count"].(int64)
	}
	assert.Equal(t, map[string]int64{"BTC_EUR": 2, "BTC_USD": 1}, counts)
}

func TestNilClientReportsMisses(t *testing.T) {
	cache := rest.NewPriceCache(nil, zerolog.Nop())
	ctx := context.Background()

	cache.SetCurrentPrice(ctx, btc, eur, decimal.NewFromInt(1))
	_, ok := cache.GetCurrentPrice(ctx, btc, eur)
	assert.False(t, ok)

	removed, err := cache.PurgeHistoricalPrices(ctx, types.HistoricalPriceCoingecko, btc, eur)
	require.NoError(t, err)
	assert.Zero(t, removed)

	pairs, err := cache.CachedPairs(ctx, types.HistoricalPriceCoingecko)
	require.NoError(t, err)
	assert.Nil(t, pairs)
}

func TestCorruptCacheValueIsAMiss(t *testing.T) {
	cache, mr := newCache(t)
	require.NoError(t, mr.Set("price:current:BTC:EUR", "not a decimal"))

	_, ok := cache.GetCurrentPrice(context.Background(), btc, eur)
	assert.False(t, ok)
}
