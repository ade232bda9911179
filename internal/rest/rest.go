// Package rest holds the API façade handlers dispatch into. It owns the
// response envelope, the async task machinery, the price cache and all
// in-process state: every handler goes through an API method and never
// touches a collaborator directly.
//
// Method calls that touch state serialize on one mutex. The HTTP layer may
// run handlers concurrently but the backend processes one operation at a
// time.
package rest

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/chainfolio/chainfolio/internal/assets"
	"github.com/chainfolio/chainfolio/internal/chain/ethereum"
	"github.com/chainfolio/chainfolio/internal/types"
)

// Version is the application version reported by the version endpoint.
const Version = "1.0.0"

// PriceOracle fetches rates the cache does not have. The production
// implementation talks to the configured oracles; tests plug in a fake.
type PriceOracle interface {
	CurrentPrice(ctx context.Context, from, to types.Asset) (types.Price, error)
	HistoricalPrice(ctx context.Context, from, to types.Asset, ts types.Timestamp) (types.Price, error)
}

// exchangeCredentials is the stored registration of one exchange.
type exchangeCredentials struct {
	APIKey            types.APIKey
	APISecret         types.APISecret
	Passphrase        string
	KrakenAccountType types.KrakenAccountType
}

// userAccount is one known user and their session state.
type userAccount struct {
	Password         string
	PremiumAPIKey    string
	PremiumAPISecret string
	LoggedIn         bool
}

// trackedXpub is a bitcoin extended public key under tracking.
type trackedXpub struct {
	Xpub           string   `json:"xpub"`
	DerivationPath string   `json:"derivation_path"`
	Label          string   `json:"label,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// API is the backend façade. All fields behind mu are the mutable
// application state; everything else is a ready collaborator.
type API struct {
	logger   zerolog.Logger
	Assets   *assets.Registry
	Tasks    *TaskManager
	Cache    *PriceCache
	Resolver ethereum.Resolver
	Oracle   PriceOracle

	mu               sync.Mutex
	users            map[string]*userAccount
	settings         types.Settings
	trades           []types.Trade
	nextActionID     int64
	ledgerActions    []types.LedgerAction
	manualBalances   []types.ManuallyTrackedBalance
	accounts         map[types.Blockchain][]types.BlockchainAccount
	xpubs            []trackedXpub
	tags             map[string]types.Tag
	ignoredAssets    map[string]types.Asset
	ignoredActions   map[types.ActionType]map[string]struct{}
	externalServices map[types.ExternalService]string
	exchanges        map[string]exchangeCredentials
	queriedAddresses map[string][]string
	customTokens     map[string]types.CustomToken
	assetIcons       map[string]assetIcon
	warnings         []string
	errorMessages    []string
}

// New assembles the façade. The redis client may be nil; the price cache
// then reports misses only.
func New(logger zerolog.Logger, registry *assets.Registry, redisClient *redis.Client, resolver ethereum.Resolver, oracle PriceOracle) (*API, error) {
	usd, err := registry.Get("USD")
	if err != nil {
		return nil, err
	}
	return &API{
		logger:   logger,
		Assets:   registry,
		Tasks:    NewTaskManager(logger),
		Cache:    NewPriceCache(redisClient, logger),
		Resolver: resolver,
		Oracle:   oracle,

		users:            make(map[string]*userAccount),
		settings:         types.DefaultSettings(usd),
		accounts:         make(map[types.Blockchain][]types.BlockchainAccount),
		tags:             make(map[string]types.Tag),
		ignoredAssets:    make(map[string]types.Asset),
		ignoredActions:   make(map[types.ActionType]map[string]struct{}),
		externalServices: make(map[types.ExternalService]string),
		exchanges:        make(map[string]exchangeCredentials),
		queriedAddresses: make(map[string][]string),
		customTokens:     make(map[string]types.CustomToken),
		assetIcons:       make(map[string]assetIcon),
	}, nil
}

// Stop shuts down the async machinery. In-flight tasks get their contexts
// cancelled and are waited for.
func (a *API) Stop() {
	a.Tasks.Stop()
}

// OkResult wraps a result in the API success envelope.
func OkResult(result any) map[string]any {
	return map[string]any{
		"result":  result,
		"message": "",
	}
}

// SpawnTask runs fn asynchronously and returns the envelope carrying the
// new task id.
func (a *API) SpawnTask(name string, fn func(ctx context.Context) (any, string)) map[string]any {
	id := a.Tasks.Spawn(name, fn)
	return OkResult(map[string]any{"task_id": id})
}

// Ping answers the liveness probe.
func (a *API) Ping() map[string]any {
	return OkResult(true)
}

// VersionInfo reports the running version.
func (a *API) VersionInfo() map[string]any {
	return OkResult(map[string]any{
		"version":        Version,
		"latest_version": Version,
	})
}

// ConsumeMessages pops and returns all queued warnings and errors.
func (a *API) ConsumeMessages() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	warnings, errorMessages := a.warnings, a.errorMessages
	if warnings == nil {
		warnings = []string{}
	}
	if errorMessages == nil {
		errorMessages = []string{}
	}
	a.warnings, a.errorMessages = nil, nil
	return OkResult(map[string]any{
		"warnings": warnings,
		"errors":   errorMessages,
	})
}

// QueueWarning records a warning for the next messages poll.
func (a *API) QueueWarning(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.warnings = append(a.warnings, message)
}

// QueueError records an error message for the next messages poll.
func (a *API) QueueError(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errorMessages = append(a.errorMessages, message)
}

// TaskOutcome returns the status payload of one task.
func (a *API) TaskOutcome(id int64) (map[string]any, bool) {
	status, result := a.Tasks.Status(id)
	switch status {
	case TaskNotFound:
		return nil, false
	case TaskPending:
		return OkResult(map[string]any{
			"status":  string(TaskPending),
			"outcome": nil,
		}), true
	default:
		return OkResult(map[string]any{
			"status": string(TaskCompleted),
			"outcome": map[string]any{
				"result":  result.Result,
				"message": result.Message,
			},
		}), true
	}
}

// TaskList returns the ids of all pending and completed tasks.
func (a *API) TaskList() map[string]any {
	pending, completed := a.Tasks.Outcomes()
	if pending == nil {
		pending = []int64{}
	}
	if completed == nil {
		completed = []int64{}
	}
	return OkResult(map[string]any{
		"pending":   pending,
		"completed": completed,
	})
}

// OfflineOracle is the PriceOracle used when no price source is configured.
// Every query fails; callers report zero prices and queue the error.
type OfflineOracle struct{}

func (OfflineOracle) CurrentPrice(ctx context.Context, from, to types.Asset) (types.Price, error) {
	return types.ZeroAmount, fmt.Errorf("no price oracle is configured to price %s in %s", from, to)
}

func (OfflineOracle) HistoricalPrice(ctx context.Context, from, to types.Asset, ts types.Timestamp) (types.Price, error) {
	return types.ZeroAmount, fmt.Errorf("no price oracle is configured to price %s in %s", from, to)
}
