package schema

import (
	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// manualBalance is one entry of a manually tracked balances request.
type manualBalance struct {
	Asset    string   `json:"asset"`
	Label    string   `json:"label"`
	Amount   Str      `json:"amount"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
}

// ManuallyTrackedBalancesRequest adds or replaces the set of manually
// tracked balances. The same payload serves PUT and PATCH.
type ManuallyTrackedBalancesRequest struct {
	AsyncQueryArgs
	Balances []manualBalance `json:"balances"`

	balances []types.ManuallyTrackedBalance
}

func (r *ManuallyTrackedBalancesRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	if len(r.Balances) == 0 {
		verrs.Add("balances", missingField)
		return verrs.OrNil()
	}

	r.balances = make([]types.ManuallyTrackedBalance, 0, len(r.Balances))
	for _, entry := range r.Balances {
		balance := types.ManuallyTrackedBalance{
			Asset:    parseAsset(deps, &verrs, "asset", entry.Asset, true),
			Label:    entry.Label,
			Amount:   parsePositiveAmount(&verrs, "amount", entry.Amount, true),
			Location: parseLocation(&verrs, "location", entry.Location, true),
			Tags:     entry.Tags,
		}
		if entry.Label == "" {
			verrs.Add("label", missingField)
		}
		r.balances = append(r.balances, balance)
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(r.balances))
	for _, balance := range r.balances {
		if _, ok := seen[balance.Label]; ok {
			verrs.Addf("balances", "label %s appears multiple times in the request data", balance.Label)
		}
		seen[balance.Label] = struct{}{}
	}
	return verrs.OrNil()
}

// TrackedBalances returns the validated manually tracked balances.
func (r *ManuallyTrackedBalancesRequest) TrackedBalances() []types.ManuallyTrackedBalance {
	return r.balances
}

// ManuallyTrackedBalancesDeleteRequest removes manually tracked balances by
// label.
type ManuallyTrackedBalancesDeleteRequest struct {
	AsyncQueryArgs
	Labels []string `json:"labels"`
}

func (r *ManuallyTrackedBalancesDeleteRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if len(r.Labels) == 0 {
		verrs.Add("labels", missingField)
	}
	seen := make(map[string]struct{}, len(r.Labels))
	for _, label := range r.Labels {
		if _, ok := seen[label]; ok {
			verrs.Addf("labels", "label %s appears multiple times in the request data", label)
		}
		seen[label] = struct{}{}
	}
	return verrs.OrNil()
}

// BlockchainBalanceQuery asks for balances of one chain, or of all tracked
// chains when the path omits the blockchain.
type BlockchainBalanceQuery struct {
	AsyncQueryArgs
	Blockchain  string `param:"blockchain"`
	IgnoreCache bool   `json:"ignore_cache" query:"ignore_cache"`

	chain types.Blockchain
}

func (q *BlockchainBalanceQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	q.chain = parseBlockchain(&verrs, "blockchain", q.Blockchain, false)
	return verrs.OrNil()
}

// Chain returns the validated chain filter, empty when querying all chains.
func (q *BlockchainBalanceQuery) Chain() types.Blockchain { return q.chain }

// AllBalancesQuery asks for a full balance snapshot across exchanges,
// chains and manual balances.
type AllBalancesQuery struct {
	AsyncQueryArgs
	SaveData    bool `json:"save_data" query:"save_data"`
	IgnoreCache bool `json:"ignore_cache" query:"ignore_cache"`
}

func (q *AllBalancesQuery) Validate(validation.Deps) error { return nil }

// ExchangeBalanceQuery asks for the balances held at one registered
// exchange, or all of them when the path omits the name.
type ExchangeBalanceQuery struct {
	AsyncQueryArgs
	Location    string `param:"location"`
	IgnoreCache bool   `json:"ignore_cache" query:"ignore_cache"`
}

func (q *ExchangeBalanceQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	if q.Location != "" && !types.IsSupportedExchange(q.Location) {
		verrs.Addf("location", "unrecognized exchange %s provided", q.Location)
	}
	return verrs.OrNil()
}

// StatisticsValueDistributionQuery selects which value distribution series
// to return.
type StatisticsValueDistributionQuery struct {
	Distribution string `json:"distribution_by" query:"distribution_by"`
}

func (q *StatisticsValueDistributionQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	switch q.Distribution {
	case "location", "asset":
	case "":
		verrs.Add("distribution_by", missingField)
	default:
		verrs.Addf(
			"distribution_by",
			"must be one of 'location' or 'asset' but we got %s",
			q.Distribution,
		)
	}
	return verrs.OrNil()
}

// StatisticsAssetBalanceQuery asks for the balance history of one asset in
// a time range.
type StatisticsAssetBalanceQuery struct {
	TimeRange
	Asset string `param:"asset"`

	asset types.Asset
}

func (q *StatisticsAssetBalanceQuery) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	q.parse(&verrs)
	q.asset = parseAsset(deps, &verrs, "asset", q.Asset, true)
	return verrs.OrNil()
}

// QueriedAsset returns the resolved asset of the query.
func (q *StatisticsAssetBalanceQuery) QueriedAsset() types.Asset { return q.asset }
