package schema

import (
	"github.com/shopspring/decimal"

	"github.com/chainfolio/chainfolio/internal/chain/ethereum"
	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

var hundredPercent = decimal.NewFromInt(1)

// underlyingTokenEntry is one constituent of a custom token, with its
// weight given as a percentage.
type underlyingTokenEntry struct {
	Address string `json:"address"`
	Weight  Str    `json:"weight"`
}

// tokenPayload is the "token" object of custom ethereum token requests.
type tokenPayload struct {
	Address          string                 `json:"address"`
	Decimals         *int                   `json:"decimals"`
	Name             string                 `json:"name"`
	Symbol           string                 `json:"symbol"`
	Started          Str                    `json:"started"`
	Coingecko        string                 `json:"coingecko"`
	Cryptocompare    string                 `json:"cryptocompare"`
	UnderlyingTokens []underlyingTokenEntry `json:"underlying_tokens"`
}

// EthereumTokenRequest adds or edits a custom ethereum token. The same
// payload serves PUT and PATCH.
type EthereumTokenRequest struct {
	Token tokenPayload `json:"token"`

	token types.CustomToken
}

func (r *EthereumTokenRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	payload := r.Token

	if payload.Address == "" {
		verrs.Add("address", missingField)
	} else if address, err := ethereum.ChecksumAddress(payload.Address); err != nil {
		verrs.AddErr("address", err)
	} else {
		r.token.Address = address
	}

	if payload.Decimals == nil {
		verrs.Add("decimals", missingField)
	} else if *payload.Decimals < 0 || *payload.Decimals > 18 {
		verrs.Addf("decimals", "token decimals should be a number between 0 and 18, got %d", *payload.Decimals)
	} else {
		r.token.Decimals = *payload.Decimals
	}

	if payload.Name == "" {
		verrs.Add("name", missingField)
	}
	if payload.Symbol == "" {
		verrs.Add("symbol", missingField)
	}
	r.token.Name = payload.Name
	r.token.Symbol = payload.Symbol
	r.token.Coingecko = payload.Coingecko
	r.token.Cryptocompare = payload.Cryptocompare

	if payload.Started != "" {
		started := parseTimestamp(&verrs, "started", payload.Started, false, 0)
		r.token.Started = &started
	}

	r.parseUnderlyingTokens(&verrs, payload)
	return verrs.OrNil()
}

func (r *EthereumTokenRequest) parseUnderlyingTokens(verrs *validation.Errors, payload tokenPayload) {
	if payload.UnderlyingTokens == nil {
		return
	}
	if len(payload.UnderlyingTokens) == 0 {
		verrs.Addf(
			"underlying_tokens",
			"gave an empty list for underlying tokens of %s. If you need to specify no underlying tokens give a null value",
			payload.Address,
		)
		return
	}

	weightSum := decimal.Zero
	underlying := make([]types.UnderlyingToken, 0, len(payload.UnderlyingTokens))
	for _, entry := range payload.UnderlyingTokens {
		token := types.UnderlyingToken{}
		if entry.Address == "" {
			verrs.Add("underlying_tokens", missingField)
		} else if address, err := ethereum.ChecksumAddress(entry.Address); err != nil {
			verrs.AddErr("underlying_tokens", err)
		} else {
			token.Address = address
		}

		weight, err := types.ParsePercentage(string(entry.Weight))
		if err != nil {
			verrs.AddErr("underlying_tokens", err)
		} else {
			token.Weight = weight
			weightSum = weightSum.Add(weight)
		}
		underlying = append(underlying, token)
	}

	if weightSum.Cmp(hundredPercent) > 0 {
		verrs.Addf(
			"underlying_tokens",
			"the sum of underlying token weights for %s is %s and exceeds 100%%",
			payload.Address, weightSum.Mul(decimal.NewFromInt(100)).String(),
		)
	}
	r.token.UnderlyingTokens = underlying
}

// CustomToken returns the validated token record.
func (r *EthereumTokenRequest) CustomToken() types.CustomToken { return r.token }

// EthereumTokenQuery identifies a custom token by its address, for GET and
// DELETE.
type EthereumTokenQuery struct {
	Address string `json:"address" query:"address"`

	address string
}

func (q *EthereumTokenQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	if q.Address == "" {
		verrs.Add("address", missingField)
	} else if address, err := ethereum.ChecksumAddress(q.Address); err != nil {
		verrs.AddErr("address", err)
	} else {
		q.address = address
	}
	return verrs.OrNil()
}

// ChecksummedAddress returns the normalized token address.
func (q *EthereumTokenQuery) ChecksummedAddress() string { return q.address }

// QueriedAddressRequest adds or removes an address from the per-module
// queried addresses map.
type QueriedAddressRequest struct {
	Module  string `json:"module"`
	Address string `json:"address"`

	address string
}

func (r *QueriedAddressRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Module == "" {
		verrs.Add("module", missingField)
	} else if _, ok := types.AvailableModules[r.Module]; !ok {
		verrs.Addf("module", "%s is not a valid module", r.Module)
	}
	if r.Address == "" {
		verrs.Add("address", missingField)
	} else if address, err := ethereum.ChecksumAddress(r.Address); err != nil {
		verrs.AddErr("address", err)
	} else {
		r.address = address
	}
	return verrs.OrNil()
}

// ChecksummedAddress returns the normalized address.
func (r *QueriedAddressRequest) ChecksummedAddress() string { return r.address }

// EthereumTransactionQuery filters ethereum transactions by an optional
// address and time range.
type EthereumTransactionQuery struct {
	TimeRange
	Address    string `json:"address" query:"address"`
	AsyncQuery bool   `json:"async_query" query:"async_query"`
	OnlyCache  bool   `json:"only_cache" query:"only_cache"`

	address string
}

func (q *EthereumTransactionQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	q.parse(&verrs)
	if q.Address != "" {
		address, err := ethereum.ChecksumAddress(q.Address)
		if err != nil {
			verrs.AddErr("address", err)
		}
		q.address = address
	}
	return verrs.OrNil()
}

// AddressFilter returns the normalized address filter, empty when
// unfiltered.
func (q *EthereumTransactionQuery) AddressFilter() string { return q.address }

// EthereumTokenGetQuery optionally narrows the custom token listing to one
// address.
type EthereumTokenGetQuery struct {
	Address string `json:"address" query:"address"`

	address string
}

func (q *EthereumTokenGetQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	if q.Address != "" {
		address, err := ethereum.ChecksumAddress(q.Address)
		if err != nil {
			verrs.AddErr("address", err)
		}
		q.address = address
	}
	return verrs.OrNil()
}

// ChecksummedAddress returns the normalized filter address, empty when
// listing all tokens.
func (q *EthereumTokenGetQuery) ChecksummedAddress() string { return q.address }
