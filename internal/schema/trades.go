package schema

import (
	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// TradeRequest is the payload for creating a trade.
type TradeRequest struct {
	Timestamp   Str    `json:"timestamp"`
	Location    string `json:"location"`
	Pair        string `json:"pair"`
	TradeType   string `json:"trade_type"`
	Amount      Str    `json:"amount"`
	Rate        Str    `json:"rate"`
	Fee         Str    `json:"fee"`
	FeeCurrency string `json:"fee_currency"`
	Link        string `json:"link"`
	Notes       string `json:"notes"`

	trade types.Trade
}

func (r *TradeRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors

	r.trade = types.Trade{
		Timestamp:   parseTimestamp(&verrs, "timestamp", r.Timestamp, true, 0),
		Location:    parseLocation(&verrs, "location", r.Location, true),
		Amount:      parsePositiveAmount(&verrs, "amount", r.Amount, true),
		Rate:        parsePrice(&verrs, "rate", r.Rate, true),
		Fee:         parseFee(&verrs, "fee", r.Fee, true),
		FeeCurrency: parseAsset(deps, &verrs, "fee_currency", r.FeeCurrency, true),
		Link:        r.Link,
		Notes:       r.Notes,
	}

	if r.Pair == "" {
		verrs.Add("pair", missingField)
	} else if pair, err := types.ParseTradePair(r.Pair); err != nil {
		verrs.AddErr("pair", err)
	} else {
		r.trade.Pair = pair
	}

	if r.TradeType == "" {
		verrs.Add("trade_type", missingField)
	} else if tradeType, err := types.ParseTradeType(r.TradeType); err != nil {
		verrs.AddErr("trade_type", err)
	} else {
		r.trade.TradeType = tradeType
	}

	return verrs.OrNil()
}

// Trade returns the domain trade assembled from the validated fields.
func (r *TradeRequest) Trade() types.Trade {
	return r.trade
}

// TradePatchRequest edits an existing trade, addressed by its id.
type TradePatchRequest struct {
	TradeRequest
	TradeID string `json:"trade_id"`
}

func (r *TradePatchRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	if r.TradeID == "" {
		verrs.Add("trade_id", missingField)
	}
	if err := r.TradeRequest.Validate(deps); err != nil {
		verrs = append(verrs, err.(validation.Errors)...)
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}
	r.trade.TradeID = r.TradeID
	return nil
}

// TradeDeleteRequest deletes a trade by id.
type TradeDeleteRequest struct {
	TradeID string `json:"trade_id"`
}

func (r *TradeDeleteRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.TradeID == "" {
		verrs.Add("trade_id", missingField)
	}
	return verrs.OrNil()
}
