package types

import "fmt"

// LedgerActionType categorizes a manually recorded income/expense event
// for accounting purposes.
type LedgerActionType string

const (
	LedgerActionIncome           LedgerActionType = "income"
	LedgerActionExpense          LedgerActionType = "expense"
	LedgerActionLoss             LedgerActionType = "loss"
	LedgerActionDividendsIncome  LedgerActionType = "dividends income"
	LedgerActionDonationReceived LedgerActionType = "donation received"
	LedgerActionAirdrop          LedgerActionType = "airdrop"
	LedgerActionGift             LedgerActionType = "gift"
	LedgerActionGrant            LedgerActionType = "grant"
)

var ledgerActionTypes = map[string]LedgerActionType{
	"income":            LedgerActionIncome,
	"expense":           LedgerActionExpense,
	"loss":              LedgerActionLoss,
	"dividends income":  LedgerActionDividendsIncome,
	"donation received": LedgerActionDonationReceived,
	"airdrop":           LedgerActionAirdrop,
	"gift":              LedgerActionGift,
	"grant":             LedgerActionGrant,
}

// ParseLedgerActionType maps a string to its LedgerActionType value.
func ParseLedgerActionType(value string) (LedgerActionType, error) {
	if t, ok := ledgerActionTypes[value]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown ledger action type %s found", value)
}

func (t LedgerActionType) String() string {
	return string(t)
}

// IsProfitable reports whether the action type counts as taxable profit.
func (t LedgerActionType) IsProfitable() bool {
	switch t {
	case LedgerActionIncome,
		LedgerActionDividendsIncome,
		LedgerActionDonationReceived,
		LedgerActionAirdrop,
		LedgerActionGift,
		LedgerActionGrant:
		return true
	}
	return false
}

// ActionType is the kind of user action that can be put on the ignore list.
type ActionType string

const (
	ActionTrade         ActionType = "trade"
	ActionAssetMovement ActionType = "asset movement"
	ActionEthereumTx    ActionType = "ethereum transaction"
	ActionLedgerAction  ActionType = "ledger action"
)

var actionTypes = map[string]ActionType{
	"trade":                ActionTrade,
	"asset movement":       ActionAssetMovement,
	"ethereum transaction": ActionEthereumTx,
	"ledger action":        ActionLedgerAction,
}

// ParseActionType maps a string to its ActionType value.
func ParseActionType(value string) (ActionType, error) {
	if t, ok := actionTypes[value]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown action type %s found", value)
}

func (t ActionType) String() string {
	return string(t)
}

// LedgerAction is an income/loss/expense entry recorded by the user.
type LedgerAction struct {
	Identifier int64            `json:"identifier"`
	Timestamp  Timestamp        `json:"timestamp"`
	ActionType LedgerActionType `json:"action_type"`
	Location   Location         `json:"location"`
	Amount     AssetAmount      `json:"amount"`
	Asset      Asset            `json:"asset"`
	Link       string           `json:"link"`
	Notes      string           `json:"notes"`
}

// Serialize returns the canonical JSON mapping of a ledger action, with all
// amounts as exact decimal strings.
func (a LedgerAction) Serialize() map[string]any {
	return map[string]any{
		"identifier":  a.Identifier,
		"timestamp":   a.Timestamp,
		"action_type": a.ActionType.String(),
		"location":    a.Location.String(),
		"amount":      a.Amount.String(),
		"asset":       a.Asset.Identifier,
		"link":        a.Link,
		"notes":       a.Notes,
	}
}
