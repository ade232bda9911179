package schema

import (
	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// LedgerActionRequest is the payload for recording a ledger action.
type LedgerActionRequest struct {
	Timestamp  Str    `json:"timestamp"`
	ActionType string `json:"action_type"`
	Location   string `json:"location"`
	Amount     Str    `json:"amount"`
	Asset      string `json:"asset"`
	Link       string `json:"link"`
	Notes      string `json:"notes"`

	action types.LedgerAction
}

func (r *LedgerActionRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors

	r.action = types.LedgerAction{
		Timestamp: parseTimestamp(&verrs, "timestamp", r.Timestamp, true, 0),
		Location:  parseLocation(&verrs, "location", r.Location, true),
		Amount:    parseAmount(&verrs, "amount", r.Amount, true),
		Asset:     parseAsset(deps, &verrs, "asset", r.Asset, true),
		Link:      r.Link,
		Notes:     r.Notes,
	}

	if r.ActionType == "" {
		verrs.Add("action_type", missingField)
	} else if actionType, err := types.ParseLedgerActionType(r.ActionType); err != nil {
		verrs.AddErr("action_type", err)
	} else {
		r.action.ActionType = actionType
	}

	return verrs.OrNil()
}

// Action returns the domain ledger action assembled from the validated
// fields.
func (r *LedgerActionRequest) Action() types.LedgerAction {
	return r.action
}

// LedgerActionEditRequest wraps a full action, including its identifier,
// for editing.
type LedgerActionEditRequest struct {
	Action struct {
		LedgerActionRequest
		Identifier *int64 `json:"identifier"`
	} `json:"action"`
}

func (r *LedgerActionEditRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	if r.Action.Identifier == nil {
		verrs.Add("identifier", missingField)
	}
	if err := r.Action.LedgerActionRequest.Validate(deps); err != nil {
		verrs = append(verrs, err.(validation.Errors)...)
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}
	r.Action.action.Identifier = *r.Action.Identifier
	return nil
}

// EditedAction returns the domain ledger action with its identifier set.
func (r *LedgerActionEditRequest) EditedAction() types.LedgerAction {
	return r.Action.action
}

// LedgerActionDeleteRequest deletes a ledger action by identifier.
type LedgerActionDeleteRequest struct {
	Identifier *int64 `json:"identifier"`
}

func (r *LedgerActionDeleteRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Identifier == nil {
		verrs.Add("identifier", missingField)
	}
	return verrs.OrNil()
}

// IgnoredActionsGetRequest filters the ignored action list by an optional
// action type.
type IgnoredActionsGetRequest struct {
	ActionType string `json:"action_type" query:"action_type"`

	actionType types.ActionType
}

func (r *IgnoredActionsGetRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.ActionType != "" {
		actionType, err := types.ParseActionType(r.ActionType)
		if err != nil {
			verrs.AddErr("action_type", err)
		}
		r.actionType = actionType
	}
	return verrs.OrNil()
}

// Type returns the validated filter, empty when unfiltered.
func (r *IgnoredActionsGetRequest) Type() types.ActionType { return r.actionType }

// IgnoredActionsModifyRequest adds or removes identifiers on the ignore
// list of one action type.
type IgnoredActionsModifyRequest struct {
	ActionType string   `json:"action_type"`
	ActionIDs  []string `json:"action_ids"`

	actionType types.ActionType
}

func (r *IgnoredActionsModifyRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.ActionType == "" {
		verrs.Add("action_type", missingField)
	} else if actionType, err := types.ParseActionType(r.ActionType); err != nil {
		verrs.AddErr("action_type", err)
	} else {
		r.actionType = actionType
	}
	if len(r.ActionIDs) == 0 {
		verrs.Add("action_ids", missingField)
	}
	return verrs.OrNil()
}

// Type returns the validated action type.
func (r *IgnoredActionsModifyRequest) Type() types.ActionType { return r.actionType }
