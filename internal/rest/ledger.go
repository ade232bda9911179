package rest

import (
	"fmt"
	"sort"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/types"
)

// LedgerActions returns the recorded ledger actions inside a time range,
// optionally filtered by location.
func (a *API) LedgerActions(from, to types.Timestamp, location types.Location) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := make([]map[string]any, 0)
	for _, action := range a.ledgerActions {
		if action.Timestamp < from || action.Timestamp > to {
			continue
		}
		if location != "" && action.Location != location {
			continue
		}
		result = append(result, action.Serialize())
	}
	return OkResult(result)
}

// AddLedgerAction records a ledger action and returns its new identifier.
func (a *API) AddLedgerAction(action types.LedgerAction) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.nextActionID++
	action.Identifier = a.nextActionID
	a.ledgerActions = append(a.ledgerActions, action)
	return OkResult(map[string]any{"identifier": action.Identifier})
}

// EditLedgerAction replaces the action with the given identifier and
// returns the full remaining list.
func (a *API) EditLedgerAction(action types.LedgerAction) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.ledgerActions {
		if a.ledgerActions[i].Identifier == action.Identifier {
			a.ledgerActions[i] = action
			return OkResult(a.serializeActionsLocked()), nil
		}
	}
	return nil, errs.NewConflictError(
		fmt.Sprintf("could not find ledger action with identifier %d to edit", action.Identifier),
	)
}

// DeleteLedgerAction removes the action with the given identifier and
// returns the full remaining list.
func (a *API) DeleteLedgerAction(identifier int64) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.ledgerActions {
		if a.ledgerActions[i].Identifier == identifier {
			a.ledgerActions = append(a.ledgerActions[:i], a.ledgerActions[i+1:]...)
			return OkResult(a.serializeActionsLocked()), nil
		}
	}
	return nil, errs.NewConflictError(
		fmt.Sprintf("could not find ledger action with identifier %d to delete", identifier),
	)
}

func (a *API) serializeActionsLocked() []map[string]any {
	result := make([]map[string]any, 0, len(a.ledgerActions))
	for _, action := range a.ledgerActions {
		result = append(result, action.Serialize())
	}
	return result
}

// IgnoredActions returns the ignored action identifiers, for all action
// types or one of them.
func (a *API) IgnoredActions(actionType types.ActionType) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := make(map[string][]string)
	for t, ids := range a.ignoredActions {
		if actionType != "" && t != actionType {
			continue
		}
		result[t.String()] = sortedIDs(ids)
	}
	return OkResult(result)
}

// IgnoreActions adds identifiers to the ignore list of one action type.
// Already ignored identifiers are rejected.
func (a *API) IgnoreActions(actionType types.ActionType, ids []string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ignored := a.ignoredActions[actionType]
	if ignored == nil {
		ignored = make(map[string]struct{})
		a.ignoredActions[actionType] = ignored
	}
	for _, id := range ids {
		if _, ok := ignored[id]; ok {
			return nil, errs.NewConflictError(
				fmt.Sprintf("action with identifier %s is already ignored", id),
			)
		}
	}
	for _, id := range ids {
		ignored[id] = struct{}{}
	}
	return OkResult(map[string][]string{
		actionType.String(): sortedIDs(ignored),
	}), nil
}

// UnignoreActions removes identifiers from the ignore list of one action
// type. Identifiers that are not ignored are rejected.
func (a *API) UnignoreActions(actionType types.ActionType, ids []string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ignored := a.ignoredActions[actionType]
	for _, id := range ids {
		if _, ok := ignored[id]; !ok {
			return nil, errs.NewConflictError(
				fmt.Sprintf("action with identifier %s is not on the ignored list", id),
			)
		}
	}
	for _, id := range ids {
		delete(ignored, id)
	}
	return OkResult(map[string][]string{
		actionType.String(): sortedIDs(ignored),
	}), nil
}

func sortedIDs(ids map[string]struct{}) []string {
	result := make([]string, 0, len(ids))
	for id := range ids {
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}
