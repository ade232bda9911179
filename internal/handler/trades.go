package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/chainfolio/chainfolio/internal/schema"
)

// TradesResource is the CRUD surface of recorded trades.
type TradesResource struct{ Handler }

func (r *TradesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.TimerangeLocationQuery) (any, error) {
		api := r.API()
		from, to, location := req.From(), req.To(), req.LocationFilter()
		if req.AsyncQuery {
			return api.SpawnTask("query_trades", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.Trades(from, to, location), nil
			})), nil
		}
		return api.Trades(from, to, location), nil
	})
}

func (r *TradesResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.TradeRequest) (any, error) {
		return r.API().AddTrade(req.Trade()), nil
	})
}

func (r *TradesResource) Patch() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.TradePatchRequest) (any, error) {
		return r.API().EditTrade(req.Trade())
	})
}

func (r *TradesResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.TradeDeleteRequest) (any, error) {
		return r.API().DeleteTrade(req.TradeID)
	})
}

// LedgerActionsResource is the CRUD surface of ledger actions.
type LedgerActionsResource struct{ Handler }

func (r *LedgerActionsResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.TimerangeLocationQuery) (any, error) {
		api := r.API()
		from, to, location := req.From(), req.To(), req.LocationFilter()
		if req.AsyncQuery {
			return api.SpawnTask("query_ledger_actions", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.LedgerActions(from, to, location), nil
			})), nil
		}
		return api.LedgerActions(from, to, location), nil
	})
}

func (r *LedgerActionsResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.LedgerActionRequest) (any, error) {
		return r.API().AddLedgerAction(req.Action()), nil
	})
}

func (r *LedgerActionsResource) Patch() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.LedgerActionEditRequest) (any, error) {
		return r.API().EditLedgerAction(req.EditedAction())
	})
}

func (r *LedgerActionsResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.LedgerActionDeleteRequest) (any, error) {
		return r.API().DeleteLedgerAction(*req.Identifier)
	})
}

// IgnoredActionsResource manages the per-type ignore lists of actions.
type IgnoredActionsResource struct{ Handler }

func (r *IgnoredActionsResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.IgnoredActionsGetRequest) (any, error) {
		return r.API().IgnoredActions(req.Type()), nil
	})
}

func (r *IgnoredActionsResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.IgnoredActionsModifyRequest) (any, error) {
		return r.API().IgnoreActions(req.Type(), req.ActionIDs)
	})
}

func (r *IgnoredActionsResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.IgnoredActionsModifyRequest) (any, error) {
		return r.API().UnignoreActions(req.Type(), req.ActionIDs)
	})
}

// HistoryProcessingResource runs the profit/loss history processing over a
// time range.
type HistoryProcessingResource struct{ Handler }

func (r *HistoryProcessingResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.HistoryQuery) (any, error) {
		api := r.API()
		from, to := req.From(), req.To()
		if req.AsyncQuery {
			return api.SpawnTask("process_history", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.ProcessHistory(from, to), nil
			})), nil
		}
		return api.ProcessHistory(from, to), nil
	})
}

// HistoryExportingResource writes the processed history CSVs to disk.
type HistoryExportingResource struct{ Handler }

func (r *HistoryExportingResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.HistoryExportQuery) (any, error) {
		return r.API().ExportHistory(req.DirectoryPath), nil
	})
}

// DataImportResource imports trade history from exported CSV files.
type DataImportResource struct{ Handler }

func (r *DataImportResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.DataImportRequest) (any, error) {
		return r.API().ImportData(req.Source, req.Filename())
	})
}
