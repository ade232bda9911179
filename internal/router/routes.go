package router

import (
	"github.com/chainfolio/chainfolio/internal/handler"
)

// apiRoutes is the full route table of API version 1. Paths registered on
// both a bare and a parameterized form (exchange balances, blockchain
// balances) share one resource; the payload treats the absent parameter as
// "all".
func apiRoutes(h *handler.Handlers) []route {
	return append(systemRoutes(h), []route{
		{"users", "/users", h.Users},
		{"users_by_name", "/users/:name", h.UsersByName},
		{"user_password_change", "/users/:name/password", h.UserPassword},
		{"user_premium_key", "/users/:name/premium", h.UserPremiumKey},
		{"settings", "/settings", h.Settings},

		{"exchanges", "/exchanges", h.Exchanges},
		{"exchange_rates", "/exchange_rates", h.ExchangeRates},
		{"exchange_balances", "/exchanges/balances", h.ExchBalances},
		{"named_exchange_balances", "/exchanges/balances/:location", h.ExchBalances},
		{"exchange_data", "/exchanges/data", h.ExchangeData},
		{"named_exchange_data", "/exchanges/data/:location", h.ExchangeData},
		{"external_services", "/external_services", h.ExternalSvcs},

		{"all_balances", "/balances", h.AllBalances},
		{"blockchain_balances", "/balances/blockchains", h.ChainBalances},
		{"named_blockchain_balances", "/balances/blockchains/:blockchain", h.ChainBalances},
		{"manually_tracked_balances", "/balances/manual", h.ManualBalances},

		{"trades", "/trades", h.Trades},
		{"ledger_actions", "/ledgeractions", h.LedgerActions},
		{"ignored_actions", "/actions/ignored", h.IgnoredActions},
		{"history_processing", "/history", h.History},
		{"history_export", "/history/export", h.HistoryExport},
		{"data_import", "/import", h.DataImport},

		{"statistics_netvalue", "/statistics/netvalue", h.StatsNetvalue},
		{"statistics_asset_balance", "/statistics/balance/:asset", h.StatsBalance},
		{"statistics_value_distribution", "/statistics/value_distribution", h.StatsValueDist},
		{"statistics_renderer", "/statistics/renderer", h.StatsRenderer},

		{"blockchain_accounts", "/blockchains/:blockchain", h.ChainAccounts},
		{"btc_xpub", "/blockchains/BTC/xpub", h.BtcXpub},
		{"queried_addresses", "/queried_addresses", h.QueriedAddrs},
		{"ethereum_transactions", "/blockchains/ETH/transactions", h.EthTransactions},

		{"all_assets", "/assets/all", h.AllAssets},
		{"ignored_assets", "/assets/ignored", h.IgnoredAssets},
		{"ethereum_assets", "/assets/ethereum", h.EthereumAssets},
		{"asset_icons", "/assets/:asset/icon", h.AssetIcons},
		{"asset_icon_upload", "/assets/icon", h.AssetIconUpload},

		{"current_assets_price", "/assets/prices/current", h.CurrentPrices},
		{"historical_assets_price", "/assets/prices/historical", h.HistoricalPrice},
		{"oracles", "/oracles", h.Oracles},
		{"named_oracle_cache", "/oracles/:oracle/cache", h.OracleCache},

		{"tags", "/tags", h.Tags},
	}...)
}
