package handler

import (
	"github.com/chainfolio/chainfolio/internal/server"
)

// Handlers aggregates every resource of the API so the router can wire
// them with a single dependency.
type Handlers struct {
	Ping            *PingResource
	Version         *VersionResource
	Messages        *MessagesResource
	Tasks           *TasksResource
	TaskOutcome     *TaskOutcomeResource
	PeriodicData    *PeriodicDataResource
	Users           *UsersResource
	UsersByName     *UsersByNameResource
	UserPassword    *UserPasswordChangeResource
	UserPremiumKey  *UserPremiumKeyResource
	Settings        *SettingsResource
	Trades          *TradesResource
	LedgerActions   *LedgerActionsResource
	IgnoredActions  *IgnoredActionsResource
	History         *HistoryProcessingResource
	HistoryExport   *HistoryExportingResource
	DataImport      *DataImportResource
	AllBalances     *AllBalancesResource
	ChainBalances   *BlockchainBalancesResource
	ExchBalances    *ExchangeBalancesResource
	ManualBalances  *ManuallyTrackedBalancesResource
	StatsNetvalue   *StatisticsNetvalueResource
	StatsBalance    *StatisticsAssetBalanceResource
	StatsValueDist  *StatisticsValueDistributionResource
	StatsRenderer   *StatisticsRendererResource
	ChainAccounts   *BlockchainAccountsResource
	BtcXpub         *BtcXpubResource
	QueriedAddrs    *QueriedAddressesResource
	EthTransactions *EthereumTransactionsResource
	AllAssets       *AllAssetsResource
	IgnoredAssets   *IgnoredAssetsResource
	EthereumAssets  *EthereumAssetsResource
	AssetIcons      *AssetIconsResource
	AssetIconUpload *AssetIconUploadResource
	ExchangeRates   *ExchangeRatesResource
	CurrentPrices   *CurrentAssetsPriceResource
	HistoricalPrice *HistoricalAssetsPriceResource
	OracleCache     *NamedOracleCacheResource
	Oracles         *OraclesResource
	Exchanges       *ExchangesResource
	ExchangeData    *ExchangeDataResource
	ExternalSvcs    *ExternalServicesResource
	Tags            *TagsResource
}

// NewHandlers builds every resource around the shared base handler.
func NewHandlers(s *server.Server) *Handlers {
	h := NewHandler(s)
	return &Handlers{
		Ping:            &PingResource{h},
		Version:         &VersionResource{h},
		Messages:        &MessagesResource{h},
		Tasks:           &TasksResource{h},
		TaskOutcome:     &TaskOutcomeResource{h},
		PeriodicData:    &PeriodicDataResource{h},
		Users:           &UsersResource{h},
		UsersByName:     &UsersByNameResource{h},
		UserPassword:    &UserPasswordChangeResource{h},
		UserPremiumKey:  &UserPremiumKeyResource{h},
		Settings:        &SettingsResource{h},
		Trades:          &TradesResource{h},
		LedgerActions:   &LedgerActionsResource{h},
		IgnoredActions:  &IgnoredActionsResource{h},
		History:         &HistoryProcessingResource{h},
		HistoryExport:   &HistoryExportingResource{h},
		DataImport:      &DataImportResource{h},
		AllBalances:     &AllBalancesResource{h},
		ChainBalances:   &BlockchainBalancesResource{h},
		ExchBalances:    &ExchangeBalancesResource{h},
		ManualBalances:  &ManuallyTrackedBalancesResource{h},
		StatsNetvalue:   &StatisticsNetvalueResource{h},
		StatsBalance:    &StatisticsAssetBalanceResource{h},
		StatsValueDist:  &StatisticsValueDistributionResource{h},
		StatsRenderer:   &StatisticsRendererResource{h},
		ChainAccounts:   &BlockchainAccountsResource{h},
		BtcXpub:         &BtcXpubResource{h},
		QueriedAddrs:    &QueriedAddressesResource{h},
		EthTransactions: &EthereumTransactionsResource{h},
		AllAssets:       &AllAssetsResource{h},
		IgnoredAssets:   &IgnoredAssetsResource{h},
		EthereumAssets:  &EthereumAssetsResource{h},
		AssetIcons:      &AssetIconsResource{h},
		AssetIconUpload: &AssetIconUploadResource{h},
		ExchangeRates:   &ExchangeRatesResource{h},
		CurrentPrices:   &CurrentAssetsPriceResource{h},
		HistoricalPrice: &HistoricalAssetsPriceResource{h},
		OracleCache:     &NamedOracleCacheResource{h},
		Oracles:         &OraclesResource{h},
		Exchanges:       &ExchangesResource{h},
		ExchangeData:    &ExchangeDataResource{h},
		ExternalSvcs:    &ExternalServicesResource{h},
		Tags:            &TagsResource{h},
	}
}
