package schema

import (
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// externalServiceEntry pairs a service name with its API key.
type externalServiceEntry struct {
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}

// ExternalServicesPutRequest stores credentials for third-party services.
type ExternalServicesPutRequest struct {
	Services []externalServiceEntry `json:"services"`

	credentials []types.ExternalServiceCredentials
}

func (r *ExternalServicesPutRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if len(r.Services) == 0 {
		verrs.Add("services", missingField)
	}
	r.credentials = make([]types.ExternalServiceCredentials, 0, len(r.Services))
	for _, entry := range r.Services {
		service, err := types.ParseExternalService(entry.Name)
		if err != nil {
			verrs.AddErr("services", err)
			continue
		}
		if entry.APIKey == "" {
			verrs.Add("api_key", missingField)
			continue
		}
		r.credentials = append(r.credentials, types.ExternalServiceCredentials{
			Service: service,
			APIKey:  entry.APIKey,
		})
	}
	return verrs.OrNil()
}

// Credentials returns the validated service credentials.
func (r *ExternalServicesPutRequest) Credentials() []types.ExternalServiceCredentials {
	return r.credentials
}

// ExternalServicesDeleteRequest removes stored credentials by service name.
type ExternalServicesDeleteRequest struct {
	Services []string `json:"services"`

	services []types.ExternalService
}

func (r *ExternalServicesDeleteRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if len(r.Services) == 0 {
		verrs.Add("services", missingField)
	}
	r.services = make([]types.ExternalService, 0, len(r.Services))
	for _, name := range r.Services {
		service, err := types.ParseExternalService(name)
		if err != nil {
			verrs.AddErr("services", err)
			continue
		}
		r.services = append(r.services, service)
	}
	return verrs.OrNil()
}

// ServiceNames returns the validated services slated for removal.
func (r *ExternalServicesDeleteRequest) ServiceNames() []types.ExternalService {
	return r.services
}

// ExchangeSetupRequest registers an exchange with its API credentials.
type ExchangeSetupRequest struct {
	Name              string `json:"name"`
	APIKey            string `json:"api_key"`
	APISecret         string `json:"api_secret"`
	Passphrase        string `json:"passphrase"`
	KrakenAccountType string `json:"kraken_account_type"`

	krakenAccountType types.KrakenAccountType
}

func (r *ExchangeSetupRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Name == "" {
		verrs.Add("name", missingField)
	} else if !types.IsSupportedExchange(r.Name) {
		verrs.Addf("name", "unrecognized exchange %s provided", r.Name)
	}
	if r.APIKey == "" {
		verrs.Add("api_key", missingField)
	}
	if r.APISecret == "" {
		verrs.Add("api_secret", missingField)
	}
	if r.KrakenAccountType != "" {
		accountType, err := types.ParseKrakenAccountType(r.KrakenAccountType)
		if err != nil {
			verrs.AddErr("kraken_account_type", err)
		}
		r.krakenAccountType = accountType
	}
	return verrs.OrNil()
}

// AccountType returns the validated kraken account type, empty when unset.
func (r *ExchangeSetupRequest) AccountType() types.KrakenAccountType {
	return r.krakenAccountType
}

// ExchangeRemoveRequest unregisters an exchange by name.
type ExchangeRemoveRequest struct {
	Name string `json:"name"`
}

func (r *ExchangeRemoveRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Name == "" {
		verrs.Add("name", missingField)
	} else if !types.IsSupportedExchange(r.Name) {
		verrs.Addf("name", "unrecognized exchange %s provided", r.Name)
	}
	return verrs.OrNil()
}

// ExchangeDataQuery scopes an exchange data purge. An empty name targets
// every registered exchange.
type ExchangeDataQuery struct {
	Name string `param:"location"`
}

func (q *ExchangeDataQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	if q.Name != "" && !types.IsSupportedExchange(q.Name) {
		verrs.Addf("name", "unrecognized exchange %s provided", q.Name)
	}
	return verrs.OrNil()
}

// ExchangeRatesQuery asks for the fiat exchange rates of the given
// currencies. The list binds from a JSON array or a comma-delimited query
// string.
type ExchangeRatesQuery struct {
	AsyncQueryArgs
	Currencies StrList `json:"currencies" query:"currencies"`

	currencies []types.Asset
}

func (q *ExchangeRatesQuery) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	if len(q.Currencies) == 0 {
		verrs.Add("currencies", missingField)
	}
	q.currencies = make([]types.Asset, 0, len(q.Currencies))
	for _, identifier := range q.Currencies {
		asset := parseAsset(deps, &verrs, "currencies", identifier, true)
		q.currencies = append(q.currencies, asset)
	}
	return verrs.OrNil()
}

// Assets returns the resolved currencies.
func (q *ExchangeRatesQuery) Assets() []types.Asset { return q.currencies }

// CurrentAssetsPriceQuery asks for the current price of the given assets in
// the target asset.
type CurrentAssetsPriceQuery struct {
	AsyncQueryArgs
	Assets      StrList `json:"assets" query:"assets"`
	TargetAsset string  `json:"target_asset" query:"target_asset"`
	IgnoreCache bool    `json:"ignore_cache" query:"ignore_cache"`

	assets []types.Asset
	target types.Asset
}

func (q *CurrentAssetsPriceQuery) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	if len(q.Assets) == 0 {
		verrs.Add("assets", missingField)
	}
	q.assets = make([]types.Asset, 0, len(q.Assets))
	for _, identifier := range q.Assets {
		q.assets = append(q.assets, parseAsset(deps, &verrs, "assets", identifier, true))
	}
	q.target = parseAsset(deps, &verrs, "target_asset", q.TargetAsset, true)
	return verrs.OrNil()
}

// QueriedAssets returns the resolved assets to price.
func (q *CurrentAssetsPriceQuery) QueriedAssets() []types.Asset { return q.assets }

// Target returns the resolved target asset.
func (q *CurrentAssetsPriceQuery) Target() types.Asset { return q.target }

// assetTimestampPair is one (asset, timestamp) entry of a historical price
// query.
type assetTimestampPair struct {
	Asset     string `json:"asset"`
	Timestamp Str    `json:"timestamp"`
}

// HistoricalAssetsPriceQuery asks for prices of asset/timestamp pairs in
// the target asset.
type HistoricalAssetsPriceQuery struct {
	AsyncQueryArgs
	AssetsTimestamp []assetTimestampPair `json:"assets_timestamp"`
	TargetAsset     string               `json:"target_asset"`

	pairs  []HistoricalPricePair
	target types.Asset
}

// HistoricalPricePair is a resolved asset plus the moment to price it at.
type HistoricalPricePair struct {
	Asset     types.Asset
	Timestamp types.Timestamp
}

func (q *HistoricalAssetsPriceQuery) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	if len(q.AssetsTimestamp) == 0 {
		verrs.Add("assets_timestamp", missingField)
	}
	q.pairs = make([]HistoricalPricePair, 0, len(q.AssetsTimestamp))
	for _, entry := range q.AssetsTimestamp {
		q.pairs = append(q.pairs, HistoricalPricePair{
			Asset:     parseAsset(deps, &verrs, "assets_timestamp", entry.Asset, true),
			Timestamp: parseTimestamp(&verrs, "assets_timestamp", entry.Timestamp, true, 0),
		})
	}
	q.target = parseAsset(deps, &verrs, "target_asset", q.TargetAsset, true)
	return verrs.OrNil()
}

// Pairs returns the resolved asset/timestamp pairs.
func (q *HistoricalAssetsPriceQuery) Pairs() []HistoricalPricePair { return q.pairs }

// Target returns the resolved target asset.
func (q *HistoricalAssetsPriceQuery) Target() types.Asset { return q.target }

// IgnoredAssetsModifyRequest adds or removes assets on the ignore list.
type IgnoredAssetsModifyRequest struct {
	Assets []string `json:"assets"`

	assets []types.Asset
}

func (r *IgnoredAssetsModifyRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	if len(r.Assets) == 0 {
		verrs.Add("assets", missingField)
	}
	r.assets = make([]types.Asset, 0, len(r.Assets))
	for _, identifier := range r.Assets {
		r.assets = append(r.assets, parseAsset(deps, &verrs, "assets", identifier, true))
	}
	return verrs.OrNil()
}

// IgnoredAssets returns the resolved assets.
func (r *IgnoredAssetsModifyRequest) IgnoredAssets() []types.Asset { return r.assets }

// OracleCacheCreateRequest creates the historical price cache of one
// oracle for an asset pair.
type OracleCacheCreateRequest struct {
	AsyncQueryArgs
	Oracle    string `param:"oracle"`
	FromAsset string `json:"from_asset"`
	ToAsset   string `json:"to_asset"`
	PurgeOld  bool   `json:"purge_old"`

	oracle types.HistoricalPriceOracle
	from   types.Asset
	to     types.Asset
}

func (r *OracleCacheCreateRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	oracle, err := types.ParseHistoricalPriceOracle(r.Oracle)
	if err != nil {
		verrs.AddErr("oracle", err)
	}
	r.oracle = oracle
	r.from = parseAsset(deps, &verrs, "from_asset", r.FromAsset, true)
	r.to = parseAsset(deps, &verrs, "to_asset", r.ToAsset, true)
	return verrs.OrNil()
}

// OracleName returns the validated oracle.
func (r *OracleCacheCreateRequest) OracleName() types.HistoricalPriceOracle { return r.oracle }

// FromTo returns the resolved asset pair.
func (r *OracleCacheCreateRequest) FromTo() (types.Asset, types.Asset) { return r.from, r.to }

// OracleCacheDeleteRequest drops the cache of one oracle for an asset pair.
type OracleCacheDeleteRequest struct {
	Oracle    string `param:"oracle"`
	FromAsset string `json:"from_asset"`
	ToAsset   string `json:"to_asset"`

	oracle types.HistoricalPriceOracle
	from   types.Asset
	to     types.Asset
}

func (r *OracleCacheDeleteRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	oracle, err := types.ParseHistoricalPriceOracle(r.Oracle)
	if err != nil {
		verrs.AddErr("oracle", err)
	}
	r.oracle = oracle
	r.from = parseAsset(deps, &verrs, "from_asset", r.FromAsset, true)
	r.to = parseAsset(deps, &verrs, "to_asset", r.ToAsset, true)
	return verrs.OrNil()
}

// OracleName returns the validated oracle.
func (r *OracleCacheDeleteRequest) OracleName() types.HistoricalPriceOracle { return r.oracle }

// FromTo returns the resolved asset pair.
func (r *OracleCacheDeleteRequest) FromTo() (types.Asset, types.Asset) { return r.from, r.to }

// OracleCacheGetQuery lists the cached pairs of one oracle.
type OracleCacheGetQuery struct {
	AsyncQueryArgs
	Oracle string `param:"oracle"`

	oracle types.HistoricalPriceOracle
}

func (q *OracleCacheGetQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	oracle, err := types.ParseHistoricalPriceOracle(q.Oracle)
	if err != nil {
		verrs.AddErr("oracle", err)
	}
	q.oracle = oracle
	return verrs.OrNil()
}

// OracleName returns the validated oracle.
func (q *OracleCacheGetQuery) OracleName() types.HistoricalPriceOracle { return q.oracle }

// dataImportSources are the accepted upstream formats of the import
// endpoint.
var dataImportSources = map[string]struct{}{
	"cointracking.info": {},
	"crypto.com":        {},
}

// DataImportRequest imports trade history from an exported CSV file. The
// file arrives either as a filesystem path or as a multipart upload under
// the same field name.
type DataImportRequest struct {
	Source   string `json:"source" form:"source"`
	Filepath string `json:"filepath"`

	upload *multipart.FileHeader
}

// BindFile picks up a multipart upload when the request carries one. A
// plain JSON request has no multipart form and binds nothing here.
func (r *DataImportRequest) BindFile(c echo.Context) error {
	header, err := c.FormFile("filepath")
	if err != nil {
		return nil
	}
	r.upload = header
	return nil
}

func (r *DataImportRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Source == "" {
		verrs.Add("source", missingField)
	} else if _, ok := dataImportSources[r.Source]; !ok {
		verrs.Addf("source", "unknown data import source %s", r.Source)
	}
	if r.upload != nil {
		checkFileSuffix(&verrs, "filepath", r.upload.Filename, ".csv")
	} else {
		checkFilepath(&verrs, "filepath", r.Filepath, ".csv")
	}
	return verrs.OrNil()
}

// Filename returns the name of the file to import, whichever way it was
// supplied.
func (r *DataImportRequest) Filename() string {
	if r.upload != nil {
		return r.upload.Filename
	}
	return r.Filepath
}

// AssetIconsQuery fetches the icon of one asset at a given size.
type AssetIconsQuery struct {
	Asset string `param:"asset"`
	Size  string `json:"size" query:"size"`

	asset types.Asset
}

func (q *AssetIconsQuery) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	q.asset = parseAsset(deps, &verrs, "asset", q.Asset, true)
	switch q.Size {
	case "", "thumb", "small", "large":
	default:
		verrs.Addf("size", "size must be one of thumb, small or large but got %s", q.Size)
	}
	return verrs.OrNil()
}

// QueriedAsset returns the resolved asset.
func (q *AssetIconsQuery) QueriedAsset() types.Asset { return q.asset }

// iconSuffixes are the accepted icon image extensions.
var iconSuffixes = []string{".png", ".svg", ".jpeg", ".jpg", ".webp"}

// AssetIconUploadRequest sets a custom icon for an asset, either from a
// local file path or from a multipart upload.
type AssetIconUploadRequest struct {
	Asset string `json:"asset" form:"asset"`
	File  string `json:"file"`

	asset   types.Asset
	upload  *multipart.FileHeader
	content []byte
}

// BindFile reads a multipart icon upload into memory. Requests without a
// multipart form fall back to the path field.
func (r *AssetIconUploadRequest) BindFile(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return nil
	}
	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	r.upload = header
	r.content = content
	return nil
}

func (r *AssetIconUploadRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	r.asset = parseAsset(deps, &verrs, "asset", r.Asset, true)
	if r.upload != nil {
		checkFileSuffix(&verrs, "file", r.upload.Filename, iconSuffixes...)
	} else {
		checkFilepath(&verrs, "file", r.File, iconSuffixes...)
	}
	return verrs.OrNil()
}

// UploadedAsset returns the resolved asset.
func (r *AssetIconUploadRequest) UploadedAsset() types.Asset { return r.asset }

// Filename returns the icon's file name, whichever way it was supplied.
func (r *AssetIconUploadRequest) Filename() string {
	if r.upload != nil {
		return r.upload.Filename
	}
	return r.File
}

// Content returns the uploaded icon bytes, or nil when the icon was given
// as a path.
func (r *AssetIconUploadRequest) Content() []byte { return r.content }

// HistoryExportQuery writes the processed history CSVs into a directory.
type HistoryExportQuery struct {
	DirectoryPath string `json:"directory_path" query:"directory_path"`
}

func (q *HistoryExportQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	checkDirectory(&verrs, "directory_path", q.DirectoryPath)
	return verrs.OrNil()
}
