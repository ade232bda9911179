package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chainfolio/chainfolio/internal/schema"
	"github.com/chainfolio/chainfolio/internal/types"
)

// ExchangesResource lists, registers and unregisters exchanges.
type ExchangesResource struct{ Handler }

func (r *ExchangesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().Exchanges(), nil
	})
}

func (r *ExchangesResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ExchangeSetupRequest) (any, error) {
		return r.API().RegisterExchange(
			req.Name,
			types.APIKey(req.APIKey),
			types.APISecret(req.APISecret),
			req.Passphrase,
			req.AccountType(),
		)
	})
}

func (r *ExchangesResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ExchangeRemoveRequest) (any, error) {
		return r.API().DeregisterExchange(req.Name)
	})
}

// ExchangeDataResource purges the cached data of one exchange, or of all
// of them when no name is given.
type ExchangeDataResource struct{ Handler }

func (r *ExchangeDataResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ExchangeDataQuery) (any, error) {
		return r.API().PurgeExchangeData(req.Name)
	})
}

// ExternalServicesResource manages third-party service credentials.
type ExternalServicesResource struct{ Handler }

func (r *ExternalServicesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().ExternalServices(), nil
	})
}

func (r *ExternalServicesResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ExternalServicesPutRequest) (any, error) {
		return r.API().SetExternalServices(req.Credentials()), nil
	})
}

func (r *ExternalServicesResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ExternalServicesDeleteRequest) (any, error) {
		return r.API().DeleteExternalServices(req.ServiceNames()), nil
	})
}

// TagsResource is the CRUD surface of user tags.
type TagsResource struct{ Handler }

func (r *TagsResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().Tags(), nil
	})
}

func (r *TagsResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.TagRequest) (any, error) {
		return r.API().AddTag(req.Tag())
	})
}

func (r *TagsResource) Patch() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.TagEditRequest) (any, error) {
		return r.API().EditTag(req.Name, req.Description, req.Background(), req.Foreground())
	})
}

func (r *TagsResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.TagDeleteRequest) (any, error) {
		return r.API().DeleteTag(req.Name)
	})
}
