package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/middleware"
	"github.com/chainfolio/chainfolio/internal/server"
)

func newGlobalHandler() *middleware.GlobalMiddlewares {
	return middleware.NewGlobalMiddlewares(&server.Server{})
}

func serve(t *testing.T, handlerErr error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = newGlobalHandler().GlobalErrorHandler
	e.GET("/boom", func(echo.Context) error { return handlerErr })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return rec
}

func TestGlobalErrorHandlerHTTPError(t *testing.T) {
	rec := serve(t, errs.NewConflictError("user alice already exists"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"result": null, "message": "user alice already exists"}`, rec.Body.String())
}

func TestGlobalErrorHandlerWrappedHTTPError(t *testing.T) {
	wrapped := errors.Wrap(errs.NewNotFoundError("No task with id 7 found"), "task lookup")
	rec := serve(t, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"result": null, "message": "No task with id 7 found"}`, rec.Body.String())
}

func TestGlobalErrorHandlerUnknownRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = newGlobalHandler().GlobalErrorHandler

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/path", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"result": null, "message": "invalid endpoint"}`, rec.Body.String())
}

func TestGlobalErrorHandlerUnhandledError(t *testing.T) {
	rec := serve(t, errors.New("database exploded"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"result": null, "message": "database exploded"}`, rec.Body.String())
}

func TestRecoverTurnsPanicsIntoEnvelopes(t *testing.T) {
	gm := newGlobalHandler()

	e := echo.New()
	e.HTTPErrorHandler = gm.GlobalErrorHandler
	e.Use(gm.Recover())
	e.GET("/panic", func(echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body["result"])
	assert.NotEmpty(t, body["message"])
}
