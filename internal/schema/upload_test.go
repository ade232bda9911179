package schema_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/schema"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// multipartContext builds an echo context carrying a multipart form with
// the given fields plus one file part.
func multipartContext(t *testing.T, fields map[string]string, fileField, filename string, content []byte) echo.Context {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	part, err := writer.CreateFormFile(fileField, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func jsonContext(t *testing.T, payload string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAssetIconUploadMultipart(t *testing.T) {
	icon := []byte("png bytes")
	c := multipartContext(t, map[string]string{"asset": "BTC"}, "file", "icon.png", icon)

	var req schema.AssetIconUploadRequest
	require.NoError(t, validation.BindAndValidate(c, &req, deps()))
	assert.Equal(t, "BTC", req.UploadedAsset().Identifier)
	assert.Equal(t, "icon.png", req.Filename())
	assert.Equal(t, icon, req.Content())
}

func TestAssetIconUploadMultipartRejectsExtension(t *testing.T) {
	c := multipartContext(t, map[string]string{"asset": "BTC"}, "file", "icon.gif", []byte("gif"))

	var req schema.AssetIconUploadRequest
	err := validation.BindAndValidate(c, &req, deps())
	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"Given file icon.gif does not end in any of .png,.svg,.jpeg,.jpg,.webp")
}

func TestAssetIconUploadPathFallback(t *testing.T) {
	// Without a multipart form the icon comes from the filesystem path.
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, []byte("png bytes"), 0o600))

	c := jsonContext(t, `{"asset": "BTC", "file": "`+path+`"}`)

	var req schema.AssetIconUploadRequest
	require.NoError(t, validation.BindAndValidate(c, &req, deps()))
	assert.Equal(t, path, req.Filename())
	assert.Nil(t, req.Content())
}

func TestDataImportMultipart(t *testing.T) {
	fields := map[string]string{"source": "cointracking.info"}
	c := multipartContext(t, fields, "filepath", "trades.csv", []byte("a,b,c"))

	var req schema.DataImportRequest
	require.NoError(t, validation.BindAndValidate(c, &req, deps()))
	assert.Equal(t, "cointracking.info", req.Source)
	assert.Equal(t, "trades.csv", req.Filename())
}

func TestDataImportMultipartRejectsExtension(t *testing.T) {
	fields := map[string]string{"source": "crypto.com"}
	c := multipartContext(t, fields, "filepath", "trades.txt", []byte("a,b,c"))

	var req schema.DataImportRequest
	err := validation.BindAndValidate(c, &req, deps())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Given file trades.txt does not end in any of .csv")
}
