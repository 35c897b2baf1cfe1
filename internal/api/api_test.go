package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec(t *testing.T) {
	doc, err := api.LoadSpec()
	require.NoError(t, err)

	for _, path := range []string{
		"/",
		"/health",
		"/payments/create",
		"/payments/confirm",
		"/payments/status/{token}",
		"/payments/refund",
		"/payment/callback",
		"/notifications",
		"/mensajePago/{id}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	assert.True(t, doc.Paths.Find("/mensajePago/{id}").Get.Deprecated)
}

func TestDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	for _, path := range []string{"/openapi.json", "/swagger/doc.json"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var doc map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
			assert.Contains(t, doc, "paths")
		})
	}
}
