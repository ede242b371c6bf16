package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/countries-api/internal/config"
	"github.com/deppfellow/countries-api/internal/dataset"
	"github.com/deppfellow/countries-api/internal/handler"
	"github.com/deppfellow/countries-api/internal/middleware"
	"github.com/deppfellow/countries-api/internal/server"
	"github.com/deppfellow/countries-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full application against the real embedded dataset
// so requests exercise the same path they do in production.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        5,
			WriteTimeout:       10,
			IdleTimeout:        120,
			CORSAllowedOrigins: []string{"*"},
		},
		Logging: config.DefaultLoggingConfig(),
	}

	store, err := dataset.Load()
	require.NoError(t, err)

	log := zerolog.Nop()
	srv := server.New(cfg, &log, store)
	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	return New(handlers, middlewares)
}

func doRequest(t *testing.T, e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListCountries(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/countries")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	var countries []dataset.Country
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &countries))
	assert.NotEmpty(t, countries)

	// code is unique across the listing.
	seen := make(map[string]bool, len(countries))
	for _, c := range countries {
		assert.False(t, seen[c.Code])
		seen[c.Code] = true
	}
}

func TestGetCountryByCode(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/countries/US")

	assert.Equal(t, http.StatusOK, rec.Code)

	var country dataset.Country
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &country))
	assert.Equal(t, "US", country.Code)
	assert.Equal(t, "United States", country.Name)
	assert.Equal(t, "North America", country.Region)
}

func TestGetCountryLowercaseCode(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/countries/us")

	assert.Equal(t, http.StatusOK, rec.Code)

	var country dataset.Country
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &country))
	assert.Equal(t, "US", country.Code)
}

func TestGetCountryUnknownCode(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/countries/ZZ")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Contains(t, body["error"], "ZZ")
}

func TestListRegions(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/regions")

	assert.Equal(t, http.StatusOK, rec.Code)

	var regions []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &regions))
	assert.Contains(t, regions, "Europe")

	seen := make(map[string]bool, len(regions))
	for _, r := range regions {
		assert.False(t, seen[r], "duplicate region %s", r)
		seen[r] = true
	}
}

func TestCountriesByRegion(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/countries/region/Europe")

	assert.Equal(t, http.StatusOK, rec.Code)

	var countries []dataset.Country
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &countries))
	assert.NotEmpty(t, countries)
	for _, c := range countries {
		assert.Equal(t, "Europe", c.Region)
	}
}

func TestCountriesByUnknownRegionIsEmptyArray(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/countries/region/Atlantis")

	// Empty region is a 200 with an empty array, never a 404.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUnknownRouteIsJSONNotFound(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Route not found", body["error"])
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/status")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
}

func TestResponsesCarryRequestID(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/countries")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	// An incoming request ID is echoed back unchanged.
	req := httptest.NewRequest(http.MethodGet, "/countries", nil)
	req.Header.Set(middleware.RequestIDHeader, "test-correlation-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "test-correlation-id", rec.Header().Get(middleware.RequestIDHeader))
}
