package router

import (
	"github.com/deppfellow/countries-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerCountryRoutes registers the reference-data endpoints.
//
// The static "region" segment in /countries/region/:region never collides
// with /countries/:code because Echo matches on segment count first.
func registerCountryRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/countries", h.Country.ListCountries)
	r.GET("/countries/:code", h.Country.GetCountry)
	r.GET("/countries/region/:region", h.Country.CountriesByRegion)
	r.GET("/regions", h.Country.ListRegions)
}
