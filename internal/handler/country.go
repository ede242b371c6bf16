package handler

import (
	"net/http"

	"github.com/deppfellow/countries-api/internal/dataset"
	"github.com/deppfellow/countries-api/internal/server"
	"github.com/deppfellow/countries-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ListCountriesRequest is the (empty) payload for GET /countries.
type ListCountriesRequest struct{}

func (r *ListCountriesRequest) Validate() error { return nil }

// GetCountryRequest carries the path parameter for GET /countries/:code.
type GetCountryRequest struct {
	Code string `param:"code" validate:"required"`
}

func (r *GetCountryRequest) Validate() error {
	return validate.Struct(r)
}

// ListRegionsRequest is the (empty) payload for GET /regions.
type ListRegionsRequest struct{}

func (r *ListRegionsRequest) Validate() error { return nil }

// CountriesByRegionRequest carries the path parameter for
// GET /countries/region/:region.
type CountriesByRegionRequest struct {
	Region string `param:"region" validate:"required"`
}

func (r *CountriesByRegionRequest) Validate() error {
	return validate.Struct(r)
}

// CountryHandler serves the read-only country and region endpoints.
//
// The exported fields are the route-ready echo.HandlerFuncs produced by the
// generic pipeline; the lowercase methods hold the endpoint logic.
type CountryHandler struct {
	Handler
	service *service.CountryService

	ListCountries     echo.HandlerFunc
	GetCountry        echo.HandlerFunc
	ListRegions       echo.HandlerFunc
	CountriesByRegion echo.HandlerFunc
}

// NewCountryHandler constructs a CountryHandler and wires its endpoints
// through the shared pipeline.
func NewCountryHandler(s *server.Server, services *service.Services) *CountryHandler {
	h := &CountryHandler{
		Handler: NewHandler(s),
		service: services.Country,
	}

	h.ListCountries = Handle(h.Handler, h.listCountries, http.StatusOK,
		func() *ListCountriesRequest { return &ListCountriesRequest{} })
	h.GetCountry = Handle(h.Handler, h.getCountry, http.StatusOK,
		func() *GetCountryRequest { return &GetCountryRequest{} })
	h.ListRegions = Handle(h.Handler, h.listRegions, http.StatusOK,
		func() *ListRegionsRequest { return &ListRegionsRequest{} })
	h.CountriesByRegion = Handle(h.Handler, h.countriesByRegion, http.StatusOK,
		func() *CountriesByRegionRequest { return &CountriesByRegionRequest{} })

	return h
}

// listCountries returns every country in the dataset.
func (h *CountryHandler) listCountries(c echo.Context, req *ListCountriesRequest) ([]dataset.Country, error) {
	return h.service.ListCountries(c.Request().Context()), nil
}

// getCountry returns the country matching the :code path parameter, or a 404
// error when the code is unknown.
func (h *CountryHandler) getCountry(c echo.Context, req *GetCountryRequest) (dataset.Country, error) {
	return h.service.GetCountry(c.Request().Context(), req.Code)
}

// listRegions returns the distinct region names.
func (h *CountryHandler) listRegions(c echo.Context, req *ListRegionsRequest) ([]string, error) {
	return h.service.ListRegions(c.Request().Context()), nil
}

// countriesByRegion returns the countries in the :region path parameter.
// A region with no members yields an empty array, not a 404.
func (h *CountryHandler) countriesByRegion(c echo.Context, req *CountriesByRegionRequest) ([]dataset.Country, error) {
	return h.service.CountriesByRegion(c.Request().Context(), req.Region), nil
}
