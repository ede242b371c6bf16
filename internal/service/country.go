package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/countries-api/internal/dataset"
	"github.com/deppfellow/countries-api/internal/errs"
	"github.com/deppfellow/countries-api/internal/server"
	"github.com/pkg/errors"
)

// CountryService answers country and region queries against the dataset
// store.
//
// All operations are total reads of immutable process memory: they never
// block and are safe under any degree of concurrency. The ctx parameters
// exist for interface consistency with services that do I/O.
type CountryService struct {
	server *server.Server
}

// NewCountryService creates a CountryService backed by the server's dataset
// store.
func NewCountryService(s *server.Server) *CountryService {
	return &CountryService{server: s}
}

// ListCountries returns every country record in dataset order.
func (s *CountryService) ListCountries(ctx context.Context) []dataset.Country {
	return s.server.Store.All()
}

// GetCountry returns the country matching the given ISO alpha-2 code
// (case-insensitive). An unknown code yields a 404 HTTPError.
func (s *CountryService) GetCountry(ctx context.Context, code string) (dataset.Country, error) {
	country, err := s.server.Store.ByCode(code)
	if err != nil {
		if errors.Is(err, dataset.ErrCountryNotFound) {
			return dataset.Country{}, errs.NewNotFoundError(fmt.Sprintf("Country with code %s not found", strings.ToUpper(code)))
		}
		return dataset.Country{}, err
	}
	return country, nil
}

// ListRegions returns the distinct region names in dataset order.
func (s *CountryService) ListRegions(ctx context.Context) []string {
	return s.server.Store.Regions()
}

// CountriesByRegion returns the countries whose region exactly matches the
// given name. A region with no members yields an empty slice, not an error.
func (s *CountryService) CountriesByRegion(ctx context.Context, region string) []dataset.Country {
	return s.server.Store.ByRegion(region)
}
