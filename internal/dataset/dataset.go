// Package dataset holds the immutable in-memory country dataset.
//
// The dataset ships inside the binary (go:embed) and is parsed once at
// startup. After Load returns, the store is read-only: it can be shared
// across concurrent request handlers without any locking.
package dataset

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// The dataset is compiled into the binary so the service has no runtime
// filesystem dependency, same as embedded SQL assets in other services.
//
//go:embed countries.json
var countriesJSON []byte

// Country describes one nation/territory served by the API.
//
// Code is the ISO 3166-1 alpha-2 identifier and is unique across the
// dataset. Capital, currency, and population are pass-through descriptive
// data.
type Country struct {
	Code       string `json:"code" validate:"required,len=2,alpha"`
	Name       string `json:"name" validate:"required"`
	Capital    string `json:"capital" validate:"required"`
	Region     string `json:"region" validate:"required"`
	Currency   string `json:"currency" validate:"required"`
	Population int64  `json:"population" validate:"required"`
}

// ErrCountryNotFound is returned by ByCode when no country matches the
// requested code. It is a legitimate absence, not a fault; callers translate
// it into a 404.
var ErrCountryNotFound = errors.New("country not found")

// Store is the immutable collection of country records.
//
// countries keeps dataset order so listing endpoints are deterministic.
// byCode indexes into countries by uppercase ISO code. regions keeps the
// distinct region values in first-seen order.
type Store struct {
	countries []Country
	byCode    map[string]int
	regions   []string
}

// Load parses the embedded dataset and builds the store.
//
// Every record is validated (required fields, two-letter alpha code) and
// codes are normalized to uppercase before indexing. Load fails on an empty
// dataset or a duplicate code; a process that cannot load its reference data
// must not start serving.
func Load() (*Store, error) {
	var countries []Country
	if err := json.Unmarshal(countriesJSON, &countries); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded country dataset")
	}

	if len(countries) == 0 {
		return nil, errors.New("embedded country dataset is empty")
	}

	validate := validator.New()

	store := &Store{
		countries: countries,
		byCode:    make(map[string]int, len(countries)),
	}

	seenRegions := make(map[string]bool)

	for i := range store.countries {
		country := &store.countries[i]
		country.Code = strings.ToUpper(country.Code)

		if err := validate.Struct(country); err != nil {
			return nil, errors.Wrapf(err, "invalid country record at index %d", i)
		}

		if _, exists := store.byCode[country.Code]; exists {
			return nil, errors.Errorf("duplicate country code %s in dataset", country.Code)
		}
		store.byCode[country.Code] = i

		if !seenRegions[country.Region] {
			seenRegions[country.Region] = true
			store.regions = append(store.regions, country.Region)
		}
	}

	return store, nil
}

// All returns every country record in dataset order.
//
// The returned slice is a copy; mutating it does not affect the store.
func (s *Store) All() []Country {
	out := make([]Country, len(s.countries))
	copy(out, s.countries)
	return out
}

// ByCode looks up a country by its ISO alpha-2 code.
//
// The lookup is case-insensitive: codes are stored uppercase and the input
// is uppercased before matching, mirroring how clients commonly send "us"
// and "US" interchangeably. Returns ErrCountryNotFound when absent.
func (s *Store) ByCode(code string) (Country, error) {
	i, ok := s.byCode[strings.ToUpper(code)]
	if !ok {
		return Country{}, ErrCountryNotFound
	}
	return s.countries[i], nil
}

// Regions returns the distinct region values in first-seen dataset order,
// each appearing exactly once.
func (s *Store) Regions() []string {
	out := make([]string, len(s.regions))
	copy(out, s.regions)
	return out
}

// ByRegion returns every country whose region exactly matches region, in
// dataset order. Unknown regions yield an empty slice, never an error.
func (s *Store) ByRegion(region string) []Country {
	out := make([]Country, 0)
	for _, country := range s.countries {
		if country.Region == region {
			out = append(out, country)
		}
	}
	return out
}

// Len reports the number of country records in the store.
func (s *Store) Len() int {
	return len(s.countries)
}
