package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)
	require.NotNil(t, store)

	assert.Greater(t, store.Len(), 0)
	assert.NotEmpty(t, store.Regions())
}

func TestAllCodesAreUnique(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	all := store.All()
	seen := make(map[string]bool, len(all))
	for _, country := range all {
		assert.False(t, seen[country.Code], "duplicate code %s", country.Code)
		seen[country.Code] = true
	}

	// All() length equals the number of distinct codes.
	assert.Equal(t, store.Len(), len(seen))
}

func TestByCodeRoundTrip(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	// Every record is retrievable by its own code and comes back unchanged.
	for _, want := range store.All() {
		got, err := store.ByCode(want.Code)
		require.NoError(t, err, "code %s", want.Code)
		assert.Equal(t, want, got)
	}
}

func TestByCodeIsCaseInsensitive(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	upper, err := store.ByCode("US")
	require.NoError(t, err)

	lower, err := store.ByCode("us")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.Equal(t, "US", lower.Code)
}

func TestByCodeUnknown(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	_, err = store.ByCode("ZZ")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestRegionsAreDistinct(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	regions := store.Regions()
	seen := make(map[string]bool, len(regions))
	for _, region := range regions {
		assert.False(t, seen[region], "duplicate region %s", region)
		seen[region] = true
	}

	// Every listed region belongs to at least one country, and every
	// country's region is listed.
	for _, country := range store.All() {
		assert.True(t, seen[country.Region], "region %s of %s missing from Regions()", country.Region, country.Code)
	}
	for _, region := range regions {
		assert.NotEmpty(t, store.ByRegion(region), "region %s has no members", region)
	}
}

func TestByRegionMatchesFilterOfAll(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	for _, region := range store.Regions() {
		var want []Country
		for _, country := range store.All() {
			if country.Region == region {
				want = append(want, country)
			}
		}
		assert.Equal(t, want, store.ByRegion(region), "region %s", region)
	}
}

func TestByRegionUnknownIsEmptyNotError(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	got := store.ByRegion("Atlantis")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGettersAreIdempotent(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	assert.Equal(t, store.All(), store.All())
	assert.Equal(t, store.Regions(), store.Regions())

	first, err := store.ByCode("DE")
	require.NoError(t, err)
	second, err := store.ByCode("DE")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	all := store.All()
	original := all[0]
	all[0].Name = "mutated"

	fresh := store.All()
	assert.Equal(t, original, fresh[0])

	regions := store.Regions()
	regions[0] = "mutated"
	assert.NotEqual(t, "mutated", store.Regions()[0])
}
