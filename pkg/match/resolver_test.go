package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastromap/gastromap-backend/pkg/match"
)

func newResolver() *match.Resolver {
	return match.NewResolver(match.DefaultThresholds())
}

func TestFindMatch_SamePhoneOverridesEverything(t *testing.T) {
	candidate := match.Candidate{Name: "Plov Center", Phone: "+998 71 200-50-50", Latitude: 41.3, Longitude: 69.2}
	existing := []match.Candidate{
		{ID: 7, Name: "Совершенно другое место", Phone: "998712005050", Latitude: 41.35, Longitude: 69.25},
	}

	m, ok := newResolver().FindMatch(candidate, existing)
	require.True(t, ok)
	assert.Equal(t, uint(7), m.ID)
	assert.Equal(t, match.ReasonSamePhone, m.Reason)
}

func TestFindMatch_SameSpotIgnoresNames(t *testing.T) {
	// 15m apart with dissimilar scripts still matches: same physical spot.
	candidate := match.Candidate{Name: "La Pizzeria", Latitude: 41.31108, Longitude: 69.24056}
	existing := []match.Candidate{
		{ID: 3, Name: "Ля Пиццерия", Latitude: 41.31118, Longitude: 69.24066},
	}

	m, ok := newResolver().FindMatch(candidate, existing)
	require.True(t, ok)
	assert.Equal(t, uint(3), m.ID)
	assert.Equal(t, match.ReasonSameSpot, m.Reason)
}

func TestFindMatch_LooseDistanceNeedsVerySimilarName(t *testing.T) {
	resolver := newResolver()
	// ~80m north.
	candidate := match.Candidate{Name: "Plov Center", Latitude: 41.31180, Longitude: 69.24056}
	existing := []match.Candidate{
		{ID: 5, Name: "Plov Center", Latitude: 41.31108, Longitude: 69.24056},
	}

	m, ok := resolver.FindMatch(candidate, existing)
	require.True(t, ok)
	assert.Equal(t, uint(5), m.ID)
	assert.Equal(t, match.ReasonCloseMatched, m.Reason)

	// ~120m is past the loose threshold even with identical names.
	candidate.Latitude = 41.31216
	_, ok = resolver.FindMatch(candidate, existing)
	assert.False(t, ok)
}

func TestFindMatch_MissingCoordinatesDisablesDistanceRules(t *testing.T) {
	candidate := match.Candidate{Name: "Plov Center"}
	existing := []match.Candidate{
		{ID: 2, Name: "Plov Center", Latitude: 41.31108, Longitude: 69.24056},
	}

	_, ok := newResolver().FindMatch(candidate, existing)
	assert.False(t, ok)

	// A shared phone still matches without coordinates.
	candidate.Phone = "200-50-50"
	existing[0].Phone = "2005050"
	m, ok := newResolver().FindMatch(candidate, existing)
	assert.True(t, ok)
	assert.Equal(t, match.ReasonSamePhone, m.Reason)
}

func TestFindMatch_PicksNearestOfSeveral(t *testing.T) {
	candidate := match.Candidate{Name: "Plov Center", Latitude: 41.31108, Longitude: 69.24056}
	existing := []match.Candidate{
		{ID: 11, Name: "Plov Center", Latitude: 41.31160, Longitude: 69.24056}, // ~58m
		{ID: 12, Name: "Plov Center", Latitude: 41.31118, Longitude: 69.24056}, // ~11m
		{ID: 13, Name: "Plov Center", Latitude: 41.31130, Longitude: 69.24056}, // ~24m
	}

	m, ok := newResolver().FindMatch(candidate, existing)
	require.True(t, ok)
	assert.Equal(t, uint(12), m.ID)
}

func TestFindMatch_SkipsSelf(t *testing.T) {
	candidate := match.Candidate{ID: 4, Name: "Plov Center", Latitude: 41.31108, Longitude: 69.24056}
	existing := []match.Candidate{
		{ID: 4, Name: "Plov Center", Latitude: 41.31108, Longitude: 69.24056},
	}

	_, ok := newResolver().FindMatch(candidate, existing)
	assert.False(t, ok)
}

func TestDescribe_ReadableReasons(t *testing.T) {
	m := match.Match{Distance: 12.4, Similarity: 0.62, Reason: match.ReasonNearSimilar}
	assert.Equal(t, "similar names (62%) 12m apart", m.Describe(""))

	m.Reason = match.ReasonSamePhone
	assert.Equal(t, "same phone number: +998712005050", m.Describe("+998712005050"))
}
