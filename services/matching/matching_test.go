package matching

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhive/config"
	"taskhive/models"
	"taskhive/services/catalog"
)

func newTestMatcher(dir ProviderDirectory) *DefaultMatchingService {
	return &DefaultMatchingService{
		Catalog:   catalog.Default(),
		Directory: dir,
		Weights: config.MatchWeights{
			Rating:      0.35,
			Reliability: 0.25,
			Completion:  0.25,
			Proximity:   0.15,
		},
		DefaultCompletionRate: 0.8,
	}
}

// Midtown Manhattan, within every default provider's radius.
var midtown = models.LatLng{Lat: 40.7506, Lng: -73.9972}

func TestMatchRanksBestProviderFirst(t *testing.T) {
	svc := newTestMatcher(DefaultDirectory())

	ranked, err := svc.Match("furniture_assembly", midtown, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "p1", ranked[0].Provider.ID)
	assert.Equal(t, "p2", ranked[1].Provider.ID)
	assert.True(t, ranked[0].Preferred)
	assert.False(t, ranked[1].Preferred)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestMatchUnknownService(t *testing.T) {
	svc := newTestMatcher(DefaultDirectory())

	ranked, err := svc.Match("no_such_service", midtown, 0)
	require.Error(t, err)

	var unknownErr *UnknownServiceError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "no_such_service", unknownErr.ServiceID)
	assert.Empty(t, ranked)
}

func TestMatchOutsideServiceRadius(t *testing.T) {
	svc := newTestMatcher(DefaultDirectory())

	// Los Angeles is thousands of km from every NYC provider.
	ranked, err := svc.Match("furniture_assembly", models.LatLng{Lat: 34.05, Lng: -118.24}, 0)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestMatchRegulatedServiceRequiresCredential(t *testing.T) {
	svc := newTestMatcher(DefaultDirectory())

	ranked, err := svc.Match("pest_control", midtown, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "p5", ranked[0].Provider.ID)
	for _, r := range ranked {
		assert.NotEqual(t, "p6", r.Provider.ID, "unlicensed provider must never be returned")
	}
}

func TestMatchSkillFilter(t *testing.T) {
	svc := newTestMatcher(DefaultDirectory())

	ranked, err := svc.Match("home_cleaning", midtown, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "p3", ranked[0].Provider.ID)
}

func TestMatchLimit(t *testing.T) {
	svc := newTestMatcher(DefaultDirectory())

	ranked, err := svc.Match("furniture_assembly", midtown, 1)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "p1", ranked[0].Provider.ID)
	assert.True(t, ranked[0].Preferred)
}

func TestMatchIsDeterministic(t *testing.T) {
	svc := newTestMatcher(DefaultDirectory())

	first, err := svc.Match("furniture_assembly", midtown, 0)
	require.NoError(t, err)
	second, err := svc.Match("furniture_assembly", midtown, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMatchTieBreaksByJobsDoneThenID(t *testing.T) {
	// Identical scores: same rating, reliability, completion, and location.
	base := models.Provider{
		SkillTags:       []string{"cleaning"},
		AvgRating:       4.5,
		Location:        midtown,
		ServiceRadiusKm: 20,
		Reliability:     0.9,
	}
	a := base
	a.ID = "a"
	a.Stats = map[string]models.SkillStats{"cleaning": {JobsDone: 10, CompletionRate: 0.9}}
	b := base
	b.ID = "b"
	b.Stats = map[string]models.SkillStats{"cleaning": {JobsDone: 50, CompletionRate: 0.9}}
	c := base
	c.ID = "c"
	c.Stats = map[string]models.SkillStats{"cleaning": {JobsDone: 50, CompletionRate: 0.9}}

	svc := newTestMatcher(NewStaticDirectory([]models.Provider{c, a, b}))

	ranked, err := svc.Match("home_cleaning", midtown, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	// More jobs done wins; equal jobs fall back to lexicographic id.
	assert.Equal(t, "b", ranked[0].Provider.ID)
	assert.Equal(t, "c", ranked[1].Provider.ID)
	assert.Equal(t, "a", ranked[2].Provider.ID)
}

func TestMatchUsesDefaultCompletionRateWithoutStats(t *testing.T) {
	p := models.Provider{
		ID:              "nostats",
		SkillTags:       []string{"cleaning"},
		AvgRating:       5,
		Location:        midtown,
		ServiceRadiusKm: 20,
		Reliability:     1,
	}
	svc := newTestMatcher(NewStaticDirectory([]models.Provider{p}))

	ranked, err := svc.Match("home_cleaning", midtown, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 1)

	// 0.35*1 + 0.25*1 + 0.25*0.8 + 0.15*(1-0/20)
	assert.InDelta(t, 0.95, ranked[0].Score, 1e-9)
}

func TestHaversine(t *testing.T) {
	// NYC to LA is roughly 3940 km.
	d := haversine(40.7128, -74.006, 34.0522, -118.2437)
	assert.InDelta(t, 3940, d, 50)

	assert.InDelta(t, 0, haversine(40.75, -73.99, 40.75, -73.99), 1e-9)
}
