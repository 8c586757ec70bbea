package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhive/models"
)

func TestClassifyKeywordMatches(t *testing.T) {
	cat := Default()

	cases := []struct {
		query string
		want  string
	}{
		{"need to assemble my new IKEA bed frame", "bed_assembly"},
		{"I bought a bed frame from IKEA, can you put it together", "bed_assembly"},
		{"need someone to assemble a wardrobe and a desk", "furniture_assembly"},
		{"deep clean my house before guests arrive", "home_cleaning"},
		{"my refrigerator is broken and needs repair", "appliance_repair"},
		{"cockroach infestation in the kitchen", "pest_control"},
		{"my car needs an oil change", "other"},
		{"", "other"},
		{"zzzzz qqqq", "other"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cat.Classify(tc.query), "query %q", tc.query)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	cat := Default()
	assert.Equal(t, cat.Classify("ASSEMBLE MY WARDROBE"), cat.Classify("assemble my wardrobe"))
}

func TestClassifyTieBreaksByCatalogOrder(t *testing.T) {
	cat, err := New([]models.ServiceDefinition{
		{ID: "first", Label: "First", Keywords: []string{"widget"}},
		{ID: "second", Label: "Second", Keywords: []string{"widget"}},
		{ID: FallbackServiceID, Label: "Other"},
	})
	require.NoError(t, err)

	// Both score 1; the earlier declaration wins.
	assert.Equal(t, "first", cat.Classify("fix my widget"))
}

func TestClassifyHighestCountWins(t *testing.T) {
	cat, err := New([]models.ServiceDefinition{
		{ID: "one", Label: "One", Keywords: []string{"alpha"}},
		{ID: "two", Label: "Two", Keywords: []string{"beta", "gamma"}},
		{ID: FallbackServiceID, Label: "Other"},
	})
	require.NoError(t, err)

	assert.Equal(t, "two", cat.Classify("beta and gamma but also alpha"))
}
