package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhive/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NotEmpty(t, cat.Services())

	_, ok := cat.Get(FallbackServiceID)
	assert.True(t, ok, "fallback service must exist")
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]models.ServiceDefinition{
		{ID: "dup", Label: "A"},
		{ID: "dup", Label: "B"},
		{ID: FallbackServiceID, Label: "Other"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate service id")
}

func TestNewRejectsInvertedEstimateRange(t *testing.T) {
	_, err := New([]models.ServiceDefinition{
		{ID: "bad", Label: "Bad", EstimateHoursMin: 3, EstimateHoursMax: 1},
		{ID: FallbackServiceID, Label: "Other"},
	})
	require.Error(t, err)
}

func TestNewRejectsRegulatedWithoutCredential(t *testing.T) {
	_, err := New([]models.ServiceDefinition{
		{ID: "reg", Label: "Regulated", Regulated: true},
		{ID: FallbackServiceID, Label: "Other"},
	})
	require.Error(t, err)
}

func TestNewRequiresFallbackService(t *testing.T) {
	_, err := New([]models.ServiceDefinition{
		{ID: "only", Label: "Only"},
	})
	require.Error(t, err)
}

func TestNewRejectsSelectWithoutOptions(t *testing.T) {
	_, err := New([]models.ServiceDefinition{
		{ID: "svc", Label: "Svc", Followups: []models.FollowupQuestion{
			{ID: "q1", Prompt: "Pick one", Kind: models.FollowupSelect},
		}},
		{ID: FallbackServiceID, Label: "Other"},
	})
	require.Error(t, err)
}

func TestFollowupsFallBackForUnknownService(t *testing.T) {
	cat := Default()

	unknown := cat.Followups("no_such_service")
	fallback := cat.Followups(FallbackServiceID)
	assert.Equal(t, fallback, unknown)
}

func TestGetUnknownService(t *testing.T) {
	cat := Default()
	_, ok := cat.Get("no_such_service")
	assert.False(t, ok)
}
