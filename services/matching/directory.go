package matching

import "taskhive/models"

// ProviderDirectory supplies the provider set the matcher ranks over.
type ProviderDirectory interface {
	Providers() []models.Provider
}

// StaticDirectory is an in-memory, immutable provider list.
type StaticDirectory struct {
	providers []models.Provider
}

// NewStaticDirectory wraps the given providers without copying.
func NewStaticDirectory(providers []models.Provider) *StaticDirectory {
	return &StaticDirectory{providers: providers}
}

func (d *StaticDirectory) Providers() []models.Provider {
	return d.providers
}

// DefaultDirectory returns the built-in demo provider set (NYC area).
func DefaultDirectory() *StaticDirectory {
	return NewStaticDirectory(defaultProviders)
}

var defaultProviders = []models.Provider{
	{
		ID:              "p1",
		Name:            "Prime Assembly Crew",
		SkillTags:       []string{"furniture_assembly"},
		HourlyRate:      1800,
		AvgRating:       4.9,
		Location:        models.LatLng{Lat: 40.754, Lng: -73.99},
		ServiceRadiusKm: 20,
		Reliability:     0.93,
		Stats: map[string]models.SkillStats{
			"furniture_assembly": {JobsDone: 340, CompletionRate: 0.98},
		},
	},
	{
		ID:              "p2",
		Name:            "FlatPack Masters",
		SkillTags:       []string{"furniture_assembly"},
		HourlyRate:      1500,
		AvgRating:       4.6,
		Location:        models.LatLng{Lat: 40.742, Lng: -73.99},
		ServiceRadiusKm: 15,
		Reliability:     0.85,
		Stats: map[string]models.SkillStats{
			"furniture_assembly": {JobsDone: 58, CompletionRate: 0.92},
		},
	},
	{
		ID:              "p3",
		Name:            "Clean Home Experts",
		SkillTags:       []string{"cleaning"},
		HourlyRate:      1200,
		AvgRating:       4.7,
		Location:        models.LatLng{Lat: 40.745, Lng: -74.004},
		ServiceRadiusKm: 25,
		Reliability:     0.88,
		Stats: map[string]models.SkillStats{
			"cleaning": {JobsDone: 120, CompletionRate: 0.95},
		},
	},
	{
		ID:              "p4",
		Name:            "Fix It Right",
		SkillTags:       []string{"appliance_repair"},
		HourlyRate:      2000,
		AvgRating:       4.8,
		Location:        models.LatLng{Lat: 40.761, Lng: -73.985},
		ServiceRadiusKm: 30,
		Reliability:     0.92,
		Stats: map[string]models.SkillStats{
			"appliance_repair": {JobsDone: 210, CompletionRate: 0.99},
		},
	},
	{
		ID:              "p5",
		Name:            "ShieldPest NYC",
		SkillTags:       []string{"pest_control"},
		HourlyRate:      1600,
		AvgRating:       4.5,
		Location:        models.LatLng{Lat: 40.748, Lng: -73.99},
		ServiceRadiusKm: 25,
		Reliability:     0.9,
		Credentials:     []string{"pest_control_license"},
		Stats: map[string]models.SkillStats{
			"pest_control": {JobsDone: 75, CompletionRate: 0.96},
		},
	},
	{
		// Unlicensed, so never returned for regulated pest work.
		ID:              "p6",
		Name:            "Budget Pest Crew",
		SkillTags:       []string{"pest_control"},
		HourlyRate:      900,
		AvgRating:       4.8,
		Location:        models.LatLng{Lat: 40.75, Lng: -73.995},
		ServiceRadiusKm: 20,
		Reliability:     0.8,
		Stats: map[string]models.SkillStats{
			"pest_control": {JobsDone: 40, CompletionRate: 0.9},
		},
	},
}
