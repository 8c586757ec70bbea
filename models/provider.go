package models

// LatLng is a geographic coordinate pair in degrees.
type LatLng struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// SkillStats tracks a provider's history for a single skill tag.
type SkillStats struct {
	JobsDone       int     `bson:"jobs_done" json:"jobs_done"`
	CompletionRate float64 `bson:"completion_rate" json:"completion_rate"`
}

// Provider is a tasker able to accept bookings. Reference data is immutable
// in-process; the profile repository is the mutable source in a full
// deployment.
type Provider struct {
	ID              string                `bson:"id" json:"id"`
	Name            string                `bson:"name" json:"name"`
	SkillTags       []string              `bson:"skill_tags" json:"skill_tags"`
	HourlyRate      float64               `bson:"rate_hour" json:"rate_hour"`
	AvgRating       float64               `bson:"avg_rating" json:"avg_rating"`
	Location        LatLng                `bson:"location" json:"location"`
	ServiceRadiusKm float64               `bson:"service_radius_km" json:"service_radius_km"`
	Reliability     float64               `bson:"reliability" json:"reliability"`
	Stats           map[string]SkillStats `bson:"stats" json:"stats"`
	Credentials     []string              `bson:"credentials,omitempty" json:"credentials,omitempty"`
}

// HasSkill reports whether the provider carries the given skill tag.
func (p Provider) HasSkill(tag string) bool {
	for _, t := range p.SkillTags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasCredential reports whether the provider holds the given credential.
func (p Provider) HasCredential(cred string) bool {
	for _, c := range p.Credentials {
		if c == cred {
			return true
		}
	}
	return false
}

// ProviderRanking is a provider with its computed match score and distance.
type ProviderRanking struct {
	Provider   Provider `json:"provider"`
	Score      float64  `json:"score"`
	DistanceKm float64  `json:"distance_km"`
	Preferred  bool     `json:"preferred"`
}
