// Package matching ranks eligible providers for a classified service
// request by skill, service radius and a weighted quality score.
package matching

import (
	"math"
	"sort"

	"taskhive/config"
	"taskhive/models"
	"taskhive/services/catalog"
)

// MatchingService defines the interface for matching providers.
type MatchingService interface {
	Match(serviceID string, location models.LatLng, limit int) ([]models.ProviderRanking, error)
}

// DefaultMatchingService implements MatchingService over a catalog and a
// provider directory. It is read-only over static data and safe for
// concurrent use.
type DefaultMatchingService struct {
	Catalog   *catalog.Catalog
	Directory ProviderDirectory
	Weights   config.MatchWeights
	// DefaultCompletionRate substitutes for providers with no stats for the
	// requested skill.
	DefaultCompletionRate float64
}

// NewDefaultMatchingService wires a matcher with the configured weights.
func NewDefaultMatchingService(cat *catalog.Catalog, dir ProviderDirectory) *DefaultMatchingService {
	return &DefaultMatchingService{
		Catalog:               cat,
		Directory:             dir,
		Weights:               config.AppConfig.Weights,
		DefaultCompletionRate: config.AppConfig.DefaultCompletionRate,
	}
}

// Match returns providers eligible for the service at the customer's
// location, best first. A limit <= 0 returns all eligible providers. An
// unknown service id yields an empty result and an UnknownServiceError; no
// eligible providers is a valid empty result, not an error.
func (s *DefaultMatchingService) Match(serviceID string, location models.LatLng, limit int) ([]models.ProviderRanking, error) {
	def, ok := s.Catalog.Get(serviceID)
	if !ok {
		return []models.ProviderRanking{}, &UnknownServiceError{ServiceID: serviceID}
	}

	ranked := make([]models.ProviderRanking, 0)
	for _, p := range s.Directory.Providers() {
		if !p.HasSkill(def.SkillTag) {
			continue
		}
		distanceKm := haversine(location.Lat, location.Lng, p.Location.Lat, p.Location.Lng)
		if distanceKm > p.ServiceRadiusKm {
			continue
		}
		if def.Regulated && !p.HasCredential(def.RequiredCredential) {
			continue
		}
		ranked = append(ranked, models.ProviderRanking{
			Provider:   p,
			Score:      s.score(p, def.SkillTag, distanceKm),
			DistanceKm: distanceKm,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		ji := ranked[i].Provider.Stats[def.SkillTag].JobsDone
		jj := ranked[j].Provider.Stats[def.SkillTag].JobsDone
		if ji != jj {
			return ji > jj
		}
		return ranked[i].Provider.ID < ranked[j].Provider.ID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if len(ranked) > 0 {
		ranked[0].Preferred = true
	}
	return ranked, nil
}

func (s *DefaultMatchingService) score(p models.Provider, skillTag string, distanceKm float64) float64 {
	completion := s.DefaultCompletionRate
	if stats, ok := p.Stats[skillTag]; ok {
		completion = stats.CompletionRate
	}
	return s.Weights.Rating*(p.AvgRating/5) +
		s.Weights.Reliability*p.Reliability +
		s.Weights.Completion*completion +
		s.Weights.Proximity*(1-distanceKm/p.ServiceRadiusKm)
}

const earthRadiusKm = 6371

// haversine returns the great-circle distance between two points in km.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
