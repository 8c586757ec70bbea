// Package catalog holds the static service definitions and the keyword
// classifier that maps free-text customer queries onto them.
package catalog

import (
	"fmt"

	"taskhive/models"
)

// FallbackServiceID is returned by Classify when no keywords match.
const FallbackServiceID = "other"

// Catalog is an immutable, ordered set of service definitions. Declaration
// order is significant: the classifier breaks ties by it.
type Catalog struct {
	services []models.ServiceDefinition
	byID     map[string]int
}

// New builds a catalog from the given definitions, validating them once at
// startup.
func New(defs []models.ServiceDefinition) (*Catalog, error) {
	byID := make(map[string]int, len(defs))
	for i, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("service at index %d has empty id", i)
		}
		if _, dup := byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate service id %q", def.ID)
		}
		if def.EstimateHoursMin > def.EstimateHoursMax {
			return nil, fmt.Errorf("service %q: estimate range min %v > max %v", def.ID, def.EstimateHoursMin, def.EstimateHoursMax)
		}
		if def.Regulated && def.RequiredCredential == "" {
			return nil, fmt.Errorf("service %q is regulated but names no credential", def.ID)
		}
		for _, fq := range def.Followups {
			if (fq.Kind == models.FollowupSelect) != (len(fq.Options) > 0) {
				return nil, fmt.Errorf("service %q followup %q: options present iff kind is select", def.ID, fq.ID)
			}
		}
		byID[def.ID] = i
	}
	if _, ok := byID[FallbackServiceID]; !ok {
		return nil, fmt.Errorf("catalog must define the fallback service %q", FallbackServiceID)
	}
	return &Catalog{services: defs, byID: byID}, nil
}

// Default returns the built-in catalog. It panics on an invalid definition
// set, which is a programming error caught at startup.
func Default() *Catalog {
	c, err := New(defaultServices)
	if err != nil {
		panic(err)
	}
	return c
}

// Get looks up a service definition by id.
func (c *Catalog) Get(id string) (models.ServiceDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.ServiceDefinition{}, false
	}
	return c.services[i], true
}

// Services returns all definitions in declaration order.
func (c *Catalog) Services() []models.ServiceDefinition {
	out := make([]models.ServiceDefinition, len(c.services))
	copy(out, c.services)
	return out
}

// Followups returns the follow-up question specs for a service, falling back
// to the generic "tell us more" questions of the fallback service when the
// id is unknown.
func (c *Catalog) Followups(serviceID string) []models.FollowupQuestion {
	if def, ok := c.Get(serviceID); ok {
		return def.Followups
	}
	fallback, _ := c.Get(FallbackServiceID)
	return fallback.Followups
}
