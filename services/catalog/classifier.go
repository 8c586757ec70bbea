package catalog

import "strings"

// Classify maps a free-text customer query to a service id. Each service is
// scored by how many of its keywords appear as substrings of the lowercased
// query; the highest non-zero count wins, ties broken by catalog order.
// Queries matching nothing (including empty or garbage input) map to the
// fallback service.
func (c *Catalog) Classify(query string) string {
	text := strings.ToLower(query)

	bestID := FallbackServiceID
	bestScore := 0
	for _, def := range c.services {
		score := 0
		for _, kw := range def.Keywords {
			if kw != "" && strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestID = def.ID
		}
	}
	return bestID
}
