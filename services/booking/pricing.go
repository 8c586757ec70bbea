package booking

import (
	"fmt"
	"math"

	"taskhive/models"
)

// ComputeEstimate derives the default duration and price estimate for a
// service performed at the given hourly rate. The midpoint of the service's
// declared hour range is used.
func ComputeEstimate(def models.ServiceDefinition, hourlyRate float64) (durationMins int, price float64) {
	midHours := (def.EstimateHoursMin + def.EstimateHoursMax) / 2
	durationMins = int(math.Round(midHours * 60))
	price = math.Round(hourlyRate*midHours*100) / 100
	return durationMins, price
}

// ValidateEstimate checks that a booking's estimated duration and price fall
// inside the service's declared range at the given hourly rate.
func ValidateEstimate(def models.ServiceDefinition, hourlyRate float64, durationMins int, price float64) error {
	minMins := int(math.Floor(def.EstimateHoursMin * 60))
	maxMins := int(math.Ceil(def.EstimateHoursMax * 60))
	if durationMins < minMins || durationMins > maxMins {
		return &ValidationError{Message: fmt.Sprintf(
			"estimated duration %d mins outside declared range [%d, %d] for service %s",
			durationMins, minMins, maxMins, def.ID)}
	}
	if hourlyRate > 0 {
		minPrice := hourlyRate * def.EstimateHoursMin
		maxPrice := hourlyRate * def.EstimateHoursMax
		if price < minPrice-0.01 || price > maxPrice+0.01 {
			return &ValidationError{Message: fmt.Sprintf(
				"estimated price %.2f outside declared range [%.2f, %.2f] for service %s",
				price, minPrice, maxPrice, def.ID)}
		}
	}
	return nil
}
