// Package totals is the derived-calculation engine: pure functions
// rolling phase-level quantities into job-level revenue, cost, and
// margin aggregates. No I/O and no mutation; identical
// inputs always yield identical outputs.
package totals

import (
	"math"

	"bidworks/internal/domain/entities"
)

// TotalTripsPerPhase is the number of site trips a phase needs: one
// delivery trip per thirty 4' type III barricades, plus the explicit
// maintenance trips.
func TotalTripsPerPhase(p entities.Phase) float64 {
	baseTrips := math.Ceil(p.Quantity(entities.EquipmentFourFootTypeIII) / 30)
	return baseTrips + p.MaintenanceTrips
}

// RatedHoursPerPhase is the prevailing-wage installation time: the
// crew places ten structures an hour, out and back.
func RatedHoursPerPhase(p entities.Phase) float64 {
	if p.Personnel == 0 {
		return 0
	}
	structures := p.Quantity(entities.EquipmentFourFootTypeIII) +
		p.Quantity(entities.EquipmentHStand) +
		p.Quantity(entities.EquipmentPost)
	return math.Ceil(structures / 10 * p.Personnel * 2)
}

// NonRatedHoursPerPhase is the shop-rate travel time: round-trip
// travel for every trip, per crew member.
func NonRatedHoursPerPhase(admin entities.AdminData, p entities.Phase) float64 {
	if p.Personnel == 0 {
		return 0
	}
	trips := TotalTripsPerPhase(p)
	return admin.OWTravelTimeMins / 60 * trips * 2 * p.Personnel
}
