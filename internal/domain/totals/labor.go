package totals

import "bidworks/internal/domain/entities"

// LaborCostSummary rolls rated and non-rated crew hours into cost and
// revenue. Labor is billed at a 100% markup over cost.
type LaborCostSummary struct {
	RatedLaborHours    float64 `json:"ratedLaborHours"`
	NonRatedLaborHours float64 `json:"nonRatedLaborHours"`
	RatedLaborCost     float64 `json:"ratedLaborCost"`
	NonRatedLaborCost  float64 `json:"nonRatedLaborCost"`
	RatedLaborRevenue  float64 `json:"ratedLaborRevenue"`
	Revenue            float64 `json:"revenue"`
	GrossProfit        float64 `json:"grossProfit"`
	GrossMargin        float64 `json:"grossMargin"`
}

// CalculateLaborCostSummary prices crew hours across all phases.
// Rated work pays the county labor plus fringe rate on rated jobs and
// the shop rate otherwise; travel time always pays the shop rate.
func CalculateLaborCostSummary(admin entities.AdminData, m entities.MPTRental) LaborCostSummary {
	var ratedHours, nonRatedHours float64
	for _, phase := range m.Phases {
		ratedHours += RatedHoursPerPhase(phase) + phase.AdditionalRatedHours
		nonRatedHours += NonRatedHoursPerPhase(admin, phase) + phase.AdditionalNonRatedHours
	}

	ratedRate := admin.County.ShopRate
	if admin.Rated == entities.RatedJob {
		ratedRate = admin.County.LaborRate + admin.County.FringeRate
	}
	ratedCost := ratedHours * ratedRate
	nonRatedCost := nonRatedHours * admin.County.ShopRate

	ratedRevenue := ratedCost * 2
	nonRatedRevenue := nonRatedCost * 2
	revenue := ratedRevenue + nonRatedRevenue

	grossProfit := revenue - (ratedCost + nonRatedCost)
	grossMargin := 0.0
	if revenue != 0 {
		grossMargin = grossProfit / revenue * 100
	}

	return LaborCostSummary{
		RatedLaborHours:    ratedHours,
		NonRatedLaborHours: nonRatedHours,
		RatedLaborCost:     ratedCost,
		NonRatedLaborCost:  nonRatedCost,
		RatedLaborRevenue:  ratedRevenue,
		Revenue:            revenue,
		GrossProfit:        grossProfit,
		GrossMargin:        grossMargin,
	}
}

// TruckAndFuelCostSummary prices mobilization and fuel across all
// phases. Mobilization is the dispatch fee per truck per trip; fuel is
// the round-trip mileage at the job's price per gallon.
type TruckAndFuelCostSummary struct {
	MobilizationCost float64 `json:"mobilizationCost"`
	FuelCost         float64 `json:"fuelCost"`
	Revenue          float64 `json:"revenue"`
	GrossProfit      float64 `json:"grossProfit"`
	GrossMargin      float64 `json:"grossMargin"`
}

func CalculateTruckAndFuelCostSummary(admin entities.AdminData, m entities.MPTRental) TruckAndFuelCostSummary {
	mpg := m.MPGPerTruck
	if mpg == 0 {
		mpg = 1
	}

	var mobilization, fuel float64
	for _, phase := range m.Phases {
		trips := TotalTripsPerPhase(phase)
		trucks := phase.NumberTrucks
		mobilization += m.DispatchFee * trips * trucks
		fuel += trips * trucks * 2 * admin.OWMileage / mpg * admin.FuelCostPerGallon
	}

	summary := TruckAndFuelCostSummary{
		MobilizationCost: mobilization,
		FuelCost:         fuel,
		Revenue:          mobilization + fuel,
		GrossProfit:      mobilization,
	}
	if fuel > 0 {
		summary.GrossMargin = mobilization / (fuel + mobilization) * 100
	}
	return summary
}
