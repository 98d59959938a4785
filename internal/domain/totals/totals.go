package totals

import "bidworks/internal/domain/entities"

// RevenueShares breaks total revenue down by business line, in
// percent.
type RevenueShares struct {
	MPT            float64 `json:"mpt"`
	Rental         float64 `json:"rental"`
	Flagging       float64 `json:"flagging"`
	Sale           float64 `json:"sale"`
	PermanentSigns float64 `json:"permanentSigns"`
}

// AllTotals is the job-wide rollup across every business line of the
// bid.
type AllTotals struct {
	MPTTotalCost     float64       `json:"mptTotalCost"`
	MPTTotalRevenue  float64       `json:"mptTotalRevenue"`
	MPTGrossProfit   float64       `json:"mptGrossProfit"`
	MPTGrossMargin   float64       `json:"mptGrossMargin"`
	TotalRevenue     float64       `json:"totalRevenue"`
	TotalCost        float64       `json:"totalCost"`
	TotalGrossProfit float64       `json:"totalGrossProfit"`
	TotalGrossMargin float64       `json:"totalGrossMargin"`
	RevenueShares    RevenueShares `json:"revenueShares"`
}

// GetAllTotals rolls the whole estimate into job-level revenue, cost,
// gross profit, and margin. MPT cost is depreciation plus labor plus
// fuel; the purchase price of the equipment is not a per-job cost.
func GetAllTotals(e entities.Estimate) AllTotals {
	equipment := EquipmentCostSummary(e.MPTRental)
	lights := CalculateLightAndDrumCostSummary(e.AdminData, e.MPTRental)
	signs := SignCostSummary(e.MPTRental)
	labor := CalculateLaborCostSummary(e.AdminData, e.MPTRental)
	truckAndFuel := CalculateTruckAndFuelCostSummary(e.AdminData, e.MPTRental)

	var signDepreciation, signRevenue, signGrossProfit float64
	for _, s := range entities.AllSheetingTypes {
		signDepreciation += signs[s].DepreciationCost
		signRevenue += signs[s].Revenue
		signGrossProfit += signs[s].GrossProfit
	}

	mptCost := equipment.DepreciationCost +
		lights.Total.DepreciationCost +
		signDepreciation +
		labor.RatedLaborCost + labor.NonRatedLaborCost +
		truckAndFuel.FuelCost
	mptRevenue := equipment.Revenue +
		lights.Total.Revenue +
		signRevenue +
		labor.Revenue +
		truckAndFuel.Revenue
	mptGrossProfit := equipment.GrossProfit +
		lights.Total.GrossProfit +
		signGrossProfit +
		labor.GrossProfit +
		truckAndFuel.GrossProfit

	rental := CalculateRentalSummary(e.EquipmentRental)

	flagging := CalculateFlaggingCostSummary(e.AdminData, e.Flagging, false)
	serviceWork := CalculateFlaggingCostSummary(e.AdminData, e.ServiceWork, true)
	flaggingRevenue := flagging.TotalRevenue + serviceWork.TotalRevenue
	flaggingCost := flagging.TotalFlaggingCost + serviceWork.TotalFlaggingCost
	flaggingGrossProfit := flaggingRevenue - flaggingCost
	if e.Flagging.StandardPricing {
		flaggingGrossProfit = 0
	}

	var saleRevenue, saleCost float64
	for _, item := range e.SaleItems {
		saleRevenue += CalculateSaleItemMargin(item).SellingPrice
		saleCost += item.QuotePrice * item.Quantity
	}

	permanent := CalculatePermanentSignsCostSummary(e.PermanentSigns)

	totalRevenue := mptRevenue + rental.TotalRevenue + flaggingRevenue + saleRevenue + permanent.TotalRevenue
	totalCost := mptCost + rental.TotalCost + flaggingCost + saleCost + permanent.TotalCost
	totalGrossProfit := mptGrossProfit + rental.TotalGrossProfit + flaggingGrossProfit +
		(saleRevenue - saleCost) + permanent.GrossProfit

	percentOf := func(part float64) float64 {
		if totalRevenue == 0 {
			return 0
		}
		return part / totalRevenue * 100
	}

	out := AllTotals{
		MPTTotalCost:     mptCost,
		MPTTotalRevenue:  mptRevenue,
		MPTGrossProfit:   mptGrossProfit,
		TotalRevenue:     totalRevenue,
		TotalCost:        totalCost,
		TotalGrossProfit: totalGrossProfit,
		RevenueShares: RevenueShares{
			MPT:            percentOf(mptRevenue),
			Rental:         percentOf(rental.TotalRevenue),
			Flagging:       percentOf(flaggingRevenue),
			Sale:           percentOf(saleRevenue),
			PermanentSigns: percentOf(permanent.TotalRevenue),
		},
	}
	if mptRevenue != 0 {
		out.MPTGrossMargin = mptGrossProfit / mptRevenue * 100
	}
	if totalRevenue != 0 {
		out.TotalGrossMargin = totalGrossProfit / totalRevenue * 100
	}
	return out
}
