package totals

import "bidworks/internal/domain/entities"

// LightAndDrumCostSummary splits the light-and-drum rollup into the
// standard catalog kinds and the estimator-defined custom items.
type LightAndDrumCostSummary struct {
	StandardEquipment CostMetrics `json:"standardEquipment"`
	CustomEquipment   CostMetrics `json:"customEquipment"`
	Total             CostMetrics `json:"total"`
}

// LightDailyRate converts a purchase price into the daily rental rate
// that earns the target MOIC over the payback window at the assumed
// utilization.
func LightDailyRate(m entities.MPTRental, price float64) float64 {
	daysToRecover := m.PaybackPeriod * m.AnnualUtilization * 365
	if daysToRecover == 0 {
		return 0
	}
	return price * m.TargetMOIC / daysToRecover
}

// CalculateLightAndDrumCostSummary prices the payback-rated equipment.
// Revenue is the daily rate over the phase's days; emergency phases
// substitute the admin override rate per kind when one is set.
func CalculateLightAndDrumCostSummary(admin entities.AdminData, m entities.MPTRental) LightAndDrumCostSummary {
	standard := standardLightCosts(admin, m)
	custom := customLightCosts(m)

	total := CostMetrics{
		Cost:             standard.Cost + custom.Cost,
		Revenue:          standard.Revenue + custom.Revenue,
		DepreciationCost: standard.DepreciationCost + custom.DepreciationCost,
		GrossProfit:      standard.GrossProfit + custom.GrossProfit,
	}
	if total.Revenue != 0 {
		total.GrossMargin = total.GrossProfit / total.Revenue * 100
	}

	return LightAndDrumCostSummary{
		StandardEquipment: standard,
		CustomEquipment:   custom,
		Total:             total,
	}
}

func standardLightCosts(admin entities.AdminData, m entities.MPTRental) CostMetrics {
	var metrics CostMetrics
	for _, phase := range m.Phases {
		for _, t := range entities.LightAndDrumList {
			quantity := phase.Quantity(t)
			staticInfo, ok := m.StaticInfo(t.RateKey())
			if !ok || quantity == 0 || phase.Days == 0 {
				continue
			}

			metrics.Cost += quantity * staticInfo.Price

			dailyRate := LightDailyRate(m, staticInfo.Price)
			if phase.Emergency {
				if override := admin.EmergencyFields.Override(t); override != 0 {
					dailyRate = override
				}
			}
			metrics.Revenue += quantity * phase.Days * dailyRate

			if staticInfo.UsefulLife > 0 {
				dailyDepreciation := staticInfo.Price / (staticInfo.UsefulLife * 365)
				metrics.DepreciationCost += dailyDepreciation * phase.Days * quantity
			}
		}
	}
	metrics.GrossProfit = metrics.Revenue - metrics.DepreciationCost
	if metrics.Revenue != 0 {
		metrics.GrossMargin = metrics.GrossProfit / metrics.Revenue * 100
	}
	return metrics
}

// customLightCosts weights each custom item's days across the phases
// that carry it; items are grouped by id plus pricing attributes so a
// re-priced item is treated as distinct.
func customLightCosts(m entities.MPTRental) CostMetrics {
	type itemKey struct {
		id         string
		cost       float64
		usefulLife float64
	}
	dayProducts := map[itemKey]float64{}
	totalQuantities := map[itemKey]float64{}

	for _, phase := range m.Phases {
		for _, item := range phase.CustomLightAndDrumItems {
			key := itemKey{item.ID, item.Cost, item.UsefulLife}
			dayProducts[key] += item.Quantity * phase.Days
			totalQuantities[key] += item.Quantity
		}
	}

	weightedDays := func(key itemKey) float64 {
		if totalQuantities[key] == 0 {
			return 0
		}
		return dayProducts[key] / totalQuantities[key]
	}

	var metrics CostMetrics
	for _, phase := range m.Phases {
		for _, item := range phase.CustomLightAndDrumItems {
			key := itemKey{item.ID, item.Cost, item.UsefulLife}
			days := weightedDays(key)

			metrics.Cost += item.Quantity * item.Cost
			metrics.Revenue += item.Quantity * days * LightDailyRate(m, item.Cost)
			if item.UsefulLife > 0 {
				dailyDepreciation := item.Cost / (item.UsefulLife * 365)
				metrics.DepreciationCost += dailyDepreciation * days * item.Quantity
			}
		}
	}
	metrics.GrossProfit = metrics.Revenue - metrics.DepreciationCost
	if metrics.Revenue != 0 {
		metrics.GrossMargin = metrics.GrossProfit / metrics.Revenue * 100
	}
	return metrics
}
