package totals

import "bidworks/internal/domain/entities"

// CostMetrics is the common revenue/cost rollup shape every summary
// in this package produces.
type CostMetrics struct {
	Cost             float64 `json:"cost"`
	Revenue          float64 `json:"revenue"`
	DepreciationCost float64 `json:"depreciationCost"`
	GrossProfit      float64 `json:"grossProfit"`
	GrossMargin      float64 `json:"grossMargin"`
}

// QuantityDays pairs a total quantity with the quantity-weighted
// average days it is deployed.
type QuantityDays struct {
	TotalQuantity     float64
	TotalDaysRequired float64
}

// lightEquipment is priced on a payback daily rate instead of the
// per-unit sale price and is excluded from the standard equipment
// summary.
func isLightEquipment(t entities.EquipmentType) bool {
	for _, light := range entities.LightAndDrumList {
		if t == light {
			return true
		}
	}
	return false
}

// EquipmentQuantityTotals sums each kind's quantity across phases and
// computes its quantity-weighted average deployment days. Sheeting
// keys accumulate sign square footage the same way.
func EquipmentQuantityTotals(m entities.MPTRental) map[entities.RateKey]QuantityDays {
	quantities := map[entities.RateKey]float64{}
	dayProducts := map[entities.RateKey]float64{}

	for _, t := range entities.AllEquipmentTypes {
		quantities[t.RateKey()] = 0
		dayProducts[t.RateKey()] = 0
	}
	for _, s := range entities.AllSheetingTypes {
		quantities[s.RateKey()] = 0
		dayProducts[s.RateKey()] = 0
	}

	for _, phase := range m.Phases {
		for t, info := range phase.StandardEquipment {
			quantities[t.RateKey()] += info.Quantity
			dayProducts[t.RateKey()] += info.Quantity * phase.Days
		}
		for _, sign := range phase.Signs {
			area := sign.SquareFeet()
			quantities[sign.Sheeting.RateKey()] += area
			dayProducts[sign.Sheeting.RateKey()] += area * phase.Days
		}
	}

	out := make(map[entities.RateKey]QuantityDays, len(quantities))
	for key, qty := range quantities {
		days := 0.0
		if qty != 0 {
			days = dayProducts[key] / qty
		}
		out[key] = QuantityDays{TotalQuantity: qty, TotalDaysRequired: days}
	}
	return out
}

// costMetricsFor prices a subset of the quantity totals against the
// static equipment info table: cost is quantity times the purchase
// price, revenue is cost less the discount, depreciation is
// straight-line over the useful life for the weighted days deployed.
func costMetricsFor(m entities.MPTRental, subset map[entities.RateKey]QuantityDays) CostMetrics {
	var metrics CostMetrics
	for key, item := range subset {
		staticInfo, ok := m.StaticInfo(key)
		if !ok {
			continue
		}
		itemCost := item.TotalQuantity * staticInfo.Price
		metrics.Cost += itemCost
		metrics.Revenue += itemCost - itemCost*(staticInfo.DiscountRate/100)

		if staticInfo.UsefulLife > 0 {
			dailyDepreciation := staticInfo.Price / (staticInfo.UsefulLife * 365)
			metrics.DepreciationCost += dailyDepreciation * item.TotalDaysRequired * item.TotalQuantity
		}
	}
	metrics.GrossProfit = metrics.Revenue - metrics.DepreciationCost
	if metrics.Revenue != 0 {
		metrics.GrossMargin = metrics.GrossProfit / metrics.Revenue * 100
	}
	return metrics
}

// EquipmentCostSummary prices the standard barricade hardware across
// all phases. Light equipment and sheeting are summarized separately.
func EquipmentCostSummary(m entities.MPTRental) CostMetrics {
	all := EquipmentQuantityTotals(m)
	subset := map[entities.RateKey]QuantityDays{}
	for _, t := range entities.AllEquipmentTypes {
		if isLightEquipment(t) {
			continue
		}
		subset[t.RateKey()] = all[t.RateKey()]
	}
	return costMetricsFor(m, subset)
}

// SignCostSummary prices sign square footage per sheeting grade.
func SignCostSummary(m entities.MPTRental) map[entities.SheetingType]CostMetrics {
	all := EquipmentQuantityTotals(m)
	out := make(map[entities.SheetingType]CostMetrics, len(entities.AllSheetingTypes))
	for _, s := range entities.AllSheetingTypes {
		out[s] = costMetricsFor(m, map[entities.RateKey]QuantityDays{
			s.RateKey(): all[s.RateKey()],
		})
	}
	return out
}
