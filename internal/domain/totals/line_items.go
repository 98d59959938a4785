package totals

import "bidworks/internal/domain/entities"

// reRentBurden covers the vendor's handling surcharge on re-rented
// equipment.
const reRentBurden = 1.06

// RentalItemSummary is the rollup of one named rental group.
type RentalItemSummary struct {
	Name          string  `json:"name"`
	TotalQuantity float64 `json:"totalQuantity"`
	TotalMonths   float64 `json:"totalMonths"`
	TotalRevenue  float64 `json:"totalRevenue"`
	Depreciation  float64 `json:"depreciation"`
	GrossProfit   float64 `json:"grossProfit"`
	GrossMargin   float64 `json:"grossMargin"`
	ReRent        bool    `json:"reRent"`
}

// RentalSummary is the rollup of the month-rated rental lines.
type RentalSummary struct {
	Items            []RentalItemSummary `json:"items"`
	TotalCost        float64             `json:"totalCost"`
	TotalRevenue     float64             `json:"totalRevenue"`
	TotalGrossProfit float64             `json:"totalGrossProfit"`
	TotalGrossMargin float64             `json:"totalGrossMargin"`
}

// CalculateRentalSummary groups rental lines by name. A group with any
// re-rent line is priced off the vendor's re-rent price with the
// handling burden; otherwise revenue is the rent price over the months
// rented, against straight-line monthly depreciation.
func CalculateRentalSummary(items []entities.EquipmentRentalItem) RentalSummary {
	groupOrder := []string{}
	groups := map[string][]entities.EquipmentRentalItem{}
	for _, item := range items {
		if item.Name == "" {
			continue
		}
		if _, ok := groups[item.Name]; !ok {
			groupOrder = append(groupOrder, item.Name)
		}
		groups[item.Name] = append(groups[item.Name], item)
	}

	summary := RentalSummary{Items: []RentalItemSummary{}}
	for _, name := range groupOrder {
		group := groups[name]

		var totalQuantity, totalMonths float64
		var reRent *entities.EquipmentRentalItem
		for i, item := range group {
			totalQuantity += item.Quantity
			totalMonths += item.Months
			if reRent == nil && item.ReRentForCurrentJob {
				reRent = &group[i]
			}
		}

		var itemSummary RentalItemSummary
		if reRent != nil {
			revenue := totalQuantity * reRent.RentPrice * totalMonths
			cost := reRent.ReRentPrice * reRentBurden * totalMonths * totalQuantity
			itemSummary = RentalItemSummary{
				Name:          name,
				TotalQuantity: totalQuantity,
				TotalMonths:   totalMonths,
				TotalRevenue:  revenue,
				Depreciation:  cost,
				GrossProfit:   revenue - cost,
				ReRent:        true,
			}
		} else {
			first := group[0]
			revenue := totalQuantity * first.RentPrice * totalMonths
			depreciation := 0.0
			if first.UsefulLifeYrs > 0 {
				depreciation = first.TotalCost / (first.UsefulLifeYrs * 12) * totalMonths * totalQuantity
			}
			itemSummary = RentalItemSummary{
				Name:          name,
				TotalQuantity: totalQuantity,
				TotalMonths:   totalMonths,
				TotalRevenue:  revenue,
				Depreciation:  depreciation,
				GrossProfit:   revenue - depreciation,
			}
		}
		if itemSummary.TotalRevenue > 0 {
			itemSummary.GrossMargin = itemSummary.GrossProfit / itemSummary.TotalRevenue * 100
		}

		summary.Items = append(summary.Items, itemSummary)
		summary.TotalRevenue += itemSummary.TotalRevenue
		summary.TotalCost += itemSummary.Depreciation
		summary.TotalGrossProfit += itemSummary.GrossProfit
	}

	if summary.TotalRevenue > 0 {
		summary.TotalGrossMargin = summary.TotalGrossProfit / summary.TotalRevenue * 100
	}
	return summary
}

// SaleItemSummary is the rollup of one direct-sale line.
type SaleItemSummary struct {
	SellingPrice float64 `json:"sellingPrice"`
	GrossProfit  float64 `json:"grossProfit"`
	Margin       float64 `json:"margin"`
}

// CalculateSaleItemMargin prices one sale line: selling price is the
// quote marked up, margin is per-unit profit over the unit selling
// price, so it does not move with quantity. A zero quote yields a zero
// margin rather than a division blowup.
func CalculateSaleItemMargin(item entities.SaleItem) SaleItemSummary {
	unitPrice := item.QuotePrice * (1 + item.MarkupPercentage/100)
	totalSale := unitPrice * item.Quantity
	totalCost := item.QuotePrice * item.Quantity
	grossProfit := totalSale - totalCost

	margin := 0.0
	if unitPrice != 0 {
		margin = (unitPrice - item.QuotePrice) / unitPrice * 100
	}
	return SaleItemSummary{
		SellingPrice: totalSale,
		GrossProfit:  grossProfit,
		Margin:       margin,
	}
}

// PermanentSignsCostSummary is the rollup of the permanent-sign lines.
type PermanentSignsCostSummary struct {
	TotalCost    float64 `json:"totalCost"`
	TotalRevenue float64 `json:"totalRevenue"`
	GrossProfit  float64 `json:"grossProfit"`
	GrossMargin  float64 `json:"grossMargin"`
}

// CalculatePermanentSignsCostSummary prices each line at quantity
// times unit cost, marked up per line.
func CalculatePermanentSignsCostSummary(ps entities.PermanentSigns) PermanentSignsCostSummary {
	var summary PermanentSignsCostSummary
	for _, item := range ps.SignItems {
		cost := item.Quantity * item.UnitCost
		summary.TotalCost += cost
		summary.TotalRevenue += cost * (1 + item.MarkupPercentage/100)
	}
	summary.GrossProfit = summary.TotalRevenue - summary.TotalCost
	if summary.TotalRevenue != 0 {
		summary.GrossMargin = summary.GrossProfit / summary.TotalRevenue * 100
	}
	return summary
}
