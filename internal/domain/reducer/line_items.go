package reducer

import (
	"strings"

	"github.com/google/uuid"

	"bidworks/internal/domain/actions"
	"bidworks/internal/domain/entities"
)

// applyFlaggingField sets one flagging/service-work field by key.
// Dotted keys address the lump-sum equipment attachments
// ("arrowBoards.quantity", "tma.includeInLumpSum").
func applyFlaggingField(f *entities.Flagging, key string, value any) {
	if parent, child, ok := strings.Cut(key, "."); ok {
		var equip *entities.FlaggingEquipment
		switch parent {
		case "arrowBoards":
			equip = &f.ArrowBoards
		case "messageBoards":
			equip = &f.MessageBoards
		case "tma":
			equip = &f.TMA
		default:
			return
		}
		switch child {
		case "quantity":
			equip.Quantity = nonNegative(asFloat(value))
		case "cost":
			equip.Cost = nonNegative(asFloat(value))
		case "includeInLumpSum":
			equip.IncludeInLumpSum = asBool(value)
		}
		return
	}

	switch key {
	case "personnel":
		f.Personnel = nonNegative(asFloat(value))
	case "onSiteJobHours":
		f.OnSiteJobHours = nonNegative(asFloat(value))
	case "numberTrucks":
		f.NumberTrucks = nonNegative(asFloat(value))
	case "fuelCostPerGallon":
		f.FuelCostPerGallon = nonNegative(asFloat(value))
	case "fuelEconomyMPG":
		f.FuelEconomyMPG = nonNegative(asFloat(value))
	case "truckDispatchFee":
		f.TruckDispatchFee = nonNegative(asFloat(value))
	case "generalLiability":
		f.GeneralLiability = nonNegative(asFloat(value))
	case "workerComp":
		f.WorkerComp = nonNegative(asFloat(value))
	case "additionalEquipmentCost":
		f.AdditionalEquipmentCost = nonNegative(asFloat(value))
	case "markupRate":
		f.MarkupRate = nonNegative(asFloat(value))
	case "standardPricing":
		f.StandardPricing = asBool(value)
	case "standardLumpSum":
		f.StandardLumpSum = nonNegative(asFloat(value))
	}
}

/* Equipment rental */

func reduceAddRentalItem(state entities.Estimate, a actions.AddRentalItem) entities.Estimate {
	return withClone(state, func(next *entities.Estimate) {
		next.EquipmentRental = append(next.EquipmentRental, a.Item)
	})
}

func reduceUpdateRentalItem(state entities.Estimate, a actions.UpdateRentalItem) entities.Estimate {
	if a.Index < 0 || a.Index >= len(state.EquipmentRental) {
		return state
	}
	return withClone(state, func(next *entities.Estimate) {
		item := next.EquipmentRental[a.Index]
		switch a.Key {
		case "name":
			item.Name = asString(a.Value)
		case "quantity":
			item.Quantity = nonNegative(asFloat(a.Value))
		case "months":
			item.Months = nonNegative(asFloat(a.Value))
		case "rentPrice":
			item.RentPrice = nonNegative(asFloat(a.Value))
		case "totalCost":
			item.TotalCost = nonNegative(asFloat(a.Value))
		case "usefulLifeYrs":
			item.UsefulLifeYrs = nonNegative(asFloat(a.Value))
		case "reRentForCurrentJob":
			item.ReRentForCurrentJob = asBool(a.Value)
		case "reRentPrice":
			item.ReRentPrice = nonNegative(asFloat(a.Value))
		}
		next.EquipmentRental[a.Index] = item
	})
}

func reduceDeleteRentalItem(state entities.Estimate, a actions.DeleteRentalItem) entities.Estimate {
	if a.Index < 0 || a.Index >= len(state.EquipmentRental) {
		return state
	}
	return withClone(state, func(next *entities.Estimate) {
		next.EquipmentRental = append(next.EquipmentRental[:a.Index], next.EquipmentRental[a.Index+1:]...)
	})
}

/* Sale items */

func reduceAddSaleItem(state entities.Estimate, a actions.AddSaleItem) entities.Estimate {
	return withClone(state, func(next *entities.Estimate) {
		item := a.Item
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.Quantity = nonNegative(item.Quantity)
		item.QuotePrice = nonNegative(item.QuotePrice)
		next.SaleItems = append(next.SaleItems, item)
	})
}

func reduceUpdateSaleItem(state entities.Estimate, a actions.UpdateSaleItem) entities.Estimate {
	index := -1
	for i, item := range state.SaleItems {
		if item.ID == a.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return state
	}
	return withClone(state, func(next *entities.Estimate) {
		item := a.Item
		item.ID = a.ID
		item.Quantity = nonNegative(item.Quantity)
		item.QuotePrice = nonNegative(item.QuotePrice)
		next.SaleItems[index] = item
	})
}

func reduceDeleteSaleItem(state entities.Estimate, a actions.DeleteSaleItem) entities.Estimate {
	index := -1
	for i, item := range state.SaleItems {
		if item.ID == a.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return state
	}
	return withClone(state, func(next *entities.Estimate) {
		next.SaleItems = append(next.SaleItems[:index], next.SaleItems[index+1:]...)
	})
}

/* Permanent signs */

func reduceAddPermanentSignsItem(state entities.Estimate, a actions.AddPermanentSignsItem) entities.Estimate {
	return withClone(state, func(next *entities.Estimate) {
		item := a.Item
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.MarkupPercentage == 0 {
			item.MarkupPercentage = next.PermanentSigns.ItemMarkup
		}
		item.Quantity = nonNegative(item.Quantity)
		item.UnitCost = nonNegative(item.UnitCost)
		next.PermanentSigns.SignItems = append(next.PermanentSigns.SignItems, item)
	})
}

func reduceUpdatePermanentSignsItem(state entities.Estimate, a actions.UpdatePermanentSignsItem) entities.Estimate {
	index := -1
	for i, item := range state.PermanentSigns.SignItems {
		if item.ID == a.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return state
	}
	return withClone(state, func(next *entities.Estimate) {
		item := next.PermanentSigns.SignItems[index]
		switch a.Field {
		case "itemNumber":
			item.ItemNumber = asString(a.Value)
		case "description":
			item.Description = asString(a.Value)
		case "quantity":
			item.Quantity = nonNegative(asFloat(a.Value))
		case "unitCost":
			item.UnitCost = nonNegative(asFloat(a.Value))
		case "markupPercentage":
			item.MarkupPercentage = nonNegative(asFloat(a.Value))
		}
		next.PermanentSigns.SignItems[index] = item
	})
}

func reduceDeletePermanentSignsItem(state entities.Estimate, a actions.DeletePermanentSignsItem) entities.Estimate {
	index := -1
	for i, item := range state.PermanentSigns.SignItems {
		if item.ID == a.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return state
	}
	return withClone(state, func(next *entities.Estimate) {
		next.PermanentSigns.SignItems = append(next.PermanentSigns.SignItems[:index], next.PermanentSigns.SignItems[index+1:]...)
	})
}

/* Hydration */

// reduceCopyMPTRental replaces the rental aggregate from a persisted
// snapshot. The snapshot is authoritative except for two repairs:
// secondary sign quantities are re-synced from their primaries, and an
// empty phase list falls back to the session default. Sandbag
// derivation is re-asserted since older snapshots predate it.
func reduceCopyMPTRental(state entities.Estimate, a actions.CopyMPTRental) entities.Estimate {
	return withClone(state, func(next *entities.Estimate) {
		if len(a.MPTRental.Phases) == 0 {
			next.MPTRental = entities.NewDefaultMPTRental()
			return
		}
		rental := a.MPTRental.Clone()
		if rental.StaticEquipmentInfo == nil {
			rental.StaticEquipmentInfo = entities.NewDefaultMPTRental().StaticEquipmentInfo
		}

		primaryQuantities := map[string]float64{}
		for _, p := range rental.Phases {
			for _, s := range p.Signs {
				if s.IsPrimary() {
					primaryQuantities[s.ID] = s.Quantity
				}
			}
		}
		for pi := range rental.Phases {
			phase := &rental.Phases[pi]
			if phase.ID == "" {
				phase.ID = uuid.NewString()
			}
			for si, s := range phase.Signs {
				if s.PrimarySignID == "" {
					continue
				}
				if qty, ok := primaryQuantities[s.PrimarySignID]; ok {
					phase.Signs[si].Quantity = qty
				}
			}
			applyEquipmentInvariants(phase)
		}
		next.MPTRental = rental
	})
}
