package reducer

import (
	"bidworks/internal/domain/actions"
	"bidworks/internal/domain/entities"
)

// withPhase runs a mutation against the phase at the given position.
// Out-of-range positions return the prior state unchanged; equipment
// invariants are re-asserted after the mutation.
func withPhase(state entities.Estimate, index int, fn func(*entities.Phase)) entities.Estimate {
	if index < 0 || index >= len(state.MPTRental.Phases) {
		return state
	}
	return withClone(state, func(next *entities.Estimate) {
		phase := &next.MPTRental.Phases[index]
		fn(phase)
		applyEquipmentInvariants(phase)
	})
}

func reduceAddPhase(state entities.Estimate) entities.Estimate {
	return withClone(state, func(next *entities.Estimate) {
		next.MPTRental.Phases = append(next.MPTRental.Phases, entities.NewDefaultPhase())
	})
}

// reduceDeletePhase removes the phase at the given position. The phase
// list never goes empty: deleting the only phase leaves a fresh
// default phase in its place.
func reduceDeletePhase(state entities.Estimate, a actions.DeleteMPTPhase) entities.Estimate {
	if a.Phase < 0 || a.Phase >= len(state.MPTRental.Phases) {
		return state
	}
	return withClone(state, func(next *entities.Estimate) {
		phases := next.MPTRental.Phases
		phases = append(phases[:a.Phase], phases[a.Phase+1:]...)
		if len(phases) == 0 {
			phases = []entities.Phase{entities.NewDefaultPhase()}
		}
		next.MPTRental.Phases = phases
	})
}

func reduceUpdatePhaseName(state entities.Estimate, a actions.UpdatePhaseName) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		p.Name = a.Value
	})
}

// reduceUpdatePhaseStartEnd sets one end of the date range and
// re-derives the inclusive day count.
func reduceUpdatePhaseStartEnd(state entities.Estimate, a actions.UpdateMPTPhaseStartEnd) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		switch a.Key {
		case "startDate":
			p.StartDate = asTime(a.Value)
		case "endDate":
			p.EndDate = asTime(a.Value)
		default:
			return
		}
		p.DeriveDays()
	})
}

func reduceUpdatePhaseTripAndLabor(state entities.Estimate, a actions.UpdateMPTPhaseTripAndLabor) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		value := nonNegative(a.Value)
		switch a.Key {
		case "personnel":
			p.Personnel = value
		case "numberTrucks":
			p.NumberTrucks = value
		case "additionalRatedHours":
			p.AdditionalRatedHours = value
		case "additionalNonRatedHours":
			p.AdditionalNonRatedHours = value
		case "maintenanceTrips":
			p.MaintenanceTrips = value
		case "days":
			p.Days = value
		}
	})
}

func reduceUpdatePhaseEmergency(state entities.Estimate, a actions.UpdateMPTPhaseEmergency) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		p.Emergency = a.Value
	})
}

func reduceUpdateTruckAndFuelCosts(state entities.Estimate, a actions.UpdateTruckAndFuelCosts) entities.Estimate {
	return withClone(state, func(next *entities.Estimate) {
		switch a.Key {
		case "dispatchFee":
			next.MPTRental.DispatchFee = nonNegative(a.Value)
		case "mpgPerTruck":
			// A zero mpg would blow up every fuel division downstream.
			if a.Value < 1 {
				next.MPTRental.MPGPerTruck = 1
			} else {
				next.MPTRental.MPGPerTruck = a.Value
			}
		}
	})
}

func reduceUpdatePaybackCalculations(state entities.Estimate, a actions.UpdatePaybackCalculations) entities.Estimate {
	return withClone(state, func(next *entities.Estimate) {
		switch a.Key {
		case "targetMOIC":
			next.MPTRental.TargetMOIC = nonNegative(a.Value)
		case "paybackPeriod":
			next.MPTRental.PaybackPeriod = nonNegative(a.Value)
		case "annualUtilization":
			next.MPTRental.AnnualUtilization = nonNegative(a.Value)
		}
	})
}

func reduceUpdateStaticEquipmentInfo(state entities.Estimate, a actions.UpdateStaticEquipmentInfo) entities.Estimate {
	if _, ok := state.MPTRental.StaticEquipmentInfo[a.Type]; !ok {
		return state
	}
	return withClone(state, func(next *entities.Estimate) {
		info := next.MPTRental.StaticEquipmentInfo[a.Type]
		switch a.Property {
		case "price":
			info.Price = nonNegative(a.Value)
		case "discountRate":
			info.DiscountRate = nonNegative(a.Value)
		case "usefulLife":
			info.UsefulLife = nonNegative(a.Value)
		case "paybackPeriod":
			info.PaybackPeriod = nonNegative(a.Value)
		default:
			return
		}
		next.MPTRental.StaticEquipmentInfo[a.Type] = info
	})
}

// reduceAddItemNotSign sets one equipment property in one phase.
// Writes to the sandbag row survive only until the invariant pass
// re-derives it.
func reduceAddItemNotSign(state entities.Estimate, a actions.AddMPTItemNotSign) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		if a.Property != "quantity" {
			return
		}
		p.StandardEquipment[a.Type] = entities.DynamicEquipmentInfo{Quantity: nonNegative(a.Value)}
	})
}

func reduceAddCustomItem(state entities.Estimate, a actions.AddLightAndDrumCustomItem) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		item := a.Item
		item.Quantity = nonNegative(item.Quantity)
		item.Cost = nonNegative(item.Cost)
		item.UsefulLife = nonNegative(item.UsefulLife)
		p.CustomLightAndDrumItems = append(p.CustomLightAndDrumItems, item)
	})
}

func reduceUpdateCustomItem(state entities.Estimate, a actions.UpdateLightAndDrumCustomItem) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		for i, item := range p.CustomLightAndDrumItems {
			if item.ID != a.ID {
				continue
			}
			value := nonNegative(a.Value)
			switch a.Key {
			case "quantity":
				item.Quantity = value
			case "cost":
				item.Cost = value
			case "usefulLife":
				item.UsefulLife = value
			}
			p.CustomLightAndDrumItems[i] = item
			return
		}
	})
}

func reduceDeleteCustomItem(state entities.Estimate, a actions.DeleteLightAndDrumCustomItem) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		kept := p.CustomLightAndDrumItems[:0]
		for _, item := range p.CustomLightAndDrumItems {
			if item.ID != a.ID {
				kept = append(kept, item)
			}
		}
		p.CustomLightAndDrumItems = kept
	})
}
