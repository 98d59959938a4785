package reducer

import (
	"bidworks/internal/domain/actions"
	"bidworks/internal/domain/entities"
)

func reduceAddSign(state entities.Estimate, a actions.AddMPTSign) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		sign := a.Sign
		sign.Quantity = nonNegative(sign.Quantity)
		sign.BLights = nonNegative(sign.BLights)
		p.Signs = append(p.Signs, sign)
	})
}

func reduceAddBatchSigns(state entities.Estimate, a actions.AddBatchMPTSigns) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		p.Signs = append([]entities.Sign{}, a.Signs...)
	})
}

func reduceUpdateSign(state entities.Estimate, a actions.UpdateMPTSign) entities.Estimate {
	if a.Phase < 0 || a.Phase >= len(state.MPTRental.Phases) {
		return state
	}
	if !phaseHoldsSign(state.MPTRental.Phases[a.Phase], a.SignID) {
		return state
	}
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		for i, sign := range p.Signs {
			if sign.ID != a.SignID {
				continue
			}
			applySignField(&sign, a.Key, a.Value)
			p.Signs[i] = sign
			return
		}
	})
}

// reduceDeleteSign removes the sign from whichever phase holds it.
// Deleting a primary sign also removes its secondary signs and
// releases the structure, cover, and b-light quantities it drove.
func reduceDeleteSign(state entities.Estimate, a actions.DeleteMPTSign) entities.Estimate {
	phaseIndex := -1
	var target entities.Sign
	for i, p := range state.MPTRental.Phases {
		for _, s := range p.Signs {
			if s.ID == a.SignID {
				phaseIndex, target = i, s
				break
			}
		}
		if phaseIndex >= 0 {
			break
		}
	}
	if phaseIndex < 0 {
		return state
	}
	return withPhase(state, phaseIndex, func(p *entities.Phase) {
		kept := p.Signs[:0]
		for _, s := range p.Signs {
			if s.ID == a.SignID {
				continue
			}
			if target.IsPrimary() && s.PrimarySignID == a.SignID {
				continue
			}
			kept = append(kept, s)
		}
		p.Signs = kept
		if target.IsPrimary() {
			releaseSignEquipment(p, target)
		}
	})
}

// reduceResetPhaseSigns clears a phase's signs and zeroes the
// sign-driven equipment kinds.
func reduceResetPhaseSigns(state entities.Estimate, a actions.ResetMPTPhaseSigns) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		p.Signs = []entities.Sign{}
		for _, t := range signDrivenEquipment {
			p.StandardEquipment[t] = entities.DynamicEquipmentInfo{}
		}
	})
}

// reduceRefreshPhaseSigns recomputes the sign-driven equipment kinds
// from the phase's current signs, discarding manual adjustments.
func reduceRefreshPhaseSigns(state entities.Estimate, a actions.RefreshMPTPhaseSigns) entities.Estimate {
	return withPhase(state, a.Phase, func(p *entities.Phase) {
		floors := signDrivenFloors(*p)
		for _, t := range signDrivenEquipment {
			p.StandardEquipment[t] = entities.DynamicEquipmentInfo{Quantity: floors[t]}
		}
	})
}

// signDrivenEquipment is the set of kinds whose quantities primary
// signs drive.
var signDrivenEquipment = []entities.EquipmentType{
	entities.EquipmentFourFootTypeIII,
	entities.EquipmentHStand,
	entities.EquipmentPost,
	entities.EquipmentCovers,
	entities.EquipmentBLights,
}

// releaseSignEquipment subtracts one primary sign's driven quantities,
// clamped at zero. The invariant pass afterwards raises anything that
// fell below the floor the remaining signs still require.
func releaseSignEquipment(p *entities.Phase, sign entities.Sign) {
	subtract := func(t entities.EquipmentType, qty float64) {
		if qty <= 0 {
			return
		}
		current := p.Quantity(t)
		p.StandardEquipment[t] = entities.DynamicEquipmentInfo{Quantity: nonNegative(current - qty)}
	}
	if t, ok := sign.AssociatedStructure.EquipmentType(); ok {
		subtract(t, sign.Quantity)
	}
	if sign.Cover {
		subtract(entities.EquipmentCovers, sign.Quantity)
	}
	subtract(entities.EquipmentBLights, sign.BLights*sign.Quantity)
}

func phaseHoldsSign(p entities.Phase, signID string) bool {
	for _, s := range p.Signs {
		if s.ID == signID {
			return true
		}
	}
	return false
}

func applySignField(sign *entities.Sign, key string, value any) {
	switch key {
	case "designation":
		sign.Designation = asString(value)
	case "description":
		sign.Description = asString(value)
	case "width":
		sign.Width = nonNegative(asFloat(value))
	case "height":
		sign.Height = nonNegative(asFloat(value))
	case "quantity":
		sign.Quantity = nonNegative(asFloat(value))
	case "sheeting":
		if s := entities.SheetingType(asString(value)); validSheeting(s) {
			sign.Sheeting = s
		}
	case "isCustom":
		sign.IsCustom = asBool(value)
	case "associatedStructure":
		if s := entities.AssociatedStructure(asString(value)); validStructure(s) {
			sign.AssociatedStructure = s
		}
	case "bLights":
		sign.BLights = nonNegative(asFloat(value))
	case "cover":
		sign.Cover = asBool(value)
	case "substrate":
		sign.Substrate = asString(value)
	}
}

func validSheeting(s entities.SheetingType) bool {
	for _, known := range entities.AllSheetingTypes {
		if s == known {
			return true
		}
	}
	return false
}

func validStructure(s entities.AssociatedStructure) bool {
	switch s {
	case entities.StructureNone, entities.StructureFourFootTypeIII, entities.StructureHStand, entities.StructurePost:
		return true
	default:
		return false
	}
}
