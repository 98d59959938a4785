package reducer

import "bidworks/internal/domain/entities"

// signDrivenFloors computes the minimum equipment quantities the
// phase's primary signs require: one structure unit per sign, one
// cover per covered sign, bLights-per-sign times quantity.
func signDrivenFloors(p entities.Phase) map[entities.EquipmentType]float64 {
	floors := map[entities.EquipmentType]float64{}
	for _, s := range p.Signs {
		if !s.IsPrimary() || s.Quantity <= 0 {
			continue
		}
		if t, ok := s.AssociatedStructure.EquipmentType(); ok {
			floors[t] += s.Quantity
		}
		if s.Cover {
			floors[entities.EquipmentCovers] += s.Quantity
		}
		if s.BLights > 0 {
			floors[entities.EquipmentBLights] += s.BLights * s.Quantity
		}
	}
	return floors
}

// applyEquipmentInvariants re-asserts the two phase invariants after
// any equipment or sign transition: structure quantities never fall
// below the sign-driven floor, and sandbag quantity is always the
// derived value, never whatever was written.
func applyEquipmentInvariants(p *entities.Phase) {
	if p.StandardEquipment == nil {
		p.StandardEquipment = map[entities.EquipmentType]entities.DynamicEquipmentInfo{}
	}
	for t, floor := range signDrivenFloors(*p) {
		if p.Quantity(t) < floor {
			p.StandardEquipment[t] = entities.DynamicEquipmentInfo{Quantity: floor}
		}
	}
	p.StandardEquipment[entities.EquipmentSandbag] = entities.DynamicEquipmentInfo{
		Quantity: derivedSandbags(*p),
	}
}

func derivedSandbags(p entities.Phase) float64 {
	return p.Quantity(entities.EquipmentHStand)*6 +
		p.Quantity(entities.EquipmentFourFootTypeIII)*10 +
		p.Quantity(entities.EquipmentSixFootWings)*4
}
