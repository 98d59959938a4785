package entities

import (
	"slices"
	"time"
)

// Phase is one phase of maintenance-and-protection-of-traffic (MPT)
// work: a date range, crew and truck counts, equipment inventories,
// signs, and custom light/drum items.
//
// Phases are addressed by position in MPTRental.Phases for action
// payloads (display order equals storage order), while ID is the stable
// identity that survives reordering.
type Phase struct {
	ID                      string                                 `json:"id"`
	Name                    string                                 `json:"name"`
	StartDate               *time.Time                             `json:"startDate"`
	EndDate                 *time.Time                             `json:"endDate"`
	Days                    float64                                `json:"days"`
	Personnel               float64                                `json:"personnel"`
	NumberTrucks            float64                                `json:"numberTrucks"`
	AdditionalRatedHours    float64                                `json:"additionalRatedHours"`
	AdditionalNonRatedHours float64                                `json:"additionalNonRatedHours"`
	MaintenanceTrips        float64                                `json:"maintenanceTrips"`
	Emergency               bool                                   `json:"emergency"`
	StandardEquipment       map[EquipmentType]DynamicEquipmentInfo `json:"standardEquipment"`
	CustomLightAndDrumItems []CustomLightAndDrumItem               `json:"customLightAndDrumItems"`
	Signs                   []Sign                                 `json:"signs"`
}

// Quantity returns the stored quantity for one equipment kind, zero
// when the kind has never been touched.
func (p Phase) Quantity(t EquipmentType) float64 {
	return p.StandardEquipment[t].Quantity
}

// DeriveDays recomputes the inclusive whole-day span of the phase's
// date range. Phases without both dates keep whatever Days holds.
func (p *Phase) DeriveDays() {
	if p.StartDate == nil || p.EndDate == nil {
		return
	}
	span := p.EndDate.Sub(*p.StartDate)
	if span < 0 {
		p.Days = 0
		return
	}
	p.Days = float64(int(span.Hours()/24)) + 1
}

// Clone deep-copies the phase so reducer transitions never alias the
// prior state's maps or slices.
func (p Phase) Clone() Phase {
	out := p
	out.StandardEquipment = make(map[EquipmentType]DynamicEquipmentInfo, len(p.StandardEquipment))
	for k, v := range p.StandardEquipment {
		out.StandardEquipment[k] = v
	}
	out.CustomLightAndDrumItems = slices.Clone(p.CustomLightAndDrumItems)
	out.Signs = slices.Clone(p.Signs)
	if p.StartDate != nil {
		d := *p.StartDate
		out.StartDate = &d
	}
	if p.EndDate != nil {
		d := *p.EndDate
		out.EndDate = &d
	}
	return out
}

// MPTRental is the ordered collection of phases plus the job-wide
// rental settings and the static equipment info table.
type MPTRental struct {
	TargetMOIC          float64                         `json:"targetMOIC"`
	PaybackPeriod       float64                         `json:"paybackPeriod"`
	AnnualUtilization   float64                         `json:"annualUtilization"`
	DispatchFee         float64                         `json:"dispatchFee"`
	MPGPerTruck         float64                         `json:"mpgPerTruck"`
	StaticEquipmentInfo map[RateKey]StaticEquipmentInfo `json:"staticEquipmentInfo"`
	Phases              []Phase                         `json:"phases"`
}

// StaticInfo returns the pricing row for a rate key; the zero value for
// keys the table does not carry.
func (m MPTRental) StaticInfo(key RateKey) (StaticEquipmentInfo, bool) {
	info, ok := m.StaticEquipmentInfo[key]
	return info, ok
}

// PhaseByID locates a phase by its stable id.
func (m MPTRental) PhaseByID(id string) (Phase, bool) {
	for _, p := range m.Phases {
		if p.ID == id {
			return p, true
		}
	}
	return Phase{}, false
}

// Clone deep-copies the rental aggregate.
func (m MPTRental) Clone() MPTRental {
	out := m
	out.StaticEquipmentInfo = make(map[RateKey]StaticEquipmentInfo, len(m.StaticEquipmentInfo))
	for k, v := range m.StaticEquipmentInfo {
		out.StaticEquipmentInfo[k] = v
	}
	out.Phases = make([]Phase, len(m.Phases))
	for i, p := range m.Phases {
		out.Phases[i] = p.Clone()
	}
	return out
}
