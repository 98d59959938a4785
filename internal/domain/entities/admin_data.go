package entities

import "time"

// RatedStatus marks whether the job pays prevailing (rated) wages.
type RatedStatus string

const (
	RatedJob    RatedStatus = "RATED"
	NonRatedJob RatedStatus = "NON-RATED"
)

// County carries the reference rates the totals engine reads for labor
// and flagging calculations. Populated from the counties reference data.
type County struct {
	Name               string  `json:"name"`
	Branch             string  `json:"branch"`
	LaborRate          float64 `json:"laborRate"`
	FringeRate         float64 `json:"fringeRate"`
	ShopRate           float64 `json:"shopRate"`
	FlaggingBaseRate   float64 `json:"flaggingBaseRate"`
	FlaggingFringeRate float64 `json:"flaggingFringeRate"`
	FlaggingRate       float64 `json:"flaggingRate"`
}

// EmergencyFields are the per-kind daily-rate overrides applied to
// light equipment on emergency phases.
type EmergencyFields struct {
	EmergencyBLites               float64 `json:"emergencyBLites"`
	EmergencyACLites              float64 `json:"emergencyACLites"`
	EmergencyHIVerticalPanels     float64 `json:"emergencyHIVerticalPanels"`
	EmergencyTypeXIVerticalPanels float64 `json:"emergencyTypeXIVerticalPanels"`
	EmergencySharps               float64 `json:"emergencySharps"`
}

// Override returns the emergency daily rate for a light equipment kind,
// zero when no override is set.
func (f EmergencyFields) Override(t EquipmentType) float64 {
	switch t {
	case EquipmentBLights:
		return f.EmergencyBLites
	case EquipmentACLights:
		return f.EmergencyACLites
	case EquipmentHIVP:
		return f.EmergencyHIVerticalPanels
	case EquipmentTypeXIVP:
		return f.EmergencyTypeXIVerticalPanels
	case EquipmentSharps:
		return f.EmergencySharps
	default:
		return 0
	}
}

// AdminData is the job metadata block of an estimate. Mutated only
// through admin-update actions; owned exclusively by the Estimate
// aggregate.
type AdminData struct {
	ContractNumber    string          `json:"contractNumber"`
	Owner             string          `json:"owner"`
	Estimator         string          `json:"estimator"`
	Division          string          `json:"division"`
	County            County          `json:"county"`
	LettingDate       *time.Time      `json:"lettingDate"`
	StartDate         *time.Time      `json:"startDate"`
	EndDate           *time.Time      `json:"endDate"`
	WinterStart       *time.Time      `json:"winterStart,omitempty"`
	WinterEnd         *time.Time      `json:"winterEnd,omitempty"`
	SRRoute           string          `json:"srRoute"`
	Location          string          `json:"location"`
	DBEPercentage     float64         `json:"dbePercentage"`
	Rated             RatedStatus     `json:"rated"`
	OWTravelTimeMins  float64         `json:"owTravelTimeMins"`
	OWMileage         float64         `json:"owMileage"`
	FuelCostPerGallon float64         `json:"fuelCostPerGallon"`
	EmergencyJob      bool            `json:"emergencyJob"`
	EmergencyFields   EmergencyFields `json:"emergencyFields"`
}

// Clone deep-copies the admin block.
func (a AdminData) Clone() AdminData {
	out := a
	out.LettingDate = cloneTime(a.LettingDate)
	out.StartDate = cloneTime(a.StartDate)
	out.EndDate = cloneTime(a.EndDate)
	out.WinterStart = cloneTime(a.WinterStart)
	out.WinterEnd = cloneTime(a.WinterEnd)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := *t
	return &d
}
