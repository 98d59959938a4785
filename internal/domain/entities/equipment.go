package entities

// EquipmentType is the fixed vocabulary of traffic-control equipment a
// phase can carry.
//
// Domain notes:
//   - The standard list covers barricade hardware priced per unit.
//   - The light-and-drum list covers channelizers and warning lights
//     priced on a payback daily rate.
//   - Sandbag quantities are always derived from the barricade counts,
//     never entered directly.
type EquipmentType string

const (
	EquipmentFourFootTypeIII EquipmentType = "fourFootTypeIII"
	EquipmentSixFootWings    EquipmentType = "sixFootWings"
	EquipmentHStand          EquipmentType = "hStand"
	EquipmentPost            EquipmentType = "post"
	EquipmentSandbag         EquipmentType = "sandbag"
	EquipmentCovers          EquipmentType = "covers"
	EquipmentMetalStands     EquipmentType = "metalStands"
	EquipmentHIVP            EquipmentType = "HIVP"
	EquipmentTypeXIVP        EquipmentType = "TypeXIVP"
	EquipmentBLights         EquipmentType = "BLights"
	EquipmentACLights        EquipmentType = "ACLights"
	EquipmentSharps          EquipmentType = "sharps"
)

// StandardEquipmentList is the display order of per-unit barricade hardware.
var StandardEquipmentList = []EquipmentType{
	EquipmentFourFootTypeIII,
	EquipmentHStand,
	EquipmentPost,
	EquipmentSixFootWings,
	EquipmentMetalStands,
	EquipmentCovers,
	EquipmentSandbag,
}

// LightAndDrumList is the set of equipment priced on a payback daily rate.
var LightAndDrumList = []EquipmentType{
	EquipmentHIVP,
	EquipmentTypeXIVP,
	EquipmentBLights,
	EquipmentACLights,
	EquipmentSharps,
}

// AllEquipmentTypes enumerates every equipment kind once.
var AllEquipmentTypes = []EquipmentType{
	EquipmentFourFootTypeIII,
	EquipmentSixFootWings,
	EquipmentHStand,
	EquipmentPost,
	EquipmentSandbag,
	EquipmentCovers,
	EquipmentMetalStands,
	EquipmentHIVP,
	EquipmentTypeXIVP,
	EquipmentBLights,
	EquipmentACLights,
	EquipmentSharps,
}

// CatalogName is the display name the equipment catalog uses for each
// kind; catalog rows are bound to equipment types through this mapping.
var CatalogName = map[EquipmentType]string{
	EquipmentFourFootTypeIII: "4' Ft Type III",
	EquipmentSixFootWings:    "6 Ft Wings",
	EquipmentHStand:          "H Stands",
	EquipmentPost:            "Posts 12ft",
	EquipmentCovers:          "Covers",
	EquipmentMetalStands:     "SL Metal Stands",
	EquipmentSandbag:         "Sand Bag",
	EquipmentHIVP:            "HI Vertical Panels",
	EquipmentTypeXIVP:        "Type XI Vertical Panels",
	EquipmentBLights:         "B-Lites",
	EquipmentACLights:        "A/C-Lites",
	EquipmentSharps:          "Sharps",
}

// EquipmentTypeByCatalogName resolves a catalog display name to an
// equipment kind; the second return is false for unknown names.
func EquipmentTypeByCatalogName(name string) (EquipmentType, bool) {
	for typ, display := range CatalogName {
		if display == name {
			return typ, true
		}
	}
	return "", false
}

// SheetingType is the reflective sheeting grade of a sign face.
type SheetingType string

const (
	SheetingHI      SheetingType = "HI"
	SheetingDG      SheetingType = "DG"
	SheetingSpecial SheetingType = "Special"
)

// AllSheetingTypes enumerates every sheeting grade once.
var AllSheetingTypes = []SheetingType{SheetingHI, SheetingDG, SheetingSpecial}

// RateKey addresses one row of the static equipment info table. Both
// equipment kinds and sheeting grades have a row.
type RateKey string

func (t EquipmentType) RateKey() RateKey { return RateKey(t) }
func (s SheetingType) RateKey() RateKey  { return RateKey(s) }

// StaticEquipmentInfo holds the catalog pricing attributes of one
// equipment kind or sheeting grade, shared by every phase of a job.
type StaticEquipmentInfo struct {
	Price         float64 `json:"price"`
	DiscountRate  float64 `json:"discountRate"`
	UsefulLife    float64 `json:"usefulLife"`
	PaybackPeriod float64 `json:"paybackPeriod"`
}

// DynamicEquipmentInfo is the per-phase state of one equipment kind.
type DynamicEquipmentInfo struct {
	Quantity float64 `json:"quantity"`
}

// CustomLightAndDrumItem is an estimator-defined light/drum line item in
// a phase, addressed by its string id.
type CustomLightAndDrumItem struct {
	ID         string  `json:"id"`
	Quantity   float64 `json:"quantity"`
	Cost       float64 `json:"cost"`
	UsefulLife float64 `json:"usefulLife"`
}
