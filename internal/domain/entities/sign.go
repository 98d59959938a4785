package entities

// SignKind tags a sign as primary or secondary. Secondary signs ride on
// the structure of a primary sign and only reference it; they never own
// equipment of their own.
type SignKind string

const (
	SignKindPrimary   SignKind = "primary"
	SignKindSecondary SignKind = "secondary"
)

// AssociatedStructure is the mounting hardware a primary sign drives
// into the phase's equipment quantities.
type AssociatedStructure string

const (
	StructureNone            AssociatedStructure = "none"
	StructureFourFootTypeIII AssociatedStructure = "fourFootTypeIII"
	StructureHStand          AssociatedStructure = "hStand"
	StructurePost            AssociatedStructure = "post"
)

// EquipmentType returns the equipment kind a structure consumes; the
// second return is false for StructureNone.
func (s AssociatedStructure) EquipmentType() (EquipmentType, bool) {
	switch s {
	case StructureFourFootTypeIII:
		return EquipmentFourFootTypeIII, true
	case StructureHStand:
		return EquipmentHStand, true
	case StructurePost:
		return EquipmentPost, true
	default:
		return "", false
	}
}

// Sign is one sign line in a phase.
//
// Primary signs carry the structure association, b-light count, and
// cover flag. Secondary signs carry PrimarySignID and a substrate; their
// quantity mirrors the primary's on hydration.
type Sign struct {
	ID          string       `json:"id"`
	Kind        SignKind     `json:"kind"`
	Designation string       `json:"designation"`
	Description string       `json:"description"`
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	Quantity    float64      `json:"quantity"`
	Sheeting    SheetingType `json:"sheeting"`
	IsCustom    bool         `json:"isCustom"`

	// Primary-only fields.
	AssociatedStructure AssociatedStructure `json:"associatedStructure,omitempty"`
	BLights             float64             `json:"bLights,omitempty"`
	Cover               bool                `json:"cover,omitempty"`

	// Secondary-only fields.
	PrimarySignID string `json:"primarySignId,omitempty"`
	Substrate     string `json:"substrate,omitempty"`
}

func (s Sign) IsPrimary() bool { return s.Kind != SignKindSecondary && s.PrimarySignID == "" }

// SquareFeet is the total face area of the sign line in square feet.
func (s Sign) SquareFeet() float64 {
	return (s.Width * s.Height / 144) * s.Quantity
}
