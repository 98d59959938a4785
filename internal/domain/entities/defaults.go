package entities

import "github.com/google/uuid"

// Default rental settings applied to every new estimate.
const (
	DefaultDispatchFee       = 50.0
	DefaultMPGPerTruck       = 8.0
	DefaultTargetMOIC        = 2.0
	DefaultPaybackPeriod     = 5.0
	DefaultAnnualUtilization = 0.75
	DefaultItemMarkup        = 25.0
)

// defaultStaticEquipmentInfo seeds the job-wide pricing table; catalog
// loads patch individual rows afterwards.
func defaultStaticEquipmentInfo() map[RateKey]StaticEquipmentInfo {
	return map[RateKey]StaticEquipmentInfo{
		EquipmentFourFootTypeIII.RateKey(): {Price: 150.98, UsefulLife: 10, PaybackPeriod: 4},
		EquipmentSixFootWings.RateKey():    {Price: 129.64, UsefulLife: 10, PaybackPeriod: 4},
		EquipmentHStand.RateKey():          {Price: 60.33, UsefulLife: 10, PaybackPeriod: 4},
		EquipmentPost.RateKey():            {Price: 44.20, UsefulLife: 7, PaybackPeriod: 4},
		EquipmentSandbag.RateKey():         {Price: 2.62, UsefulLife: 2, PaybackPeriod: 1},
		EquipmentCovers.RateKey():          {Price: 48.00, UsefulLife: 3, PaybackPeriod: 2},
		EquipmentMetalStands.RateKey():     {Price: 134.95, UsefulLife: 3, PaybackPeriod: 2},
		EquipmentHIVP.RateKey():            {Price: 66.18, UsefulLife: 5},
		EquipmentTypeXIVP.RateKey():        {Price: 86.48, UsefulLife: 5},
		EquipmentBLights.RateKey():         {Price: 113.00, UsefulLife: 3},
		EquipmentACLights.RateKey():        {Price: 17.95, UsefulLife: 3},
		EquipmentSharps.RateKey():          {Price: 174.37, UsefulLife: 5},
		SheetingHI.RateKey():               {Price: 6.00, UsefulLife: 3, PaybackPeriod: 2},
		SheetingDG.RateKey():               {Price: 6.81, UsefulLife: 3, PaybackPeriod: 2},
		SheetingSpecial.RateKey():          {Price: 6.81, UsefulLife: 3, PaybackPeriod: 2},
	}
}

// NewDefaultPhase builds an empty phase with a fresh identity and a
// zeroed equipment inventory for every kind.
func NewDefaultPhase() Phase {
	equipment := make(map[EquipmentType]DynamicEquipmentInfo, len(AllEquipmentTypes))
	for _, t := range AllEquipmentTypes {
		equipment[t] = DynamicEquipmentInfo{}
	}
	return Phase{
		ID:                      uuid.NewString(),
		StandardEquipment:       equipment,
		CustomLightAndDrumItems: []CustomLightAndDrumItem{},
		Signs:                   []Sign{},
	}
}

// NewDefaultMPTRental builds the rental aggregate with one empty phase
// and the seeded pricing table.
func NewDefaultMPTRental() MPTRental {
	return MPTRental{
		TargetMOIC:          DefaultTargetMOIC,
		PaybackPeriod:       DefaultPaybackPeriod,
		AnnualUtilization:   DefaultAnnualUtilization,
		DispatchFee:         DefaultDispatchFee,
		MPGPerTruck:         DefaultMPGPerTruck,
		StaticEquipmentInfo: defaultStaticEquipmentInfo(),
		Phases:              []Phase{NewDefaultPhase()},
	}
}

// NewDefaultFlagging builds an empty flagging/service-work record.
func NewDefaultFlagging() Flagging {
	return Flagging{}
}

// NewDefaultEstimate builds the aggregate a fresh editing session
// starts from.
func NewDefaultEstimate() Estimate {
	return Estimate{
		AdminData:       AdminData{Rated: RatedJob},
		MPTRental:       NewDefaultMPTRental(),
		EquipmentRental: []EquipmentRentalItem{},
		Flagging:        NewDefaultFlagging(),
		ServiceWork:     NewDefaultFlagging(),
		SaleItems:       []SaleItem{},
		PermanentSigns:  PermanentSigns{ItemMarkup: DefaultItemMarkup, SignItems: []PermanentSignItem{}},
	}
}
