// Package actions declares the tagged transitions the estimate reducer
// understands. Every action captures the full intended next value for
// the fields it touches; none are deltas against an assumed prior
// state.
package actions

import (
	"time"

	"bidworks/internal/domain/entities"
)

// Action is the closed set of estimate transitions. Implementations
// live in this package only.
type Action interface {
	isAction()
}

/* Admin data */

// UpdateAdminData sets one admin field by key. Dotted keys address the
// nested county and emergencyFields blocks ("county.laborRate",
// "emergencyFields.emergencyBLites"). Unknown keys are no-ops.
type UpdateAdminData struct {
	Key   string
	Value any
}

// CopyAdminData replaces the admin block wholesale during hydration.
type CopyAdminData struct {
	AdminData entities.AdminData
}

/* Phase lifecycle */

// AddMPTPhase appends a phase with empty defaults.
type AddMPTPhase struct{}

// DeleteMPTPhase removes the phase at the given position. Deleting the
// last remaining phase leaves a fresh default phase, never an empty
// list.
type DeleteMPTPhase struct {
	Phase int
}

type UpdatePhaseName struct {
	Phase int
	Value string
}

// UpdateMPTPhaseStartEnd sets one end of a phase's date range and
// re-derives its day count. Key is "startDate" or "endDate".
type UpdateMPTPhaseStartEnd struct {
	Phase int
	Key   string
	Value time.Time
}

// UpdateMPTPhaseTripAndLabor sets one numeric crew/trip field. Key is
// one of "personnel", "numberTrucks", "additionalRatedHours",
// "additionalNonRatedHours", "maintenanceTrips", "days". Values are
// clamped at zero.
type UpdateMPTPhaseTripAndLabor struct {
	Phase int
	Key   string
	Value float64
}

type UpdateMPTPhaseEmergency struct {
	Phase int
	Value bool
}

/* Job-wide rental settings */

// UpdateTruckAndFuelCosts sets "dispatchFee" (floor 0) or "mpgPerTruck"
// (floor 1).
type UpdateTruckAndFuelCosts struct {
	Key   string
	Value float64
}

// UpdatePaybackCalculations sets "targetMOIC", "paybackPeriod", or
// "annualUtilization".
type UpdatePaybackCalculations struct {
	Key   string
	Value float64
}

// UpdateStaticEquipmentInfo patches one cell of the job-wide pricing
// table. Property is one of "price", "discountRate", "usefulLife",
// "paybackPeriod". Unknown rate keys are no-ops.
type UpdateStaticEquipmentInfo struct {
	Type     entities.RateKey
	Property string
	Value    float64
}

/* Phase equipment */

// AddMPTItemNotSign sets one property of one equipment kind in one
// phase. Sandbag quantity is derived and direct writes to it are
// immediately re-asserted by the derivation.
type AddMPTItemNotSign struct {
	Phase    int
	Type     entities.EquipmentType
	Property string
	Value    float64
}

type AddLightAndDrumCustomItem struct {
	Phase int
	Item  entities.CustomLightAndDrumItem
}

type UpdateLightAndDrumCustomItem struct {
	Phase int
	ID    string
	Key   string
	Value float64
}

type DeleteLightAndDrumCustomItem struct {
	Phase int
	ID    string
}

/* Signs */

type AddMPTSign struct {
	Phase int
	Sign  entities.Sign
}

// AddBatchMPTSigns replaces a phase's sign list wholesale.
type AddBatchMPTSigns struct {
	Phase int
	Signs []entities.Sign
}

// UpdateMPTSign patches one field of the sign with the given id inside
// the given phase. Unknown phase or sign ids are no-ops.
type UpdateMPTSign struct {
	Phase  int
	SignID string
	Key    string
	Value  any
}

// DeleteMPTSign removes the sign with the given id from whichever
// phase holds it. Deleting a primary sign cascades to its secondary
// signs and releases the equipment quantities it drove.
type DeleteMPTSign struct {
	SignID string
}

// ResetMPTPhaseSigns clears a phase's signs and the equipment they
// drove.
type ResetMPTPhaseSigns struct {
	Phase int
}

// RefreshMPTPhaseSigns recomputes the sign-driven equipment quantities
// of a phase from its current signs.
type RefreshMPTPhaseSigns struct {
	Phase int
}

/* Flagging and service work */

type AddFlagging struct{}

type UpdateFlagging struct {
	Key   string
	Value any
}

type DeleteFlagging struct{}

type AddServiceWork struct{}

type UpdateServiceWork struct {
	Key   string
	Value any
}

type DeleteServiceWork struct{}

/* Equipment rental */

type AddRentalItem struct {
	Item entities.EquipmentRentalItem
}

type UpdateRentalItem struct {
	Index int
	Key   string
	Value any
}

type DeleteRentalItem struct {
	Index int
}

/* Sale items */

type AddSaleItem struct {
	Item entities.SaleItem
}

// UpdateSaleItem replaces the sale item with the given surrogate id.
// Renumbering is just an ItemNumber change on the replacement.
type UpdateSaleItem struct {
	ID   string
	Item entities.SaleItem
}

type DeleteSaleItem struct {
	ID string
}

type ResetSaleItems struct{}

/* Permanent signs */

type AddPermanentSignsItem struct {
	Item entities.PermanentSignItem
}

type UpdatePermanentSignsItem struct {
	ID    string
	Field string
	Value any
}

type DeletePermanentSignsItem struct {
	ID string
}

type UpdatePermanentSignsMarkup struct {
	Value float64
}

/* Hydration: wholesale replacement from a persisted snapshot */

type CopyMPTRental struct {
	MPTRental entities.MPTRental
}

type CopyEquipmentRental struct {
	Items []entities.EquipmentRentalItem
}

type CopyFlagging struct {
	Flagging entities.Flagging
}

type CopyServiceWork struct {
	ServiceWork entities.Flagging
}

type CopySaleItems struct {
	Items []entities.SaleItem
}

type CopyPermanentSigns struct {
	PermanentSigns entities.PermanentSigns
}

type CopyNotes struct {
	Notes string
}

/* Misc */

type UpdateNotes struct {
	Notes string
}

type SetRatesAcknowledged struct {
	Value bool
}

// ResetState returns the aggregate to session defaults.
type ResetState struct{}

func (UpdateAdminData) isAction()              {}
func (CopyAdminData) isAction()                {}
func (AddMPTPhase) isAction()                  {}
func (DeleteMPTPhase) isAction()               {}
func (UpdatePhaseName) isAction()              {}
func (UpdateMPTPhaseStartEnd) isAction()       {}
func (UpdateMPTPhaseTripAndLabor) isAction()   {}
func (UpdateMPTPhaseEmergency) isAction()      {}
func (UpdateTruckAndFuelCosts) isAction()      {}
func (UpdatePaybackCalculations) isAction()    {}
func (UpdateStaticEquipmentInfo) isAction()    {}
func (AddMPTItemNotSign) isAction()            {}
func (AddLightAndDrumCustomItem) isAction()    {}
func (UpdateLightAndDrumCustomItem) isAction() {}
func (DeleteLightAndDrumCustomItem) isAction() {}
func (AddMPTSign) isAction()                   {}
func (AddBatchMPTSigns) isAction()             {}
func (UpdateMPTSign) isAction()                {}
func (DeleteMPTSign) isAction()                {}
func (ResetMPTPhaseSigns) isAction()           {}
func (RefreshMPTPhaseSigns) isAction()         {}
func (AddFlagging) isAction()                  {}
func (UpdateFlagging) isAction()               {}
func (DeleteFlagging) isAction()               {}
func (AddServiceWork) isAction()               {}
func (UpdateServiceWork) isAction()            {}
func (DeleteServiceWork) isAction()            {}
func (AddRentalItem) isAction()                {}
func (UpdateRentalItem) isAction()             {}
func (DeleteRentalItem) isAction()             {}
func (AddSaleItem) isAction()                  {}
func (UpdateSaleItem) isAction()               {}
func (DeleteSaleItem) isAction()               {}
func (ResetSaleItems) isAction()               {}
func (AddPermanentSignsItem) isAction()        {}
func (UpdatePermanentSignsItem) isAction()     {}
func (DeletePermanentSignsItem) isAction()     {}
func (UpdatePermanentSignsMarkup) isAction()   {}
func (CopyMPTRental) isAction()                {}
func (CopyEquipmentRental) isAction()          {}
func (CopyFlagging) isAction()                 {}
func (CopyServiceWork) isAction()              {}
func (CopySaleItems) isAction()                {}
func (CopyPermanentSigns) isAction()           {}
func (CopyNotes) isAction()                    {}
func (UpdateNotes) isAction()                  {}
func (SetRatesAcknowledged) isAction()         {}
func (ResetState) isAction()                   {}
