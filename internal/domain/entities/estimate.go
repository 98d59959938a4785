package entities

import "slices"

// BidStatus represents the lifecycle of a persisted bid record.
type BidStatus string

const (
	BidStatusDraft    BidStatus = "draft"
	BidStatusPending  BidStatus = "pending"
	BidStatusWon      BidStatus = "won"
	BidStatusLost     BidStatus = "lost"
	BidStatusArchived BidStatus = "archived"
)

// Estimate is the root aggregate of a bid editing session. Every
// entity inside it is created, mutated, and destroyed exclusively
// through reducer actions; transitions always produce a new aggregate.
type Estimate struct {
	AdminData         AdminData             `json:"adminData"`
	MPTRental         MPTRental             `json:"mptRental"`
	EquipmentRental   []EquipmentRentalItem `json:"equipmentRental"`
	Flagging          Flagging              `json:"flagging"`
	ServiceWork       Flagging              `json:"serviceWork"`
	SaleItems         []SaleItem            `json:"saleItems"`
	PermanentSigns    PermanentSigns        `json:"permanentSigns"`
	Notes             string                `json:"notes"`
	RatesAcknowledged bool                  `json:"ratesAcknowledged"`
}

// Clone deep-copies the aggregate. Reducer transitions clone before
// mutating so callers can keep the prior state safely.
func (e Estimate) Clone() Estimate {
	out := e
	out.AdminData = e.AdminData.Clone()
	out.MPTRental = e.MPTRental.Clone()
	out.EquipmentRental = slices.Clone(e.EquipmentRental)
	out.SaleItems = slices.Clone(e.SaleItems)
	out.PermanentSigns = e.PermanentSigns.Clone()
	return out
}
