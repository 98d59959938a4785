package entities

import "slices"

// SaleItem is a direct-sale line on the bid. ID is the stable surrogate
// identity; ItemNumber is the business key shown to estimators and is a
// plain mutable attribute, so renumbering an item is an ordinary field
// update.
type SaleItem struct {
	ID               string  `json:"id"`
	ItemNumber       string  `json:"itemNumber"`
	Description      string  `json:"description"`
	Quantity         float64 `json:"quantity"`
	QuotePrice       float64 `json:"quotePrice"`
	MarkupPercentage float64 `json:"markupPercentage"`
}

// EquipmentRentalItem is one month-rated rental line. Re-rented
// equipment is priced off the vendor's re-rent price instead of
// depreciation.
type EquipmentRentalItem struct {
	Name                string  `json:"name"`
	Quantity            float64 `json:"quantity"`
	Months              float64 `json:"months"`
	RentPrice           float64 `json:"rentPrice"`
	TotalCost           float64 `json:"totalCost"`
	UsefulLifeYrs       float64 `json:"usefulLifeYrs"`
	ReRentForCurrentJob bool    `json:"reRentForCurrentJob"`
	ReRentPrice         float64 `json:"reRentPrice"`
}

// FlaggingEquipment is a lump-sum equipment attachment on a flagging or
// service-work record.
type FlaggingEquipment struct {
	Quantity         float64 `json:"quantity"`
	Cost             float64 `json:"cost"`
	IncludeInLumpSum bool    `json:"includeInLumpSum"`
}

// Flagging describes a flagging crew line; ServiceWork shares the same
// shape but is rated off the county labor rates instead of the flagging
// rates.
type Flagging struct {
	Personnel               float64           `json:"personnel"`
	OnSiteJobHours          float64           `json:"onSiteJobHours"` // minutes
	NumberTrucks            float64           `json:"numberTrucks"`
	FuelCostPerGallon       float64           `json:"fuelCostPerGallon"`
	FuelEconomyMPG          float64           `json:"fuelEconomyMPG"`
	TruckDispatchFee        float64           `json:"truckDispatchFee"`
	GeneralLiability        float64           `json:"generalLiability"`
	WorkerComp              float64           `json:"workerComp"`
	AdditionalEquipmentCost float64           `json:"additionalEquipmentCost"`
	MarkupRate              float64           `json:"markupRate"`
	StandardPricing         bool              `json:"standardPricing"`
	StandardLumpSum         float64           `json:"standardLumpSum"`
	ArrowBoards             FlaggingEquipment `json:"arrowBoards"`
	MessageBoards           FlaggingEquipment `json:"messageBoards"`
	TMA                     FlaggingEquipment `json:"tma"`
}

// PermanentSignItem is one permanent-sign work line: quantity times a
// unit cost with a markup over cost.
type PermanentSignItem struct {
	ID               string  `json:"id"`
	ItemNumber       string  `json:"itemNumber"`
	Description      string  `json:"description"`
	Quantity         float64 `json:"quantity"`
	UnitCost         float64 `json:"unitCost"`
	MarkupPercentage float64 `json:"markupPercentage"`
}

// PermanentSigns groups the permanent-sign lines with their shared
// default markup.
type PermanentSigns struct {
	ItemMarkup float64             `json:"itemMarkup"`
	SignItems  []PermanentSignItem `json:"signItems"`
}

// Clone deep-copies the permanent signs record.
func (p PermanentSigns) Clone() PermanentSigns {
	out := p
	out.SignItems = slices.Clone(p.SignItems)
	return out
}
