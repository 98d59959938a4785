package entities

import "time"

// Bid is the persisted record wrapping one estimate snapshot. The
// contract number is the business key; an editing session loads the
// snapshot, replays it through the reducer, and writes it back whole.
type Bid struct {
	ContractNumber string    `json:"contractNumber"`
	Status         BidStatus `json:"status"`
	Estimate       Estimate  `json:"estimate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
