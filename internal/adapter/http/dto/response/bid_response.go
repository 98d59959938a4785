package response

import (
	"time"

	"bidworks/internal/domain/entities"
	"bidworks/internal/domain/totals"
)

type BidResponse struct {
	ContractNumber string            `json:"contract_number"`
	Status         string            `json:"status"`
	Snapshot       entities.Estimate `json:"snapshot"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func FromBid(b entities.Bid) BidResponse {
	return BidResponse{
		ContractNumber: b.ContractNumber,
		Status:         string(b.Status),
		Snapshot:       b.Estimate,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type TotalsResponse struct {
	Totals totals.AllTotals `json:"totals"`
}

func FromTotals(t totals.AllTotals) TotalsResponse {
	return TotalsResponse{Totals: t}
}
