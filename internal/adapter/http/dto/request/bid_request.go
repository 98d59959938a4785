package request

import (
	"strings"

	"bidworks/internal/domain/entities"
)

// CreateBidRequest opens a new bid. Snapshot is optional; when omitted
// the bid starts from the default estimate.
type CreateBidRequest struct {
	ContractNumber string             `json:"contract_number" binding:"required"`
	Snapshot       *entities.Estimate `json:"snapshot"`
}

func (r CreateBidRequest) ResolveContractNumber() string {
	return strings.TrimSpace(r.ContractNumber)
}

// SaveBidRequest replaces the stored snapshot wholesale. The estimate
// wire shape is the domain aggregate itself; the service re-derives
// every dependent quantity before persisting, so a stale or hand-built
// snapshot cannot corrupt the record.
type SaveBidRequest struct {
	Snapshot entities.Estimate `json:"snapshot"`
}

// UpdateBidStatusRequest moves a bid through its lifecycle.
type UpdateBidStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TotalsRequest computes job totals for a submitted snapshot without
// touching storage.
type TotalsRequest struct {
	Snapshot entities.Estimate `json:"snapshot"`
}
