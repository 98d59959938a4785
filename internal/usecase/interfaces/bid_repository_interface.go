package interfaces

import (
	"context"

	"bidworks/internal/domain/entities"
)

// IBidRepository abstracts DynamoDB persistence for Bid snapshots.
//
// The estimating service must be able to:
//   - create a bid record when an estimator opens a new contract
//   - fetch the snapshot for hydration into an editing session
//   - replace the snapshot on save
//   - move the bid through its lifecycle (draft/pending/won/lost)
//
// Missing records surface as zero-value Bids, not errors; use cases map
// the zero value to their own sentinel errors.
type IBidRepository interface {
	Create(ctx context.Context, b entities.Bid) (entities.Bid, error)
	GetByContractNumber(ctx context.Context, contractNumber string) (entities.Bid, error)
	UpdateSnapshot(ctx context.Context, contractNumber string, snapshot entities.Estimate) (entities.Bid, error)
	UpdateStatus(ctx context.Context, contractNumber string, status entities.BidStatus) (entities.Bid, error)
}
