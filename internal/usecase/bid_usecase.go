package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bidworks/internal/domain/actions"
	"bidworks/internal/domain/entities"
	"bidworks/internal/domain/reducer"
	"bidworks/internal/domain/totals"
	"bidworks/internal/infrastructure/catalog"
	"bidworks/internal/usecase/interfaces"
)

var (
	ErrBidNotFound           = errors.New("bid not found")
	ErrBidAlreadyExists      = errors.New("bid already exists")
	ErrInvalidContractNumber = errors.New("invalid contract number")
	ErrInvalidBidStatus      = errors.New("invalid bid status")
	ErrInvalidReferenceKind  = errors.New("invalid reference kind")
)

// IBidUseCase exposes the bid estimating operations.
//
// A bid is one persisted estimate snapshot keyed by contract number.
// Editing happens client-side through reducer actions; the service
// creates, hydrates, totals, and saves whole snapshots.

type IBidUseCase interface {
	CreateBid(ctx context.Context, contractNumber string, snapshot *entities.Estimate) (entities.Bid, error)
	GetBid(ctx context.Context, contractNumber string) (entities.Bid, error)
	SaveBid(ctx context.Context, contractNumber string, snapshot entities.Estimate) (entities.Bid, error)
	UpdateBidStatus(ctx context.Context, contractNumber string, status entities.BidStatus) (entities.Bid, error)
	HydrateEstimate(snapshot entities.Estimate) entities.Estimate
	ComputeTotals(snapshot entities.Estimate) totals.AllTotals
	LoadEquipmentCatalog(ctx context.Context, snapshot entities.Estimate) (entities.Estimate, error)
	GetSignCatalog(ctx context.Context) ([]catalog.SignDesignation, error)
	GetEquipmentCatalog(ctx context.Context) ([]catalog.EquipmentRow, error)
	GetReferenceData(ctx context.Context, kind string) ([]map[string]any, error)
}

type BidUseCase struct {
	repo    interfaces.IBidRepository
	catalog interfaces.ICatalogGateway
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(repo interfaces.IBidRepository, catalog interfaces.ICatalogGateway) *BidUseCase {
	return &BidUseCase{repo: repo, catalog: catalog}
}

// CreateBid opens a new bid record. A nil snapshot starts from the
// default estimate; either way the stored snapshot is hydrated so all
// derived quantities hold from the first read.
func (u *BidUseCase) CreateBid(ctx context.Context, contractNumber string, snapshot *entities.Estimate) (entities.Bid, error) {
	contractNumber = strings.TrimSpace(contractNumber)
	if contractNumber == "" {
		return entities.Bid{}, ErrInvalidContractNumber
	}

	estimate := entities.NewDefaultEstimate()
	if snapshot != nil {
		estimate = u.HydrateEstimate(*snapshot)
	}
	estimate = reducer.Reduce(estimate, actions.UpdateAdminData{Key: "contractNumber", Value: contractNumber})

	now := time.Now().UTC()
	b := entities.Bid{
		ContractNumber: contractNumber,
		Status:         entities.BidStatusDraft,
		Estimate:       estimate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Bid{}, err
	}
	if created.ContractNumber == "" {
		return entities.Bid{}, ErrBidAlreadyExists
	}
	return created, nil
}

func (u *BidUseCase) GetBid(ctx context.Context, contractNumber string) (entities.Bid, error) {
	contractNumber = strings.TrimSpace(contractNumber)
	if contractNumber == "" {
		return entities.Bid{}, ErrInvalidContractNumber
	}

	b, err := u.repo.GetByContractNumber(ctx, contractNumber)
	if err != nil {
		return entities.Bid{}, err
	}
	if b.ContractNumber == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return b, nil
}

// SaveBid replaces the stored snapshot. The submitted estimate is
// hydrated first so a client cannot persist broken derived quantities.
func (u *BidUseCase) SaveBid(ctx context.Context, contractNumber string, snapshot entities.Estimate) (entities.Bid, error) {
	contractNumber = strings.TrimSpace(contractNumber)
	if contractNumber == "" {
		return entities.Bid{}, ErrInvalidContractNumber
	}

	updated, err := u.repo.UpdateSnapshot(ctx, contractNumber, u.HydrateEstimate(snapshot))
	if err != nil {
		return entities.Bid{}, err
	}
	if updated.ContractNumber == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return updated, nil
}

func (u *BidUseCase) UpdateBidStatus(ctx context.Context, contractNumber string, status entities.BidStatus) (entities.Bid, error) {
	contractNumber = strings.TrimSpace(contractNumber)
	if contractNumber == "" {
		return entities.Bid{}, ErrInvalidContractNumber
	}
	switch status {
	case entities.BidStatusDraft, entities.BidStatusPending, entities.BidStatusWon,
		entities.BidStatusLost, entities.BidStatusArchived:
	default:
		return entities.Bid{}, ErrInvalidBidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, contractNumber, status)
	if err != nil {
		return entities.Bid{}, err
	}
	if updated.ContractNumber == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return updated, nil
}

// HydrateEstimate replays a raw snapshot through the reducer's copy
// actions. Each section lands with the same repairs an estimator's
// edits get: secondary sign quantities resync to their primaries,
// derived equipment floors are re-asserted, empty phase lists grow a
// default phase, and missing ids are backfilled.
func (u *BidUseCase) HydrateEstimate(snapshot entities.Estimate) entities.Estimate {
	e := entities.NewDefaultEstimate()
	for _, a := range []actions.Action{
		actions.CopyAdminData{AdminData: snapshot.AdminData},
		actions.CopyMPTRental{MPTRental: snapshot.MPTRental},
		actions.CopyEquipmentRental{Items: snapshot.EquipmentRental},
		actions.CopyFlagging{Flagging: snapshot.Flagging},
		actions.CopyServiceWork{ServiceWork: snapshot.ServiceWork},
		actions.CopySaleItems{Items: snapshot.SaleItems},
		actions.CopyPermanentSigns{PermanentSigns: snapshot.PermanentSigns},
		actions.CopyNotes{Notes: snapshot.Notes},
		actions.SetRatesAcknowledged{Value: snapshot.RatesAcknowledged},
	} {
		e = reducer.Reduce(e, a)
	}
	return e
}

// ComputeTotals hydrates and totals a snapshot in one shot; the totals
// engine itself never mutates state.
func (u *BidUseCase) ComputeTotals(snapshot entities.Estimate) totals.AllTotals {
	return totals.GetAllTotals(u.HydrateEstimate(snapshot))
}

// LoadEquipmentCatalog patches the snapshot's static pricing table from
// the equipment catalog, one reducer action per row and property. Kinds
// the catalog does not carry keep their seeded defaults.
func (u *BidUseCase) LoadEquipmentCatalog(ctx context.Context, snapshot entities.Estimate) (entities.Estimate, error) {
	rows, err := u.catalog.FetchEquipmentCatalog(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}

	e := snapshot
	for _, row := range rows {
		key := row.Type.RateKey()
		for _, patch := range []struct {
			property string
			value    float64
		}{
			{"price", row.Info.Price},
			{"discountRate", row.Info.DiscountRate},
			{"usefulLife", row.Info.UsefulLife},
			{"paybackPeriod", row.Info.PaybackPeriod},
		} {
			e = reducer.Reduce(e, actions.UpdateStaticEquipmentInfo{
				Type:     key,
				Property: patch.property,
				Value:    patch.value,
			})
		}
	}
	return e, nil
}

// GetSignCatalog returns the normalized sign designation list for the
// picker UI.
func (u *BidUseCase) GetSignCatalog(ctx context.Context) ([]catalog.SignDesignation, error) {
	return u.catalog.FetchSignCatalog(ctx)
}

// GetEquipmentCatalog returns the equipment pricing rows bound to
// known equipment kinds.
func (u *BidUseCase) GetEquipmentCatalog(ctx context.Context) ([]catalog.EquipmentRow, error) {
	return u.catalog.FetchEquipmentCatalog(ctx)
}

// GetReferenceData returns one back-office reference collection as raw
// rows. Counties, branches, users and owners feed the admin-data
// pickers; rows pass through untouched.
func (u *BidUseCase) GetReferenceData(ctx context.Context, kind string) ([]map[string]any, error) {
	ref := catalog.ReferenceKind(strings.TrimSpace(kind))
	switch ref {
	case catalog.RefCounties, catalog.RefBranches, catalog.RefUsers, catalog.RefOwners, catalog.RefEquipment:
	default:
		return nil, ErrInvalidReferenceKind
	}
	return u.catalog.FetchReferenceData(ctx, ref)
}
