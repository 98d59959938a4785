package interfaces

import (
	"context"

	"bidworks/internal/infrastructure/catalog"
)

// ICatalogGateway abstracts the reference-data service (sign catalog
// and equipment pricing). Implementations return rows already
// normalized: numeric strings coerced, malformed variant rows dropped,
// sheeting defaulted.
type ICatalogGateway interface {
	FetchReferenceData(ctx context.Context, kind catalog.ReferenceKind) ([]map[string]any, error)
	FetchSignCatalog(ctx context.Context) ([]catalog.SignDesignation, error)
	FetchEquipmentCatalog(ctx context.Context) ([]catalog.EquipmentRow, error)
}
