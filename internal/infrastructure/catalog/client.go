// Package catalog fetches reference data from the estimating back
// office: sign designations with their size/sheeting variants, the
// equipment pricing table, and the county labor-rate tables. Rows come
// back loosely typed (numeric strings, embedded JSON), so every fetch
// normalizes before handing anything to the domain.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"bidworks/internal/config"
)

// ReferenceKind names one reference-data collection the back office serves.
type ReferenceKind string

const (
	RefCounties  ReferenceKind = "counties"
	RefBranches  ReferenceKind = "branches"
	RefUsers     ReferenceKind = "users"
	RefOwners    ReferenceKind = "owners"
	RefEquipment ReferenceKind = "equipment"
)

// Client exposes the reference-data operations the use cases need.
type Client interface {
	FetchReferenceData(ctx context.Context, kind ReferenceKind) ([]map[string]any, error)
	FetchSignCatalog(ctx context.Context) ([]SignDesignation, error)
	FetchEquipmentCatalog(ctx context.Context) ([]EquipmentRow, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	log        *zap.Logger
}

// NewClient builds a catalog API client using the provided configuration values.
func NewClient(cfg config.CatalogConfig, log *zap.Logger) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.APIKey != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey))
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &APIClient{httpClient: restyClient, log: log}
}

// apiError represents the back office's error payload.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// FetchReferenceData returns one reference collection as raw rows. The
// caller picks the fields it needs; no normalization is applied here.
func (c *APIClient) FetchReferenceData(ctx context.Context, kind ReferenceKind) ([]map[string]any, error) {
	var rows []map[string]any
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&rows).
		SetError(apiErr).
		Get(fmt.Sprintf("/v1/reference/%s", kind))
	if err != nil {
		return nil, fmt.Errorf("fetch reference data %s: %w", kind, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch reference data %s: status %d: %s", kind, resp.StatusCode(), apiErr.Error.Message)
	}

	return rows, nil
}

// FetchSignCatalog returns the normalized sign designation list.
func (c *APIClient) FetchSignCatalog(ctx context.Context) ([]SignDesignation, error) {
	var rows []signCatalogRow
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&rows).
		SetError(apiErr).
		Get("/v1/reference/signs")
	if err != nil {
		return nil, fmt.Errorf("fetch sign catalog: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch sign catalog: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}

	return NormalizeSignCatalog(rows, c.log), nil
}

// FetchEquipmentCatalog returns the equipment pricing rows with numeric
// fields coerced.
func (c *APIClient) FetchEquipmentCatalog(ctx context.Context) ([]EquipmentRow, error) {
	var rows []equipmentCatalogRow
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&rows).
		SetError(apiErr).
		Get("/v1/reference/equipment")
	if err != nil {
		return nil, fmt.Errorf("fetch equipment catalog: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch equipment catalog: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}

	return NormalizeEquipmentCatalog(rows), nil
}
