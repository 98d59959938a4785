package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bidworks/internal/adapter/http/handlers/mocks"
	"bidworks/internal/domain/entities"
	"bidworks/internal/infrastructure/catalog"
	"bidworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_GetSignCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("serves the normalized designations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		uc.EXPECT().GetSignCatalog(gomock.Any()).Return([]catalog.SignDesignation{
			{Designation: "W20-1", Description: "ROAD WORK AHEAD", Variants: []catalog.SignVariant{
				{Width: 48, Height: 48, Sheeting: entities.SheetingDG},
			}},
		}, nil)

		h := NewCatalogHandler(uc)
		r := gin.New()
		r.GET("/v1/catalog/signs", h.GetSignCatalog)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/signs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []catalog.SignDesignation
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0].Designation != "W20-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("maps gateway failures to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		uc.EXPECT().GetSignCatalog(gomock.Any()).Return(nil, errors.New("catalog unavailable"))

		h := NewCatalogHandler(uc)
		r := gin.New()
		r.GET("/v1/catalog/signs", h.GetSignCatalog)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/signs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetEquipmentCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBidUseCase(ctrl)
	uc.EXPECT().GetEquipmentCatalog(gomock.Any()).Return([]catalog.EquipmentRow{
		{Type: entities.EquipmentHStand, Info: entities.StaticEquipmentInfo{Price: 60.33, UsefulLife: 10}},
	}, nil)

	h := NewCatalogHandler(uc)
	r := gin.New()
	r.GET("/v1/catalog/equipment", h.GetEquipmentCatalog)

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/equipment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []catalog.EquipmentRow
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0].Type != entities.EquipmentHStand {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCatalogHandler_GetReferenceData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("serves a reference collection by kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		uc.EXPECT().GetReferenceData(gomock.Any(), "counties").Return([]map[string]any{
			{"name": "Albany", "flaggingRate": 52.5},
		}, nil)

		h := NewCatalogHandler(uc)
		r := gin.New()
		r.GET("/v1/catalog/reference/:kind", h.GetReferenceData)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/reference/counties", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["name"] != "Albany" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("rejects unknown kinds with 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		uc.EXPECT().GetReferenceData(gomock.Any(), "vehicles").Return(nil, usecase.ErrInvalidReferenceKind)

		h := NewCatalogHandler(uc)
		r := gin.New()
		r.GET("/v1/catalog/reference/:kind", h.GetReferenceData)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/reference/vehicles", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("maps gateway failures to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		uc.EXPECT().GetReferenceData(gomock.Any(), "branches").Return(nil, errors.New("reference service down"))

		h := NewCatalogHandler(uc)
		r := gin.New()
		r.GET("/v1/catalog/reference/:kind", h.GetReferenceData)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/reference/branches", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
