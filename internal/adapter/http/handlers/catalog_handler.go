package handlers

import (
	"errors"
	"net/http"

	"bidworks/internal/usecase"
	"bidworks/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the reference data the estimate editor needs:
// sign designations, equipment pricing, and the back-office picker
// collections (counties, branches, users, owners).

type CatalogHandler struct {
	usecase usecase.IBidUseCase
}

func NewCatalogHandler(uc usecase.IBidUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) GetSignCatalog(c *gin.Context) {
	designations, err := h.usecase.GetSignCatalog(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("CATALOG_UNAVAILABLE", "Sign catalog is unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, designations)
}

func (h *CatalogHandler) GetEquipmentCatalog(c *gin.Context) {
	rows, err := h.usecase.GetEquipmentCatalog(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("CATALOG_UNAVAILABLE", "Equipment catalog is unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *CatalogHandler) GetReferenceData(c *gin.Context) {
	kind := c.Param("kind")

	rows, err := h.usecase.GetReferenceData(c.Request.Context(), kind)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidReferenceKind) {
			appErr := pkg.NewDomainError("INVALID_REFERENCE_KIND", "Unknown reference collection: "+kind, err, http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("CATALOG_UNAVAILABLE", "Reference data is unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rows)
}
