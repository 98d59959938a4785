package handlers

import (
	"errors"
	"net/http"

	request "bidworks/internal/adapter/http/dto/request"
	response "bidworks/internal/adapter/http/dto/response"
	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase"
	"bidworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)
)

// BidHandler handles HTTP requests for bid snapshots.

type BidHandler struct {
	usecase usecase.IBidUseCase
}

func NewBidHandler(uc usecase.IBidUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

// CreateBid opens a new bid record, optionally seeded from a submitted
// snapshot.
func (h *BidHandler) CreateBid(c *gin.Context) {
	var payload request.CreateBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.CreateBid(c.Request.Context(), payload.ResolveContractNumber(), payload.Snapshot)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBid(b))
}

func (h *BidHandler) GetBid(c *gin.Context) {
	b, err := h.usecase.GetBid(c.Request.Context(), c.Param("contract_number"))
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(b))
}

// SaveBid replaces the stored snapshot with the submitted one.
func (h *BidHandler) SaveBid(c *gin.Context) {
	var payload request.SaveBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.SaveBid(c.Request.Context(), c.Param("contract_number"), payload.Snapshot)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(b))
}

func (h *BidHandler) UpdateBidStatus(c *gin.Context) {
	var payload request.UpdateBidStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.UpdateBidStatus(c.Request.Context(), c.Param("contract_number"), entities.BidStatus(payload.Status))
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(b))
}

// ComputeTotals totals a submitted snapshot without persisting anything.
func (h *BidHandler) ComputeTotals(c *gin.Context) {
	var payload request.TotalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotals(h.usecase.ComputeTotals(payload.Snapshot)))
}

func mapBidError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractNumber), errors.Is(err, usecase.ErrInvalidBidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBidAlreadyExists):
		return pkg.NewDomainErrorSimple("BID_ALREADY_EXISTS", "Bid already exists for this contract number", http.StatusConflict)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
