package handlers

import (
	"context"
	"errors"
	"net/http"

	request "pintura_xpto/internal/adapter/http/dto/request"
	response "pintura_xpto/internal/adapter/http/dto/response"
	"pintura_xpto/internal/domain/entities"
	"pintura_xpto/internal/usecase"
	"pintura_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload    = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for quotes and persisted estimates.
//
// Quote endpoints are compute-only; the estimate endpoints manage the
// persisted record a customer can accept, reject or cancel.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// QuoteInterior prices an interior job without persisting anything.
func (h *EstimateHandler) QuoteInterior(c *gin.Context) {
	var payload request.InteriorJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote := h.usecase.QuoteInterior(payload.ToDomain())
	c.JSON(http.StatusOK, response.FromInteriorQuote(quote))
}

// QuoteExterior prices an exterior job without persisting anything.
func (h *EstimateHandler) QuoteExterior(c *gin.Context) {
	var payload request.ExteriorJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote := h.usecase.QuoteExterior(payload.ToDomain())
	c.JSON(http.StatusOK, response.FromExteriorQuote(quote))
}

// CreateEstimate persists a priced job as an estimate. The total is always
// recomputed server-side from the job payload.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	jobRef := payload.ResolveJobRef()
	if jobRef == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	kind, err := payload.ResolveKind()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	var estimate entities.Estimate
	switch kind {
	case entities.JobKindInterior:
		estimate, err = h.usecase.CreateFromInterior(c.Request.Context(), jobRef, payload.Interior.ToDomain())
	case entities.JobKindExterior:
		estimate, err = h.usecase.CreateFromExterior(c.Request.Context(), jobRef, payload.Exterior.ToDomain())
	}
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) AcceptEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, h.usecase.AcceptByJobRef)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, h.usecase.RejectByJobRef)
}

func (h *EstimateHandler) CancelEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, h.usecase.CancelByJobRef)
}

func (h *EstimateHandler) patchEstimateStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, jobRef string) (entities.Estimate, error),
) {
	var payload request.EstimateActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	jobRef := payload.ResolveJobRef()
	if jobRef == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	estimate, err := updater(c.Request.Context(), jobRef)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// GetEstimateByID returns a single persisted estimate.
func (h *EstimateHandler) GetEstimateByID(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// RepriceEstimate recomputes the total of an existing estimate from an
// updated job payload of the same kind.
func (h *EstimateHandler) RepriceEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	kind, err := payload.ResolveKind()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	var estimate entities.Estimate
	switch kind {
	case entities.JobKindInterior:
		estimate, err = h.usecase.RepriceInterior(c.Request.Context(), id, payload.Interior.ToDomain())
	case entities.JobKindExterior:
		estimate, err = h.usecase.RepriceExterior(c.Request.Context(), id, payload.Exterior.ToDomain())
	}
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobRef), errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrKindMismatch):
		return pkg.NewDomainErrorSimple("ESTIMATE_KIND_MISMATCH", "Job kind does not match the estimate", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_EXISTS", "Estimate already exists for this job reference", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
