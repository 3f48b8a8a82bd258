package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "pintura_xpto/internal/adapter/http/dto/response"
	"pintura_xpto/internal/usecase"
	"pintura_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles HTTP requests for estimate deposits.

type DepositHandler struct {
	usecase usecase.IDepositUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

// CreateDepositByEstimateID creates/approves the deposit for the estimate in
// the path. The deposit amount is derived from the stored estimate total,
// never from the request body.
func (h *DepositHandler) CreateDepositByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log.Printf("[deposit][handler] create start estimate_id=%s", estimateID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readPaymentPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[deposit][handler] payload invalid in mock mode; fallback to empty payload estimate_id=%s err=%v", estimateID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), estimateID, payload)
	if err != nil {
		log.Printf("[deposit][handler] create failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] create success estimate_id=%s deposit_id=%s status=%s", estimateID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDeposit(created))
}

// GetDepositByEstimateID returns the latest deposit for an estimate.
func (h *DepositHandler) GetDepositByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log.Printf("[deposit][handler] get-by-estimate start estimate_id=%s", estimateID)

	deposits, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[deposit][handler] get-by-estimate failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(deposits) == 0 {
		log.Printf("[deposit][handler] get-by-estimate not-found estimate_id=%s", estimateID)
		appErr := pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := deposits[0]
	for _, d := range deposits[1:] {
		if d.Date.After(latest.Date) {
			latest = d
		}
	}
	log.Printf("[deposit][handler] get-by-estimate success estimate_id=%s deposit_id=%s status=%s", estimateID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromDeposit(latest))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["payment_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("payment_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositEstimateID), errors.Is(err, usecase.ErrInvalidDepositPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotAccepted):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_ACCEPTED", "Estimate not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
