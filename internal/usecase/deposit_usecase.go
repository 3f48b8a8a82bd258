package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"pintura_xpto/internal/domain/entities"
	"pintura_xpto/internal/usecase/interfaces"
)

var (
	ErrDepositNotFound                = errors.New("deposit not found")
	ErrInvalidDepositEstimateID       = errors.New("invalid estimate_id")
	ErrInvalidDepositPayload          = errors.New("invalid payment payload")
	ErrEstimateNotAccepted            = errors.New("estimate not accepted")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// DepositRate is the fraction of the estimate total collected up front once
// the customer accepts.
const DepositRate = 0.25

// IDepositUseCase encapsulates the "collect and approve deposit" behavior.
//
// Requested behavior:
//   - Create an item in the deposits table and approve it as paid.

type IDepositUseCase interface {
	CreateAndApprove(ctx context.Context, estimateID string, payload json.RawMessage) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Deposit, error)
}

type DepositUseCase struct {
	repo         interfaces.IDepositRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *DepositUseCase {
	return &DepositUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway}
}

func (u *DepositUseCase) CreateAndApprove(ctx context.Context, estimateID string, payload json.RawMessage) (entities.Deposit, error) {
	log.Printf("[deposit][usecase] create-and-approve start raw_estimate_id=%q payload_len=%d", estimateID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		log.Printf("[deposit][usecase] invalid estimate_id (empty)")
		return entities.Deposit{}, ErrInvalidDepositEstimateID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if mockMode {
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][usecase] invalid payload estimate_id=%s", estimateID)
			return entities.Deposit{}, ErrInvalidDepositPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[deposit][usecase] gateway not configured estimate_id=%s", estimateID)
		return entities.Deposit{}, errors.New("payment gateway not configured")
	}
	if u.estimateRepo == nil {
		log.Printf("[deposit][usecase] estimate repository not configured estimate_id=%s", estimateID)
		return entities.Deposit{}, errors.New("estimate repository not configured")
	}

	log.Printf("[deposit][usecase] loading estimate estimate_id=%s", estimateID)
	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[deposit][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.Deposit{}, err
	}
	if est.ID == "" {
		log.Printf("[deposit][usecase] estimate not found estimate_id=%s", estimateID)
		return entities.Deposit{}, ErrEstimateNotFound
	}
	if !mockMode && est.Status != entities.EstimateStatusAccepted {
		log.Printf("[deposit][usecase] estimate not accepted estimate_id=%s status=%s", estimateID, est.Status)
		return entities.Deposit{}, ErrEstimateNotAccepted
	}
	amount := math.Round(est.Total * DepositRate)
	log.Printf("[deposit][usecase] estimate loaded estimate_id=%s status=%s total=%.2f deposit=%.2f", estimateID, est.Status, est.Total, amount)

	// Ensure basic linkage with the estimate when the caller didn't provide
	// it. The provider uses external_reference to reconcile events; the
	// amount always comes from the estimate in DB, never from the caller.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[deposit][usecase] missing payment_method_id estimate_id=%s", estimateID)
			return entities.Deposit{}, ErrInvalidDepositPayload
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = estimateID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Painting estimate %s deposit", estimateID)
		}
		reqMap["transaction_amount"] = amount

		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
			log.Printf("[deposit][usecase] payload enriched estimate_id=%s payload_len=%d", estimateID, len(payload))
		}
	} else {
		log.Printf("[deposit][usecase] payload unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	providerPaymentID := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[deposit][usecase] mock mode enabled; skipping external payment gateway estimate_id=%s", estimateID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(payload) > 0 && json.Valid(payload) {
			_ = json.Unmarshal(payload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = estimateID
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = amount
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.Deposit{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[deposit][usecase] calling payment gateway estimate_id=%s", estimateID)
		var providerStatus string
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[deposit][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
			if isGatewayCustomerNotFound(err) {
				return entities.Deposit{}, ErrPaymentGatewayCustomerNotFound
			}
			if isGatewayUnauthorized(err) {
				return entities.Deposit{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Deposit{}, ErrPaymentGatewayBadRequest
			}
			return entities.Deposit{}, err
		}
		log.Printf("[deposit][usecase] payment gateway success estimate_id=%s provider_payment_id=%s provider_status=%s", estimateID, providerPaymentID, providerStatus)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	d := entities.Deposit{
		ID:                 providerPaymentID,
		EstimateID:         estimateID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             entities.DepositStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[deposit][usecase] deposit repository create failed estimate_id=%s deposit_id=%s err=%v", estimateID, d.ID, err)
		return entities.Deposit{}, err
	}
	log.Printf("[deposit][usecase] create-and-approve success estimate_id=%s deposit_id=%s status=%s", estimateID, created.ID, created.Status)
	return created, nil
}

func (u *DepositUseCase) GetByID(ctx context.Context, id string) (entities.Deposit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deposit{}, errors.New("invalid deposit id")
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deposit{}, err
	}
	if d.ID == "" {
		return entities.Deposit{}, ErrDepositNotFound
	}
	return d, nil
}

func (u *DepositUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Deposit, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidDepositEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
