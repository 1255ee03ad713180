package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"
)

var (
	ErrPurchasePaymentNotFound        = errors.New("purchase payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrRequisitionNotPayable          = errors.New("requisition is not purchased yet")
	ErrFinalValueMissing              = errors.New("requisition has no final value")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions configures the Mercado Pago flow.
type PaymentOptions struct {
	// Mock skips the gateway and approves locally.
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

// IPurchasePaymentUseCase registers the supplier payment of a purchased requisition.
//
// The amount always comes from the requisition final value; the caller only provides
// the Mercado Pago payment data (method, payer, token).
type IPurchasePaymentUseCase interface {
	Register(ctx context.Context, requisitionID string, mpPayload json.RawMessage) (entities.PurchasePayment, error)
	GetByID(ctx context.Context, id string) (entities.PurchasePayment, error)
	Latest(ctx context.Context, requisitionID string) (entities.PurchasePayment, error)
}

type PurchasePaymentUseCase struct {
	repo         interfaces.IPurchasePaymentRepository
	requisitions interfaces.IRequisitionRepository
	gateway      interfaces.IPaymentGateway
	opts         PaymentOptions
	log          logrus.FieldLogger
}

var _ IPurchasePaymentUseCase = (*PurchasePaymentUseCase)(nil)

func NewPurchasePaymentUseCase(repo interfaces.IPurchasePaymentRepository, requisitions interfaces.IRequisitionRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions, logger logrus.FieldLogger) *PurchasePaymentUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PurchasePaymentUseCase{repo: repo, requisitions: requisitions, gateway: gateway, opts: opts, log: logger}
}

func (u *PurchasePaymentUseCase) Register(ctx context.Context, requisitionID string, mpPayload json.RawMessage) (entities.PurchasePayment, error) {
	requisitionID = strings.TrimSpace(requisitionID)
	log := u.log.WithField("requisition_id", requisitionID)
	log.WithField("payload_len", len(mpPayload)).Info("[payment][usecase] register start")

	if requisitionID == "" {
		return entities.PurchasePayment{}, ErrInvalidRequisitionID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			log.Warn("[payment][usecase] invalid payload")
			return entities.PurchasePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.Mock {
		return entities.PurchasePayment{}, ErrPaymentGatewayNotConfigured
	}

	req, err := u.requisitions.GetByID(ctx, requisitionID)
	if err != nil {
		log.WithError(err).Error("[payment][usecase] failed loading requisition")
		return entities.PurchasePayment{}, err
	}
	if req.ID == "" {
		return entities.PurchasePayment{}, ErrRequisitionNotFound
	}
	if !entities.Payable(req.Status) {
		log.WithField("status", req.Status).Warn("[payment][usecase] requisition not payable")
		return entities.PurchasePayment{}, ErrRequisitionNotPayable
	}
	if !req.FinalValue.Valid || !req.FinalValue.Decimal.IsPositive() {
		return entities.PurchasePayment{}, ErrFinalValueMissing
	}
	amount := req.FinalValue.Decimal

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !u.opts.Mock {
			if !hasNonEmptyString(reqMap, "payment_method_id") {
				log.Warn("[payment][usecase] missing payment_method_id")
				return entities.PurchasePayment{}, ErrInvalidMPPayload
			}
			u.normalizeSandboxPayer(reqMap)
			u.ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				log.Warn("[payment][usecase] missing payer")
				return entities.PurchasePayment{}, ErrInvalidMPPayload
			}
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = req.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Requisição %s - %s", req.Protocol, req.ItemName)
		}
		reqMap["transaction_amount"] = amount.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.WithError(err).Warn("[payment][usecase] payload is not an object; sending as is")
	}

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
	)
	if u.opts.Mock {
		log.Info("[payment][usecase] mock mode enabled; skipping gateway")
		providerID, providerStatus, providerResp, err = mockPayment(mpPayload, req.ID, amount.InexactFloat64())
		if err != nil {
			return entities.PurchasePayment{}, err
		}
	} else {
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.WithError(err).Error("[payment][usecase] gateway failed")
			return entities.PurchasePayment{}, classifyGatewayError(err)
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Warn("[payment][usecase] provider response unreadable")
	}

	p := entities.PurchasePayment{
		ID:            providerID,
		RequisitionID: req.ID,
		Date:          time.Now().UTC(),
		Status:        paymentStatusFromProvider(providerStatus),
		Amount:        amount,
		MPPayloadRaw:  providerResp,
		MPPayload:     parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.WithError(err).Error("[payment][usecase] repository create failed")
		return entities.PurchasePayment{}, err
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "status": created.Status}).Info("[payment][usecase] register success")
	return created, nil
}

func (u *PurchasePaymentUseCase) GetByID(ctx context.Context, id string) (entities.PurchasePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PurchasePayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PurchasePayment{}, err
	}
	if p.ID == "" {
		return entities.PurchasePayment{}, ErrPurchasePaymentNotFound
	}
	return p, nil
}

// Latest returns the most recent payment of the requisition.
func (u *PurchasePaymentUseCase) Latest(ctx context.Context, requisitionID string) (entities.PurchasePayment, error) {
	requisitionID = strings.TrimSpace(requisitionID)
	if requisitionID == "" {
		return entities.PurchasePayment{}, ErrInvalidRequisitionID
	}
	payments, err := u.repo.ListByRequisitionID(ctx, requisitionID)
	if err != nil {
		return entities.PurchasePayment{}, err
	}
	if len(payments) == 0 {
		return entities.PurchasePayment{}, ErrPurchasePaymentNotFound
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func paymentStatusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func mockPayment(payload json.RawMessage, requisitionID string, amount float64) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = requisitionID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, in sandbox, a payer email when neither id
// nor email were sent.
func (u *PurchasePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox payer user id for its email.
func (u *PurchasePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.opts.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("[payment][usecase] mapped sandbox payer user id to email")
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
