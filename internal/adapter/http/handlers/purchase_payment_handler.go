package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/adapter/http/dto/response"
	"requisicoes/internal/usecase"
	"requisicoes/pkg"
)

// PurchasePaymentHandler handles HTTP requests for supplier payments.

type PurchasePaymentHandler struct {
	usecase  usecase.IPurchasePaymentUseCase
	mockMode bool
	log      logrus.FieldLogger
}

func NewPurchasePaymentHandler(uc usecase.IPurchasePaymentUseCase, mockMode bool, logger logrus.FieldLogger) *PurchasePaymentHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PurchasePaymentHandler{usecase: uc, mockMode: mockMode, log: logger}
}

// CreateByRequisitionID registers the supplier payment of a purchased requisition.
//
// @Summary      Register supplier payment
// @Description  Body is either the Mercado Pago payload or {"mp_payload": {...}}. The amount is the requisition final value.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Requisition id"
// @Param        request body request.PurchasePaymentCreateRequest false "Mercado Pago payload"
// @Success      200 {object} response.PurchasePaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /requisitions/{id}/payments [post]
func (h *PurchasePaymentHandler) CreateByRequisitionID(c *gin.Context) {
	requisitionID := c.Param("id")
	log := h.log.WithField("requisition_id", requisitionID)
	log.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.WithError(err).Warn("[payment][handler] payload invalid in mock mode; fallback to empty payload")
			mpPayload = json.RawMessage("{}")
		} else {
			log.WithError(err).Warn("[payment][handler] invalid payload")
			respondError(c, errInvalidRequest)
			return
		}
	}

	created, err := h.usecase.Register(c.Request.Context(), requisitionID, mpPayload)
	if err != nil {
		log.WithError(err).Warn("[payment][handler] create failed")
		respondError(c, mapPurchasePaymentError(err))
		return
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "status": created.Status}).Info("[payment][handler] create success")

	c.JSON(http.StatusOK, response.FromPurchasePayment(created))
}

// GetLatestByRequisitionID returns the most recent payment of a requisition.
//
// @Summary      Latest supplier payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Requisition id"
// @Success      200 {object} response.PurchasePaymentResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /requisitions/{id}/payments [get]
func (h *PurchasePaymentHandler) GetLatestByRequisitionID(c *gin.Context) {
	requisitionID := c.Param("id")
	p, err := h.usecase.Latest(c.Request.Context(), requisitionID)
	if err != nil {
		respondError(c, mapPurchasePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPurchasePayment(p))
}

// GetByID
//
// @Summary      Get supplier payment
// @Tags         payments
// @Produce      json
// @Param        payment_id path string true "Payment id"
// @Success      200 {object} response.PurchasePaymentResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /payments/{payment_id} [get]
func (h *PurchasePaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondError(c, mapPurchasePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPurchasePayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
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
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPurchasePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequisitionID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrRequisitionNotFound):
		return errRequisitionNotFound
	case errors.Is(err, usecase.ErrRequisitionNotPayable):
		return pkg.NewDomainErrorSimple("REQUISITION_NOT_PURCHASED", "Requisition not purchased yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrFinalValueMissing):
		return pkg.NewDomainErrorSimple("FINAL_VALUE_MISSING", "Requisition final value is not set", http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchasePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
