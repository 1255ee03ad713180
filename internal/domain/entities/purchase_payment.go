package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PurchasePayment is the supplier payment registered for a purchased requisition.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requisition_id-index): requisition_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original provider body (JSON) for traceability/audit.
//   - MPPayload is the parsed representation, useful for querying/debugging.

type PurchasePayment struct {
	ID            string          `json:"id"`
	RequisitionID string          `json:"requisition_id"`
	Date          time.Time       `json:"date"`
	Status        PaymentStatus   `json:"status"`
	Amount        decimal.Decimal `json:"amount"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// Payable reports whether a requisition in status s can receive a supplier payment.
func Payable(s RequisitionStatus) bool {
	switch s {
	case StatusComprado, StatusEmEntrega, StatusRecebido:
		return true
	}
	return false
}
