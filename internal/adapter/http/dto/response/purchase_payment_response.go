package response

import (
	"time"

	"requisicoes/internal/domain/entities"
)

type PurchasePaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	RequisitionID string    `json:"requisition_id"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	Amount        string    `json:"amount"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPurchasePayment(p entities.PurchasePayment) PurchasePaymentResponse {
	return PurchasePaymentResponse{
		PaymentID:     p.ID,
		RequisitionID: p.RequisitionID,
		Date:          p.Date,
		Status:        string(p.Status),
		Amount:        p.Amount.StringFixed(2),
		MPPayloadRaw:  string(p.MPPayloadRaw),
		MPPayload:     p.MPPayload,
	}
}
