package request

import "encoding/json"

// PurchasePaymentCreateRequest is the payload for the "registra pagamento do fornecedor" route.
//
// `mp_payload` is forwarded to Mercado Pago as-is (raw JSON). The amount is never taken
// from it: the requisition final value is used.

type PurchasePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
