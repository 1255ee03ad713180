package realtime

import "requisicoes/internal/domain/entities"

// Client → server message types.
const (
	MsgActivity     = "activity"
	MsgSupplierName = "supplier_name"
	MsgPing         = "ping"
)

// Server → client message types.
const (
	MsgPong               = "pong"
	MsgNotification       = "notification"
	MsgRequisitionUpdated = "requisition_updated"
	MsgSaved              = "saved"
	MsgError              = "error"
	MsgSignedOut          = "signed_out"
)

type Inbound struct {
	Type          string `json:"type"`
	RequisitionID string `json:"requisition_id,omitempty"`
	Value         string `json:"value,omitempty"`
}

type Outbound struct {
	Type         string                 `json:"type"`
	Notification *entities.Notification `json:"notification,omitempty"`
	// Sound is false while the alert cooldown is running.
	Sound       bool                  `json:"sound,omitempty"`
	Requisition *entities.Requisition `json:"requisition,omitempty"`
	Message     string                `json:"message,omitempty"`

	final bool
}
