package wizard

import (
	"io"
	"strings"

	"requisicoes/internal/domain/entities"
)

// Draft is the data collected across the wizard steps.
type Draft struct {
	RequesterName  string `json:"requester_name" validate:"required,max=120"`
	RequesterEmail string `json:"requester_email" validate:"required,email"`
	RequesterPhone string `json:"requester_phone" validate:"omitempty,max=30"`
	Department     string `json:"department" validate:"required"`
	Company        string `json:"company" validate:"omitempty,max=120"`

	ItemName       string            `json:"item_name" validate:"required,max=200"`
	Quantity       float64           `json:"quantity" validate:"gt=0"`
	Unit           string            `json:"unit" validate:"required"`
	Specifications string            `json:"specifications" validate:"omitempty,max=2000"`
	CostCenter     string            `json:"cost_center" validate:"omitempty,max=60"`
	Priority       entities.Priority `json:"priority" validate:"required,oneof=normal alta urgente"`

	Justification  string `json:"justification" validate:"justification"`
	PurchaseReason string `json:"purchase_reason" validate:"omitempty,max=500"`
}

// File is an attachment sent together with the final submission.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Payload is what the wizard hands to the requisition creator on submit.
type Payload struct {
	Draft Draft
	Files []File
}

func (d *Draft) Normalize() {
	d.RequesterName = strings.TrimSpace(d.RequesterName)
	d.RequesterEmail = strings.ToLower(strings.TrimSpace(d.RequesterEmail))
	d.RequesterPhone = strings.TrimSpace(d.RequesterPhone)
	d.Department = strings.TrimSpace(d.Department)
	d.Company = strings.TrimSpace(d.Company)
	d.ItemName = strings.TrimSpace(d.ItemName)
	d.Unit = strings.TrimSpace(d.Unit)
	d.Specifications = strings.TrimSpace(d.Specifications)
	d.CostCenter = strings.TrimSpace(d.CostCenter)
	d.Priority = entities.Priority(strings.ToLower(strings.TrimSpace(string(d.Priority))))
	d.Justification = strings.TrimSpace(d.Justification)
	d.PurchaseReason = strings.TrimSpace(d.PurchaseReason)
}

// Requisition builds the record described by the draft. Identity, status and
// timestamps are left for the creator to assign.
func (d Draft) Requisition() entities.Requisition {
	return entities.Requisition{
		ItemName:       d.ItemName,
		Quantity:       d.Quantity,
		Unit:           d.Unit,
		Specifications: d.Specifications,
		Justification:  d.Justification,
		PurchaseReason: d.PurchaseReason,
		Priority:       d.Priority,
		CostCenter:     d.CostCenter,
		Requester: entities.Requester{
			Name:       d.RequesterName,
			Email:      d.RequesterEmail,
			Phone:      d.RequesterPhone,
			Department: d.Department,
			Company:    d.Company,
		},
	}
}
