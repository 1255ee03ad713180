package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Requester identifies who asked for the item.
type Requester struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	Company    string `json:"company,omitempty"`
}

// Attachment is a file uploaded together with the requisition (quotes, pictures, specs).
type Attachment struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`
}

// Requisition is the purchase request tracked through its lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requester_email-index): requester_email
//
// Monetary representation:
//   - BudgetedValue is the estimate collected while quoting.
//   - FinalValue is the amount actually paid. Both are optional until set.
//
// Milestones (ApprovedAt, PurchasedAt, ReceivedAt) are stamped when the status enters the
// corresponding stage and are never cleared afterwards, not even by a revert.
type Requisition struct {
	ID       string `json:"id"`
	Protocol string `json:"protocol"`

	ItemName       string    `json:"item_name"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	Specifications string    `json:"specifications,omitempty"`
	Justification  string    `json:"justification"`
	PurchaseReason string    `json:"purchase_reason,omitempty"`
	Priority       Priority  `json:"priority"`
	CostCenter     string    `json:"cost_center,omitempty"`
	Requester      Requester `json:"requester"`

	Status           RequisitionStatus   `json:"status"`
	BuyerName        string              `json:"buyer_name,omitempty"`
	SupplierName     string              `json:"supplier_name,omitempty"`
	BudgetedValue    decimal.NullDecimal `json:"budgeted_value"`
	FinalValue       decimal.NullDecimal `json:"final_value"`
	ExpectedDelivery *time.Time          `json:"expected_delivery,omitempty"`
	RejectionReason  string              `json:"rejection_reason,omitempty"`
	Attachments      []Attachment        `json:"attachments,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	ReceivedAt  *time.Time `json:"received_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ApplyStatus moves the requisition to status and stamps the milestone of the stage it
// enters. Milestones of other stages are kept as they are, and so is the current one when
// the status does not change.
func (r *Requisition) ApplyStatus(status RequisitionStatus, now time.Time) {
	now = now.UTC()
	r.UpdatedAt = now
	if r.Status == status {
		return
	}
	r.Status = status

	switch status {
	case StatusAprovado:
		r.ApprovedAt = &now
	case StatusComprado:
		r.PurchasedAt = &now
	case StatusRecebido:
		r.ReceivedAt = &now
	}
}

// BelongsTo reports whether the requisition was requested by the given email.
func (r Requisition) BelongsTo(email string) bool {
	return email != "" && strings.EqualFold(strings.TrimSpace(r.Requester.Email), strings.TrimSpace(email))
}
