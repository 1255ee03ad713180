package response

import (
	"time"

	"github.com/shopspring/decimal"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase"
	"requisicoes/pkg/listing"
)

type RequesterResponse struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	Company    string `json:"company,omitempty"`
}

// RequisitionResponse carries money as fixed two-decimal strings and the display
// labels of status and priority.
type RequisitionResponse struct {
	ID       string `json:"id"`
	Protocol string `json:"protocol"`

	ItemName       string            `json:"item_name"`
	Quantity       float64           `json:"quantity"`
	Unit           string            `json:"unit"`
	Specifications string            `json:"specifications,omitempty"`
	Justification  string            `json:"justification"`
	PurchaseReason string            `json:"purchase_reason,omitempty"`
	Priority       string            `json:"priority"`
	PriorityLabel  string            `json:"priority_label"`
	CostCenter     string            `json:"cost_center,omitempty"`
	Requester      RequesterResponse `json:"requester"`

	Status           string                `json:"status"`
	StatusLabel      string                `json:"status_label"`
	StatusColor      string                `json:"status_color"`
	BuyerName        string                `json:"buyer_name,omitempty"`
	SupplierName     string                `json:"supplier_name,omitempty"`
	BudgetedValue    *string               `json:"budgeted_value"`
	FinalValue       *string               `json:"final_value"`
	ExpectedDelivery *time.Time            `json:"expected_delivery,omitempty"`
	RejectionReason  string                `json:"rejection_reason,omitempty"`
	Attachments      []entities.Attachment `json:"attachments"`

	CreatedAt   time.Time  `json:"created_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	ReceivedAt  *time.Time `json:"received_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromRequisition(r entities.Requisition, catalog entities.StatusCatalog) RequisitionResponse {
	meta, _ := catalog.StatusMeta(r.Status)
	attachments := r.Attachments
	if attachments == nil {
		attachments = []entities.Attachment{}
	}
	return RequisitionResponse{
		ID:             r.ID,
		Protocol:       r.Protocol,
		ItemName:       r.ItemName,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		Specifications: r.Specifications,
		Justification:  r.Justification,
		PurchaseReason: r.PurchaseReason,
		Priority:       string(r.Priority),
		PriorityLabel:  catalog.PriorityLabel(r.Priority),
		CostCenter:     r.CostCenter,
		Requester: RequesterResponse{
			ID:         r.Requester.ID,
			Name:       r.Requester.Name,
			Email:      r.Requester.Email,
			Phone:      r.Requester.Phone,
			Department: r.Requester.Department,
			Company:    r.Requester.Company,
		},
		Status:           string(r.Status),
		StatusLabel:      catalog.StatusLabel(r.Status),
		StatusColor:      meta.Color,
		BuyerName:        r.BuyerName,
		SupplierName:     r.SupplierName,
		BudgetedValue:    money(r.BudgetedValue),
		FinalValue:       money(r.FinalValue),
		ExpectedDelivery: r.ExpectedDelivery,
		RejectionReason:  r.RejectionReason,
		Attachments:      attachments,
		CreatedAt:        r.CreatedAt,
		ApprovedAt:       r.ApprovedAt,
		PurchasedAt:      r.PurchasedAt,
		ReceivedAt:       r.ReceivedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromRequisitionPage(p listing.Page[entities.Requisition], catalog entities.StatusCatalog) listing.Page[RequisitionResponse] {
	items := make([]RequisitionResponse, 0, len(p.Items))
	for _, r := range p.Items {
		items = append(items, FromRequisition(r, catalog))
	}
	return listing.Page[RequisitionResponse]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

type StatusChangeResponse struct {
	Requisition RequisitionResponse `json:"requisition"`
	Warning     string              `json:"warning,omitempty"`
}

func FromStatusChange(res usecase.StatusChangeResult, catalog entities.StatusCatalog) StatusChangeResponse {
	return StatusChangeResponse{Requisition: FromRequisition(res.Requisition, catalog), Warning: res.Warning}
}

type StatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

func FromStats(stats map[entities.RequisitionStatus]int) StatsResponse {
	out := StatsResponse{ByStatus: make(map[string]int, len(stats))}
	for s, n := range stats {
		out.ByStatus[string(s)] = n
		out.Total += n
	}
	return out
}

type ValueHistoryResponse struct {
	ID            string    `json:"id"`
	Field         string    `json:"field"`
	PreviousValue *string   `json:"previous_value"`
	NewValue      string    `json:"new_value"`
	Actor         string    `json:"actor,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromValueHistory(entries []entities.ValueHistoryEntry) []ValueHistoryResponse {
	out := make([]ValueHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ValueHistoryResponse{
			ID:            e.ID,
			Field:         string(e.Field),
			PreviousValue: money(e.PreviousValue),
			NewValue:      e.NewValue.StringFixed(2),
			Actor:         e.Actor,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out
}

// WizardValidationResponse lists field→message errors of Step; Valid is true when there
// are none.
type WizardValidationResponse struct {
	Valid  bool              `json:"valid"`
	Step   int               `json:"step"`
	Errors map[string]string `json:"errors"`
}

func money(v decimal.NullDecimal) *string {
	if !v.Valid {
		return nil
	}
	s := v.Decimal.StringFixed(2)
	return &s
}
