package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/domain/lifecycle"
	"requisicoes/internal/domain/wizard"
	"requisicoes/internal/usecase"
)

var (
	ErrMissingValue = errors.New("value is required")
)

// WizardValidateRequest asks for the validation of one wizard step. A nil Step
// validates the whole draft.
type WizardValidateRequest struct {
	Step *int         `json:"step"`
	Data wizard.Draft `json:"data"`
}

type UpdateStatusRequest struct {
	Status           string     `json:"status" binding:"required"`
	RejectionReason  string     `json:"rejection_reason"`
	BuyerName        string     `json:"buyer_name"`
	SupplierName     string     `json:"supplier_name"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	Notify           bool       `json:"notify"`
}

func (r UpdateStatusRequest) ResolveStatus() entities.RequisitionStatus {
	return entities.RequisitionStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

func (r UpdateStatusRequest) ToMeta(actor string) usecase.StatusMeta {
	return usecase.StatusMeta{
		RejectionReason:  r.RejectionReason,
		BuyerName:        r.BuyerName,
		SupplierName:     r.SupplierName,
		ExpectedDelivery: r.ExpectedDelivery,
		Notify:           r.Notify,
		Actor:            actor,
	}
}

type RevertRequest struct {
	Stage string `json:"stage" binding:"required"`
}

func (r RevertRequest) ResolveStage() lifecycle.StageKey {
	return lifecycle.StageKey(strings.ToLower(strings.TrimSpace(r.Stage)))
}

// UpdateValueRequest accepts the value either as a JSON number or as a string.
type UpdateValueRequest struct {
	Field string           `json:"field" binding:"required"`
	Value *decimal.Decimal `json:"value" swaggertype:"string"`
}

func (r UpdateValueRequest) ResolveField() entities.ValueField {
	return entities.ValueField(strings.ToLower(strings.TrimSpace(r.Field)))
}

func (r UpdateValueRequest) ResolveValue() (decimal.Decimal, error) {
	if r.Value == nil {
		return decimal.Decimal{}, ErrMissingValue
	}
	return *r.Value, nil
}

type SupplierNameRequest struct {
	SupplierName string `json:"supplier_name"`
}

// ListQuery is bound from the query string of the list route.
type ListQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
}

func (q ListQuery) ResolveStatus() entities.RequisitionStatus {
	return entities.RequisitionStatus(strings.ToLower(strings.TrimSpace(q.Status)))
}

// ExportQuery selects the rows of an export: either all listed requisitions or the
// comma separated ids.
type ExportQuery struct {
	Format string `form:"format"`
	IDs    string `form:"ids"`
	All    bool   `form:"all"`
	Status string `form:"status"`
}

func (q ExportQuery) ResolveIDs() []string {
	var out []string
	for _, id := range strings.Split(q.IDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func (q ExportQuery) ResolveStatus() entities.RequisitionStatus {
	return entities.RequisitionStatus(strings.ToLower(strings.TrimSpace(q.Status)))
}
