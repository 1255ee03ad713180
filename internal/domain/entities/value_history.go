package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ValueField string

const (
	ValueFieldBudgeted ValueField = "budgeted_value"
	ValueFieldFinal    ValueField = "final_value"
)

func (f ValueField) Valid() bool {
	return f == ValueFieldBudgeted || f == ValueFieldFinal
}

// ValueHistoryEntry records one change of a requisition's monetary value.
// Entries are append-only: once written they are never updated nor deleted.
//
// Storage model (DynamoDB):
//   - PK: requisition_id
//   - SK: created_at#id
type ValueHistoryEntry struct {
	ID            string              `json:"id"`
	RequisitionID string              `json:"requisition_id"`
	Field         ValueField          `json:"field"`
	PreviousValue decimal.NullDecimal `json:"previous_value"`
	NewValue      decimal.Decimal     `json:"new_value"`
	Actor         string              `json:"actor"`
	CreatedAt     time.Time           `json:"created_at"`
}
