package interfaces

import (
	"context"

	"requisicoes/internal/domain/entities"
)

// RequisitionFilter narrows List. Empty fields match everything.
type RequisitionFilter struct {
	Status         entities.RequisitionStatus
	RequesterEmail string
}

// IRequisitionRepository abstracts DynamoDB persistence for Requisition.
//
// It is also the status-update collaborator: Update persists the whole record, status
// and milestones included. Lookups return a zero Requisition (empty ID) when nothing
// matches.

type IRequisitionRepository interface {
	Create(ctx context.Context, r entities.Requisition) (entities.Requisition, error)
	GetByID(ctx context.Context, id string) (entities.Requisition, error)
	List(ctx context.Context, filter RequisitionFilter) ([]entities.Requisition, error)
	Update(ctx context.Context, r entities.Requisition) (entities.Requisition, error)
}

// IValueHistoryRepository is append-only: there is no update nor delete.

type IValueHistoryRepository interface {
	Append(ctx context.Context, e entities.ValueHistoryEntry) (entities.ValueHistoryEntry, error)
	ListByRequisitionID(ctx context.Context, requisitionID string) ([]entities.ValueHistoryEntry, error)
}
