package interfaces

import (
	"context"

	"requisicoes/internal/domain/entities"
)

// IPurchasePaymentRepository abstracts DynamoDB persistence for PurchasePayment.

type IPurchasePaymentRepository interface {
	Create(ctx context.Context, p entities.PurchasePayment) (entities.PurchasePayment, error)
	GetByID(ctx context.Context, id string) (entities.PurchasePayment, error)
	ListByRequisitionID(ctx context.Context, requisitionID string) ([]entities.PurchasePayment, error)
}
