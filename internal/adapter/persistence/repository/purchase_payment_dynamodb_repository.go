package repository

import (
	"context"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPaymentsTableName   = "purchase_payments"
	paymentsRequisitionIDIndex = "requisition_id-index"
)

type purchasePaymentItem struct {
	ID            string                 `dynamodbav:"id"`
	RequisitionID string                 `dynamodbav:"requisition_id"`
	Date          string                 `dynamodbav:"date"`
	Status        string                 `dynamodbav:"status"`
	Amount        string                 `dynamodbav:"amount"`
	MPPayload     map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw  string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PurchasePaymentDynamoRepository persists PurchasePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: requisition_id-index (PK: requisition_id)

type PurchasePaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPurchasePaymentRepository = (*PurchasePaymentDynamoRepository)(nil)

func NewPurchasePaymentDynamoRepository(ddb DynamoAPI) *PurchasePaymentDynamoRepository {
	return &PurchasePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PurchasePaymentDynamoRepository) Create(ctx context.Context, p entities.PurchasePayment) (entities.PurchasePayment, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toPurchasePaymentItem(p), condAbsent, "id"); err != nil {
		return entities.PurchasePayment{}, err
	}
	return p, nil
}

func (r *PurchasePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PurchasePayment, error) {
	it, found, err := getItem[purchasePaymentItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.PurchasePayment{}, err
	}
	return fromPurchasePaymentItem(it), nil
}

// ListByRequisitionID returns the payments of a requisition through the requisition index.
func (r *PurchasePaymentDynamoRepository) ListByRequisitionID(ctx context.Context, requisitionID string) ([]entities.PurchasePayment, error) {
	rows, err := queryAll[purchasePaymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRequisitionIDIndex),
		KeyConditionExpression: aws.String("requisition_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requisitionID},
		},
	})
	if err != nil {
		return nil, err
	}
	payments := make([]entities.PurchasePayment, 0, len(rows))
	for _, it := range rows {
		payments = append(payments, fromPurchasePaymentItem(it))
	}
	return payments, nil
}

func toPurchasePaymentItem(p entities.PurchasePayment) purchasePaymentItem {
	return purchasePaymentItem{
		ID:            p.ID,
		RequisitionID: p.RequisitionID,
		Date:          formatTime(p.Date),
		Status:        string(p.Status),
		Amount:        p.Amount.String(),
		MPPayload:     p.MPPayload,
		MPPayloadRaw:  string(p.MPPayloadRaw),
	}
}

func fromPurchasePaymentItem(it purchasePaymentItem) entities.PurchasePayment {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.PurchasePayment{
		ID:            it.ID,
		RequisitionID: it.RequisitionID,
		Date:          parseTime(it.Date),
		Status:        entities.PaymentStatus(it.Status),
		Amount:        amount,
		MPPayload:     it.MPPayload,
		MPPayloadRaw:  []byte(it.MPPayloadRaw),
	}
}
