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

const defaultValueHistoryTableName = "requisicoes_valores_historico"

type valueHistoryItem struct {
	RequisitionID string `dynamodbav:"requisition_id"`
	SK            string `dynamodbav:"sk"`
	ID            string `dynamodbav:"id"`
	Field         string `dynamodbav:"field"`
	PreviousValue string `dynamodbav:"previous_value,omitempty"`
	NewValue      string `dynamodbav:"new_value"`
	Actor         string `dynamodbav:"actor,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ValueHistoryDynamoRepository is append-only.
//
// Table requirements:
//   - PK: requisition_id (string)
//   - SK: sk (string, "<created_at>#<id>") so a query returns entries oldest first

type ValueHistoryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IValueHistoryRepository = (*ValueHistoryDynamoRepository)(nil)

func NewValueHistoryDynamoRepository(ddb DynamoAPI) *ValueHistoryDynamoRepository {
	return &ValueHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VALUE_HISTORY_TABLE", defaultValueHistoryTableName),
	}
}

func (r *ValueHistoryDynamoRepository) Append(ctx context.Context, e entities.ValueHistoryEntry) (entities.ValueHistoryEntry, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toValueHistoryItem(e), condAbsent, "sk"); err != nil {
		return entities.ValueHistoryEntry{}, err
	}
	return e, nil
}

func (r *ValueHistoryDynamoRepository) ListByRequisitionID(ctx context.Context, requisitionID string) ([]entities.ValueHistoryEntry, error) {
	rows, err := queryAll[valueHistoryItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("requisition_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requisitionID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	entries := make([]entities.ValueHistoryEntry, 0, len(rows))
	for _, it := range rows {
		entries = append(entries, fromValueHistoryItem(it))
	}
	return entries, nil
}

func toValueHistoryItem(e entities.ValueHistoryEntry) valueHistoryItem {
	created := formatTime(e.CreatedAt)
	return valueHistoryItem{
		RequisitionID: e.RequisitionID,
		SK:            created + "#" + e.ID,
		ID:            e.ID,
		Field:         string(e.Field),
		PreviousValue: formatNullDecimal(e.PreviousValue),
		NewValue:      e.NewValue.String(),
		Actor:         e.Actor,
		CreatedAt:     created,
	}
}

func fromValueHistoryItem(it valueHistoryItem) entities.ValueHistoryEntry {
	v, _ := decimal.NewFromString(it.NewValue)
	return entities.ValueHistoryEntry{
		ID:            it.ID,
		RequisitionID: it.RequisitionID,
		Field:         entities.ValueField(it.Field),
		PreviousValue: parseNullDecimal(it.PreviousValue),
		NewValue:      v,
		Actor:         it.Actor,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
