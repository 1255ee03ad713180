package repository

import (
	"context"
	"errors"
	"strings"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequisitionsTableName = "requisicoes"
	requisitionsRequesterIndex   = "requester_email-index"
)

type attachmentItem struct {
	Name        string `dynamodbav:"name"`
	Key         string `dynamodbav:"key"`
	URL         string `dynamodbav:"url"`
	ContentType string `dynamodbav:"content_type,omitempty"`
	Size        int64  `dynamodbav:"size"`
}

type requisitionItem struct {
	ID       string `dynamodbav:"id"`
	Protocol string `dynamodbav:"protocol"`

	ItemName       string  `dynamodbav:"item_name"`
	Quantity       float64 `dynamodbav:"quantity"`
	Unit           string  `dynamodbav:"unit"`
	Specifications string  `dynamodbav:"specifications,omitempty"`
	Justification  string  `dynamodbav:"justification"`
	PurchaseReason string  `dynamodbav:"purchase_reason,omitempty"`
	Priority       string  `dynamodbav:"priority"`
	CostCenter     string  `dynamodbav:"cost_center,omitempty"`

	RequesterID         string `dynamodbav:"requester_id,omitempty"`
	RequesterName       string `dynamodbav:"requester_name"`
	RequesterEmail      string `dynamodbav:"requester_email"`
	RequesterPhone      string `dynamodbav:"requester_phone,omitempty"`
	RequesterDepartment string `dynamodbav:"requester_department,omitempty"`
	RequesterCompany    string `dynamodbav:"requester_company,omitempty"`

	Status           string           `dynamodbav:"status"`
	BuyerName        string           `dynamodbav:"buyer_name,omitempty"`
	SupplierName     string           `dynamodbav:"supplier_name,omitempty"`
	BudgetedValue    string           `dynamodbav:"budgeted_value,omitempty"`
	FinalValue       string           `dynamodbav:"final_value,omitempty"`
	ExpectedDelivery string           `dynamodbav:"expected_delivery,omitempty"`
	RejectionReason  string           `dynamodbav:"rejection_reason,omitempty"`
	Attachments      []attachmentItem `dynamodbav:"attachments,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	ApprovedAt  string `dynamodbav:"approved_at,omitempty"`
	PurchasedAt string `dynamodbav:"purchased_at,omitempty"`
	ReceivedAt  string `dynamodbav:"received_at,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// RequisitionDynamoRepository persists Requisition entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: requester_email-index (PK: requester_email, lowercased)

type RequisitionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRequisitionRepository = (*RequisitionDynamoRepository)(nil)

func NewRequisitionDynamoRepository(ddb DynamoAPI) *RequisitionDynamoRepository {
	return &RequisitionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUISITIONS_TABLE", defaultRequisitionsTableName),
	}
}

func (r *RequisitionDynamoRepository) Create(ctx context.Context, req entities.Requisition) (entities.Requisition, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toRequisitionItem(req), condAbsent, "id"); err != nil {
		return entities.Requisition{}, err
	}
	return req, nil
}

func (r *RequisitionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Requisition, error) {
	it, found, err := getItem[requisitionItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Requisition{}, err
	}
	return fromRequisitionItem(it), nil
}

// List queries the requester index when an email is given and scans otherwise.
// The status filter is applied server-side as a FilterExpression.
func (r *RequisitionDynamoRepository) List(ctx context.Context, filter interfaces.RequisitionFilter) ([]entities.Requisition, error) {
	var (
		names  = map[string]string{}
		values = map[string]types.AttributeValue{}
		expr   *string
		rows   []requisitionItem
		err    error
	)
	if filter.Status != "" {
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		expr = aws.String("#status = :status")
	}

	if email := strings.ToLower(strings.TrimSpace(filter.RequesterEmail)); email != "" {
		names["#email"] = "requester_email"
		values[":email"] = &types.AttributeValueMemberS{Value: email}
		rows, err = queryAll[requisitionItem](ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(requisitionsRequesterIndex),
			KeyConditionExpression:    aws.String("#email = :email"),
			FilterExpression:          expr,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
	} else {
		in := &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: expr,
		}
		if expr != nil {
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		rows, err = scanAll[requisitionItem](ctx, r.ddb, in)
	}
	if err != nil {
		return nil, err
	}

	items := make([]entities.Requisition, 0, len(rows))
	for _, it := range rows {
		items = append(items, fromRequisitionItem(it))
	}
	return items, nil
}

// Update replaces the stored record. A missing id yields a zero Requisition.
func (r *RequisitionDynamoRepository) Update(ctx context.Context, req entities.Requisition) (entities.Requisition, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toRequisitionItem(req), condPresent, "id"); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Requisition{}, nil
		}
		return entities.Requisition{}, err
	}
	return req, nil
}

func toRequisitionItem(r entities.Requisition) requisitionItem {
	attachments := make([]attachmentItem, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, attachmentItem{
			Name:        a.Name,
			Key:         a.Key,
			URL:         a.URL,
			ContentType: a.ContentType,
			Size:        a.Size,
		})
	}
	return requisitionItem{
		ID:                  r.ID,
		Protocol:            r.Protocol,
		ItemName:            r.ItemName,
		Quantity:            r.Quantity,
		Unit:                r.Unit,
		Specifications:      r.Specifications,
		Justification:       r.Justification,
		PurchaseReason:      r.PurchaseReason,
		Priority:            string(r.Priority),
		CostCenter:          r.CostCenter,
		RequesterID:         r.Requester.ID,
		RequesterName:       r.Requester.Name,
		RequesterEmail:      strings.ToLower(strings.TrimSpace(r.Requester.Email)),
		RequesterPhone:      r.Requester.Phone,
		RequesterDepartment: r.Requester.Department,
		RequesterCompany:    r.Requester.Company,
		Status:              string(r.Status),
		BuyerName:           r.BuyerName,
		SupplierName:        r.SupplierName,
		BudgetedValue:       formatNullDecimal(r.BudgetedValue),
		FinalValue:          formatNullDecimal(r.FinalValue),
		ExpectedDelivery:    formatTimePtr(r.ExpectedDelivery),
		RejectionReason:     r.RejectionReason,
		Attachments:         attachments,
		CreatedAt:           formatTime(r.CreatedAt),
		ApprovedAt:          formatTimePtr(r.ApprovedAt),
		PurchasedAt:         formatTimePtr(r.PurchasedAt),
		ReceivedAt:          formatTimePtr(r.ReceivedAt),
		UpdatedAt:           formatTime(r.UpdatedAt),
	}
}

func fromRequisitionItem(it requisitionItem) entities.Requisition {
	var attachments []entities.Attachment
	for _, a := range it.Attachments {
		attachments = append(attachments, entities.Attachment{
			Name:        a.Name,
			Key:         a.Key,
			URL:         a.URL,
			ContentType: a.ContentType,
			Size:        a.Size,
		})
	}
	return entities.Requisition{
		ID:             it.ID,
		Protocol:       it.Protocol,
		ItemName:       it.ItemName,
		Quantity:       it.Quantity,
		Unit:           it.Unit,
		Specifications: it.Specifications,
		Justification:  it.Justification,
		PurchaseReason: it.PurchaseReason,
		Priority:       entities.Priority(it.Priority),
		CostCenter:     it.CostCenter,
		Requester: entities.Requester{
			ID:         it.RequesterID,
			Name:       it.RequesterName,
			Email:      it.RequesterEmail,
			Phone:      it.RequesterPhone,
			Department: it.RequesterDepartment,
			Company:    it.RequesterCompany,
		},
		Status:           entities.RequisitionStatus(it.Status),
		BuyerName:        it.BuyerName,
		SupplierName:     it.SupplierName,
		BudgetedValue:    parseNullDecimal(it.BudgetedValue),
		FinalValue:       parseNullDecimal(it.FinalValue),
		ExpectedDelivery: parseTimePtr(it.ExpectedDelivery),
		RejectionReason:  it.RejectionReason,
		Attachments:      attachments,
		CreatedAt:        parseTime(it.CreatedAt),
		ApprovedAt:       parseTimePtr(it.ApprovedAt),
		PurchasedAt:      parseTimePtr(it.PurchasedAt),
		ReceivedAt:       parseTimePtr(it.ReceivedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
