package repository

import (
	"context"
	"errors"
	"time"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "usuarios"

// ErrUserMissing is returned by UpdatePassword when the id does not exist.
var ErrUserMissing = errors.New("user does not exist")

type userItem struct {
	ID           string   `dynamodbav:"id"`
	Email        string   `dynamodbav:"email"`
	Name         string   `dynamodbav:"name,omitempty"`
	PasswordHash string   `dynamodbav:"password_hash,omitempty"`
	Roles        []string `dynamodbav:"roles,omitempty"`
	UpdatedAt    string   `dynamodbav:"updated_at,omitempty"`
}

// UserDynamoRepository is the privileged credential store. It also answers role checks.
//
// Table requirements:
//   - PK: id (string)

type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var (
	_ interfaces.IUserRepository = (*UserDynamoRepository)(nil)
	_ interfaces.IRoleChecker    = (*UserDynamoRepository)(nil)
)

func NewUserDynamoRepository(ddb DynamoAPI) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
		now:       time.Now,
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	it, found, err := getItem[userItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.User{}, err
	}
	return entities.User{
		ID:           it.ID,
		Email:        it.Email,
		Name:         it.Name,
		PasswordHash: it.PasswordHash,
		Roles:        it.Roles,
		UpdatedAt:    parseTime(it.UpdatedAt),
	}, nil
}

func (r *UserDynamoRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #hash = :hash, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hash":       &types.AttributeValueMemberS{Value: passwordHash},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#hash":       "password_hash",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrUserMissing
		}
		return err
	}
	return nil
}

func (r *UserDynamoRepository) HasRole(ctx context.Context, userID string, role string) (bool, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.HasRole(role), nil
}
