package database

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient creates the DynamoDB client. endpoint is optional and points the
// client at a local instance (e.g. http://dynamodb:8000).
func NewDynamoDBClient(cfg aws.Config, endpoint string) *dynamodb.Client {
	endpoint = strings.TrimSpace(endpoint)
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
