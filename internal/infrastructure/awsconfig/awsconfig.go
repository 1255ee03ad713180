package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	appconfig "requisicoes/internal/infrastructure/config"
)

// Load builds the shared AWS config used by the DynamoDB, S3 and SES clients.
//
// Static credentials are always set: local DynamoDB does not validate them but the
// SDK requires some.
func Load(ctx context.Context, opts appconfig.AWSOptions) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(creds),
	)
}
