package database

import (
	"context"
	"errors"
	"time"

	"fieldtech/internal/config"
	"fieldtech/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 2 * time.Minute

// ConnectDynamoDB creates a DynamoDB client. A non-empty Endpoint points it
// at a local DynamoDB (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// TableAPI is the part of *dynamodb.Client EnsureTables uses.
type TableAPI interface {
	dynamodb.DescribeTableAPIClient
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	UpdateTimeToLive(ctx context.Context, params *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error)
}

// EnsureTables creates the gateway tables that do not exist yet. It is meant
// for local DynamoDB and demos; production tables are provisioned elsewhere.
func EnsureTables(ctx context.Context, ddb TableAPI, cfg config.DynamoDBConfig) error {
	specs := []struct {
		name    string
		key     string
		keyType types.ScalarAttributeType
		ttl     string
	}{
		{cfg.ServiceOrders, "id", types.ScalarAttributeTypeN, ""},
		{cfg.Clients, "id", types.ScalarAttributeTypeN, ""},
		{cfg.RequestIDs, "request_id", types.ScalarAttributeTypeS, "expires_at"},
	}

	for _, s := range specs {
		created, err := createTable(ctx, ddb, s.name, s.key, s.keyType)
		if err != nil {
			return err
		}
		if !created {
			continue
		}
		logger.Info(ctx, "dynamodb table created", "table", s.name)

		if s.ttl == "" {
			continue
		}
		_, err = ddb.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
			TableName: aws.String(s.name),
			TimeToLiveSpecification: &types.TimeToLiveSpecification{
				AttributeName: aws.String(s.ttl),
				Enabled:       aws.Bool(true),
			},
		})
		if err != nil {
			// DynamoDB Local accepts but some emulators reject TTL updates.
			logger.Warn(ctx, "could not enable ttl", "table", s.name, "error", err)
		}
	}
	return nil
}

func createTable(ctx context.Context, ddb TableAPI, name, key string, keyType types.ScalarAttributeType) (bool, error) {
	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err == nil {
		return false, nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return false, err
	}

	_, err = ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{{AttributeName: aws.String(key), AttributeType: keyType}},
		KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String(key), KeyType: types.KeyTypeHash}},
		BillingMode:          types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return false, nil
		}
		return false, err
	}

	waiter := dynamodb.NewTableExistsWaiter(ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, tableWaitTimeout); err != nil {
		return false, err
	}
	return true, nil
}
