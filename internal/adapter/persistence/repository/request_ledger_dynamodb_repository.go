package repository

import (
	"context"
	"strconv"
	"time"

	"fieldtech/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type requestIDItem struct {
	RequestID string `dynamodbav:"request_id"`
	Operation string `dynamodbav:"operation"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// RequestLedgerDynamoRepository records client request ids.
//
// Table requirements:
//   - PK: request_id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so an expired id still on the table
// can be claimed again.
type RequestLedgerDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IRequestLedger = (*RequestLedgerDynamoRepository)(nil)

func NewRequestLedgerDynamoRepository(ddb dynamoAPI, tableName string) *RequestLedgerDynamoRepository {
	if tableName == "" {
		tableName = DefaultTables().RequestIDs
	}
	return &RequestLedgerDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *RequestLedgerDynamoRepository) Claim(ctx context.Context, requestID, operation string, ttl time.Duration) (bool, error) {
	now := r.now().UTC()
	av, err := attributevalue.MarshalMap(requestIDItem{
		RequestID: requestID,
		Operation: operation,
		CreatedAt: now.Format(time.RFC3339Nano),
		ExpiresAt: now.Add(ttl).Unix(),
	})
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#request_id) OR #expires_at < :now"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
