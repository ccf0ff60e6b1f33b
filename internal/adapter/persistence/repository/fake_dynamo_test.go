package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table store that understands the handful of
// condition expressions the repositories send.
type fakeDynamo struct {
	mu        sync.Mutex
	tables    map[string]map[string]map[string]types.AttributeValue
	beforePut func(in *dynamodb.PutItemInput)
	puts      int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func keyOf(item map[string]types.AttributeValue) string {
	for _, name := range []string{"id", "request_id"} {
		switch v := item[name].(type) {
		case *types.AttributeValueMemberN:
			return v.Value
		case *types.AttributeValueMemberS:
			return v.Value
		}
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.tables[aws.ToString(in.TableName)][keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.beforePut != nil {
		f.beforePut(in)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++

	table := aws.ToString(in.TableName)
	if f.tables[table] == nil {
		f.tables[table] = map[string]map[string]types.AttributeValue{}
	}
	key := keyOf(in.Item)
	existing := f.tables[table][key]

	if ok, err := conditionHolds(aws.ToString(in.ConditionExpression), existing, in.ExpressionAttributeValues); err != nil {
		return nil, err
	} else if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	f.tables[table][key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []map[string]types.AttributeValue
	for _, it := range f.tables[aws.ToString(in.TableName)] {
		items = append(items, it)
	}
	return &dynamodb.ScanOutput{Items: items, Count: int32(len(items))}, nil
}

func conditionHolds(expr string, existing map[string]types.AttributeValue, values map[string]types.AttributeValue) (bool, error) {
	switch expr {
	case "":
		return true, nil
	case "#version = :version AND #state = :state":
		if existing == nil {
			return false, nil
		}
		return numberOf(existing["version"]) == numberOf(values[":version"]) &&
			stringOf(existing["state_"]) == stringOf(values[":state"]), nil
	case "attribute_not_exists(#request_id) OR #expires_at < :now":
		if existing == nil {
			return true, nil
		}
		return numberOf(existing["expires_at"]) < numberOf(values[":now"]), nil
	}
	return false, fmt.Errorf("fake dynamo: unsupported condition %q", expr)
}

func numberOf(v types.AttributeValue) int64 {
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	i, _ := strconv.ParseInt(n.Value, 10, 64)
	return i
}

func stringOf(v types.AttributeValue) string {
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return ""
	}
	return s.Value
}
