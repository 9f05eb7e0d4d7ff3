package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CounterAllocator hands out integer ids from a counters table.
//
// Table requirements:
//   - PK: name (string)
//
// Each collection has one row; "seq" holds the last id handed out.
type CounterAllocator struct {
	ddb   DynamoAPI
	table string
}

func NewCounterAllocator(ddb DynamoAPI, table string) *CounterAllocator {
	return &CounterAllocator{ddb: ddb, table: table}
}

// Reserve atomically allocates n consecutive ids for name and returns the
// first one.
func (c *CounterAllocator) Reserve(ctx context.Context, name string, n int) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("reserve %d ids", n)
	}
	out, err := c.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(c.table),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression:         aws.String("ADD #seq :n"),
		ExpressionAttributeNames: map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberN{Value: strconv.Itoa(n)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s returned no seq", name)
	}
	last, err := strconv.ParseInt(seq.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter %s: %w", name, err)
	}
	return last - int64(n) + 1, nil
}
