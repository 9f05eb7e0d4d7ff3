package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTable map[string]map[string]types.AttributeValue

// fakeDynamo is an in-memory DynamoAPI that understands the expressions the
// repositories emit. Scan returns pages of two items in descending key order.
type fakeDynamo struct {
	mu      sync.Mutex
	tables  map[string]fakeTable
	puts    int
	failPut int
	scanErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]fakeTable{}}
}

func (f *fakeDynamo) table(name string) fakeTable {
	t, ok := f.tables[name]
	if !ok {
		t = fakeTable{}
		f.tables[name] = t
	}
	return t
}

func keyOf(key map[string]types.AttributeValue) string {
	for _, v := range key {
		switch av := v.(type) {
		case *types.AttributeValueMemberN:
			return av.Value
		case *types.AttributeValueMemberS:
			return av.Value
		}
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.failPut > 0 && f.puts == f.failPut {
		return nil, errors.New("throughput exceeded")
	}
	t := f.table(*in.TableName)
	k := keyOf(map[string]types.AttributeValue{"id": in.Item["id"]})
	if _, exists := t[k]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{}
	}
	t[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(*in.TableName)
	k := keyOf(in.Key)

	if strings.HasPrefix(*in.UpdateExpression, "ADD") {
		item, ok := t[k]
		if !ok {
			item = map[string]types.AttributeValue{"name": &types.AttributeValueMemberS{Value: k}}
			t[k] = item
		}
		cur := int64(0)
		if n, ok := item["seq"].(*types.AttributeValueMemberN); ok {
			cur, _ = strconv.ParseInt(n.Value, 10, 64)
		}
		add, _ := strconv.ParseInt(in.ExpressionAttributeValues[":n"].(*types.AttributeValueMemberN).Value, 10, 64)
		seq := &types.AttributeValueMemberN{Value: strconv.FormatInt(cur+add, 10)}
		item["seq"] = seq
		return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{"seq": seq}}, nil
	}

	item, ok := t[k]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	next := make(map[string]types.AttributeValue, len(item))
	for a, v := range item {
		next[a] = v
	}
	for placeholder, attr := range in.ExpressionAttributeNames {
		if placeholder == "#id" {
			continue
		}
		next[attr] = in.ExpressionAttributeValues[":v"+strings.TrimPrefix(placeholder, "#f")]
	}
	t[k] = next
	return &dynamodb.UpdateItemOutput{Attributes: next}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(*in.TableName)
	k := keyOf(in.Key)
	if _, ok := t[k]; !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	delete(t, k)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	t := f.table(*in.TableName)
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })

	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN).Value)
	}
	end := start + 2
	if end > len(keys) {
		end = len(keys)
	}
	out := &dynamodb.ScanOutput{}
	for _, k := range keys[start:end] {
		out.Items = append(out.Items, t[k])
	}
	if end < len(keys) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	return out, nil
}
