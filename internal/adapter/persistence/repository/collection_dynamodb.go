package repository

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"planpaineis_propostas/internal/usecase/interfaces"
	"planpaineis_propostas/pkg"
)

// itemCodec maps an entity E to its DynamoDB item I.
type itemCodec[E any, I any] struct {
	toItem   func(E) I
	fromItem func(I) E
	id       func(E) int64
	// stamp assigns the id of a new record and its creation time when unset.
	stamp func(e E, id int64, now time.Time) E
}

// collection is a DynamoDB table with numeric ids allocated by a counter.
//
// Table requirements:
//   - PK: id (number)
type collection[E any, I any] struct {
	ddb   DynamoAPI
	ids   *CounterAllocator
	table string
	name  string
	codec itemCodec[E, I]
}

// listAll scans the whole table and returns records in id order.
func (c *collection[E, I]) listAll(ctx context.Context) ([]E, error) {
	p := dynamodb.NewScanPaginator(c.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(c.table),
		ConsistentRead: aws.Bool(true),
	})

	type row struct {
		id int64
		e  E
	}
	var rows []row
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, pkg.NewStoreError("list", c.name, err)
		}
		var items []I
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, pkg.NewStoreError("list", c.name, err)
		}
		for _, it := range items {
			e := c.codec.fromItem(it)
			rows = append(rows, row{id: c.codec.id(e), e: e})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].id < rows[j].id })

	out := make([]E, len(rows))
	for i, r := range rows {
		out[i] = r.e
	}
	return out, nil
}

// insertMany allocates one contiguous id block and writes every record. Records
// written before a failure stay written.
func (c *collection[E, I]) insertMany(ctx context.Context, es []E) ([]E, error) {
	if len(es) == 0 {
		return []E{}, nil
	}
	first, err := c.ids.Reserve(ctx, c.name, len(es))
	if err != nil {
		return nil, pkg.NewStoreError("insert", c.name, err)
	}

	now := time.Now().UTC()
	out := make([]E, 0, len(es))
	for i, e := range es {
		e = c.codec.stamp(e, first+int64(i), now)
		av, err := attributevalue.MarshalMap(c.codec.toItem(e))
		if err != nil {
			return nil, pkg.NewStoreError("insert", c.name, err)
		}
		_, err = c.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(c.table),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			log.Printf("[repository][dynamodb] insert failed collection=%s written=%d err=%v", c.name, len(out), err)
			return nil, pkg.NewStoreError("insert", c.name, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// update replaces every attribute but id and created_at.
func (c *collection[E, I]) update(ctx context.Context, e E) (E, error) {
	var zero E
	av, err := attributevalue.MarshalMap(c.codec.toItem(e))
	if err != nil {
		return zero, pkg.NewStoreError("update", c.name, err)
	}
	expr, names, values := setExpression(av, "id", "created_at")

	out, err := c.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(c.table),
		Key:                       idKey(c.codec.id(e)),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, pkg.NewStoreError("update", c.name, interfaces.ErrRecordNotFound)
		}
		return zero, pkg.NewStoreError("update", c.name, err)
	}

	var it I
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return zero, pkg.NewStoreError("update", c.name, err)
	}
	return c.codec.fromItem(it), nil
}

func (c *collection[E, I]) delete(ctx context.Context, id int64) error {
	_, err := c.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(c.table),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return pkg.NewStoreError("delete", c.name, interfaces.ErrRecordNotFound)
		}
		return pkg.NewStoreError("delete", c.name, err)
	}
	return nil
}
