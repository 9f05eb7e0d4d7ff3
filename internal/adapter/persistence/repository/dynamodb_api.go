package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoAPI is the part of *dynamodb.Client the repositories call.
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables names the DynamoDB tables backing each collection.
type Tables struct {
	Profiles string
	Products string
	Covers   string
	Counters string
}

func DefaultTables() Tables {
	return Tables{
		Profiles: "sales_profiles",
		Products: "products",
		Covers:   "cover_images",
		Counters: "counters",
	}
}
