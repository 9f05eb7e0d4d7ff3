package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"planpaineis_propostas/internal/infrastructure/config"
)

// NewAWSConfig builds the SDK config shared by the DynamoDB and S3 clients.
//
// STORE_ENDPOINT overrides the DynamoDB endpoint and S3_ENDPOINT, when set,
// the S3 one; both accept local emulators (dynamodb-local, minio).
func NewAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	// Local emulators do not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey(), cfg.SecretKey(), "")

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		switch {
		case service == dynamodb.ServiceID && cfg.StoreEndpoint != "":
			return aws.Endpoint{URL: cfg.StoreEndpoint, SigningRegion: region, HostnameImmutable: true}, nil
		case service == s3.ServiceID && cfg.S3Endpoint != "":
			return aws.Endpoint{URL: cfg.S3Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}

func ConnectDynamoDB(awsCfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg)
}

// ConnectS3 uses path-style addressing when a custom endpoint is configured.
func ConnectS3(awsCfg aws.Config, cfg config.Config) *s3.Client {
	access, secret := cfg.S3Keys()
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3Endpoint != ""
		o.Credentials = credentials.NewStaticCredentialsProvider(access, secret, "")
	})
}
