package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"planpaineis_propostas/internal/usecase/interfaces"
	"planpaineis_propostas/pkg"
)

// S3API is the part of *s3.Client used for uploads.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3AssetStorage uploads assets to a flat bucket namespace keyed by upload
// time in milliseconds plus the original extension.
type S3AssetStorage struct {
	client        S3API
	bucket        string
	region        string
	publicBaseURL string
	now           func() time.Time
}

var _ interfaces.IAssetStorage = (*S3AssetStorage)(nil)

// NewS3AssetStorage returns public URLs under publicBaseURL, or virtual-hosted
// S3 URLs when it is empty.
func NewS3AssetStorage(client S3API, bucket, region, publicBaseURL string) *S3AssetStorage {
	return &S3AssetStorage{
		client:        client,
		bucket:        bucket,
		region:        region,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

func (s *S3AssetStorage) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", &pkg.UploadError{FileName: fileName, Err: err}
	}
	key := objectKey(s.now(), fileName)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Printf("[storage][s3] upload failed file=%s key=%s err=%v", fileName, key, err)
		return "", &pkg.UploadError{FileName: fileName, Err: err}
	}

	url := s.publicURL(key)
	log.Printf("[storage][s3] upload success file=%s url=%s", fileName, url)
	return url, nil
}

func (s *S3AssetStorage) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func objectKey(now time.Time, fileName string) string {
	return fmt.Sprintf("%d%s", now.UnixMilli(), strings.ToLower(filepath.Ext(fileName)))
}
