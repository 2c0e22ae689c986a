// Package downloads lists downloadable study material for authenticated
// users. When an S3-compatible backend is configured, each item carries a
// short-lived presigned GET URL; otherwise the list is metadata only.
package downloads

import (
	"context"
	"time"

	"github.com/acadex/acadex/internal/logging"
	sc "github.com/acadex/acadex/internal/server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Item is one downloadable resource. URL is empty when object storage is not
// configured or presigning failed.
type Item struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url,omitempty"`
}

type Service struct {
	config *sc.Config
	logger logging.Logger
}

func NewService(cfg *sc.Config, logger logging.Logger) *Service {
	return &Service{config: cfg, logger: logger.With("module", "downloads")}
}

func (s *Service) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

func (s *Service) presignedGetURL(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// objectKeys maps download IDs to their object storage keys.
var objectKeys = map[int64]string{
	1: "materials/physics-formula-handbook.pdf",
	2: "materials/aits-paper-1.pdf",
}

// List returns the downloads available to the given user. Presign failures
// degrade to URL-less items rather than failing the request.
func (s *Service) List(ctx context.Context, userID int64) []Item {
	items := []Item{
		{ID: 1, Title: "Physics Formula Handbook", Type: "pdf"},
		{ID: 2, Title: "All India Test Series - Paper 1", Type: "test"},
	}

	if s.config.S3BaseEndpoint == "" {
		return items
	}

	for i := range items {
		key, ok := objectKeys[items[i].ID]
		if !ok {
			continue
		}
		url, err := s.presignedGetURL(ctx, key)
		if err != nil {
			s.logger.Warn(ctx, "presign failed", "key", key, "error", err.Error())
			continue
		}
		items[i].URL = url
	}

	return items
}
