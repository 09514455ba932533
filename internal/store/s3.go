// Package store publishes catalog artifacts to S3-compatible object storage.
package store

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/agentstation/ttscatalog/pkg/errors"
	"github.com/agentstation/ttscatalog/pkg/logging"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// DefaultKey is the object key used when none is configured.
const DefaultKey = "model_catalog.json"

// Config holds S3 connection settings.
type Config struct {
	Endpoint  string // host[:port], no scheme
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Key       string
	UseSSL    bool
}

// Enabled reports whether enough is configured to attempt publishing.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != "" && strings.TrimSpace(c.Bucket) != ""
}

// Validate checks required settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.NewValidationError("s3_endpoint", c.Endpoint, "is required")
	}
	if strings.Contains(c.Endpoint, "://") {
		return errors.NewValidationError("s3_endpoint", c.Endpoint, "must be host[:port] without a scheme")
	}
	if strings.TrimSpace(c.AccessKey) == "" || strings.TrimSpace(c.SecretKey) == "" {
		return errors.NewValidationError("s3_access_key", "", "access key and secret key are required")
	}
	if strings.TrimSpace(c.Bucket) == "" {
		return errors.NewValidationError("s3_bucket", c.Bucket, "is required")
	}
	return nil
}

// Location identifies a published object.
type Location struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	ETag   string `json:"etag"`
	Size   int64  `json:"size"`
}

// String renders the location as an s3 URI.
func (l Location) String() string {
	return "s3://" + l.Bucket + "/" + l.Key
}

// S3Store uploads artifacts to a single bucket.
type S3Store struct {
	client *minio.Client
	bucket string
	region string
	key    string

	initOnce sync.Once
	initErr  error
}

// NewS3Store creates a store. No network traffic happens until Publish.
func NewS3Store(cfg Config) (*S3Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = DefaultRegion
	}
	key := ObjectKey(cfg.Key)
	if key == "" {
		key = DefaultKey
	}

	client, err := minio.New(strings.TrimSpace(cfg.Endpoint), &minio.Options{
		Creds:  credentials.NewStaticV4(strings.TrimSpace(cfg.AccessKey), strings.TrimSpace(cfg.SecretKey), ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, errors.NewConfigError("store", "init s3 client", err)
	}

	return &S3Store{
		client: client,
		bucket: strings.TrimSpace(cfg.Bucket),
		region: region,
		key:    key,
	}, nil
}

// Key returns the configured object key.
func (s *S3Store) Key() string {
	return s.key
}

func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		logging.Ctx(ctx).Info().Str("bucket", s.bucket).Msg("Creating bucket")
		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// Publish uploads content under the configured key.
func (s *S3Store) Publish(ctx context.Context, content []byte) (Location, error) {
	return s.PublishAs(ctx, s.key, content)
}

// PublishAs uploads content under key.
func (s *S3Store) PublishAs(ctx context.Context, key string, content []byte) (Location, error) {
	key = ObjectKey(key)
	if key == "" {
		return Location{}, errors.NewValidationError("key", key, "is required")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return Location{}, errors.WrapResource("ensure", "bucket", s.bucket, err)
	}
	if content == nil {
		content = []byte{}
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return Location{}, errors.WrapResource("publish", "catalog", key, err)
	}

	loc := Location{Bucket: s.bucket, Key: key, ETag: info.ETag, Size: int64(len(content))}
	logging.Ctx(ctx).Info().
		Str("location", loc.String()).
		Int64("size", loc.Size).
		Msg("Published catalog")
	return loc, nil
}

// ObjectKey normalizes a key: surrounding space and leading slashes are dropped.
func ObjectKey(key string) string {
	return strings.TrimLeft(strings.TrimSpace(key), "/")
}
