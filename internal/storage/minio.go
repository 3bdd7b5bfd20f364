package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/katalvlaran/primespiral/internal/config"
	"github.com/katalvlaran/primespiral/internal/logging"
)

// ObjectAPI is the subset of *minio.Client the sink needs.
type ObjectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MinIOSink uploads artifacts to bucket/prefix+name.
type MinIOSink struct {
	api    ObjectAPI
	bucket string
	prefix string
	region string
	logger logging.Logger
}

// NewMinIOSink dials the endpoint in cfg and makes sure the bucket exists.
func NewMinIOSink(ctx context.Context, cfg config.StorageConfig, log logging.Logger) (*MinIOSink, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: minio client for %q: %w", cfg.Endpoint, err)
	}

	s := NewMinIOSinkWithAPI(client, cfg.Bucket, cfg.Prefix, cfg.Region, log)
	if err := s.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	log.Info("minio sink ready",
		logging.String("endpoint", cfg.Endpoint),
		logging.String("bucket", cfg.Bucket),
		logging.Bool("ssl", cfg.UseSSL))

	return s, nil
}

// NewMinIOSinkWithAPI wraps an existing client; tests pass a mock.
func NewMinIOSinkWithAPI(api ObjectAPI, bucket, prefix, region string, log logging.Logger) *MinIOSink {
	if log == nil {
		log = logging.NewNopLogger()
	}

	return &MinIOSink{api: api, bucket: bucket, prefix: prefix, region: region, logger: log}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *MinIOSink) EnsureBucket(ctx context.Context) error {
	ok, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("storage: check bucket %q: %w", s.bucket, err)
	}
	if ok {
		return nil
	}
	if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("storage: create bucket %q: %w", s.bucket, err)
	}
	s.logger.Info("created bucket", logging.String("bucket", s.bucket))

	return nil
}

// Key returns the object key for name.
func (s *MinIOSink) Key(name string) string { return path.Join(s.prefix, name) }

// Save buffers write's output and uploads it as one object.
func (s *MinIOSink) Save(ctx context.Context, name string, write func(io.Writer) error) (Artifact, error) {
	if err := checkName(name); err != nil {
		return Artifact{}, err
	}
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return Artifact{}, fmt.Errorf("storage: write %s: %w", name, err)
	}

	return s.put(ctx, name, &buf, int64(buf.Len()))
}

// UploadFile uploads an existing local file under its base name.
func (s *MinIOSink) UploadFile(ctx context.Context, file string) (Artifact, error) {
	f, err := os.Open(file)
	if err != nil {
		return Artifact{}, fmt.Errorf("storage: %w", err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return Artifact{}, fmt.Errorf("storage: %w", err)
	}

	return s.put(ctx, filepath.Base(file), f, st.Size())
}

func (s *MinIOSink) put(ctx context.Context, name string, r io.Reader, size int64) (Artifact, error) {
	key := s.Key(name)
	info, err := s.api.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: ContentType(name),
	})
	if err != nil {
		return Artifact{}, fmt.Errorf("storage: put %s/%s: %w", s.bucket, key, err)
	}
	s.logger.Debug("uploaded artifact",
		logging.String("bucket", s.bucket),
		logging.String("key", key),
		logging.Int64("size", info.Size))

	return Artifact{Name: name, Location: "s3://" + s.bucket + "/" + key, Size: info.Size}, nil
}
