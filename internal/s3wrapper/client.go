// Package s3wrapper holds sofa images in an S3-compatible bucket. Catalog
// rows only store object keys; the bytes live here.
package s3wrapper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const tempFilePrefix = "couch_matcher_"

//go:generate moq -out client_moq_test.go . downloader uploader client
type downloader interface {
	Download(io.WriterAt, *s3.GetObjectInput, ...func(*s3manager.Downloader)) (n int64, err error)
}

type uploader interface {
	UploadWithContext(aws.Context, *s3manager.UploadInput, ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

type client interface {
	HeadBucket(*s3.HeadBucketInput) (*s3.HeadBucketOutput, error)
	DeleteObject(object *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error)
}

type BucketClient struct {
	client     client
	downloader downloader
	uploader   uploader

	bucket         string
	tempFilePrefix string

	log *slog.Logger
}

var ErrNoAttempts = errors.New("invalid number of attempts, must be > 0")

func NewClient(c client, d downloader, u uploader, log *slog.Logger, bucket, tempFilePrefix string) *BucketClient {
	return &BucketClient{
		client:         c,
		downloader:     d,
		uploader:       u,
		bucket:         bucket,
		tempFilePrefix: tempFilePrefix,
		log:            log.WithGroup("S3"),
	}
}

func NewFromSecrets(key, secret, endpoint, region, bucket string, insecure bool, log *slog.Logger) (*BucketClient, error) {
	s3Config := &aws.Config{
		S3ForcePathStyle: aws.Bool(true),
		Credentials:      credentials.NewStaticCredentials(key, secret, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		DisableSSL:       aws.Bool(insecure),
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("creating s3 session, %w", err)
	}
	s3Client := s3.New(sess)
	s3Downloader := s3manager.NewDownloader(sess)
	s3Uploader := s3manager.NewUploader(sess)

	return NewClient(s3Client, s3Downloader, s3Uploader, log, bucket, tempFilePrefix), nil
}

func (c *BucketClient) CheckConnectivity(attempts int, dur time.Duration) error {
	if attempts < 1 {
		return fmt.Errorf("checking connectivity, passed %d, %w", attempts, ErrNoAttempts)
	}
	var err error
	for i := 0; i < attempts; i++ {
		_, err = c.client.HeadBucket(&s3.HeadBucketInput{Bucket: aws.String(c.bucket)})
		if err != nil {
			time.Sleep(dur)
			continue
		}
		return nil
	}

	return fmt.Errorf("failed to initialize bucket client, %w", err)
}

// Upload stores the file at path under the given object key.
func (c *BucketClient) Upload(ctx context.Context, key, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening image file for upload, %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			c.log.Error("closing uploaded file", slog.String("file", path), slog.String("err", err.Error()))
		}
	}()

	_, err = c.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("uploading image file %s to s3, %w", key, err)
	}

	return nil
}

// Download copies the object into a local temp file. The caller owns the file
// and must remove it, even when an error is returned alongside it.
func (c *BucketClient) Download(key string) (*os.File, error) {
	f, err := os.CreateTemp("", c.tempFilePrefix)
	if err != nil {
		return nil, fmt.Errorf("creating local image file, %w", err)
	}

	_, err = c.downloader.Download(f, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return f, fmt.Errorf("downloading image file from s3, %w", err)
	}

	return f, nil
}

func (c *BucketClient) DeleteFile(_ context.Context, key string) error {
	_, err := c.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting file %s from s3, %w", key, err)
	}

	return nil
}
