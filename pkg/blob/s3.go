// Package blob stores binary artifacts (uploaded documents, answer audio,
// rendered brief PDFs) in S3.
//
// Keys are tenant-prefixed so retention jobs and IAM policies can operate on
// a firm prefix alone. When blob storage is disabled the store rejects writes
// with ErrDisabled and the callers degrade (briefs keep their JSON form, audio
// answers are transcribed but not archived).
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ErrDisabled is returned when blob storage is turned off in configuration.
var ErrDisabled = errors.New("blob: disabled")

// Store wraps an S3 bucket.
type Store struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucket     string
	presignTTL time.Duration
	disabled   bool
}

// Config holds S3 settings.
type Config struct {
	Bucket     string
	Region     string
	PresignTTL time.Duration
	Disabled   bool
}

// NewStore creates a blob store using the default AWS credential chain.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Disabled {
		return &Store{disabled: true}, nil
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("blob: bucket is required")
	}
	if cfg.PresignTTL <= 0 {
		cfg.PresignTTL = time.Hour
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("blob: load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &Store{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		presignTTL: cfg.PresignTTL,
	}, nil
}

// Enabled reports whether the store accepts writes.
func (s *Store) Enabled() bool {
	return s != nil && !s.disabled
}

// BuildKey derives the object key for an artifact:
//
//	firms/{firmID}/cases/{caseID}/YYYY/MM/DD/{uid8}_{safeName}
//
// The date prefix keeps listings cheap for retention sweeps; the random
// prefix prevents collisions between same-named uploads.
func BuildKey(firmID, caseID, filename string, now time.Time) string {
	uid8 := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return path.Join(
		"firms", firmID,
		"cases", caseID,
		now.UTC().Format("2006/01/02"),
		uid8+"_"+safeName(filename),
	)
}

// safeName strips path components and replaces anything outside
// [A-Za-z0-9._-] so user-supplied filenames cannot shape the key.
func safeName(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "file"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r > unicode.MaxASCII:
			b.WriteByte('_')
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// UploadBytes writes an object and returns its key.
func (s *Store) UploadBytes(ctx context.Context, key string, data []byte, contentType string) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("blob: upload %q: %w", key, err)
	}
	return nil
}

// DownloadBytes reads an object in full.
func (s *Store) DownloadBytes(ctx context.Context, key string) ([]byte, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("blob: download %q: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("blob: read %q: %w", key, err)
	}
	return data, nil
}

// PresignGet returns a time-limited download URL for an object.
func (s *Store) PresignGet(ctx context.Context, key string) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return "", fmt.Errorf("blob: presign %q: %w", key, err)
	}
	return req.URL, nil
}
