package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nzsnyn/bejalen/models"
)

// GalleryUploadPrefix is where locally stored gallery uploads are served from.
const GalleryUploadPrefix = "/uploads/gallery/"

// UploadStorage stores uploaded gallery images and hands back their public URL.
type UploadStorage interface {
	Name() string
	Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error)
	// Owns reports whether url was produced by this storage.
	Owns(url string) bool
	Delete(ctx context.Context, url string) error
}

func NewUploadStorage(ctx context.Context, cfg *models.AppConfig) (UploadStorage, error) {
	switch cfg.Uploads.Engine {
	case "", "local":
		return NewLocalStorage(cfg.Server.PublicDir), nil
	case "s3":
		return NewS3Storage(ctx, cfg.Uploads.S3)
	default:
		return nil, fmt.Errorf("unsupported uploads engine %q", cfg.Uploads.Engine)
	}
}

// LocalStorage writes uploads below the public directory.
type LocalStorage struct {
	PublicDir string
}

func NewLocalStorage(publicDir string) *LocalStorage {
	return &LocalStorage{PublicDir: publicDir}
}

func (l *LocalStorage) Name() string {
	return "local"
}

func (l *LocalStorage) dir() string {
	return filepath.Join(l.PublicDir, filepath.FromSlash(strings.Trim(GalleryUploadPrefix, "/")))
}

func (l *LocalStorage) Save(_ context.Context, name string, body io.Reader, _ int64, _ string) (string, error) {
	if err := os.MkdirAll(l.dir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	target := filepath.Join(l.dir(), filepath.Base(name))
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return GalleryUploadPrefix + filepath.Base(name), nil
}

func (l *LocalStorage) Owns(url string) bool {
	return strings.HasPrefix(url, GalleryUploadPrefix)
}

func (l *LocalStorage) Delete(_ context.Context, url string) error {
	if !l.Owns(url) {
		return nil
	}
	target := filepath.Join(l.dir(), path.Base(url))
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage puts uploads into a bucket served from PublicBaseURL.
type S3Storage struct {
	client        s3API
	bucket        string
	prefix        string
	publicBaseURL string
}

func NewS3Storage(ctx context.Context, cfg models.S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.PublicBaseURL == "" {
		return nil, errors.New("s3 uploads need bucket and public_base_url")
	}
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("issue with getting aws credentials: %w", err)
	}
	return newS3Storage(s3.NewFromConfig(awsCfg), cfg), nil
}

func newS3Storage(client s3API, cfg models.S3Config) *S3Storage {
	return &S3Storage{
		client:        client,
		bucket:        cfg.Bucket,
		prefix:        strings.Trim(cfg.Prefix, "/"),
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}
}

func (s *S3Storage) Name() string {
	return "s3"
}

func (s *S3Storage) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

func (s *S3Storage) Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error) {
	key := s.key(path.Base(name))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload '%s': %w", key, err)
	}
	return s.publicBaseURL + "/" + key, nil
}

func (s *S3Storage) Owns(url string) bool {
	return strings.HasPrefix(url, s.publicBaseURL+"/")
}

func (s *S3Storage) Delete(ctx context.Context, url string) error {
	if !s.Owns(url) {
		return nil
	}
	key := strings.TrimPrefix(url, s.publicBaseURL+"/")
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete '%s': %w", key, err)
	}
	return nil
}
