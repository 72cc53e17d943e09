package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Namespace groups stored objects by purpose
type Namespace string

const (
	NamespaceDocuments Namespace = "documents"
	NamespaceExports   Namespace = "exports"
)

// Storage interface for object storage operations
type Storage interface {
	// Upload stores an object and returns its storage path
	Upload(ctx context.Context, ns Namespace, id uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves an object by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes an object by storage path
	Delete(ctx context.Context, storagePath string) error
}

// ErrNotFound is returned by Download when the object does not exist
var ErrNotFound = errors.New("object not found")

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	S3Endpoint   string // Optional, for S3-compatible services
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(ctx context.Context, cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3 bucket is required for S3 storage")
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// ConfigFromEnv reads storage settings from environment variables
func ConfigFromEnv() StorageConfig {
	cfg := StorageConfig{
		Type:         StorageType(os.Getenv("STORAGE_TYPE")),
		LocalPath:    os.Getenv("STORAGE_LOCAL_PATH"),
		S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
		S3Region:     os.Getenv("AWS_REGION"),
		S3Endpoint:   os.Getenv("AWS_S3_ENDPOINT"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
	if cfg.Type == "" {
		cfg.Type = StorageTypeLocal // Default to local for development
	}
	if cfg.LocalPath == "" {
		cfg.LocalPath = "./storage/files"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	return cfg
}

// NewStorageFromEnv creates a storage instance from environment variables
func NewStorageFromEnv(ctx context.Context) (Storage, error) {
	return NewStorage(ctx, ConfigFromEnv())
}

// generateStoragePath generates a unique storage path for an object
func generateStoragePath(ns Namespace, id uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filepath.Base(filename), ext)
	// Sanitize filename
	baseName = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", "..", "_").Replace(baseName)
	if baseName == "" || baseName == "." {
		baseName = "file"
	}

	// Use id to ensure uniqueness
	return fmt.Sprintf("%s/%s/%s_%s%s", ns, id.String()[:2], id.String(), baseName, ext)
}

// getContentType determines content type from filename
func getContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
