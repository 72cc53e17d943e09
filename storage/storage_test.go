package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStoragePath(t *testing.T) {
	id := uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301")

	path := generateStoragePath(NamespaceDocuments, id, "my case file.pdf")
	assert.Equal(t, "documents/3f/3f2504e0-4f89-11d3-9a0c-0305e82c3301_my_case_file.pdf", path)

	path = generateStoragePath(NamespaceExports, id, "../../etc/passwd")
	assert.True(t, strings.HasPrefix(path, "exports/3f/"))
	assert.NotContains(t, path, "..")
}

func TestGetContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", getContentType("a.PDF"))
	assert.Equal(t, "text/csv", getContentType("queries.csv"))
	assert.Equal(t, "application/octet-stream", getContentType("blob"))
}

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := s.Upload(ctx, NamespaceExports, uuid.New(), "queries.csv", strings.NewReader("a,b\n"))
	require.NoError(t, err)

	rc, err := s.Download(ctx, path)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(body))

	require.NoError(t, s.Delete(ctx, path))
	require.NoError(t, s.Delete(ctx, path), "deleting twice is fine")

	_, err = s.Download(ctx, path)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStorageRejectsEscapes(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Download(context.Background(), "../outside.txt")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestNewStorageUnknownType(t *testing.T) {
	_, err := NewStorage(context.Background(), StorageConfig{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewStorage(context.Background(), StorageConfig{Type: StorageTypeS3})
	assert.Error(t, err)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("STORAGE_LOCAL_PATH", "")
	t.Setenv("AWS_REGION", "")

	cfg := ConfigFromEnv()
	assert.Equal(t, StorageTypeLocal, cfg.Type)
	assert.Equal(t, "./storage/files", cfg.LocalPath)
	assert.Equal(t, "us-east-1", cfg.S3Region)
}
