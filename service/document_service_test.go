package service

import (
	"bytes"
	"context"
	"io"
	"testing"

	"virtual-lawyer/models"
	"virtual-lawyer/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDocumentServiceOpen(t *testing.T) {
	ctx := context.Background()
	docs := &fakeDocumentStore{}
	objects := newMemoryStorage()
	svc := NewDocumentService(DocumentWithStore(docs), DocumentWithStorage(objects), DocumentWithLogger(zaptest.NewLogger(t)))

	id := uuid.New()
	path, err := objects.Upload(ctx, storage.NamespaceDocuments, id, "fir.pdf", bytes.NewReader([]byte("%PDF-1.4 body")))
	require.NoError(t, err)
	require.NoError(t, docs.Create(ctx, &models.Document{ID: id, Filename: "fir.pdf", MimeType: "application/pdf", StoragePath: path}))

	doc, body, err := svc.Open(ctx, id)
	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, "fir.pdf", doc.Filename)
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 body", string(raw))

	_, _, err = svc.Open(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	require.NoError(t, objects.Delete(ctx, path))
	_, _, err = svc.Open(ctx, id)
	assert.ErrorIs(t, err, ErrDocumentNotFound, "record without a stored object")
}

func TestDocumentServiceMissingDependencies(t *testing.T) {
	_, _, err := NewDocumentService().Open(context.Background(), uuid.New())
	assert.Error(t, err)
}
