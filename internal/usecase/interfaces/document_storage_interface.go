package interfaces

import (
	"context"
	"io"
)

// IDocumentStorage abstracts the object store holding uploaded documents.
type IDocumentStorage interface {
	Put(ctx context.Context, objectKey string, r io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, objectKey string) (string, error)
}
