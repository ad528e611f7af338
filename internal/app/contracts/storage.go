package contracts

import (
	"context"
)

// ObjectStorage stores rendered label documents.
type ObjectStorage interface {
	PutObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}
