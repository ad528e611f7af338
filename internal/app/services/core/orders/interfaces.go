package orders

import (
	"context"
)

// DraftStore is the autosave hook for in-progress drafts. The workflow does
// not care about the medium; the default implementation is Redis with a TTL.
type DraftStore interface {
	Load(ctx context.Context, sessionID string) (*OrderDraft, error)
	Save(ctx context.Context, draft *OrderDraft) error
	Delete(ctx context.Context, sessionID string) error
}
