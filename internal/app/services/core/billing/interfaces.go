package billing

import (
	"context"
)

// SessionStore keeps open billing sessions between requests.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}
