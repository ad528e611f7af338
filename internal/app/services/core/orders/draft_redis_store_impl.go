package orders

import (
	"context"
	"fmt"
	"time"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type draftRedisStore struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewDraftRedisStore(redisRepository contracts.RedisRepository, ttl time.Duration) DraftStore {
	return &draftRedisStore{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (s *draftRedisStore) Load(ctx context.Context, sessionID string) (*OrderDraft, error) {
	data, err := s.RedisRepository.Get(ctx, s.key(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var draft OrderDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, exceptions.ErrOrderDraftNotFound(err)
	}
	return &draft, nil
}

func (s *draftRedisStore) Save(ctx context.Context, draft *OrderDraft) error {
	return s.RedisRepository.Set(ctx, s.key(draft.SessionID), draft, s.TTL)
}

func (s *draftRedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, s.key(sessionID))
}

func (s *draftRedisStore) key(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeyOrderDraftFormat, sessionID)
}
