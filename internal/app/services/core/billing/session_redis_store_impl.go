package billing

import (
	"context"
	"fmt"
	"time"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionRedisStore struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewSessionRedisStore(redisRepository contracts.RedisRepository, ttl time.Duration) SessionStore {
	return &sessionRedisStore{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (s *sessionRedisStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.RedisRepository.Get(ctx, s.key(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrBillingSessionNotFound(err)
	}
	return &session, nil
}

func (s *sessionRedisStore) Save(ctx context.Context, session *Session) error {
	return s.RedisRepository.Set(ctx, s.key(session.SessionID), session, s.TTL)
}

func (s *sessionRedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, s.key(sessionID))
}

func (s *sessionRedisStore) key(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeyBillingSessFormat, sessionID)
}
