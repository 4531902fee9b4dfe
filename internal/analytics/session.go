package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionTTL = 30 * time.Minute

// Sessions hands out browsing-session identifiers. A session is created
// lazily on first access and kept alive by a sliding TTL in Redis; nothing
// ever tears one down explicitly.
type Sessions struct {
	rdb *redis.Client
}

func NewSessions(rdb *redis.Client) *Sessions {
	return &Sessions{rdb: rdb}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Ensure returns a valid session id, reusing the caller's if it is still
// live and minting a fresh one otherwise. Either way the TTL slides.
func (s *Sessions) Ensure(ctx context.Context, existing string) (string, error) {
	if existing != "" {
		ok, err := s.rdb.Expire(ctx, sessionKey(existing), sessionTTL).Result()
		if err != nil {
			return "", err
		}
		if ok {
			return existing, nil
		}
	}

	id := uuid.NewString()
	if err := s.rdb.Set(ctx, sessionKey(id), time.Now().Format(time.RFC3339), sessionTTL).Err(); err != nil {
		return "", err
	}
	return id, nil
}
