package sessions

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrTokenNotFound = errors.New("token not found")

const keyPrefix = "session:"

// Store issues opaque bearer tokens and resolves them back to user ids.
// Tokens live in redis under session:<token> with a sliding TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Issue(ctx context.Context, userID uint64) (string, error) {
	token := uuid.NewString()
	key := keyPrefix + token
	if err := s.rdb.Set(ctx, key, strconv.FormatUint(userID, 10), s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) Resolve(ctx context.Context, token string) (uint64, error) {
	key := keyPrefix + token
	v, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, ErrTokenNotFound
	}
	if err != nil {
		return 0, err
	}
	// refresh the TTL on every authenticated request
	s.rdb.Expire(ctx, key, s.ttl)
	return strconv.ParseUint(v, 10, 64)
}

func (s *Store) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
