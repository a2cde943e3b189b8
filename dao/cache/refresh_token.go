package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenStorage keeps opaque refresh tokens in redis, keyed by token value,
// with the owning user id as payload.
type RefreshTokenStorage struct {
	redis *redis.Client
}

func NewRefreshTokenStorage(rds *redis.Client) *RefreshTokenStorage {
	return &RefreshTokenStorage{redis: rds}
}

func (s *RefreshTokenStorage) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	return s.redis.Set(ctx, s.key(token), userID, ttl).Err()
}

// Consume reads and deletes the token atomically so a refresh token works once.
func (s *RefreshTokenStorage) Consume(ctx context.Context, token string) (int64, error) {
	val, err := s.redis.GetDel(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrRefreshTokenNotFound
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (s *RefreshTokenStorage) Revoke(ctx context.Context, token string) error {
	return s.redis.Del(ctx, s.key(token)).Err()
}

func (s *RefreshTokenStorage) key(token string) string {
	return fmt.Sprintf("scoops:auth:refresh:%s", token)
}
