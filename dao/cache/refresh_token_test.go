package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) (*RefreshTokenStorage, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return NewRefreshTokenStorage(rds), mr
}

func TestRefreshTokenConsumeOnce(t *testing.T) {
	s, mr := newStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "abc", 42, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("scoops:auth:refresh:abc"))

	uid, err := s.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)

	_, err = s.Consume(ctx, "abc")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
}

func TestRefreshTokenExpires(t *testing.T) {
	s, mr := newStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "ttl", 7, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := s.Consume(ctx, "ttl")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
}

func TestRefreshTokenRevoke(t *testing.T) {
	s, _ := newStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "gone", 1, time.Hour))
	require.NoError(t, s.Revoke(ctx, "gone"))

	_, err := s.Consume(ctx, "gone")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
}
