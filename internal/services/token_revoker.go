package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenRevoker keeps signed-out token ids until their natural expiry.
type RedisTokenRevoker struct {
	client redis.Cmdable
}

func NewRedisTokenRevoker(client redis.Cmdable) *RedisTokenRevoker {
	return &RedisTokenRevoker{client: client}
}

func revokedKey(tokenID string) string {
	return "revoked:" + tokenID
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, revokedKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MemoryTokenRevoker is the in-process revoker used in tests.
type MemoryTokenRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryTokenRevoker() *MemoryTokenRevoker {
	return &MemoryTokenRevoker{revoked: make(map[string]time.Time)}
}

func (r *MemoryTokenRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (r *MemoryTokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	until, ok := r.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(r.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
