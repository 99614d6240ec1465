package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/getmorediners/backend/internal/directory"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SelectionStore keeps each owner's working selection between requests.
// It is session state, not a durable record.
type SelectionStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*directory.Selection, error)
	Save(ctx context.Context, userID uuid.UUID, sel *directory.Selection) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// RedisSelectionStore holds selections as JSON id lists with a sliding TTL.
type RedisSelectionStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisSelectionStore(client redis.Cmdable, ttl time.Duration) *RedisSelectionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSelectionStore{client: client, ttl: ttl}
}

func selectionKey(userID uuid.UUID) string {
	return fmt.Sprintf("selection:%s", userID)
}

func (s *RedisSelectionStore) Load(ctx context.Context, userID uuid.UUID) (*directory.Selection, error) {
	key := selectionKey(userID)
	data, err := s.client.GetEx(ctx, key, s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return directory.NewSelection(), nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode selection: %w", err)
	}
	return directory.NewSelection(ids...), nil
}

func (s *RedisSelectionStore) Save(ctx context.Context, userID uuid.UUID, sel *directory.Selection) error {
	if sel.Count() == 0 {
		return s.Delete(ctx, userID)
	}
	data, err := json.Marshal(sel.IDs())
	if err != nil {
		return err
	}
	return s.client.Set(ctx, selectionKey(userID), data, s.ttl).Err()
}

func (s *RedisSelectionStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, selectionKey(userID)).Err()
}

// MemorySelectionStore is the in-process store used in tests and when no
// redis is configured.
type MemorySelectionStore struct {
	mu   sync.Mutex
	sets map[uuid.UUID][]string
}

func NewMemorySelectionStore() *MemorySelectionStore {
	return &MemorySelectionStore{sets: make(map[uuid.UUID][]string)}
}

func (s *MemorySelectionStore) Load(_ context.Context, userID uuid.UUID) (*directory.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return directory.NewSelection(s.sets[userID]...), nil
}

func (s *MemorySelectionStore) Save(_ context.Context, userID uuid.UUID, sel *directory.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sel.Count() == 0 {
		delete(s.sets, userID)
		return nil
	}
	s.sets[userID] = sel.IDs()
	return nil
}

func (s *MemorySelectionStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, userID)
	return nil
}
