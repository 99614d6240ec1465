package services

import (
	"context"
	"sync"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/directory"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SelectionSnapshot is what the client sees of a selection.
type SelectionSnapshot struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

func snapshot(sel *directory.Selection) SelectionSnapshot {
	return SelectionSnapshot{IDs: sel.IDs(), Count: sel.Count()}
}

type SelectionService struct {
	store SelectionStore
	dir   *directory.Directory
	log   *zap.Logger
	locks *ownerLocks
}

func NewSelectionService(store SelectionStore, dir *directory.Directory, log *zap.Logger) *SelectionService {
	return &SelectionService{store: store, dir: dir, log: log, locks: newOwnerLocks()}
}

// ownerLocks serialises read-modify-write per owner within the process.
// Owners never wait on each other.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*ownerLock
}

type ownerLock struct {
	mu   sync.Mutex
	refs int
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[uuid.UUID]*ownerLock)}
}

// lock blocks until userID's lock is held and returns its release func.
func (l *ownerLocks) lock(userID uuid.UUID) func() {
	l.mu.Lock()
	ol, ok := l.locks[userID]
	if !ok {
		ol = &ownerLock{}
		l.locks[userID] = ol
	}
	ol.refs++
	l.mu.Unlock()

	ol.mu.Lock()
	return func() {
		ol.mu.Unlock()
		l.mu.Lock()
		ol.refs--
		if ol.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}

// held reports how many owners currently hold or wait on a lock.
func (l *ownerLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func (s *SelectionService) Get(ctx context.Context, userID uuid.UUID) (SelectionSnapshot, error) {
	sel, err := s.store.Load(ctx, userID)
	if err != nil {
		return SelectionSnapshot{}, err
	}
	return snapshot(sel), nil
}

// Count is the size of the owner's selection.
func (s *SelectionService) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	sel, err := s.store.Load(ctx, userID)
	if err != nil {
		return 0, err
	}
	return sel.Count(), nil
}

func (s *SelectionService) Toggle(ctx context.Context, userID uuid.UUID, dinerID string) (SelectionSnapshot, error) {
	id, err := uuid.Parse(dinerID)
	if err != nil {
		return SelectionSnapshot{}, apperr.Invalid("id", "must be a diner id")
	}

	return s.update(ctx, userID, func(sel *directory.Selection) {
		sel.Toggle(id.String())
	})
}

// SelectAll replaces the selection with the diners visible under c right
// now. A directory load failure leaves the selection unchanged.
func (s *SelectionService) SelectAll(ctx context.Context, userID uuid.UUID, c directory.FilterCriteria) (SelectionSnapshot, error) {
	if err := c.Validate(); err != nil {
		return SelectionSnapshot{}, err
	}
	visible, err := s.dir.Search(ctx, c)
	if err != nil {
		return SelectionSnapshot{}, err
	}

	return s.update(ctx, userID, func(sel *directory.Selection) {
		sel.SelectAll(directory.IDs(visible))
	})
}

func (s *SelectionService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		s.log.Error("clear selection failed", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (s *SelectionService) update(ctx context.Context, userID uuid.UUID, fn func(*directory.Selection)) (SelectionSnapshot, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	sel, err := s.store.Load(ctx, userID)
	if err != nil {
		return SelectionSnapshot{}, err
	}
	fn(sel)
	if err := s.store.Save(ctx, userID, sel); err != nil {
		return SelectionSnapshot{}, err
	}
	return snapshot(sel), nil
}
