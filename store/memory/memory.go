// Package memory provides mutex-guarded in-memory implementations of the
// store interfaces. They enforce the same uniqueness rules as the postgres
// backend and are used by service and handler tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/user/tierlist-go/model"
	"github.com/user/tierlist-go/store"
)

// UserStore is an in-memory store.UserStore.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by id
}

// NewUserStore constructs an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]model.User)}
}

// Insert stores a new user, enforcing username and email uniqueness.
func (s *UserStore) Insert(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return store.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return store.ErrEmailTaken
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.users[u.ID] = *u
	return nil
}

// FindByID loads a user by ID.
func (s *UserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

// FindByUsername loads a user by username.
func (s *UserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

// Update applies the non-nil fields of upd and returns the updated record.
func (s *UserStore) Update(_ context.Context, id string, upd store.UserUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for otherID, other := range s.users {
		if otherID == id {
			continue
		}
		if upd.Username != nil && other.Username == *upd.Username {
			return nil, store.ErrUsernameTaken
		}
		if upd.Email != nil && other.Email == *upd.Email {
			return nil, store.ErrEmailTaken
		}
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	s.users[id] = u
	return &u, nil
}

// TierlistStore is an in-memory store.TierlistStore.
type TierlistStore struct {
	mu    sync.RWMutex
	lists []model.Tierlist
}

// NewTierlistStore constructs an empty in-memory tierlist store.
func NewTierlistStore() *TierlistStore {
	return &TierlistStore{}
}

// Insert stores a new tierlist.
func (s *TierlistStore) Insert(_ context.Context, tl *model.Tierlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tl.CreatedAt.IsZero() {
		tl.CreatedAt = time.Now().UTC()
	}
	s.lists = append(s.lists, *tl)
	return nil
}

// FindByID loads a tierlist by ID.
func (s *TierlistStore) FindByID(_ context.Context, id string) (*model.Tierlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tl := range s.lists {
		if tl.ID == id {
			out := tl
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

// FindByOwner lists all tierlists owned by userID, newest first.
func (s *TierlistStore) FindByOwner(_ context.Context, userID string) ([]model.Tierlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Tierlist, 0)
	for i := len(s.lists) - 1; i >= 0; i-- {
		if s.lists[i].UserID == userID {
			out = append(out, s.lists[i])
		}
	}
	return out, nil
}

// Len reports how many tierlists are stored. Test helper.
func (s *TierlistStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists)
}
