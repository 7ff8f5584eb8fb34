package memory

import (
	"context"
	"sync"

	"github.com/breatheright/health-system/internal/core/domain"
)

// UserRepository is a map-backed user store. The seed set is written once at
// startup and read-only afterwards; the lock exists for the seeding window.
type UserRepository struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.User
	order  []int64
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[int64]*domain.User), nextID: 1}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}

	clone := *user
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	return nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.byID[id]; u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// ListByRole returns users with the given role in insertion order.
func (r *UserRepository) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		if u := r.byID[id]; u.Role == role {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}
