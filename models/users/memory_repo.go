package users

import (
	"context"
	"sync"
)

// MemoryRepository backs the authentication handler tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[uint]User
	nextID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[uint]User)}
}

func (r *MemoryRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email, provider string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Email == email && u.Provider == provider {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	r.byID[user.ID] = *user
	return nil
}

func (r *MemoryRepository) Save(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[user.ID] = *user
	return nil
}
