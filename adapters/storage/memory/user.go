package memory

import (
	"context"
	"sync"

	"github.com/gruzdev-dev/game-store/core/domain"
	"github.com/gruzdev-dev/game-store/core/ports"
)

type UserRepo struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		users: make([]domain.User, 0),
	}
}

var _ ports.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// GetByID returns nil when no user has the given id.
func (r *UserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, nil
	}
	user := r.users[i]
	return &user, nil
}

func (r *UserRepo) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)
	return nil
}

func (r *UserRepo) Update(_ context.Context, id string, patch domain.UserPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i != -1 {
		r.users[i] = patch.Apply(r.users[i])
	}
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i != -1 {
		r.users = append(r.users[:i], r.users[i+1:]...)
	}
	return nil
}

// Reset drops every stored user.
func (r *UserRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make([]domain.User, 0)
}

// indexOf must be called with the lock held.
func (r *UserRepo) indexOf(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
