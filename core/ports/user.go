package ports

import (
	"context"

	"github.com/gruzdev-dev/game-store/core/domain"
)

//go:generate mockgen -source=user.go -destination=user_mocks.go -package=ports UserRepository,UserService

// UserRepository owns the user collection. Lookups of a missing id return a
// nil user, and updates or deletes of a missing id are silently ignored.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) error
	Update(ctx context.Context, id string, patch domain.UserPatch) error
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) error
	Update(ctx context.Context, id string, patch domain.UserPatch) error
	Delete(ctx context.Context, id string) error
}
