package ports

import (
	"context"

	"github.com/gruzdev-dev/game-store/core/domain"
)

//go:generate mockgen -source=game.go -destination=game_mocks.go -package=ports GameRepository,GameService

// GameRepository owns the game inventory. Every operation on a missing id
// fails with domain.ErrGameNotFound.
type GameRepository interface {
	List(ctx context.Context) ([]domain.Game, error)
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	Create(ctx context.Context, game domain.Game) error
	Update(ctx context.Context, id string, patch domain.GamePatch) error
	Delete(ctx context.Context, id string) error
	Sell(ctx context.Context, id string, quantity int) (*domain.Game, error)
}

type GameService interface {
	List(ctx context.Context) ([]domain.Game, error)
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	Create(ctx context.Context, game domain.Game) error
	Update(ctx context.Context, id string, patch domain.GamePatch) error
	Delete(ctx context.Context, id string) error
	Sell(ctx context.Context, id string, quantity int) (*domain.Game, error)
}
