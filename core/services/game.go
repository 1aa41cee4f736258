package services

import (
	"context"

	"github.com/gruzdev-dev/game-store/core/domain"
	"github.com/gruzdev-dev/game-store/core/ports"
)

type GameService struct {
	repo ports.GameRepository
}

func NewGameService(repo ports.GameRepository) *GameService {
	return &GameService{
		repo: repo,
	}
}

func (s *GameService) List(ctx context.Context) ([]domain.Game, error) {
	return s.repo.List(ctx)
}

func (s *GameService) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GameService) Create(ctx context.Context, game domain.Game) error {
	return s.repo.Create(ctx, game)
}

func (s *GameService) Update(ctx context.Context, id string, patch domain.GamePatch) error {
	return s.repo.Update(ctx, id, patch)
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Sell forwards to the repository, which owns the stock check.
func (s *GameService) Sell(ctx context.Context, id string, quantity int) (*domain.Game, error) {
	return s.repo.Sell(ctx, id, quantity)
}
