package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gruzdev-dev/game-store/core/domain"
	"github.com/gruzdev-dev/game-store/core/ports"
)

type GameRepo struct {
	mu    sync.RWMutex
	games []domain.Game
}

func NewGameRepo() *GameRepo {
	return &GameRepo{
		games: make([]domain.Game, 0),
	}
}

var _ ports.GameRepository = (*GameRepo)(nil)

func (r *GameRepo) List(_ context.Context) ([]domain.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Game, len(r.games))
	copy(out, r.games)
	return out, nil
}

func (r *GameRepo) GetByID(_ context.Context, id string) (*domain.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, fmt.Errorf("%w: id %q", domain.ErrGameNotFound, id)
	}
	game := r.games[i]
	return &game, nil
}

func (r *GameRepo) Create(_ context.Context, game domain.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.games = append(r.games, game)
	return nil
}

func (r *GameRepo) Update(_ context.Context, id string, patch domain.GamePatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return fmt.Errorf("%w: cannot update id %q", domain.ErrGameNotFound, id)
	}
	r.games[i] = patch.Apply(r.games[i])
	return nil
}

func (r *GameRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return fmt.Errorf("%w: cannot delete id %q", domain.ErrGameNotFound, id)
	}
	r.games = append(r.games[:i], r.games[i+1:]...)
	return nil
}

// Sell checks and decrements stock under a single write lock so concurrent
// sales of the same game cannot oversell it.
func (r *GameRepo) Sell(_ context.Context, id string, quantity int) (*domain.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, fmt.Errorf("%w: id %q", domain.ErrGameNotFound, id)
	}
	if err := r.games[i].Sell(quantity); err != nil {
		return nil, err
	}
	game := r.games[i]
	return &game, nil
}

// Reset drops every stored game.
func (r *GameRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.games = make([]domain.Game, 0)
}

// indexOf must be called with the lock held.
func (r *GameRepo) indexOf(id string) int {
	for i := range r.games {
		if r.games[i].ID == id {
			return i
		}
	}
	return -1
}
