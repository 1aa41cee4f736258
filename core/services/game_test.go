package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gruzdev-dev/game-store/core/domain"
	"github.com/gruzdev-dev/game-store/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testGameID  = "1"
	testMissing = "999"
)

func testGame() domain.Game {
	return domain.Game{ID: testGameID, Name: "FIFA 21", Console: "PS4", Stock: 10}
}

func TestGameService_List(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*ports.MockGameRepository)
		expected      []domain.Game
		expectedError error
	}{
		{
			name: "success path",
			setupMocks: func(repo *ports.MockGameRepository) {
				repo.EXPECT().List(gomock.Any()).Return([]domain.Game{testGame()}, nil)
			},
			expected: []domain.Game{testGame()},
		},
		{
			name: "repository error is forwarded",
			setupMocks: func(repo *ports.MockGameRepository) {
				repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectedError: errors.New("storage error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ports.NewMockGameRepository(ctrl)
			tt.setupMocks(repo)

			games, err := NewGameService(repo).List(context.Background())
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, games)
		})
	}
}

func TestGameService_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		setupMocks    func(*ports.MockGameRepository)
		expectedError error
	}{
		{
			name: "success path",
			id:   testGameID,
			setupMocks: func(repo *ports.MockGameRepository) {
				game := testGame()
				repo.EXPECT().GetByID(gomock.Any(), testGameID).Return(&game, nil)
			},
		},
		{
			name: "not found is forwarded unchanged",
			id:   testMissing,
			setupMocks: func(repo *ports.MockGameRepository) {
				repo.EXPECT().
					GetByID(gomock.Any(), testMissing).
					Return(nil, fmt.Errorf("%w: id %q", domain.ErrGameNotFound, testMissing))
			},
			expectedError: domain.ErrGameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ports.NewMockGameRepository(ctrl)
			tt.setupMocks(repo)

			game, err := NewGameService(repo).GetByID(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, game)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testGame(), *game)
		})
	}
}

func TestGameService_CreateUpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ports.NewMockGameRepository(ctrl)
	service := NewGameService(repo)
	ctx := context.Background()

	name := "FIFA 22"
	patch := domain.GamePatch{Name: &name}

	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), testGame()).Return(nil),
		repo.EXPECT().Update(gomock.Any(), testGameID, patch).Return(nil),
		repo.EXPECT().Delete(gomock.Any(), testGameID).Return(nil),
		repo.EXPECT().Delete(gomock.Any(), testGameID).Return(domain.ErrGameNotFound),
	)

	require.NoError(t, service.Create(ctx, testGame()))
	require.NoError(t, service.Update(ctx, testGameID, patch))
	require.NoError(t, service.Delete(ctx, testGameID))
	assert.ErrorIs(t, service.Delete(ctx, testGameID), domain.ErrGameNotFound)
}

func TestGameService_Sell(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		quantity       int
		setupMocks     func(*ports.MockGameRepository)
		expectedError  error
		validateResult func(*testing.T, *domain.Game)
	}{
		{
			name:     "success path",
			id:       testGameID,
			quantity: 5,
			setupMocks: func(repo *ports.MockGameRepository) {
				game := testGame()
				game.Stock = 5
				repo.EXPECT().Sell(gomock.Any(), testGameID, 5).Return(&game, nil)
			},
			validateResult: func(t *testing.T, game *domain.Game) {
				require.NotNil(t, game)
				assert.Equal(t, 5, game.Stock)
			},
		},
		{
			name:     "insufficient stock",
			id:       testGameID,
			quantity: 11,
			setupMocks: func(repo *ports.MockGameRepository) {
				repo.EXPECT().Sell(gomock.Any(), testGameID, 11).Return(nil, domain.ErrInsufficientStock)
			},
			expectedError: domain.ErrInsufficientStock,
		},
		{
			name:     "game not found",
			id:       testMissing,
			quantity: 1,
			setupMocks: func(repo *ports.MockGameRepository) {
				repo.EXPECT().Sell(gomock.Any(), testMissing, 1).Return(nil, domain.ErrGameNotFound)
			},
			expectedError: domain.ErrGameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ports.NewMockGameRepository(ctrl)
			tt.setupMocks(repo)

			game, err := NewGameService(repo).Sell(context.Background(), tt.id, tt.quantity)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, game)
				return
			}
			require.NoError(t, err)
			if tt.validateResult != nil {
				tt.validateResult(t, game)
			}
		})
	}
}
