package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gruzdev-dev/game-store/core/domain"
	"github.com/gruzdev-dev/game-store/core/ports"
	"github.com/gruzdev-dev/game-store/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testEnv struct {
	router *mux.Router
	users  *ports.MockUserService
	games  *ports.MockGameService
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)

	users := ports.NewMockUserService(ctrl)
	games := ports.NewMockGameService(ctrl)
	m := metrics.New()
	log := zap.NewNop()

	router := mux.NewRouter()
	mw := NewMiddleware(log, m)
	router.Use(mw.Observe, mw.Recover)
	NewHandler(users, games, m, log).RegisterRoutes(router)

	return &testEnv{router: router, users: users, games: games}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Message
}

func TestHandler_Users(t *testing.T) {
	juan := domain.User{ID: "1", Name: "Juan", Surname: "Pérez"}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*ports.MockUserService)
		expectedStatus int
		validate       func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/users",
			setupMocks: func(s *ports.MockUserService) {
				s.EXPECT().List(gomock.Any()).Return([]domain.User{juan}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var users []domain.User
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
				assert.Equal(t, []domain.User{juan}, users)
			},
		},
		{
			name:   "get existing",
			method: http.MethodGet,
			path:   "/users/1",
			setupMocks: func(s *ports.MockUserService) {
				s.EXPECT().GetByID(gomock.Any(), "1").Return(&juan, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"id":"1","nombre":"Juan","apellido":"Pérez"}`, rec.Body.String())
			},
		},
		{
			name:   "get absent",
			method: http.MethodGet,
			path:   "/users/999",
			setupMocks: func(s *ports.MockUserService) {
				s.EXPECT().GetByID(gomock.Any(), "999").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "user not found")
			},
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/users",
			body:   `{"id":"2","nombre":"María","apellido":"García"}`,
			setupMocks: func(s *ports.MockUserService) {
				s.EXPECT().
					Create(gomock.Any(), domain.User{ID: "2", Name: "María", Surname: "García"}).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "user created", decodeMessage(t, rec))
			},
		},
		{
			name:           "create without id",
			method:         http.MethodPost,
			path:           "/users",
			body:           `{"nombre":"María"}`,
			setupMocks:     func(*ports.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create with malformed body",
			method:         http.MethodPost,
			path:           "/users",
			body:           `{"id":`,
			setupMocks:     func(*ports.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create failure is a 500",
			method: http.MethodPost,
			path:   "/users",
			body:   `{"id":"2"}`,
			setupMocks: func(s *ports.MockUserService) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.NotContains(t, rec.Body.String(), "boom")
			},
		},
		{
			name:   "update passes only supplied fields",
			method: http.MethodPut,
			path:   "/users/1",
			body:   `{"nombre":"Juan Carlos"}`,
			setupMocks: func(s *ports.MockUserService) {
				s.EXPECT().
					Update(gomock.Any(), "1", gomock.Any()).
					DoAndReturn(func(_ any, _ string, patch domain.UserPatch) error {
						require.NotNil(t, patch.Name)
						assert.Equal(t, "Juan Carlos", *patch.Name)
						assert.Nil(t, patch.Surname)
						return nil
					})
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "user updated", decodeMessage(t, rec))
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/users/1",
			setupMocks: func(s *ports.MockUserService) {
				s.EXPECT().Delete(gomock.Any(), "1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "user deleted", decodeMessage(t, rec))
			},
		},
		{
			name:   "delete failure is a 500",
			method: http.MethodDelete,
			path:   "/users/1",
			setupMocks: func(s *ports.MockUserService) {
				s.EXPECT().Delete(gomock.Any(), "1").Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setupMocks(env.users)

			rec := env.do(tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestHandler_Games(t *testing.T) {
	fifa := domain.Game{ID: "1", Name: "FIFA 21", Console: "PS4", Stock: 10}
	notFound := fmt.Errorf("%w: id %q", domain.ErrGameNotFound, "999")

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*ports.MockGameService)
		expectedStatus int
		validate       func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/games",
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().List(gomock.Any()).Return([]domain.Game{fifa}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `[{"id":"1","nombre":"FIFA 21","consola":"PS4","cantidad":10}]`, rec.Body.String())
			},
		},
		{
			name:   "list failure",
			method: http.MethodGet,
			path:   "/games",
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "get existing",
			method: http.MethodGet,
			path:   "/games/1",
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().GetByID(gomock.Any(), "1").Return(&fifa, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/games/999",
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().GetByID(gomock.Any(), "999").Return(nil, notFound)
			},
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "game not found")
			},
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/games",
			body:   `{"id":"1","nombre":"FIFA 21","consola":"PS4","cantidad":10}`,
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().Create(gomock.Any(), fifa).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "game created", decodeMessage(t, rec))
			},
		},
		{
			name:   "create failure is always a 500",
			method: http.MethodPost,
			path:   "/games",
			body:   `{"id":"1"}`,
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(notFound)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "create without id",
			method:         http.MethodPost,
			path:           "/games",
			body:           `{"nombre":"FIFA 21"}`,
			setupMocks:     func(*ports.MockGameService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/games/1",
			body:   `{"cantidad":3}`,
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().
					Update(gomock.Any(), "1", gomock.Any()).
					DoAndReturn(func(_ any, _ string, patch domain.GamePatch) error {
						require.NotNil(t, patch.Stock)
						assert.Equal(t, 3, *patch.Stock)
						assert.Nil(t, patch.Name)
						assert.Nil(t, patch.Console)
						return nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update missing",
			method: http.MethodPut,
			path:   "/games/999",
			body:   `{"nombre":"x"}`,
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().Update(gomock.Any(), "999", gomock.Any()).Return(notFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/games/1",
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().Delete(gomock.Any(), "1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "game deleted", decodeMessage(t, rec))
			},
		},
		{
			name:   "delete missing",
			method: http.MethodDelete,
			path:   "/games/999",
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().Delete(gomock.Any(), "999").Return(notFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "sell",
			method: http.MethodPost,
			path:   "/games/1/sell",
			body:   `{"cantidad":5}`,
			setupMocks: func(s *ports.MockGameService) {
				sold := fifa
				sold.Stock = 5
				s.EXPECT().Sell(gomock.Any(), "1", 5).Return(&sold, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp SellResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "sale completed", resp.Message)
				assert.Equal(t, 5, resp.Game.Stock)
			},
		},
		{
			name:   "sell insufficient stock",
			method: http.MethodPost,
			path:   "/games/1/sell",
			body:   `{"cantidad":11}`,
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().Sell(gomock.Any(), "1", 11).
					Return(nil, fmt.Errorf("%w: requested 11", domain.ErrInsufficientStock))
			},
			expectedStatus: http.StatusConflict,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "insufficient stock")
			},
		},
		{
			name:   "sell missing game",
			method: http.MethodPost,
			path:   "/games/999/sell",
			body:   `{"cantidad":1}`,
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().Sell(gomock.Any(), "999", 1).Return(nil, notFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "sell negative quantity",
			method: http.MethodPost,
			path:   "/games/1/sell",
			body:   `{"cantidad":-1}`,
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().Sell(gomock.Any(), "1", -1).Return(nil, domain.ErrInvalidQuantity)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "sell without quantity",
			method:         http.MethodPost,
			path:           "/games/1/sell",
			body:           `{}`,
			setupMocks:     func(*ports.MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "cantidad is required")
			},
		},
		{
			name:   "sell unexpected failure",
			method: http.MethodPost,
			path:   "/games/1/sell",
			body:   `{"cantidad":1}`,
			setupMocks: func(s *ports.MockGameService) {
				s.EXPECT().Sell(gomock.Any(), "1", 1).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setupMocks(env.games)

			rec := env.do(tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestHandler_UnknownRouteAndMethod(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/consoles", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, env.do(http.MethodPatch, "/games/1", "").Code)
}
