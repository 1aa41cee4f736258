package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gruzdev-dev/game-store/core/domain"
	"github.com/gruzdev-dev/game-store/core/ports"
	"github.com/gruzdev-dev/game-store/pkg/logger"
	"github.com/gruzdev-dev/game-store/pkg/metrics"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	userService ports.UserService
	gameService ports.GameService
	metrics     *metrics.Metrics
	log         *zap.Logger
}

func NewHandler(
	userService ports.UserService,
	gameService ports.GameService,
	m *metrics.Metrics,
	log *zap.Logger,
) *Handler {
	return &Handler{
		userService: userService,
		gameService: gameService,
		metrics:     m,
		log:         log.With(zap.String("component", "http_handler")),
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	router.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", h.UpdateUser).Methods(http.MethodPut)
	router.HandleFunc("/users/{id}", h.DeleteUser).Methods(http.MethodDelete)

	router.HandleFunc("/games", h.ListGames).Methods(http.MethodGet)
	router.HandleFunc("/games", h.CreateGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}", h.GetGame).Methods(http.MethodGet)
	router.HandleFunc("/games/{id}", h.UpdateGame).Methods(http.MethodPut)
	router.HandleFunc("/games/{id}", h.DeleteGame).Methods(http.MethodDelete)
	router.HandleFunc("/games/{id}/sell", h.SellGame).Methods(http.MethodPost)
}

// MessageResponse confirms a state-changing request.
type MessageResponse struct {
	Message string `json:"message" example:"game created"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Message: msg})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// internalError logs err and hides it from the client.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromCtx(r.Context(), h.log).Error(msg, zap.Error(err))
	http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
}
