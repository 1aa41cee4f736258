package http

import (
	"errors"
	"net/http"

	"github.com/gruzdev-dev/game-store/core/domain"
	"github.com/gruzdev-dev/game-store/pkg/logger"
	"github.com/gruzdev-dev/game-store/pkg/metrics"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type SellRequest struct {
	Quantity *int `json:"cantidad" example:"5"`
}

type SellResponse struct {
	Message string      `json:"message" example:"sale completed"`
	Game    domain.Game `json:"game"`
}

// ListGames returns the whole inventory.
// @Summary List games
// @Tags Games
// @Produce json
// @Success 200 {array} domain.Game
// @Failure 500 {string} string
// @Router /games [get]
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.List(r.Context())
	if err != nil {
		h.internalError(w, r, "list games", err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

// GetGame returns a single game.
// @Summary Get game
// @Tags Games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /games/{id} [get]
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.gameError(w, r, "get game", err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// CreateGame adds a game to the inventory.
// @Summary Create game
// @Tags Games
// @Accept json
// @Produce json
// @Param game body domain.Game true "Game"
// @Success 201 {object} MessageResponse
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /games [post]
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var game domain.Game
	if err := decodeJSON(r, &game); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if game.ID == "" {
		http.Error(w, domain.ErrInvalidInput.Error()+": id is required", http.StatusBadRequest)
		return
	}

	if err := h.gameService.Create(r.Context(), game); err != nil {
		h.internalError(w, r, "create game", err)
		return
	}
	writeMessage(w, http.StatusCreated, "game created")
}

// UpdateGame merges the supplied fields into an existing game.
// @Summary Update game
// @Tags Games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param game body domain.GamePatch true "Fields to update"
// @Success 200 {object} MessageResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /games/{id} [put]
func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	var patch domain.GamePatch
	if err := decodeJSON(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.gameService.Update(r.Context(), mux.Vars(r)["id"], patch); err != nil {
		h.gameError(w, r, "update game", err)
		return
	}
	writeMessage(w, http.StatusOK, "game updated")
}

// DeleteGame removes a game from the inventory.
// @Summary Delete game
// @Tags Games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /games/{id} [delete]
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.gameService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.gameError(w, r, "delete game", err)
		return
	}
	writeMessage(w, http.StatusOK, "game deleted")
}

// SellGame takes units out of stock.
// @Summary Sell game units
// @Tags Games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param sale body SellRequest true "Units to sell"
// @Success 200 {object} SellResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 409 {string} string
// @Failure 500 {string} string
// @Router /games/{id}/sell [post]
func (h *Handler) SellGame(w http.ResponseWriter, r *http.Request) {
	var req SellRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity == nil {
		http.Error(w, domain.ErrInvalidInput.Error()+": cantidad is required", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	game, err := h.gameService.Sell(r.Context(), id, *req.Quantity)
	if err != nil {
		h.recordRejection(err)
		h.gameError(w, r, "sell game", err)
		return
	}

	h.metrics.RecordSale(*req.Quantity)
	logger.FromCtx(r.Context(), h.log).Info("game_sold",
		zap.String("game_id", id),
		zap.Int("quantity", *req.Quantity),
		zap.Int("stock_left", game.Stock),
	)
	writeJSON(w, http.StatusOK, SellResponse{Message: "sale completed", Game: *game})
}

// gameError maps inventory failures to status codes. Anything it does not
// recognise is a 500.
func (h *Handler) gameError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInsufficientStock):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.internalError(w, r, msg, err)
	}
}

func (h *Handler) recordRejection(err error) {
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		h.metrics.RecordSellRejection(metrics.ReasonNotFound)
	case errors.Is(err, domain.ErrInsufficientStock):
		h.metrics.RecordSellRejection(metrics.ReasonInsufficientStock)
	case errors.Is(err, domain.ErrInvalidQuantity):
		h.metrics.RecordSellRejection(metrics.ReasonInvalidQuantity)
	}
}
