package http

import (
	"net/http"

	"github.com/gruzdev-dev/game-store/core/domain"

	"github.com/gorilla/mux"
)

// ListUsers returns every user.
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 500 {string} string
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.internalError(w, r, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUser returns a single user.
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {string} string
// @Router /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.internalError(w, r, "get user", err)
		return
	}
	if user == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// CreateUser stores a new user.
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body domain.User true "User"
// @Success 201 {object} MessageResponse
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := decodeJSON(r, &user); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if user.ID == "" {
		http.Error(w, domain.ErrInvalidInput.Error()+": id is required", http.StatusBadRequest)
		return
	}

	if err := h.userService.Create(r.Context(), user); err != nil {
		h.internalError(w, r, "create user", err)
		return
	}
	writeMessage(w, http.StatusCreated, "user created")
}

// UpdateUser merges the supplied fields into an existing user. Unknown ids
// are ignored.
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body domain.UserPatch true "Fields to update"
// @Success 200 {object} MessageResponse
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch domain.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userService.Update(r.Context(), mux.Vars(r)["id"], patch); err != nil {
		h.internalError(w, r, "update user", err)
		return
	}
	writeMessage(w, http.StatusOK, "user updated")
}

// DeleteUser removes a user. Unknown ids are ignored.
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 500 {string} string
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.internalError(w, r, "delete user", err)
		return
	}
	writeMessage(w, http.StatusOK, "user deleted")
}
