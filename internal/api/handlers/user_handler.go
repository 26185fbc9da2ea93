package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/pizzastore/pizzastore-be/internal/models"
	"github.com/pizzastore/pizzastore-be/internal/store"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	users    store.UserStoreProvider
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStoreProvider) *UserHandler {
	return &UserHandler{users: users, validate: validator.New()}
}

// Create handles new user registration.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(user); err != nil {
		http.Error(w, "Invalid user: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.users.Insert(user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			http.Error(w, "This username is taken.", http.StatusConflict)
			return
		}
		log.Error().Err(err).Str("username", user.Username).Msg("Failed to create user")
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Get handles retrieving a user by username.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	user, err := h.users.Get(username)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Failed to get user")
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// Delete handles removing a user by username.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := h.users.Delete(username); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Failed to delete user")
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}
