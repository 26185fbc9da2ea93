package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/pizzastore/pizzastore-be/internal/models"
	"github.com/pizzastore/pizzastore-be/internal/store"
)

// PizzaHandler handles HTTP requests for pizza records.
type PizzaHandler struct {
	pizzas   store.PizzaStoreProvider
	validate *validator.Validate
}

// NewPizzaHandler creates a new PizzaHandler.
func NewPizzaHandler(pizzas store.PizzaStoreProvider) *PizzaHandler {
	return &PizzaHandler{pizzas: pizzas, validate: validator.New()}
}

// GetAll handles the request to list all pizzas.
func (h *PizzaHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	pizzas := h.pizzas.List()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pizzas)
}

// Get handles the request to get a single pizza by its id.
func (h *PizzaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Pizza not found", http.StatusNotFound)
		return
	}

	pizza, err := h.pizzas.Get(id)
	if err != nil {
		http.Error(w, "Pizza not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pizza)
}

// Create handles the request to create a new pizza. The store assigns the
// id; a request carrying a non-zero id is rejected.
func (h *PizzaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var pizza models.Pizza
	if err := json.NewDecoder(r.Body).Decode(&pizza); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(pizza); err != nil {
		http.Error(w, "Invalid pizza: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.pizzas.Insert(pizza)
	if err != nil {
		if errors.Is(err, store.ErrExplicitID) {
			http.Error(w, "Explicit IDs are not allowed. Remove the ID from the request body and try again.", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Failed to create pizza")
		http.Error(w, "Failed to create pizza", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", fmt.Sprintf("/pizza/%d", created.ID))
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// Update handles the request to replace the name and description of an
// existing pizza. The id never changes.
func (h *PizzaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Pizza not found", http.StatusNotFound)
		return
	}

	var pizza models.Pizza
	if err := json.NewDecoder(r.Body).Decode(&pizza); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(pizza); err != nil {
		http.Error(w, "Invalid pizza: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.pizzas.Update(id, pizza); err != nil {
		http.Error(w, "Pizza not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles the request to delete a pizza by its id.
func (h *PizzaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Pizza not found", http.StatusNotFound)
		return
	}

	if err := h.pizzas.Delete(id); err != nil {
		http.Error(w, "Pizza not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}
