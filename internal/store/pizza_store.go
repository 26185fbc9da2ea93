package store

import (
	"sync"

	"github.com/pizzastore/pizzastore-be/internal/models"
)

// PizzaStoreProvider defines the interface for pizza storage.
type PizzaStoreProvider interface {
	Get(id int) (models.Pizza, error)
	List() []models.Pizza
	Insert(pizza models.Pizza) (models.Pizza, error)
	Update(id int, pizza models.Pizza) error
	Delete(id int) error
}

// PizzaStore is an in-memory pizza store keyed by id. It is safe for
// concurrent use; id assignment happens under the lock so two concurrent
// inserts can never share an id, and ids are never reused after a delete.
type PizzaStore struct {
	mu     sync.Mutex
	pizzas map[int]models.Pizza
	order  []int
	nextID int
}

// NewPizzaStore creates an empty PizzaStore.
func NewPizzaStore() *PizzaStore {
	return &PizzaStore{
		pizzas: map[int]models.Pizza{},
		nextID: 1,
	}
}

// Get retrieves a single pizza by its id.
func (s *PizzaStore) Get(id int) (models.Pizza, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pizza, ok := s.pizzas[id]
	if !ok {
		return models.Pizza{}, ErrNotFound
	}
	return pizza, nil
}

// List returns all pizzas in insertion order.
func (s *PizzaStore) List() []models.Pizza {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Pizza, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.pizzas[id])
	}
	return out
}

// Insert stores a new pizza and assigns it the next free id. Callers must
// leave the id zero; a pre-set id is rejected with ErrExplicitID.
func (s *PizzaStore) Insert(pizza models.Pizza) (models.Pizza, error) {
	if pizza.ID != 0 {
		return models.Pizza{}, ErrExplicitID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pizza.ID = s.nextID
	s.nextID++
	s.pizzas[pizza.ID] = pizza
	s.order = append(s.order, pizza.ID)
	return pizza, nil
}

// Update replaces the name and description of an existing pizza. The id is
// immutable regardless of what the incoming value carries.
func (s *PizzaStore) Update(id int, pizza models.Pizza) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.pizzas[id]
	if !ok {
		return ErrNotFound
	}
	current.Name = pizza.Name
	current.Description = pizza.Description
	s.pizzas[id] = current
	return nil
}

// Delete removes a pizza by id.
func (s *PizzaStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pizzas[id]; !ok {
		return ErrNotFound
	}
	delete(s.pizzas, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
