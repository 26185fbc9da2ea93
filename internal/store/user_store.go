package store

import (
	"sync"

	"github.com/pizzastore/pizzastore-be/internal/models"
)

// UserStoreProvider defines the interface for user storage.
type UserStoreProvider interface {
	Exists(username string) bool
	Get(username string) (models.User, error)
	Insert(user models.User) error
	Delete(username string) error
}

// UserStore is an in-memory user store keyed by username. Safe for
// concurrent use.
type UserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{users: map[string]models.User{}}
}

// Exists reports whether a user with the given username is present.
func (s *UserStore) Exists(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[username]
	return ok
}

// Get retrieves a single user by username.
func (s *UserStore) Get(username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// Insert stores a new user. The username must not be taken; a duplicate is
// rejected with ErrConflict and leaves the store untouched.
func (s *UserStore) Insert(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return ErrConflict
	}
	s.users[user.Username] = user
	return nil
}

// Delete removes a user by username.
func (s *UserStore) Delete(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; !ok {
		return ErrNotFound
	}
	delete(s.users, username)
	return nil
}
