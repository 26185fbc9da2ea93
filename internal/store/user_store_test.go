package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzastore/pizzastore-be/internal/models"
)

func TestUserStoreInsertAndGet(t *testing.T) {
	s := NewUserStore()

	require.NoError(t, s.Insert(models.User{Username: "Tester", Password: "x"}))

	assert.True(t, s.Exists("Tester"))
	got, err := s.Get("Tester")
	require.NoError(t, err)
	assert.Equal(t, models.User{Username: "Tester", Password: "x"}, got)
}

func TestUserStoreInsertConflict(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.Insert(models.User{Username: "Tester", Password: "x"}))

	err := s.Insert(models.User{Username: "Tester", Password: "y"})

	assert.ErrorIs(t, err, ErrConflict)

	// The failed insert must not touch the stored record.
	got, err := s.Get("Tester")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Password)
}

func TestUserStoreGetUnknown(t *testing.T) {
	s := NewUserStore()

	_, err := s.Get("nobody")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.Exists("nobody"))
}

func TestUserStoreDelete(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.Insert(models.User{Username: "Tester"}))

	require.NoError(t, s.Delete("Tester"))

	assert.False(t, s.Exists("Tester"))
	assert.ErrorIs(t, s.Delete("Tester"), ErrNotFound)
}
