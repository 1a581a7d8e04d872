package memory

import (
	"errors"
	"sync"

	"dog-feeding-tracker/internal/domain/dogs"
	"dog-feeding-tracker/internal/domain/feedings"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store guarda perros y alimentaciones juntos, con un solo lock.
// Comparten estado porque borrar un perro tiene que arrastrar sus feedings:
// el cascade que en SQL resuelve la FK acá se hace a mano.
type Store struct {
	mu       sync.RWMutex
	dogs     map[string]dogs.Dog
	feedings map[string]feedings.Feeding
}

func NewStore() *Store {
	return &Store{
		dogs:     make(map[string]dogs.Dog),
		feedings: make(map[string]feedings.Feeding),
	}
}

func (s *Store) Dogs() dogs.Repository {
	return &dogRepo{store: s}
}

func (s *Store) Feedings() feedings.Repository {
	return &feedingRepo{store: s}
}
