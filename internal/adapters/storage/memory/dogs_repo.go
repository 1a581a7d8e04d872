package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"dog-feeding-tracker/internal/domain/dogs"
)

type dogRepo struct {
	store *Store
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.store.dogs[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.store.dogs[d.ID] = d
	return nil
}

func (r *dogRepo) GetByID(ctx context.Context, ownerUserID, id string) (dogs.Dog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.dogs[id]
	if !ok || d.OwnerUserID != ownerUserID {
		return dogs.Dog{}, ErrNotFound
	}
	return d, nil
}

func (r *dogRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]dogs.Dog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, d := range r.store.dogs {
		if d.OwnerUserID == ownerUserID {
			out = append(out, d)
		}
	}

	// Mismo orden que los adapters reales: created_at asc.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *dogRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	d, ok := r.store.dogs[id]
	if !ok || d.OwnerUserID != ownerUserID {
		// Sin coincidencia id+owner no se borra nada; no es error.
		return nil
	}

	delete(r.store.dogs, id)

	// Cascade manual: no pueden quedar feedings huérfanos del perro.
	for fid, f := range r.store.feedings {
		if f.DogID == id && f.UserID == ownerUserID {
			delete(r.store.feedings, fid)
		}
	}

	return nil
}
