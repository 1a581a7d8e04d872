package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"dog-feeding-tracker/internal/domain/feedings"
)

type feedingRepo struct {
	store *Store
}

func (r *feedingRepo) Create(ctx context.Context, f feedings.Feeding) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if f.ID == "" {
		return errors.New("feeding id required")
	}
	if _, exists := r.store.feedings[f.ID]; exists {
		return errors.New("feeding already exists")
	}

	r.store.feedings[f.ID] = f
	return nil
}

func (r *feedingRepo) ListByDog(ctx context.Context, userID, dogID string) ([]feedings.Feeding, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]feedings.Feeding, 0)
	for _, f := range r.store.feedings {
		if f.DogID == dogID && f.UserID == userID {
			out = append(out, f)
		}
	}

	// Orden estable por timestamp asc (igual que el ORDER BY del adapter SQL).
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out, nil
}

func (r *feedingRepo) CountInWindow(ctx context.Context, userID, dogID string, from, to time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, f := range r.store.feedings {
		if f.DogID != dogID || f.UserID != userID {
			continue
		}
		// [from, to): medianoche inclusive, medianoche siguiente exclusive.
		if !f.Timestamp.Before(from) && f.Timestamp.Before(to) {
			count++
		}
	}

	return count, nil
}
