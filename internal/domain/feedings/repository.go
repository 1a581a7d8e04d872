package feedings

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, f Feeding) error

	// ListByDog trae todas las filas de (userID, dogID). Doble filtro
	// siempre: dog_id y user_id, igual que el conteo.
	ListByDog(ctx context.Context, userID, dogID string) ([]Feeding, error)

	// CountInWindow cuenta filas con timestamp en [from, to).
	// Semiabierto: from inclusive, to exclusive.
	CountInWindow(ctx context.Context, userID, dogID string, from, to time.Time) (int, error)
}
