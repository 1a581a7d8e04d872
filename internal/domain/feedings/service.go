package feedings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type LogInput struct {
	// At es el instante de la alimentación (hora de pared del cliente ya
	// parseada a instante absoluto). Nil solo vale si el caller pide
	// explícitamente DefaultToNow: no hay default implícito.
	At           *time.Time
	DefaultToNow bool
}

func (s *Service) Log(ctx context.Context, userID, dogID string, in LogInput) (Feeding, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(dogID) == "" {
		return Feeding{}, ErrInvalidInput
	}

	now := s.now()

	var at time.Time
	switch {
	case in.At != nil:
		at = *in.At
	case in.DefaultToNow:
		at = now
	default:
		return Feeding{}, ErrInvalidInput
	}
	if at.IsZero() {
		return Feeding{}, ErrInvalidInput
	}

	f := Feeding{
		ID:     uuid.NewString(),
		DogID:  dogID,
		UserID: userID,
		// Normalizado a UTC: el corte de día queda inequívoco sin importar
		// la zona del server o del cliente que lo vuelva a leer.
		Timestamp:  at.UTC(),
		RecordedAt: now.UTC(),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return Feeding{}, err
	}
	return f, nil
}

// CountToday cuenta las alimentaciones del día calendario de now, en la zona
// horaria que trae now. El conteo es por perro e independiente: no hay
// contador compartido entre perros ni entre llamadas concurrentes.
func (s *Service) CountToday(ctx context.Context, userID, dogID string, now time.Time) (int, error) {
	from, to := dayWindow(now)
	return s.repo.CountInWindow(ctx, userID, dogID, from, to)
}

// History devuelve todas las alimentaciones de (userID, dogID) agrupadas por
// día calendario en loc: días más recientes primero, dentro del día orden
// ascendente. Un perro sin alimentaciones da cero buckets, no error.
func (s *Service) History(ctx context.Context, userID, dogID string, loc *time.Location) ([]DayBucket, error) {
	items, err := s.repo.ListByDog(ctx, userID, dogID)
	if err != nil {
		return nil, err
	}
	return groupByDay(items, loc), nil
}
