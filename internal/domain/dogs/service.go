package dogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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

type CreateInput struct {
	Name     string
	PhotoURL string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Dog, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Dog{}, ErrInvalidInput
	}
	// Nombre solo-espacios no vale: se valida antes de tocar el storage,
	// así una creación inválida no deja ninguna escritura a medias.
	if strings.TrimSpace(in.Name) == "" {
		return Dog{}, ErrInvalidInput
	}

	d := Dog{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		PhotoURL:    strings.TrimSpace(in.PhotoURL),
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// GetOwned devuelve el perro solo si pertenece a ownerUserID.
// Un perro ajeno o inexistente es el mismo ErrNotFound: no filtramos
// información de otros usuarios.
func (s *Service) GetOwned(ctx context.Context, ownerUserID, id string) (Dog, error) {
	if strings.TrimSpace(id) == "" {
		return Dog{}, ErrNotFound
	}
	d, err := s.repo.GetByID(ctx, ownerUserID, id)
	if err != nil {
		return Dog{}, ErrNotFound
	}
	if d.OwnerUserID != ownerUserID {
		return Dog{}, ErrNotFound
	}
	return d, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Dog, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// Delete borra el perro del usuario. Que no exista la fila no es error
// (idempotente); los feedings asociados caen por cascade en el storage.
func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	if strings.TrimSpace(ownerUserID) == "" || strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, ownerUserID, id)
}
