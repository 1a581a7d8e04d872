package dogs

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubRepo struct {
	created []Dog
	dog     Dog
	getErr  error

	deleted [][2]string // (owner, id)
}

func (r *stubRepo) Create(ctx context.Context, d Dog) error {
	r.created = append(r.created, d)
	return nil
}

func (r *stubRepo) GetByID(ctx context.Context, ownerUserID, id string) (Dog, error) {
	if r.getErr != nil {
		return Dog{}, r.getErr
	}
	return r.dog, nil
}

func (r *stubRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Dog, error) {
	return nil, nil
}

func (r *stubRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	r.deleted = append(r.deleted, [2]string{ownerUserID, id})
	return nil
}

func TestCreate_WhitespaceNameFailsWithoutWrite(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "user-1", CreateInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no writes, got %d", len(repo.created))
	}
}

func TestCreate_TrimsNameAndAssignsID(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	}

	d, err := svc.Create(context.Background(), "user-1", CreateInput{Name: "  Milo  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if d.Name != "Milo" {
		t.Fatalf("name = %q, want Milo", d.Name)
	}
	if d.ID == "" {
		t.Fatalf("missing id")
	}
	if d.OwnerUserID != "user-1" {
		t.Fatalf("owner = %q, want user-1", d.OwnerUserID)
	}
	if d.CreatedAt.IsZero() {
		t.Fatalf("missing created_at")
	}
}

func TestGetOwned_OtherUsersDogIsNotFound(t *testing.T) {
	repo := &stubRepo{dog: Dog{ID: "dog-1", OwnerUserID: "user-2"}}
	svc := NewService(repo)

	_, err := svc.GetOwned(context.Background(), "user-1", "dog-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetOwned_RepoMissIsNotFound(t *testing.T) {
	repo := &stubRepo{getErr: errors.New("no row")}
	svc := NewService(repo)

	_, err := svc.GetOwned(context.Background(), "user-1", "dog-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_ScopesByOwner(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), "user-1", "dog-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != [2]string{"user-1", "dog-1"} {
		t.Fatalf("delete call = %v, want (user-1, dog-1)", repo.deleted)
	}
}

func TestDelete_EmptyIDInvalid(t *testing.T) {
	svc := NewService(&stubRepo{})

	if err := svc.Delete(context.Background(), "user-1", " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
