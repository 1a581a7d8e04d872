package feedings

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubRepo struct {
	created []Feeding
	rows    []Feeding

	lastFrom time.Time
	lastTo   time.Time
	count    int
}

func (r *stubRepo) Create(ctx context.Context, f Feeding) error {
	r.created = append(r.created, f)
	return nil
}

func (r *stubRepo) ListByDog(ctx context.Context, userID, dogID string) ([]Feeding, error) {
	return r.rows, nil
}

func (r *stubRepo) CountInWindow(ctx context.Context, userID, dogID string, from, to time.Time) (int, error) {
	r.lastFrom = from
	r.lastTo = to
	return r.count, nil
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLog_MissingTimestampWithoutDefaultPolicy(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	_, err := svc.Log(context.Background(), "user-1", "dog-1", LogInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	// Nada se escribió: no hay estado a medias.
	if len(repo.created) != 0 {
		t.Fatalf("expected no writes, got %d", len(repo.created))
	}
}

func TestLog_DefaultToNow(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.FixedZone("America/Lima", -5*3600))
	svc.now = fixedNow(now)

	f, err := svc.Log(context.Background(), "user-1", "dog-1", LogInput{DefaultToNow: true})
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	if !f.Timestamp.Equal(now) {
		t.Fatalf("timestamp = %v, want %v", f.Timestamp, now)
	}
	if f.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp not normalized to UTC: %v", f.Timestamp.Location())
	}
	if f.ID == "" {
		t.Fatalf("missing id")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 write, got %d", len(repo.created))
	}
}

func TestLog_NormalizesExplicitTimestampToUTC(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	local := time.Date(2026, 8, 28, 23, 0, 0, 0, time.FixedZone("America/Lima", -5*3600))

	f, err := svc.Log(context.Background(), "user-1", "dog-1", LogInput{At: &local})
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	// Mismo instante, representado en UTC.
	if !f.Timestamp.Equal(local) {
		t.Fatalf("timestamp = %v, want same instant as %v", f.Timestamp, local)
	}
	if f.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp location = %v, want UTC", f.Timestamp.Location())
	}
}

func TestCountToday_UsesHalfOpenLocalWindow(t *testing.T) {
	repo := &stubRepo{count: 2}
	svc := NewService(repo)

	lima := time.FixedZone("America/Lima", -5*3600)
	now := time.Date(2026, 8, 28, 20, 0, 0, 0, lima)

	count, err := svc.CountToday(context.Background(), "user-1", "dog-1", now)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	wantFrom := time.Date(2026, 8, 28, 0, 0, 0, 0, lima)
	wantTo := time.Date(2026, 8, 29, 0, 0, 0, 0, lima)
	if !repo.lastFrom.Equal(wantFrom) || !repo.lastTo.Equal(wantTo) {
		t.Fatalf("window = [%v, %v), want [%v, %v)", repo.lastFrom, repo.lastTo, wantFrom, wantTo)
	}
}

func TestHistory_EmptyDogYieldsZeroBuckets(t *testing.T) {
	svc := NewService(&stubRepo{})

	buckets, err := svc.History(context.Background(), "user-1", "dog-1", time.UTC)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(buckets) != 0 {
		t.Fatalf("expected zero buckets, got %d", len(buckets))
	}
}
