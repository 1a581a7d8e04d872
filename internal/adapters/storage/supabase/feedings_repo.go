package supabase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"dog-feeding-tracker/internal/domain/feedings"
)

type FeedingsRepo struct {
	client *Client
}

func NewFeedingsRepo(client *Client) *FeedingsRepo {
	return &FeedingsRepo{client: client}
}

type feedingRow struct {
	ID         string    `json:"id"`
	DogID      string    `json:"dog_id"`
	UserID     string    `json:"user_id"`
	Timestamp  time.Time `json:"timestamp"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (r *FeedingsRepo) Create(ctx context.Context, f feedings.Feeding) error {
	row := feedingRow{
		ID:         f.ID,
		DogID:      f.DogID,
		UserID:     f.UserID,
		Timestamp:  f.Timestamp,
		RecordedAt: f.RecordedAt,
	}

	var created []feedingRow
	return r.client.Insert(ctx, "feedings", row, &created)
}

func (r *FeedingsRepo) ListByDog(ctx context.Context, userID, dogID string) ([]feedings.Feeding, error) {
	userID = strings.TrimSpace(userID)
	dogID = strings.TrimSpace(dogID)
	if userID == "" || dogID == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Add("dog_id", "eq."+dogID)
	q.Add("user_id", "eq."+userID)
	q.Add("order", "timestamp.asc")

	var rows []feedingRow
	if err := r.client.Select(ctx, "feedings", q.Encode(), &rows); err != nil {
		return nil, err
	}

	out := make([]feedings.Feeding, 0, len(rows))
	for _, row := range rows {
		out = append(out, feedings.Feeding{
			ID:         row.ID,
			DogID:      row.DogID,
			UserID:     row.UserID,
			Timestamp:  row.Timestamp,
			RecordedAt: row.RecordedAt,
		})
	}
	return out, nil
}

func (r *FeedingsRepo) CountInWindow(ctx context.Context, userID, dogID string, from, to time.Time) (int, error) {
	// Mismos filtros que usaba el dashboard original: eq en dog_id y user_id,
	// gte/lt en timestamp (semiabierto).
	q := url.Values{}
	q.Add("dog_id", "eq."+dogID)
	q.Add("user_id", "eq."+userID)
	q.Add("timestamp", "gte."+from.UTC().Format(time.RFC3339Nano))
	q.Add("timestamp", "lt."+to.UTC().Format(time.RFC3339Nano))

	return r.client.Count(ctx, "feedings", q.Encode())
}
