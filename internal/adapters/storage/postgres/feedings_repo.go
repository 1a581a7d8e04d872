package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"dog-feeding-tracker/internal/domain/feedings"
)

type FeedingsRepo struct {
	db *sql.DB
}

func NewFeedingsRepo(db *sql.DB) *FeedingsRepo {
	return &FeedingsRepo{db: db}
}

func (r *FeedingsRepo) Create(ctx context.Context, f feedings.Feeding) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedings (
			id, dog_id, user_id, timestamp, recorded_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		f.ID,
		f.DogID,
		f.UserID,
		f.Timestamp,
		f.RecordedAt,
	)
	return err
}

func (r *FeedingsRepo) ListByDog(ctx context.Context, userID, dogID string) ([]feedings.Feeding, error) {
	userID = strings.TrimSpace(userID)
	dogID = strings.TrimSpace(dogID)
	if userID == "" || dogID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dog_id, user_id, timestamp, recorded_at
		FROM feedings
		WHERE dog_id = $1 AND user_id = $2
		ORDER BY timestamp ASC
	`, dogID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedings.Feeding, 0)
	for rows.Next() {
		var f feedings.Feeding
		if err := rows.Scan(
			&f.ID,
			&f.DogID,
			&f.UserID,
			&f.Timestamp,
			&f.RecordedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, rows.Err()
}

func (r *FeedingsRepo) CountInWindow(ctx context.Context, userID, dogID string, from, to time.Time) (int, error) {
	// [from, to): >= y <, el límite inferior cuenta, el superior no.
	row := r.db.QueryRowContext(ctx, `
		SELECT count(*)
		FROM feedings
		WHERE dog_id = $1 AND user_id = $2
		  AND timestamp >= $3 AND timestamp < $4
	`, dogID, userID, from, to)

	var count int
	if err := row.Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
