package postgres

import (
	"context"
	"database/sql"
	"strings"

	"dog-feeding-tracker/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (
			id, user_id, name, photo_url, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		d.ID,
		d.OwnerUserID,
		d.Name,
		toNullString(d.PhotoURL),
		d.CreatedAt,
	)
	return err
}

func (r *DogsRepo) GetByID(ctx context.Context, ownerUserID, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, photo_url, created_at
		FROM dogs
		WHERE id = $1 AND user_id = $2
	`, id, ownerUserID)

	var d dogs.Dog
	var photo sql.NullString
	if err := row.Scan(
		&d.ID,
		&d.OwnerUserID,
		&d.Name,
		&photo,
		&d.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return dogs.Dog{}, ErrNotFound
		}
		return dogs.Dog{}, err
	}

	if photo.Valid {
		d.PhotoURL = photo.String
	}

	return d, nil
}

func (r *DogsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]dogs.Dog, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, photo_url, created_at
		FROM dogs
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		var d dogs.Dog
		var photo sql.NullString
		if err := rows.Scan(
			&d.ID,
			&d.OwnerUserID,
			&d.Name,
			&photo,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}

		if photo.Valid {
			d.PhotoURL = photo.String
		}

		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *DogsRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	// Doble filtro id+user: una fila ajena no se toca. Cero filas afectadas
	// no es error (no-op idempotente). Los feedings caen por
	// ON DELETE CASCADE en feedings(dog_id).
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM dogs
		WHERE id = $1 AND user_id = $2
	`, id, ownerUserID)
	return err
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
