package supabase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"dog-feeding-tracker/internal/domain/dogs"
)

type DogsRepo struct {
	client *Client
}

func NewDogsRepo(client *Client) *DogsRepo {
	return &DogsRepo{client: client}
}

// dogRow es la fila de la tabla dogs tal como la expone PostgREST.
type dogRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	row := toDogRow(d)

	// return=representation: PostgREST devuelve la fila creada en un array.
	var created []dogRow
	if err := r.client.Insert(ctx, "dogs", row, &created); err != nil {
		return err
	}
	return nil
}

func (r *DogsRepo) GetByID(ctx context.Context, ownerUserID, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, ErrNotFound
	}

	q := url.Values{}
	q.Add("id", "eq."+id)
	q.Add("user_id", "eq."+ownerUserID)
	q.Add("limit", "1")

	var rows []dogRow
	if err := r.client.Select(ctx, "dogs", q.Encode(), &rows); err != nil {
		return dogs.Dog{}, err
	}
	if len(rows) == 0 {
		return dogs.Dog{}, ErrNotFound
	}
	return fromDogRow(rows[0]), nil
}

func (r *DogsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]dogs.Dog, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Add("user_id", "eq."+ownerUserID)
	q.Add("order", "created_at.asc")

	var rows []dogRow
	if err := r.client.Select(ctx, "dogs", q.Encode(), &rows); err != nil {
		return nil, err
	}

	out := make([]dogs.Dog, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromDogRow(row))
	}
	return out, nil
}

func (r *DogsRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	// Doble filtro id+user, igual que el frontend original. Los feedings
	// caen por el cascade de la FK en el schema.
	q := url.Values{}
	q.Add("id", "eq."+id)
	q.Add("user_id", "eq."+ownerUserID)

	return r.client.Delete(ctx, "dogs", q.Encode())
}

func toDogRow(d dogs.Dog) dogRow {
	row := dogRow{
		ID:        d.ID,
		UserID:    d.OwnerUserID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
	if strings.TrimSpace(d.PhotoURL) != "" {
		p := d.PhotoURL
		row.PhotoURL = &p
	}
	return row
}

func fromDogRow(row dogRow) dogs.Dog {
	d := dogs.Dog{
		ID:          row.ID,
		OwnerUserID: row.UserID,
		Name:        row.Name,
		CreatedAt:   row.CreatedAt,
	}
	if row.PhotoURL != nil {
		d.PhotoURL = *row.PhotoURL
	}
	return d
}
