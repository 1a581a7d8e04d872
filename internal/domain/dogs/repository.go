package dogs

import "context"

type Repository interface {
	Create(ctx context.Context, d Dog) error

	// GetByID exige también el owner: toda lectura va filtrada por usuario,
	// no alcanza con esconder filas en la UI.
	GetByID(ctx context.Context, ownerUserID, id string) (Dog, error)

	ListByOwner(ctx context.Context, ownerUserID string) ([]Dog, error)

	// Delete borra solo la fila que coincide en id Y owner. Si no hay
	// coincidencia es un no-op, no un error: el doble filtro evita borrados
	// cruzados entre usuarios. El cascade de feedings es cosa del storage.
	Delete(ctx context.Context, ownerUserID, id string) error
}
