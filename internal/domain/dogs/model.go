package dogs

import "time"

// Dog representa el perfil de un perro registrado por un usuario.
// Una vez creado no se edita: solo se lista, se consulta y se borra.
type Dog struct {
	ID          string
	OwnerUserID string

	Name     string
	PhotoURL string // opcional; URL a un object store externo

	CreatedAt time.Time
}
