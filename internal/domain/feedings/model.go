package feedings

import "time"

// Feeding es un registro inmutable de alimentación. Solo desaparece cuando
// se borra el perro (cascade en el storage).
type Feeding struct {
	ID     string
	DogID  string
	UserID string

	// Instante en que ocurrió la alimentación. Siempre normalizado a UTC
	// antes de guardar; las vistas por día se calculan después en la zona
	// del cliente.
	Timestamp time.Time

	// Instante en que se registró. Puede diferir de Timestamp si el usuario
	// cargó una alimentación pasada.
	RecordedAt time.Time
}
