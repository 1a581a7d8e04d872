package feedings

import "time"

// dayWindow devuelve el intervalo semiabierto [medianoche, medianoche
// siguiente) del día calendario de now, en la zona horaria que trae now.
// Una alimentación exactamente a medianoche cuenta para ese día; una
// exactamente a la medianoche siguiente ya no.
func dayWindow(now time.Time) (from, to time.Time) {
	y, m, d := now.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	// AddDate y no Add(24h): en días con cambio de horario el día local
	// dura 23 o 25 horas.
	to = from.AddDate(0, 0, 1)
	return from, to
}

// dayLabel es la etiqueta de fecha calendario (YYYY-MM-DD) de t en loc.
// Misma convención de día local que dayWindow: count e historia nunca
// mezclan cortes UTC con cortes locales.
func dayLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
