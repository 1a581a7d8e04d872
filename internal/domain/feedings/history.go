package feedings

import (
	"sort"
	"time"
)

// DayBucket agrupa las alimentaciones de un día calendario local.
type DayBucket struct {
	Date     string // YYYY-MM-DD en la zona pedida
	Feedings []Feeding
}

// groupByDay arma la vista de historial: cada fila cae en exactamente un
// bucket (su fecha calendario en loc), los buckets salen del más reciente
// al más viejo y dentro de cada día el orden es ascendente por timestamp.
// No se descarta ni deduplica nada; cero filas => cero buckets.
func groupByDay(items []Feeding, loc *time.Location) []DayBucket {
	byDate := make(map[string][]Feeding)
	for _, f := range items {
		k := dayLabel(f.Timestamp, loc)
		byDate[k] = append(byDate[k], f)
	}

	out := make([]DayBucket, 0, len(byDate))
	for date, fs := range byDate {
		sort.Slice(fs, func(i, j int) bool {
			return fs[i].Timestamp.Before(fs[j].Timestamp)
		})
		out = append(out, DayBucket{Date: date, Feedings: fs})
	}

	// YYYY-MM-DD ordena lexicográficamente igual que por fecha.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})

	return out
}
