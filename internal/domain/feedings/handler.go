package feedings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"dog-feeding-tracker/internal/domain/dogs"
	"dog-feeding-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, dogsSvc *dogs.Service) {
	r.Route("/dogs/{dogID}/feedings", func(fr chi.Router) {
		fr.Post("/", logFeedingHandler(svc, dogsSvc))
		fr.Get("/today", todayCountHandler(svc, dogsSvc))
	})

	// Historial agrupado por día (vista propia, no un listado plano).
	r.Get("/dogs/{dogID}/history", historyHandler(svc, dogsSvc))
}

// logFeedingRequest es el cuerpo para registrar una alimentación.
type logFeedingRequest struct {
	Timestamp string `json:"timestamp"` // RFC3339; si falta, se usa ahora
}

// feedingResponse representa una alimentación devuelta por la API.
type feedingResponse struct {
	ID         string    `json:"id"`
	DogID      string    `json:"dog_id"`
	UserID     string    `json:"user_id"`
	Timestamp  time.Time `json:"timestamp"`
	RecordedAt time.Time `json:"recorded_at"`
}

// todayCountResponse es el conteo de hoy para un perro.
type todayCountResponse struct {
	Date  string `json:"date"` // YYYY-MM-DD del día contado, en la zona pedida
	Count int    `json:"count"`
}

// dayBucketResponse es un día del historial: feedings ascendentes dentro
// del día, días descendentes en la lista.
type dayBucketResponse struct {
	Date     string            `json:"date"`
	Feedings []feedingResponse `json:"feedings"`
}

// logFeedingHandler godoc
// @Summary Registrar alimentación
// @Description Registra una alimentación para el perro indicado. `timestamp` en RFC3339 es opcional: si falta, se usa el momento del request. Solo el dueño del perro puede registrar. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags feedings
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param payload body logFeedingRequest true "timestamp opcional en RFC3339"
// @Success 201 {object} feedingResponse
// @Failure 400 {string} string "invalid json / timestamp inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/feedings [post]
func logFeedingHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dogID := chi.URLParam(r, "dogID")
		if _, err := dogsSvc.GetOwned(r.Context(), claims.UserID, dogID); err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		var req logFeedingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := LogInput{}
		if strings.TrimSpace(req.Timestamp) != "" {
			t, err := time.Parse(time.RFC3339, req.Timestamp)
			if err != nil {
				http.Error(w, "timestamp must be RFC3339", http.StatusBadRequest)
				return
			}
			in.At = &t
		} else {
			// Política default-to-now explícita: la decide el handler,
			// el service no asume nada.
			in.DefaultToNow = true
		}

		f, err := svc.Log(r.Context(), claims.UserID, dogID, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toFeedingResponse(f))
	}
}

// todayCountHandler godoc
// @Summary Conteo de alimentaciones de hoy
// @Description Cuenta las alimentaciones del día calendario actual para el perro indicado. El día se corta en la zona `tz` (nombre IANA, query param); sin `tz` se usa UTC. Intervalo semiabierto: medianoche inclusive, medianoche siguiente exclusive.
// @Tags feedings
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param tz query string false "Zona horaria IANA del cliente (ej: America/Lima)"
// @Success 200 {object} todayCountResponse
// @Failure 400 {string} string "unknown tz"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/feedings/today [get]
func todayCountHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		loc, err := requestLocation(r)
		if err != nil {
			http.Error(w, "unknown tz", http.StatusBadRequest)
			return
		}

		dogID := chi.URLParam(r, "dogID")
		if _, err := dogsSvc.GetOwned(r.Context(), claims.UserID, dogID); err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		now := time.Now().In(loc)
		count, err := svc.CountToday(r.Context(), claims.UserID, dogID, now)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, todayCountResponse{
			Date:  dayLabel(now, loc),
			Count: count,
		})
	}
}

// historyHandler godoc
// @Summary Historial de alimentaciones por día
// @Description Devuelve todas las alimentaciones del perro agrupadas por fecha calendario en la zona `tz` (sin `tz`, UTC). Días más recientes primero; dentro de cada día, orden ascendente. Un perro sin alimentaciones devuelve lista vacía; un perro inexistente o ajeno, 404.
// @Tags feedings
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param tz query string false "Zona horaria IANA del cliente (ej: America/Lima)"
// @Success 200 {array} dayBucketResponse
// @Failure 400 {string} string "unknown tz"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/history [get]
func historyHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		loc, err := requestLocation(r)
		if err != nil {
			http.Error(w, "unknown tz", http.StatusBadRequest)
			return
		}

		dogID := chi.URLParam(r, "dogID")
		if _, err := dogsSvc.GetOwned(r.Context(), claims.UserID, dogID); err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		buckets, err := svc.History(r.Context(), claims.UserID, dogID, loc)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]dayBucketResponse, 0, len(buckets))
		for _, b := range buckets {
			fs := make([]feedingResponse, 0, len(b.Feedings))
			for _, f := range b.Feedings {
				fs = append(fs, toFeedingResponse(f))
			}
			out = append(out, dayBucketResponse{Date: b.Date, Feedings: fs})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toFeedingResponse(f Feeding) feedingResponse {
	return feedingResponse{
		ID:         f.ID,
		DogID:      f.DogID,
		UserID:     f.UserID,
		Timestamp:  f.Timestamp,
		RecordedAt: f.RecordedAt,
	}
}

// requestLocation lee ?tz= (nombre IANA) para el corte de día local.
// Sin tz se usa UTC.
func requestLocation(r *http.Request) (*time.Location, error) {
	name := strings.TrimSpace(r.URL.Query().Get("tz"))
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (dogs/feedings) para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
