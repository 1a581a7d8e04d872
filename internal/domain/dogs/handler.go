package dogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"dog-feeding-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// TodayCounter expone el conteo de alimentaciones de hoy por perro.
// Interfaz local para no importar feedings desde acá (feedings ya importa dogs).
type TodayCounter interface {
	CountToday(ctx context.Context, userID, dogID string, now time.Time) (int, error)
}

func RegisterRoutes(r chi.Router, svc *Service, counter TodayCounter) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc))
		dr.Get("/", listDogsHandler(svc, counter))
		dr.Get("/{dogID}", getDogHandler(svc, counter))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
	})
}

type createDogRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

type dogResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// dogWithCountResponse es el item del dashboard: perfil + cuántas veces
// comió hoy (día calendario en la zona pedida).
type dogWithCountResponse struct {
	dogResponse
	TodaysFeedings int `json:"todays_feedings"`
}

func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:     req.Name,
			PhotoURL: req.PhotoURL,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name is required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

func listDogsHandler(svc *Service, counter TodayCounter) http.HandlerFunc {
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

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := time.Now().In(loc)

		// Cada conteo es una consulta independiente por perro: se lanzan en
		// paralelo y se juntan antes de responder. No comparten estado.
		counts := make([]int, len(items))
		errs := make([]error, len(items))
		var wg sync.WaitGroup
		for i := range items {
			wg.Add(1)
			go func(i int, dogID string) {
				defer wg.Done()
				counts[i], errs[i] = counter.CountToday(r.Context(), claims.UserID, dogID, now)
			}(i, items[i].ID)
		}
		wg.Wait()

		out := make([]dogWithCountResponse, 0, len(items))
		for i, d := range items {
			if errs[i] != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			out = append(out, dogWithCountResponse{
				dogResponse:    toDogResponse(d),
				TodaysFeedings: counts[i],
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getDogHandler(svc *Service, counter TodayCounter) http.HandlerFunc {
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
		d, err := svc.GetOwned(r.Context(), claims.UserID, dogID)
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		count, err := counter.CountToday(r.Context(), claims.UserID, d.ID, time.Now().In(loc))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, dogWithCountResponse{
			dogResponse:    toDogResponse(d),
			TodaysFeedings: count,
		})
	}
}

func deleteDogHandler(svc *Service) http.HandlerFunc {
	// La confirmación previa ("¿seguro que querés borrar a X?") es de la UI;
	// acá el borrado ya viene confirmado y es idempotente.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dogID := chi.URLParam(r, "dogID")
		if err := svc.Delete(r.Context(), claims.UserID, dogID); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid dog id", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:          d.ID,
		OwnerUserID: d.OwnerUserID,
		Name:        d.Name,
		PhotoURL:    d.PhotoURL,
		CreatedAt:   d.CreatedAt,
	}
}

// requestLocation lee ?tz= (nombre IANA) para el corte de día local.
// Sin tz se usa UTC: dos clientes que no mandan nada quedan de acuerdo
// entre sí y con los instantes guardados.
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
