package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dog-feeding-tracker/internal/router"
)

func TestHTTP_EndToEnd_FeedingTracker(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "user-1"
	strangerID := "user-2"

	// 1) Sin claims no hay acceso
	{
		st, _ := doReq(t, ts.URL, "GET", "/dogs", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}

	// 2) Owner registra un perro
	dogID := createDog(t, ts.URL, ownerID, map[string]any{
		"name":      "Milo",
		"photo_url": "https://example.com/milo.jpg",
	})

	// 3) Sin alimentaciones, el conteo de hoy es 0
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/feedings/today", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 today count, got %d body=%s", st, string(body))
		}
		var resp struct {
			Count int `json:"count"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Count != 0 {
			t.Fatalf("expected 0 feedings, got %d", resp.Count)
		}
	}

	// 4) Escenario: hoy 09:00 y 18:30, ayer 23:00 (día calendario UTC)
	todayStart := startOfDayUTC(time.Now())
	logFeeding(t, ts.URL, ownerID, dogID, todayStart.Add(9*time.Hour))
	logFeeding(t, ts.URL, ownerID, dogID, todayStart.Add(18*time.Hour+30*time.Minute))
	logFeeding(t, ts.URL, ownerID, dogID, todayStart.Add(-1*time.Hour)) // ayer 23:00

	// 5) Conteo de hoy: las dos de hoy, la de ayer no
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/feedings/today?tz=UTC", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 today count, got %d body=%s", st, string(body))
		}
		var resp struct {
			Date  string `json:"date"`
			Count int    `json:"count"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Count != 2 {
			t.Fatalf("expected 2 feedings today, got %d", resp.Count)
		}
		if want := todayStart.Format("2006-01-02"); resp.Date != want {
			t.Fatalf("date = %q, want %q", resp.Date, want)
		}
	}

	// 6) El listado trae el perro con su conteo
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list dogs, got %d body=%s", st, string(body))
		}
		var resp []struct {
			ID             string `json:"id"`
			Name           string `json:"name"`
			TodaysFeedings int    `json:"todays_feedings"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp) != 1 || resp[0].ID != dogID {
			t.Fatalf("unexpected dog list: %s", string(body))
		}
		if resp[0].TodaysFeedings != 2 {
			t.Fatalf("todays_feedings = %d, want 2", resp[0].TodaysFeedings)
		}
	}

	// 7) Historial: bucket de hoy primero [09:00, 18:30], después ayer [23:00]
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/history?tz=UTC", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d body=%s", st, string(body))
		}
		var resp []struct {
			Date     string `json:"date"`
			Feedings []struct {
				Timestamp time.Time `json:"timestamp"`
			} `json:"feedings"`
		}
		_ = json.Unmarshal(body, &resp)

		if len(resp) != 2 {
			t.Fatalf("expected 2 buckets, got %d body=%s", len(resp), string(body))
		}
		if resp[0].Date != todayStart.Format("2006-01-02") {
			t.Fatalf("first bucket = %q, want today", resp[0].Date)
		}
		if len(resp[0].Feedings) != 2 {
			t.Fatalf("today bucket size = %d, want 2", len(resp[0].Feedings))
		}
		if !resp[0].Feedings[0].Timestamp.Before(resp[0].Feedings[1].Timestamp) {
			t.Fatalf("today bucket not ascending: %v then %v",
				resp[0].Feedings[0].Timestamp, resp[0].Feedings[1].Timestamp)
		}
		if len(resp[1].Feedings) != 1 {
			t.Fatalf("yesterday bucket size = %d, want 1", len(resp[1].Feedings))
		}
	}

	// 8) Otro usuario no ve el perro ni su historial
	{
		st, _ := doReq(t, ts.URL, "GET", "/dogs/"+dogID, strangerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for stranger get, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/history", strangerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for stranger history, got %d", st)
		}
	}

	// 9) Borrado cruzado: 204 pero no borra nada (doble filtro id+user)
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/dogs/"+dogID, strangerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 cross-user delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/dogs/"+dogID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("dog should survive cross-user delete, got %d", st)
		}
	}

	// 10) Owner borra el perro: desaparece de la lista y el historial da 404
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/dogs/"+dogID, ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list after delete, got %d", st)
		}
		var resp []any
		_ = json.Unmarshal(body, &resp)
		if len(resp) != 0 {
			t.Fatalf("expected empty list after delete, got %s", string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/history", ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 history after delete, got %d", st)
		}
	}
}

func TestHTTP_LogFeeding_DefaultsToNow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "user-1"
	dogID := createDog(t, ts.URL, ownerID, map[string]any{"name": "Luna"})

	// Sin timestamp: vale y cae en el día de hoy
	st, body := doReq(t, ts.URL, "POST", "/dogs/"+dogID+"/feedings", ownerID, map[string]any{})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 default-to-now, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/feedings/today", ownerID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 today count, got %d", st)
	}
	var resp struct {
		Count int `json:"count"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Count != 1 {
		t.Fatalf("expected 1 feeding today, got %d", resp.Count)
	}
}

func TestHTTP_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "user-1"

	// Nombre solo-espacios => 400 y ninguna escritura
	{
		st, _ := doReq(t, ts.URL, "POST", "/dogs", ownerID, map[string]any{"name": "   "})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 whitespace name, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/dogs", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var resp []any
		_ = json.Unmarshal(body, &resp)
		if len(resp) != 0 {
			t.Fatalf("validation failure must not write, got %s", string(body))
		}
	}

	dogID := createDog(t, ts.URL, ownerID, map[string]any{"name": "Rocky"})

	// Timestamp inválido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/dogs/"+dogID+"/feedings", ownerID, map[string]any{
			"timestamp": "not-a-time",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad timestamp, got %d", st)
		}
	}

	// tz desconocida => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/history?tz=Not/AZone", ownerID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown tz, got %d", st)
		}
	}

	// Alimentar un perro ajeno => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/dogs/"+dogID+"/feedings", "user-2", map[string]any{})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 feeding strangers dog, got %d", st)
		}
	}
}

func startOfDayUTC(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createDog(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create dog, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create dog: missing id body=%s", string(body))
	}
	return resp.ID
}

func logFeeding(t *testing.T, baseURL, userID, dogID string, at time.Time) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs/"+dogID+"/feedings", userID, map[string]any{
		"timestamp": at.Format(time.RFC3339),
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 log feeding, got %d body=%s", st, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
