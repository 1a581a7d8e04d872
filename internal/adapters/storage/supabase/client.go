// Package supabase implementa los repositorios contra el gateway de
// persistencia del sistema original: la API REST de Supabase (PostgREST).
// Las tablas (dogs, feedings) y el cascade de la FK viven en el schema del
// proyecto; este cliente solo consulta, inserta y borra con filtros de
// igualdad/rango.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dog-feeding-tracker/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("supabase client not configured")
	ErrNotFound      = errors.New("not found")
)

type Config struct {
	// ProjectURL es la URL del proyecto (https://xyz.supabase.co).
	ProjectURL string
	// APIKey es la anon key; va como apikey y como Bearer.
	APIKey string

	Timeout time.Duration
}

// Client es un cliente PostgREST mínimo: select/insert/delete sobre una
// tabla con un query string ya armado (col=eq.v, col=gte.v, etc).
type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.ProjectURL), "/")
	if base == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	hc, err := httpclient.NewWithBaseURL(base+"/rest/v1", cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

// Select hace GET /rest/v1/<table>?<query> y decodifica el array de filas en out.
func (c *Client) Select(ctx context.Context, table, query string, out any) error {
	if c == nil || c.http == nil {
		return ErrNotConfigured
	}
	return c.http.DoJSON(ctx, "GET", c.tablePath(table, query), c.authHeaders(nil), nil, out)
}

// Count hace un conteo head-style: Prefer count=exact + Range 0-0 y lee el
// total del Content-Range ("0-0/5" => 5). No trae filas.
func (c *Client) Count(ctx context.Context, table, query string) (int, error) {
	if c == nil || c.http == nil {
		return 0, ErrNotConfigured
	}

	h, err := c.http.DoJSONHeader(ctx, "GET", c.tablePath(table, query), c.authHeaders(map[string]string{
		"Prefer": "count=exact",
		"Range":  "0-0",
	}), nil, nil)
	if err != nil {
		return 0, err
	}

	return parseContentRangeTotal(h.Get("Content-Range"))
}

// Insert hace POST con Prefer return=representation y decodifica la fila
// creada (PostgREST devuelve un array) en out.
func (c *Client) Insert(ctx context.Context, table string, row any, out any) error {
	if c == nil || c.http == nil {
		return ErrNotConfigured
	}
	return c.http.DoJSON(ctx, "POST", c.tablePath(table, ""), c.authHeaders(map[string]string{
		"Prefer": "return=representation",
	}), row, out)
}

// Delete borra las filas que matchean el query. Cero filas borradas no es
// error: PostgREST responde 2xx igual.
func (c *Client) Delete(ctx context.Context, table, query string) error {
	if c == nil || c.http == nil {
		return ErrNotConfigured
	}
	return c.http.DoJSON(ctx, "DELETE", c.tablePath(table, query), c.authHeaders(nil), nil, nil)
}

func (c *Client) tablePath(table, query string) string {
	p := "/" + url.PathEscape(table)
	if query != "" {
		p += "?" + query
	}
	return p
}

func (c *Client) authHeaders(extra map[string]string) map[string]string {
	h := map[string]string{
		"apikey":        c.apiKey,
		"Authorization": "Bearer " + c.apiKey,
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

func parseContentRangeTotal(cr string) (int, error) {
	// Formato: "0-0/5" o "*/0" cuando no hay filas.
	i := strings.LastIndex(cr, "/")
	if i < 0 || i == len(cr)-1 {
		return 0, fmt.Errorf("supabase: unexpected Content-Range %q", cr)
	}
	total := cr[i+1:]
	if total == "*" {
		return 0, nil
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("supabase: unexpected Content-Range %q", cr)
	}
	return n, nil
}
