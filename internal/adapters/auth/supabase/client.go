// Package supabase implementa auth.AuthVerifier contra Supabase Auth (GoTrue).
// La autenticación en sí (signup, login, refresh) es del proveedor; acá solo
// se verifica el access token de un request y se extraen los claims.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dog-feeding-tracker/internal/platform/httpclient"
	"dog-feeding-tracker/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("supabase auth client not configured")
	ErrUnauthorized  = errors.New("supabase auth unauthorized")
	ErrUpstream      = errors.New("supabase auth upstream error")
)

type Config struct {
	// ProjectURL es la URL del proyecto (https://xyz.supabase.co).
	ProjectURL string
	// APIKey es la anon key del proyecto (header apikey).
	APIKey string

	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.ProjectURL), "/")
	if base == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	hc, err := httpclient.NewWithBaseURL(base+"/auth/v1", cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

// VerifyToken valida el access token contra GET /auth/v1/user y devuelve
// los claims del usuario dueño del token.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if c == nil || c.http == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	err := c.http.DoJSON(ctx, "GET", "/user", map[string]string{
		"apikey":        c.apiKey,
		"Authorization": "Bearer " + token,
	}, nil, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case 401, 403:
				return auth.Claims{}, ErrUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if strings.TrimSpace(out.ID) == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing user id", ErrUpstream)
	}

	return auth.Claims{
		UserID: out.ID,
		Email:  out.Email,
	}, nil
}
