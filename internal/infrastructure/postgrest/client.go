// Package postgrest implementa los gateways remotos sobre la API REST de tablas
// de Supabase (PostgREST). Usa net/http de la librería estándar.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/infrastructure/wire"
)

const (
	restPrefix       = "/rest/v1/"
	defaultUserAgent = "mebel-store/1.0"
	defaultTimeout   = 10 * time.Second
	maxErrorBody     = 4 * 1024
)

// APIError respuesta no-2xx del backend.
type APIError struct {
	Status  int
	Table   string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("postgrest %s: HTTP %d: %s", e.Table, e.Status, e.Message)
}

// Client habla con /rest/v1/<tabla> usando la clave anónima o de servicio.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

// NewClient construye el cliente. baseURL es la URL del proyecto (https://xyz.supabase.co).
// timeout <= 0 usa el valor por defecto.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("postgrest: URL vacía")
	}
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("postgrest: URL inválida: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("postgrest: esquema no soportado %q", base.Scheme)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   base,
		apiKey:    apiKey,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Select lee todas las filas de table ordenadas por order ("col.asc") en dest.
func (c *Client) Select(ctx context.Context, table, order string, dest any) error {
	q := url.Values{}
	q.Set("select", "*")
	if order != "" {
		q.Set("order", order)
	}
	return c.do(ctx, http.MethodGet, table, q, nil, "", dest)
}

// SelectByID lee la fila con id dado en dest (un slice de filas).
func (c *Client) SelectByID(ctx context.Context, table, columns string, id entity.ID, dest any) error {
	q := url.Values{}
	q.Set("select", columns)
	q.Set("id", "eq."+id.String())
	return c.do(ctx, http.MethodGet, table, q, nil, "", dest)
}

// Insert inserta una fila y decodifica la representación devuelta en dest.
func (c *Client) Insert(ctx context.Context, table string, values wire.Values, dest any) error {
	return c.do(ctx, http.MethodPost, table, nil, values, "return=representation", dest)
}

// Upsert inserta o reemplaza por clave primaria.
func (c *Client) Upsert(ctx context.Context, table string, values wire.Values, dest any) error {
	return c.do(ctx, http.MethodPost, table, nil, values, "resolution=merge-duplicates,return=representation", dest)
}

// Update escribe values en la fila con id dado.
func (c *Client) Update(ctx context.Context, table string, id entity.ID, values wire.Values) error {
	q := url.Values{}
	q.Set("id", "eq."+id.String())
	return c.do(ctx, http.MethodPatch, table, q, values, "return=minimal", nil)
}

// Delete elimina la fila con id dado.
func (c *Client) Delete(ctx context.Context, table string, id entity.ID) error {
	q := url.Values{}
	q.Set("id", "eq."+id.String())
	return c.do(ctx, http.MethodDelete, table, q, nil, "return=minimal", nil)
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, body any, prefer string, dest any) error {
	if c == nil {
		return fmt.Errorf("postgrest: client is nil")
	}
	rel := &url.URL{Path: c.baseURL.Path + restPrefix + table}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("postgrest %s: serializar: %w", table, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("postgrest %s: crear request: %w", table, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("postgrest %s: timeout o cancelación: %w", table, ctx.Err())
		}
		return fmt.Errorf("postgrest %s: llamada HTTP fallida: %w", table, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Table: table, Message: errorMessage(raw)}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("postgrest %s: decodificar respuesta: %w", table, err)
	}
	return nil
}

// errorMessage extrae "message" del cuerpo de error de PostgREST si lo hay.
func errorMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		if payload.Details != "" {
			return payload.Message + " (" + payload.Details + ")"
		}
		return payload.Message
	}
	return strings.TrimSpace(string(raw))
}
