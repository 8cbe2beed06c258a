// Package remote implementa el cliente HTTP hacia el API REST de la
// cafetería. Todas las llamadas son JSON sobre HTTPS con Bearer token; el
// token viaja en el context de cada petición (lo inyecta el middleware de
// sesión) y se adjunta aquí de manera uniforme.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
	"github.com/tu-usuario/cafeteria-panel/pkg/logger"
)

// maxBodyBytes tope de lectura de cuerpos de respuesta.
const maxBodyBytes = 4 * 1024 * 1024

type ctxKey int

const tokenKey ctxKey = 0

// WithToken devuelve un context que arrastra el token de sesión del usuario.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext devuelve el token de sesión del context, o "".
func TokenFromContext(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey).(string)
	return s
}

// Client cliente base del API remoto. Los gateways por recurso (bodega,
// catálogo, CRUD, reportes) se construyen sobre él.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout es el tope de red por petición;
// cada llamada acepta además el context del caller para cancelación.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// get hace GET path y deserializa la respuesta en out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post hace POST path con body JSON y deserializa en out (out puede ser nil).
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// put hace PUT path con body JSON y deserializa en out.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// del hace DELETE path.
func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do ejecuta la petición y traduce el resultado a la taxonomía de errores del
// dominio: 4xx → *domain.BackendError con el detalle más específico del
// backend; 401 → ErrUnauthorized; red/timeout/5xx → ErrTransport.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("remote: crear HTTP request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := TokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("remote: %s %s cancelado: %v: %w", method, path, ctx.Err(), domain.ErrTransport)
		}
		return fmt.Errorf("remote: %s %s: %v: %w", method, path, err, domain.ErrTransport)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("remote: leer respuesta de %s: %v: %w", path, err, domain.ErrTransport)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("llamada al API remoto")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(rawBody) == 0 {
			return nil
		}
		if err := json.Unmarshal(rawBody, out); err != nil {
			return fmt.Errorf("remote: deserializar respuesta de %s: %v: %w", path, err, domain.ErrTransport)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		// Sesión inválida o vencida: la recuperación (limpiar token,
		// redirigir a login) es del middleware, no de este cliente.
		return fmt.Errorf("remote: %s %s: %w", method, path, domain.ErrUnauthorized)

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return &domain.BackendError{
			Status: resp.StatusCode,
			Detail: backendDetail(rawBody),
		}

	default:
		return fmt.Errorf("remote: %s %s devolvió HTTP %d: %w", method, path, resp.StatusCode, domain.ErrTransport)
	}
}
