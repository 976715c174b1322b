package httpclient

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

	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 1 << 20
)

// Client envuelve *http.Client para hablar JSON con un servidor de animales.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New crea un Client contra baseURL (obligatoria) con timeout razonable.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, goerr.New("httpclient: base url required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, goerr.Wrap(err, "httpclient: invalid base url", goerr.V("base_url", baseURL))
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// DoJSON hace un request JSON.
// - path: relativo a BaseURL
// - query: parámetros (opcional)
// - in: body a enviar (opcional). Si nil => no body.
// - out: donde decodificar JSON (opcional). Si nil => ignora body.
// Retorna *HTTPError si status no es 2xx.
func (c *Client) DoJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c == nil || c.HTTP == nil {
		return goerr.New("httpclient: nil client")
	}

	fullURL := c.resolveURL(path, query)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return goerr.Wrap(err, "httpclient: marshal json")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return goerr.Wrap(err, "httpclient: new request", goerr.V("url", fullURL))
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return goerr.Wrap(err, "httpclient: do request", goerr.V("url", fullURL))
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return goerr.Wrap(err, "httpclient: unmarshal json")
	}
	return nil
}

func (c *Client) resolveURL(path string, query url.Values) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
