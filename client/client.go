// Package client adalah gateway HTTP/SSE ke backend restoran.
// Semua halaman UI bicara ke backend lewat sini; tidak ada fetch liar
// dengan base URL hard-coded.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-client/utils"
)

// TokenProvider menyuplai bearer token saat ada identity yang login.
// Biasanya diisi *auth.Store.
type TokenProvider interface {
	AccessToken() (string, bool)
}

type Option func(*Client)

// WithHTTPClient mengganti http.Client (dipakai test).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTokenProvider memasang sumber bearer token.
func WithTokenProvider(tokens TokenProvider) Option {
	return func(c *Client) { c.tokens = tokens }
}

// Client membungkus seluruh endpoint backend dengan hasil bertipe.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

// New membuat gateway. baseURL sudah termasuk prefix /api.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL dipakai EventBridge untuk membuka stream di host yang sama.
// EventBridge tidak memakai http.Client milik gateway: timeout total di
// sini justru membunuh stream SSE yang sehat.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorEnvelope menebak dua bentuk pesan error yang dipakai backend.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do menjalankan satu request JSON dan mengembalikan body mentah 2xx.
// requireAuth memaksa ada token; selain itu token tetap dilampirkan
// secara oportunis kalau tersedia.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, requireAuth bool) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Kind: KindDecode, Message: "gagal menyusun request", Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := c.attachToken(req, requireAuth); err != nil {
		return nil, err
	}

	return c.send(req)
}

func (c *Client) attachToken(req *http.Request, required bool) error {
	if c.tokens != nil {
		if token, ok := c.tokens.AccessToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
			return nil
		}
	}
	if required {
		return &APIError{
			Kind:       KindBusiness,
			StatusCode: http.StatusUnauthorized,
			Message:    "authentication required",
		}
	}
	return nil
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.ErrorLogger.Printf("%s %s gagal: %v", req.Method, req.URL.Path, err)
		return nil, &APIError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Err: err}
	}

	utils.InfoLogger.Debugf("%s %s -> %d (%s)", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusError(resp.StatusCode, raw)
	}
	return raw, nil
}

// newStatusError memilah non-2xx: kalau backend menyertakan pesan bisnis
// yang bisa dibaca, itu jadi KindBusiness; sisanya KindHTTP polos.
func newStatusError(statusCode int, body []byte) *APIError {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		message := envelope.Message
		if message == "" {
			message = envelope.Error
		}
		if message != "" {
			return &APIError{Kind: KindBusiness, StatusCode: statusCode, Message: message}
		}
	}

	return &APIError{
		Kind:       KindHTTP,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("API Error: %d %s", statusCode, http.StatusText(statusCode)),
	}
}
