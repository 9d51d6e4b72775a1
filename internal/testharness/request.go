package testharness

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/h4ks-com/ewallet/internal/auth"
	"github.com/h4ks-com/ewallet/internal/middleware"
	"github.com/stretchr/testify/require"
)

type actor int

const (
	actorPublic actor = iota
	actorProvider
	actorClient
)

type requestConfig struct {
	status           int
	accessKey        string
	secretKey        string
	apiKey           string
	authToken        string
	idempotencyToken string
}

// RequestOption overrides the defaults of a request builder.
type RequestOption func(*requestConfig)

// WithStatus sets the expected HTTP status, 200 by default.
func WithStatus(status int) RequestOption {
	return func(cfg *requestConfig) {
		cfg.status = status
	}
}

func WithAccessKey(accessKey string) RequestOption {
	return func(cfg *requestConfig) {
		cfg.accessKey = accessKey
	}
}

func WithSecretKey(secretKey string) RequestOption {
	return func(cfg *requestConfig) {
		cfg.secretKey = secretKey
	}
}

func WithAPIKey(apiKey string) RequestOption {
	return func(cfg *requestConfig) {
		cfg.apiKey = apiKey
	}
}

func WithAuthToken(authToken string) RequestOption {
	return func(cfg *requestConfig) {
		cfg.authToken = authToken
	}
}

func newRequestConfig(opts []RequestOption) *requestConfig {
	cfg := &requestConfig{
		status:    http.StatusOK,
		accessKey: AccessKey,
		secretKey: SecretKey,
		apiKey:    APIKey,
		authToken: AuthToken,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// PublicRequest posts body to api/<path> without credentials.
func (c *Case) PublicRequest(path string, body any, opts ...RequestOption) map[string]any {
	return c.do(actorPublic, path, body, newRequestConfig(opts))
}

// ProviderRequest posts body to api/<path> as the fixture provider key pair.
func (c *Case) ProviderRequest(path string, body any, opts ...RequestOption) map[string]any {
	return c.do(actorProvider, path, body, newRequestConfig(opts))
}

// ClientRequest posts body to api/<path> as the fixture user.
func (c *Case) ClientRequest(path string, body any, opts ...RequestOption) map[string]any {
	return c.do(actorClient, path, body, newRequestConfig(opts))
}

func (c *Case) ProviderRequestWithIdempotency(path, idempotencyToken string, body any, opts ...RequestOption) map[string]any {
	cfg := newRequestConfig(opts)
	cfg.idempotencyToken = idempotencyToken
	return c.do(actorProvider, path, body, cfg)
}

func (c *Case) ClientRequestWithIdempotency(path, idempotencyToken string, body any, opts ...RequestOption) map[string]any {
	cfg := newRequestConfig(opts)
	cfg.idempotencyToken = idempotencyToken
	return c.do(actorClient, path, body, cfg)
}

func (c *Case) do(a actor, path string, body any, cfg *requestConfig) map[string]any {
	t := c.t
	t.Helper()

	req := c.buildRequest(a, path, body, cfg)
	rec := httptest.NewRecorder()
	c.Router.ServeHTTP(rec, req)

	require.Equal(t, cfg.status, rec.Code, "unexpected status for %s: %s", path, rec.Body.String())

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "response is not a JSON object: %s", rec.Body.String())
	return out
}

// buildRequest attaches the accept header, the authorization header of the
// actor and the idempotency token when one is set. Nothing else.
func (c *Case) buildRequest(a actor, path string, body any, cfg *requestConfig) *http.Request {
	t := c.t
	t.Helper()

	payload := []byte("{}")
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/"+strings.TrimPrefix(path, "/"), bytes.NewReader(payload))
	req.Header = http.Header{}
	req.Header.Set("Accept", middleware.AcceptHeader)

	switch a {
	case actorProvider:
		req.Header.Set("Authorization", auth.EncodeHeader(auth.SchemeServer, cfg.accessKey, cfg.secretKey))
	case actorClient:
		req.Header.Set("Authorization", auth.EncodeHeader(auth.SchemeClient, cfg.apiKey, cfg.authToken))
	}

	if cfg.idempotencyToken != "" {
		req.Header.Set("Idempotency-Token", cfg.idempotencyToken)
	}
	return req
}
