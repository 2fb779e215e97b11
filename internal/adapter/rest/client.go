// Package rest implements the store ports against the planner REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
)

// errNotFound marks a 404 on a keyed lookup. Callers turn it into an absent
// result rather than an error.
var errNotFound = errors.New("resource not found")

// maxErrorBody bounds how much of an error response ends up in messages.
const maxErrorBody = 512

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client whose requests carry the bearer token from tokens.
// A nil token source sends unauthenticated requests.
func NewClient(baseURL string, tokens oauth2.TokenSource, timeout time.Duration) *Client {
	httpClient := &http.Client{}
	if tokens != nil {
		httpClient = oauth2.NewClient(context.Background(), tokens)
	}
	httpClient.Timeout = timeout

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// StaticToken is the token source for a bearer token handed over by the
// session store.
func StaticToken(token string) oauth2.TokenSource {
	if token == "" {
		return nil
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

// do sends one request and decodes the response into out. An empty body is
// accepted only when out is nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, unwrapTokenError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	zap.L().Debug("store request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if err := statusError(resp.StatusCode, raw); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("%s %s: %w: empty body", method, path, domain.ErrMalformedResponse)
	}
	if err := decode(raw, out); err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrMalformedResponse, err)
	}
	return nil
}

func statusError(code int, body []byte) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case code == http.StatusNotFound:
		return errNotFound
	default:
		return fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, code, errorMessage(body))
	}
}

// errorMessage pulls the message out of an error body, falling back on the
// raw text.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	if text == "" {
		text = "no message"
	}
	return text
}

// decode accepts either the bare payload or one wrapped in {"data": ...}.
func decode(raw []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			return json.Unmarshal(envelope.Data, out)
		}
	}
	return json.Unmarshal(trimmed, out)
}

// unwrapTokenError maps a token refresh rejected with 401 to ErrUnauthorized.
func unwrapTokenError(err error) error {
	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) && retrieve.Response != nil && retrieve.Response.StatusCode == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	return err
}

func (c *Client) Name() string {
	return "rest"
}

// Ping checks that the API answers and accepts the token.
func (c *Client) Ping(ctx context.Context) error {
	var prefs preferencesRecord
	err := c.do(ctx, http.MethodGet, "/preferences", nil, nil, &prefs)
	if errors.Is(err, errNotFound) {
		return nil
	}
	return err
}

// collectionError treats a 404 on a collection endpoint as an upstream fault;
// only keyed lookups may come back not found.
func collectionError(err error) error {
	if errors.Is(err, errNotFound) {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return err
}

var _ ports.Store = (*Client)(nil)
