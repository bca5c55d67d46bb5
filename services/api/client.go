package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"Playhub/utils/logger"
)

// Cache is the query cache consulted by cached GETs. *redis.RedisClient
// implements it.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// HTTPError is returned for every non-2xx upstream response
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsUnauthorized reports whether err is an upstream 401/403
func IsUnauthorized(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsNotFound reports whether err is an upstream 404
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

// Client issues one HTTP call per operation against the primary API or the
// game-session service. It is safe for concurrent use; WithToken returns a
// copy bound to one user's bearer token.
type Client struct {
	baseURL     string
	gameBaseURL string
	http        *http.Client
	cache       Cache
	token       string
}

// NewClient builds a client. cache may be nil.
func NewClient(baseURL, gameBaseURL string, httpClient *http.Client, cache Cache) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		gameBaseURL: strings.TrimRight(gameBaseURL, "/"),
		http:        httpClient,
		cache:       cache,
	}
}

// WithToken returns a copy of the client that sends token as bearer
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) do(ctx context.Context, method, base, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: reading body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decoding body: %w", method, path, err)
	}
	return nil
}

func getJSON[T any](ctx context.Context, c *Client, base, path string) (T, error) {
	var result T
	err := c.do(ctx, http.MethodGet, base, path, nil, &result)
	return result, err
}

func postJSON[Req any, Res any](ctx context.Context, c *Client, base, path string, body Req) (Res, error) {
	var result Res
	err := c.do(ctx, http.MethodPost, base, path, body, &result)
	return result, err
}

func post(ctx context.Context, c *Client, base, path string) error {
	return c.do(ctx, http.MethodPost, base, path, nil, nil)
}

// cachedGetJSON serves path from the query cache when possible. Cache
// failures are logged and never fail the request.
func cachedGetJSON[T any](ctx context.Context, c *Client, key string, ttl time.Duration, path string) (T, error) {
	var result T
	if c.cache != nil {
		hit, err := c.cache.GetJSON(ctx, key, &result)
		if err != nil {
			logger.Warnf("[CACHE] read %s failed: %v", key, err)
		} else if hit {
			return result, nil
		}
	}

	result, err := getJSON[T](ctx, c, c.baseURL, path)
	if err != nil {
		return result, err
	}

	if c.cache != nil {
		if err := c.cache.SetJSON(ctx, key, result, ttl); err != nil {
			logger.Warnf("[CACHE] write %s failed: %v", key, err)
		}
	}
	return result, nil
}

func (c *Client) invalidate(ctx context.Context, keys ...string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Invalidate(ctx, keys...); err != nil {
		logger.Warnf("[CACHE] invalidate %v failed: %v", keys, err)
	}
}
