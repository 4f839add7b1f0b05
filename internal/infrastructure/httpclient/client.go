package httpclient

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

	"github.com/rs/zerolog"

	"github.com/mystore/store-client/internal/core/ports"
)

const maxErrorBody = 64 << 10

var ErrInvalidBaseURL = errors.New("invalid base url")

// Client sends JSON requests to the catalog API. Every outgoing request is
// passed through the configured editors, in order, before dispatch.
type Client struct {
	baseURL *url.URL
	doer    ports.HTTPDoer
	editors []RequestEditor
	log     zerolog.Logger
}

var _ ports.APIClient = (*Client)(nil)

// New creates a Client rooted at baseURL. If doer is nil, http.DefaultClient
// is used.
func New(baseURL string, doer ports.HTTPDoer, log zerolog.Logger, editors ...RequestEditor) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	if doer == nil {
		doer = http.DefaultClient
	}

	return &Client{
		baseURL: u,
		doer:    doer,
		editors: append([]RequestEditor(nil), editors...),
		log:     log,
	}, nil
}

// With returns a copy of c that additionally applies editors. c is left as is.
func (c *Client) With(editors ...RequestEditor) *Client {
	clone := *c
	clone.editors = append(append([]RequestEditor(nil), c.editors...), editors...)
	return &clone
}

// URL resolves path against the base URL and attaches query. Parameters of
// the base URL are kept; query overrides keys present in both.
func (c *Client) URL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")

	merged := u.Query()
	for k, v := range query {
		merged[k] = v
	}
	u.RawQuery = merged.Encode()
	return u.String()
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path, query), payload)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, edit := range c.editors {
		if req, err = edit(req); err != nil {
			return fmt.Errorf("prepare %s %s: %w", method, path, err)
		}
	}

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("api request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{
			Method:     method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       raw,
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
