package ports

import (
	"context"
	"net/http"
	"net/url"
)

// HTTPDoer is the raw transport the API client dispatches through.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIClient performs JSON requests against the catalog backend. Paths are
// relative to the configured base URL; out may be nil to discard the body.
type APIClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// StatusError is implemented by transport errors that carry the HTTP status
// of a failed response.
type StatusError interface {
	error
	HTTPStatus() int
}
