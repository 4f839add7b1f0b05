package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mystore/store-client/internal/infrastructure/httpclient"
)

func TestStaticProvider(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := NewStaticProvider(4.6, -74.08)
	p.now = func() time.Time { return fixed }

	pos, err := p.CurrentPosition(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4.6, pos.Latitude)
	require.Equal(t, -74.08, pos.Longitude)
	require.Equal(t, fixed, pos.Timestamp)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.CurrentPosition(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func newHTTPProvider(t *testing.T, h http.HandlerFunc) *HTTPProvider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	api, err := httpclient.New(srv.URL, srv.Client(), zerolog.Nop())
	require.NoError(t, err)
	return NewHTTPProvider(api, "/json", zerolog.Nop())
}

func TestHTTPProvider_Reading(t *testing.T) {
	p := newHTTPProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"latitude":1000,"longitude":2000,"accuracy":12.5,"heading":90,"timestamp":1700000000000,"city":"Bogota"}`))
	})

	pos, err := p.CurrentPosition(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1000.0, pos.Latitude)
	require.Equal(t, 2000.0, pos.Longitude)
	require.Equal(t, 12.5, pos.Accuracy)
	require.Equal(t, 90.0, pos.Heading)
	require.Equal(t, time.UnixMilli(1700000000000), pos.Timestamp)
}

func TestHTTPProvider_NoCoordinates(t *testing.T) {
	p := newHTTPProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":true,"reason":"RateLimited"}`))
	})

	_, err := p.CurrentPosition(context.Background())
	require.ErrorIs(t, err, ErrNoFix)
}

func TestHTTPProvider_HTTPError(t *testing.T) {
	p := newHTTPProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := p.CurrentPosition(context.Background())
	var he *httpclient.HTTPError
	require.True(t, errors.As(err, &he))
	require.Equal(t, http.StatusTooManyRequests, he.StatusCode)
}
