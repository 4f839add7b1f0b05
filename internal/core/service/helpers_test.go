package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mystore/store-client/internal/infrastructure/httpclient"
	"github.com/mystore/store-client/internal/infrastructure/tokenstore"
)

// ---------------------------------------------------------------------------
// Fake backend: records every request and answers with a canned reply.
// ---------------------------------------------------------------------------

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

type fakeBackend struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	reply    any
	handler  http.HandlerFunc
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{t: t, status: http.StatusOK}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.requests = append(b.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	status, reply, handler := b.status, b.reply, b.handler
	b.mu.Unlock()

	if handler != nil {
		handler(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if s, ok := reply.(string); ok {
		_, _ = io.WriteString(w, s)
		return
	}
	_ = json.NewEncoder(w).Encode(reply)
}

// respond sets the status and JSON reply for every following request.
func (b *fakeBackend) respond(status int, reply any) {
	b.mu.Lock()
	b.status, b.reply = status, reply
	b.mu.Unlock()
}

// expectOne asserts exactly one request was received and returns it.
func (b *fakeBackend) expectOne() recordedRequest {
	b.t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) != 1 {
		b.t.Fatalf("expected exactly 1 request, got %d", len(b.requests))
	}
	return b.requests[0]
}

func (b *fakeBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *fakeBackend) client(editors ...httpclient.RequestEditor) *httpclient.Client {
	b.t.Helper()
	c, err := httpclient.New(b.srv.URL, b.srv.Client(), zerolog.Nop(), editors...)
	if err != nil {
		b.t.Fatalf("new client: %v", err)
	}
	return c
}

// ---------------------------------------------------------------------------
// Spy token store: counts saves and delegates to the in-memory store.
// ---------------------------------------------------------------------------

type spyTokenStore struct {
	*tokenstore.Memory
	saved   []string
	saveErr error
}

func newSpyTokenStore() *spyTokenStore {
	return &spyTokenStore{Memory: tokenstore.NewMemory()}
}

func (s *spyTokenStore) SaveToken(ctx context.Context, token string) error {
	s.saved = append(s.saved, token)
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.Memory.SaveToken(ctx, token)
}

func jsonEqual(t *testing.T, raw []byte, want any) {
	t.Helper()
	var got, exp any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("request body is not json: %v (%s)", err, raw)
	}
	wantRaw, _ := json.Marshal(want)
	_ = json.Unmarshal(wantRaw, &exp)

	gotRaw, _ := json.Marshal(got)
	expRaw, _ := json.Marshal(exp)
	if string(gotRaw) != string(expRaw) {
		t.Fatalf("body mismatch:\n got: %s\nwant: %s", gotRaw, expRaw)
	}
}
