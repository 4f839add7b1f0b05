package httpclient

import (
	"fmt"
	"net/http"

	"github.com/mystore/store-client/internal/core/ports"
)

const AuthorizationHeader = "Authorization"

// RequestEditor transforms an outgoing request. Editors must not mutate the
// request they receive; they return a clone when they change anything.
type RequestEditor func(req *http.Request) (*http.Request, error)

// BearerAuth attaches "Authorization: Bearer <token>" when store holds a
// token and forwards the request untouched otherwise.
func BearerAuth(store ports.TokenStore) RequestEditor {
	return func(req *http.Request) (*http.Request, error) {
		token, err := store.GetToken(req.Context())
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if token == "" {
			return req, nil
		}

		authed := req.Clone(req.Context())
		authed.Header.Set(AuthorizationHeader, "Bearer "+token)
		return authed, nil
	}
}

// UserAgent sets the User-Agent header.
func UserAgent(ua string) RequestEditor {
	return func(req *http.Request) (*http.Request, error) {
		out := req.Clone(req.Context())
		out.Header.Set("User-Agent", ua)
		return out, nil
	}
}
