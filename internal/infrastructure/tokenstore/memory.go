// Package tokenstore holds the session bearer token. Memory is the default,
// process-scoped store; Redis keeps the token across process restarts.
package tokenstore

import (
	"context"
	"sync"

	"github.com/mystore/store-client/internal/core/ports"
)

// Memory is an in-process TokenStore. The zero value is ready to use.
type Memory struct {
	mu    sync.RWMutex
	token string
}

var _ ports.TokenStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) SaveToken(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *Memory) GetToken(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *Memory) ClearToken(context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
