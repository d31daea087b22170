// Package store persists the single game slot of a host.
package store

import (
	"context"
	"sync"

	"github.com/lox/pebbles/internal/pebbles"
)

// Store saves and loads the optional game slot. A nil state means the slot is empty.
type Store interface {
	Load(ctx context.Context) (*pebbles.GameState, error)
	Save(ctx context.Context, s *pebbles.GameState) error
}

// Memory keeps the slot in process memory. It is lost on restart.
type Memory struct {
	mu    sync.RWMutex
	state *pebbles.GameState
	saves int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) (*pebbles.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneState(m.state), nil
}

func (m *Memory) Save(ctx context.Context, s *pebbles.GameState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = cloneState(s)
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func cloneState(s *pebbles.GameState) *pebbles.GameState {
	if s == nil {
		return nil
	}
	c := s.Clone()
	return &c
}
