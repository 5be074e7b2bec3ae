// Package workspace is the publish target for calibration configuration.
// The engine is the sole writer; consumers only read. A Replace call is the
// atomic clear-then-assign of every name in the touched scopes, so a reader
// never observes a partial mixture of old and new values.
package workspace

import "sync"

// Workspace is the sink the engine publishes into. Replace clears every
// name previously assigned under each scope in groups, then assigns the new
// values, as a single critical section.
type Workspace interface {
	Replace(groups map[string]map[string]any)
	Get(name string) (any, bool)
	Snapshot() map[string]any
}

// Memory is an in-process Workspace. The lock serializes reads against the
// single writer; the engine itself never locks.
type Memory struct {
	mu     sync.RWMutex
	values map[string]any
	scopes map[string][]string
}

// NewMemory returns an empty in-memory workspace.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]any),
		scopes: make(map[string][]string),
	}
}

// Replace atomically swaps the contents of the given scopes.
func (m *Memory) Replace(groups map[string]map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for scope, values := range groups {
		for _, name := range m.scopes[scope] {
			delete(m.values, name)
		}
		names := make([]string, 0, len(values))
		for name, v := range values {
			m.values[name] = v
			names = append(names, name)
		}
		m.scopes[scope] = names
	}
}

// Get resolves a published name.
func (m *Memory) Get(name string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[name]
	return v, ok
}

// Snapshot returns a copy of every published name and value.
func (m *Memory) Snapshot() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
