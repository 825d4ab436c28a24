package encryptobj

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MethodFunc is a callable bound to a MapEntity method name
type MethodFunc func(args ...any) (any, error)

// MapEntity is an in-memory Entity backed by a field map. Each entity
// carries a random identity for correlating records across systems.
// Field values are copied on the way in and out so callers cannot mutate
// stored bytes after the fact.
type MapEntity struct {
	id      uuid.UUID
	mu      sync.RWMutex
	fields  map[string][]byte
	methods map[string]MethodFunc
}

// NewMapEntity creates an empty map-backed entity with a fresh identity
func NewMapEntity() *MapEntity {
	return &MapEntity{
		id:      uuid.New(),
		fields:  make(map[string][]byte),
		methods: make(map[string]MethodFunc),
	}
}

// ID returns the entity's identity
func (m *MapEntity) ID() uuid.UUID {
	return m.id
}

// GetField returns the value stored under name and whether it exists
func (m *MapEntity) GetField(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.fields[name]
	if !ok {
		return nil, false
	}
	return bytes.Clone(value), true
}

// SetField stores a copy of value under name
func (m *MapEntity) SetField(name string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fields[name] = bytes.Clone(value)
}

// HasField reports whether a value is stored under name
func (m *MapEntity) HasField(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.fields[name]
	return ok
}

// RemoveField deletes the value stored under name and reports whether one
// existed
func (m *MapEntity) RemoveField(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.fields[name]
	delete(m.fields, name)
	return ok
}

// FieldNames returns the names of all stored fields
func (m *MapEntity) FieldNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.fields))
	for name := range m.fields {
		names = append(names, name)
	}
	return names
}

// BindMethod registers fn as the handler for the named method
func (m *MapEntity) BindMethod(name string, fn MethodFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.methods[name] = fn
}

// Invoke calls the named bound method with the given arguments
func (m *MapEntity) Invoke(method string, args ...any) (any, error) {
	m.mu.RLock()
	fn, ok := m.methods[method]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	return fn(args...)
}
