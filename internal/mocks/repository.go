package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/passeio-api/internal/store"
)

// MockRepository implements store.Repository for testing.
// Without function overrides it keeps entities in insertion order, rejects
// zero-valued ids with store.ErrInvalidID and reports absent ids with
// store.ErrNotFound.
type MockRepository[E any, ID comparable] struct {
	// Function fields for customizable behavior
	FindAllFn    func(ctx context.Context) ([]E, error)
	SaveFn       func(ctx context.Context, entity E) (E, error)
	DeleteByIDFn func(ctx context.Context, id ID) error
	FindByIDFn   func(ctx context.Context, id ID) (E, error)

	// AssignID, when set, is called by the default Save for entities whose id is zero.
	AssignID func(E) E

	// SaveCalls counts Save invocations, including overridden ones.
	SaveCalls int

	mu       sync.Mutex
	idOf     func(E) ID
	entities []E
}

var _ store.Repository[struct{}, int] = (*MockRepository[struct{}, int])(nil)

// NewMockRepository creates a mock whose default behavior identifies entities with idOf.
func NewMockRepository[E any, ID comparable](idOf func(E) ID, seed ...E) *MockRepository[E, ID] {
	return &MockRepository[E, ID]{
		idOf:     idOf,
		entities: append([]E(nil), seed...),
	}
}

// Entities returns a copy of the stored entities.
func (m *MockRepository[E, ID]) Entities() []E {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]E(nil), m.entities...)
}

// FindAll implements store.Repository.
func (m *MockRepository[E, ID]) FindAll(ctx context.Context) ([]E, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return m.Entities(), nil
}

// Save implements store.Repository.
func (m *MockRepository[E, ID]) Save(ctx context.Context, entity E) (E, error) {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(ctx, entity)
	}

	var zero ID
	if m.idOf(entity) == zero {
		if m.AssignID == nil {
			var empty E
			return empty, store.ErrInvalidID
		}
		entity = m.AssignID(entity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(m.idOf(entity)); i >= 0 {
		m.entities[i] = entity
	} else {
		m.entities = append(m.entities, entity)
	}
	return entity, nil
}

// DeleteByID implements store.Repository.
func (m *MockRepository[E, ID]) DeleteByID(ctx context.Context, id ID) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	var zero ID
	if id == zero {
		return store.ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return store.ErrNotFound
	}
	m.entities = append(m.entities[:i], m.entities[i+1:]...)
	return nil
}

// FindByID implements store.Repository.
func (m *MockRepository[E, ID]) FindByID(ctx context.Context, id ID) (E, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	var empty E
	var zero ID
	if id == zero {
		return empty, store.ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return empty, store.ErrNotFound
	}
	return m.entities[i], nil
}

func (m *MockRepository[E, ID]) indexOf(id ID) int {
	for i, e := range m.entities {
		if m.idOf(e) == id {
			return i
		}
	}
	return -1
}
