// Package mocks provides centralized mock implementations for testing.
//
// Mocks expose a function field per interface method so a test can override
// individual behaviors, and fall back to a simple in-memory default otherwise:
//
//	repo := mocks.NewMockRepository(func(t domain.Tour) uuid.UUID { return t.ID })
//	repo.SaveFn = func(ctx context.Context, t domain.Tour) (domain.Tour, error) {
//	    return domain.Tour{}, store.ErrDuplicate
//	}
package mocks
