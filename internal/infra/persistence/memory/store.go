// Package memory provides an in-memory CollectionStore, used in tests and
// wherever durability is not required.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"zoning/internal/domain/repository"

	"github.com/pkg/errors"
)

// store keeps each collection as its serialized JSON form so Load always
// hands back an independent copy, the same way a real store would.
type store struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

// NewStore creates an empty in-memory collection store.
func NewStore() repository.CollectionStore {
	return &store{collections: make(map[string][]byte)}
}

func (s *store) Load(_ context.Context, key string, out any) error {
	s.mu.RLock()
	raw, ok := s.collections[key]
	s.mu.RUnlock()

	if !ok {
		// Never-saved keys load as an empty collection.
		raw = []byte("[]")
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode collection %q", key)
	}

	return nil
}

func (s *store) Save(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode collection %q", key)
	}

	s.mu.Lock()
	s.collections[key] = raw
	s.mu.Unlock()

	return nil
}
