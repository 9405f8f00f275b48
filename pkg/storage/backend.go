package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-stepform/pkg/stepform"
)

// Backend is a minimal key/value store. Get returns ErrNotFound for absent
// keys; Delete of an absent key succeeds.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Bind exposes one key of backend as a stepform.Store. An empty key selects
// stepform.DefaultStorageKey.
func Bind(backend Backend, key string) stepform.Store {
	key = strings.TrimSpace(key)
	if key == "" {
		key = stepform.DefaultStorageKey
	}
	return &boundStore{backend: backend, key: key}
}

type boundStore struct {
	backend Backend
	key     string
}

func (s *boundStore) Load(ctx context.Context) ([]byte, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return nil, stepform.ErrSnapshotNotFound
	}
	return raw, err
}

func (s *boundStore) Save(ctx context.Context, snapshot []byte) error {
	return s.backend.Set(ctx, s.key, snapshot)
}

func (s *boundStore) Clear(ctx context.Context) error {
	return s.backend.Delete(ctx, s.key)
}
