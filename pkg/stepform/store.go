package stepform

import "context"

// DefaultStorageKey is the key under which the snapshot is persisted.
const DefaultStorageKey = "multiStepFormData"

// Store persists the serialized FormData snapshot. Load returns
// ErrSnapshotNotFound when nothing has been saved.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot []byte) error
	Clear(ctx context.Context) error
}

// nopStore keeps nothing; it is used when no Store is configured.
type nopStore struct{}

func (nopStore) Load(context.Context) ([]byte, error) { return nil, ErrSnapshotNotFound }
func (nopStore) Save(context.Context, []byte) error { return nil }
func (nopStore) Clear(context.Context) error { return nil }
