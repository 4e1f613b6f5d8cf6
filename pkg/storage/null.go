package storage

import "context"

// NullStore is a no-op store that never writes anything.
// Useful for testing or when report bytes are streamed directly.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// Save does nothing and returns the filename unchanged.
func (s *NullStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	return filename, nil
}

// Remove does nothing.
func (s *NullStore) Remove(ctx context.Context, path string) error {
	return nil
}

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
