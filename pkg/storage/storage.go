// Package storage provides ephemeral file storage for generated reports.
//
// Report files live only long enough to be handed to the caller: the write
// path inserts a random suffix so concurrent requests sharing one directory
// never collide, and WithTemp guarantees deletion on every exit path.
package storage

import "context"

// Store persists generated files temporarily.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save writes data under a name derived from the given filename and
	// returns the path of the stored file. The stored name keeps the
	// filename's extension but is made collision-free.
	Save(ctx context.Context, filename string, data []byte) (string, error)

	// Remove deletes a previously saved file. Removing a file that is
	// already gone is not an error.
	Remove(ctx context.Context, path string) error
}

// WithTemp saves data, invokes fn with the stored path, and removes the
// file again no matter how fn returns. This is the scoped-resource shape
// for hand-off flows: the file exists exactly for the duration of fn.
func WithTemp(ctx context.Context, s Store, filename string, data []byte, fn func(path string) error) error {
	path, err := s.Save(ctx, filename, data)
	if err != nil {
		return err
	}
	defer s.Remove(ctx, path) //nolint:errcheck // best-effort cleanup
	return fn(path)
}
