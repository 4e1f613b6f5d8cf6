package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/leafsense/leafreport/pkg/errors"
	"github.com/leafsense/leafreport/pkg/observability"
)

// FileStore stores files in a single directory.
// Multiple requests may share one FileStore; stored names carry a random
// suffix so concurrent writes and deletes never interfere.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir.
// The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create storage dir %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes data to a uniquely named file derived from filename.
// "report.pdf" becomes "report_<uuid>.pdf" inside the store directory.
func (s *FileStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "", errors.New(errors.ErrCodeStorage, "invalid filename %q", filename)
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	path := filepath.Join(s.dir, stem+"_"+uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	observability.Storage().OnSave(ctx, path, len(data))
	return path, nil
}

// Remove deletes a stored file. A missing file is treated as success, since
// cleanup may race with an earlier cleanup of the same request.
func (s *FileStore) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStorage, err, "remove %s", path)
	}
	observability.Storage().OnRemove(ctx, path)
	return nil
}

var _ Store = (*FileStore)(nil)
