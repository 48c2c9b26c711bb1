package storage

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// DefaultDir is the root used by the command-line tools.
const DefaultDir = "./training"

// FileStore keeps one indented JSON document per key under Root.
// It is safe for concurrent use.
type FileStore struct {
	Root   string
	Logger *slog.Logger

	mu sync.Mutex
}

// NewFileStore creates a store rooted at dir. The directory is created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Root: dir, Logger: slog.Default()}
}

// Path returns the file that holds key.
func (s *FileStore) Path(key string) (string, error) {
	if key == "" {
		return "", errors.Wrap(ErrStorage, "empty key")
	}
	p := filepath.Join(s.Root, key+".json")
	rel, err := filepath.Rel(s.Root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Wrapf(ErrStorage, "key %q escapes %s", key, s.Root)
	}
	return p, nil
}

// Save writes value to a temporary file next to the target and renames it into place.
func (s *FileStore) Save(key string, value any) error {
	path, err := s.Path(key)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return storageErr(err, "encode %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return storageErr(err, "create %s", dir)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return storageErr(err, "create temp file in %s", dir)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return storageErr(err, "chmod %s", tmp.Name())
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return storageErr(err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return storageErr(err, "close %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return storageErr(err, "rename to %s", path)
	}

	s.logger().Debug("object saved", "path", path, "bytes", len(data))
	return nil
}

// Load reads and decodes the document for key. A missing file is not an error.
func (s *FileStore) Load(key string, value any) (bool, error) {
	path, err := s.Path(key)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	data, err := os.ReadFile(path)
	s.mu.Unlock()
	if errors.Is(err, fs.ErrNotExist) {
		s.logger().Debug("object not found", "path", path)
		return false, nil
	}
	if err != nil {
		return false, storageErr(err, "read %s", path)
	}
	if err := json.Unmarshal(data, value); err != nil {
		return false, storageErr(err, "decode %s", path)
	}

	s.logger().Debug("object loaded", "path", path)
	return true, nil
}

func (s *FileStore) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
