package storage

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// MemoryStore keeps encoded documents in memory, keyed by "<Prefix>/<key>".
// It is safe for concurrent use.
type MemoryStore struct {
	Prefix string
	Logger *slog.Logger

	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Prefix: DefaultDir, data: make(map[string]string)}
}

func (s *MemoryStore) key(key string) string {
	return s.Prefix + "/" + key
}

// Save encodes value and stores the resulting string.
func (s *MemoryStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return storageErr(err, "encode %q", key)
	}

	s.mu.Lock()
	if s.data == nil {
		s.data = make(map[string]string)
	}
	s.data[s.key(key)] = string(data)
	s.mu.Unlock()

	s.logger().Debug("object saved", "key", s.key(key), "bytes", len(data))
	return nil
}

// Load decodes the string stored under key into value.
func (s *MemoryStore) Load(key string, value any) (bool, error) {
	s.mu.RLock()
	data, ok := s.data[s.key(key)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(data), value); err != nil {
		return false, storageErr(err, "decode %q", key)
	}

	s.logger().Debug("object loaded", "key", s.key(key))
	return true, nil
}

// Keys returns the stored keys without prefix.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k[len(s.Prefix)+1:])
	}
	return keys
}

func (s *MemoryStore) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
