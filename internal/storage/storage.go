// Package storage persists named JSON documents.
//
// A Store maps a key to one JSON value. FileStore keeps one "<key>.json" file
// per key under a root directory; MemoryStore keeps the encoded strings in a map
// for environments without a filesystem.
package storage

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrStorage wraps every read, write and decode failure.
var ErrStorage = errors.New("storage failure")

// Store saves and loads JSON encodable values by key.
type Store interface {
	// Save encodes value and stores it under key, replacing any previous value.
	Save(key string, value any) error

	// Load decodes the value stored under key into value.
	// found is false, with a nil error, when nothing is stored under key.
	Load(key string, value any) (found bool, err error)
}

// opError is a failed store operation. It matches ErrStorage and unwraps to
// the underlying cause, so callers can test for both.
type opError struct {
	op  string
	err error
}

func (e *opError) Error() string {
	return ErrStorage.Error() + ": " + e.op + ": " + e.err.Error()
}

func (e *opError) Is(target error) bool { return target == ErrStorage }

func (e *opError) Unwrap() error { return e.err }

func storageErr(err error, format string, args ...any) error {
	return errors.WithStack(&opError{op: fmt.Sprintf(format, args...), err: err})
}
