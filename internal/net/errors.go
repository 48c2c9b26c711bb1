package net

import (
	"github.com/pkg/errors"
)

// Error kinds returned by Network operations.
var (
	// ErrShapeMismatch reports an input, target or persisted parameter set whose
	// shape disagrees with the network topology.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidConfig reports a Config rejected by Validate.
	ErrInvalidConfig = errors.New("invalid network config")

	// ErrUnknownActivation reports a persisted activation tag with no known implementation.
	ErrUnknownActivation = errors.New("unknown activation")
)

func shapeErr(format string, args ...any) error {
	return errors.Wrapf(ErrShapeMismatch, format, args...)
}

// shapeError carries a layer level cause under ErrShapeMismatch.
type shapeError struct {
	err error
}

func (e *shapeError) Error() string {
	return ErrShapeMismatch.Error() + ": " + e.err.Error()
}

func (e *shapeError) Is(target error) bool { return target == ErrShapeMismatch }

func (e *shapeError) Unwrap() error { return e.err }

// wrapShape reports err as ErrShapeMismatch while keeping it in the chain.
func wrapShape(err error) error {
	return errors.WithStack(&shapeError{err: err})
}
