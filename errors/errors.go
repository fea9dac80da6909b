// Package errors defines the two structured error kinds that every codec in
// this module uses to report failures: corrupted input and unsupported
// (type, encoding) combinations.
package errors

import (
	"errors"
	"fmt"

	"github.com/parquet-go/codec/format"
)

var (
	// ErrCorrupted is the sentinel wrapped by every CorruptedError. Callers
	// use errors.Is(err, errors.ErrCorrupted) rather than type assertions.
	ErrCorrupted = errors.New("corrupted input")

	// ErrNotSupported is the sentinel wrapped by every NotSupportedError.
	ErrNotSupported = errors.New("encoding not supported")
)

// CorruptedError reports that a decoder or encoder rejected structurally
// invalid input. It is always fatal for the call that produced it; retrying
// on the same buffer cannot succeed.
type CorruptedError struct {
	Reason string
}

func (e *CorruptedError) Error() string { return "corrupted: " + e.Reason }

func (e *CorruptedError) Unwrap() error { return ErrCorrupted }

// Corrupted constructs a *CorruptedError from a format string, following the
// fmt.Errorf convention.
func Corrupted(msg string, args ...interface{}) error {
	return &CorruptedError{Reason: fmt.Sprintf(msg, args...)}
}

// NotSupportedError reports that a (format.Type, format.Encoding) pairing is
// outside the supported matrix. It is surfaced by encoder/decoder factories
// before any bytes are read or written.
type NotSupportedError struct {
	Type     format.Type
	Encoding format.Encoding
	Reason   string
}

func (e *NotSupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s not supported for %s: %s", e.Encoding, e.Type, e.Reason)
	}
	return fmt.Sprintf("%s not supported for %s", e.Encoding, e.Type)
}

func (e *NotSupportedError) Unwrap() error { return ErrNotSupported }

// NotSupported constructs a *NotSupportedError for the given type/encoding
// pair, optionally with a free-form reason.
func NotSupported(typ format.Type, encoding format.Encoding, reason string) error {
	return &NotSupportedError{Type: typ, Encoding: encoding, Reason: reason}
}

// IsCorrupted reports whether err (or something it wraps) is a CorruptedError.
func IsCorrupted(err error) bool { return errors.Is(err, ErrCorrupted) }

// IsNotSupported reports whether err (or something it wraps) is a
// NotSupportedError.
func IsNotSupported(err error) bool { return errors.Is(err, ErrNotSupported) }
