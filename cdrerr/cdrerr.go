// Package cdrerr defines the closed set of error kinds a CDR encode or
// decode operation can fail with.
//
// Sentinel errors are used for conditions with no payload; conditions that
// carry data (an invalid boolean byte, an invalid UTF-8 cause) get a small
// struct type that implements error and Unwrap so errors.Is still matches
// the underlying sentinel.
package cdrerr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds from the spec's closed error taxonomy.
var (
	// ErrDeserializeAnyNotSupported is returned when a host attempts a
	// self-describing decode; this codec has no type registry to drive one.
	ErrDeserializeAnyNotSupported = errors.New("cdr: self-describing decode is not supported")

	// ErrInvalidEncapsulation is returned when the 4-byte envelope header
	// does not match any known dialect.
	ErrInvalidEncapsulation = errors.New("cdr: invalid encapsulation header")

	// ErrInvalidUtf8Encoding is returned when string bytes are not valid UTF-8.
	ErrInvalidUtf8Encoding = errors.New("cdr: invalid utf-8 encoding")

	// ErrInvalidString is returned when a host string contains a character
	// CDR cannot represent as a single byte.
	ErrInvalidString = errors.New("cdr: string contains a non-ASCII character")

	// ErrNumberOutOfRange is returned when a sequence or string length
	// exceeds 2^32-1.
	ErrNumberOutOfRange = errors.New("cdr: length exceeds 2^32-1")

	// ErrSequenceMustHaveLength is returned when a sequence is offered
	// without a known upper bound.
	ErrSequenceMustHaveLength = errors.New("cdr: sequence must have a known length")

	// ErrSizeLimit is returned when a bounded budget is exhausted.
	ErrSizeLimit = errors.New("cdr: size limit exceeded")

	// ErrTypeNotSupported is returned when an optional, map, or other
	// unsupported shape is requested.
	ErrTypeNotSupported = errors.New("cdr: type not supported")

	// ErrInvalidCharEncoding is returned when a character is not
	// single-byte UTF-8.
	ErrInvalidCharEncoding = errors.New("cdr: character is not single-byte utf-8")
)

// InvalidBoolEncoding is returned when a decoded boolean byte is neither
// 0x00 nor 0x01.
type InvalidBoolEncoding struct {
	Byte byte
}

func (e *InvalidBoolEncoding) Error() string {
	return fmt.Sprintf("cdr: invalid bool encoding: 0x%02x", e.Byte)
}

// ErrInvalidBoolEncoding is the sentinel matched by errors.Is against any
// *InvalidBoolEncoding value.
var ErrInvalidBoolEncoding = errors.New("cdr: invalid bool encoding")

// Unwrap lets errors.Is(err, ErrInvalidBoolEncoding) succeed regardless of
// which byte was invalid.
func (e *InvalidBoolEncoding) Unwrap() error { return ErrInvalidBoolEncoding }

// InvalidChar is returned when a host char value cannot be represented by
// CDR's single-byte char encoding.
type InvalidChar struct {
	Rune rune
}

func (e *InvalidChar) Error() string {
	return fmt.Sprintf("cdr: invalid char for CDR encoding: %q", e.Rune)
}

// Unwrap lets errors.Is(err, ErrInvalidCharEncoding) succeed.
func (e *InvalidChar) Unwrap() error { return ErrInvalidCharEncoding }

// IO wraps an underlying reader/writer failure, propagated unchanged per
// the error-propagation policy in spec.md §7.
type IO struct {
	Cause error
}

func (e *IO) Error() string { return fmt.Sprintf("cdr: io error: %v", e.Cause) }

// Unwrap exposes the underlying I/O error to errors.Is/errors.As.
func (e *IO) Unwrap() error { return e.Cause }

// WrapIO wraps err as an IO error, or returns nil if err is nil.
func WrapIO(err error) error {
	if err == nil {
		return nil
	}

	return &IO{Cause: err}
}
