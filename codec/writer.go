// Package codec implements the alignment-aware CDR serializer, its
// mirrored size-checker, and the CDR deserializer — the core described in
// spec.md §4.C/§4.D. These are the "visitor" methods a host type's
// Marshaler/Unmarshaler implementation (see package cdr) calls back into.
package codec

import (
	"io"
	"math"

	"github.com/hrektts/go-cdr/cdrerr"
	"github.com/hrektts/go-cdr/dialect"
	"github.com/hrektts/go-cdr/endian"
	"github.com/hrektts/go-cdr/internal/cursor"
	"github.com/hrektts/go-cdr/sizelimit"
)

var padZeros [8]byte

// Writer serializes primitives to an underlying io.Writer, inserting CDR
// padding so that every primitive of width W lands on an offset (from the
// start of the payload) that is a multiple of W.
//
// A Writer is fixed to one Dialect and one size-limit policy for its
// entire lifetime and must not be used concurrently (spec.md §5).
type Writer struct {
	dst    io.Writer
	engine endian.EndianEngine
	limit  sizelimit.Limit
	cur    cursor.Cursor
	scratch [8]byte
}

// NewWriter constructs a Writer that writes to dst using d's byte order,
// consulting limit on every byte (including padding).
func NewWriter(dst io.Writer, d dialect.Dialect, limit sizelimit.Limit) *Writer {
	return &Writer{dst: dst, engine: d.ByteOrder(), limit: limit}
}

// Pos reports the writer's current offset since the last Reset.
func (w *Writer) Pos() uint64 { return w.cur.Pos() }

// Reset zeroes the writer's offset. Called exactly once, immediately
// after the 4-byte encapsulation envelope has been written.
func (w *Writer) Reset() { w.cur.Reset() }

func (w *Writer) raw(b []byte) error {
	if _, err := w.dst.Write(b); err != nil {
		return cdrerr.WrapIO(err)
	}
	w.cur.Advance(uint64(len(b)))

	return w.limit.Add(uint64(len(b)))
}

func (w *Writer) pad(width int) error {
	n := w.cur.PaddingFor(width)
	if n == 0 {
		return nil
	}

	return w.raw(padZeros[:n])
}

// WriteBool writes a single byte: 0x01 for true, 0x00 for false.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.raw([]byte{0x01})
	}

	return w.raw([]byte{0x00})
}

// WriteU8 writes an unsigned 8-bit integer. Width 1 needs no padding.
func (w *Writer) WriteU8(v uint8) error { return w.raw([]byte{v}) }

// WriteI8 writes a signed 8-bit integer. Width 1 needs no padding.
func (w *Writer) WriteI8(v int8) error { return w.raw([]byte{byte(v)}) }

// WriteU16 writes an unsigned 16-bit integer in the writer's byte order,
// aligned to a 2-byte boundary.
func (w *Writer) WriteU16(v uint16) error {
	if err := w.pad(2); err != nil {
		return err
	}
	w.engine.PutUint16(w.scratch[:2], v)

	return w.raw(w.scratch[:2])
}

// WriteI16 writes a signed 16-bit integer, aligned to a 2-byte boundary.
func (w *Writer) WriteI16(v int16) error { return w.WriteU16(uint16(v)) }

// WriteU32 writes an unsigned 32-bit integer, aligned to a 4-byte boundary.
func (w *Writer) WriteU32(v uint32) error {
	if err := w.pad(4); err != nil {
		return err
	}
	w.engine.PutUint32(w.scratch[:4], v)

	return w.raw(w.scratch[:4])
}

// WriteI32 writes a signed 32-bit integer, aligned to a 4-byte boundary.
func (w *Writer) WriteI32(v int32) error { return w.WriteU32(uint32(v)) }

// WriteU64 writes an unsigned 64-bit integer, aligned to an 8-byte boundary.
func (w *Writer) WriteU64(v uint64) error {
	if err := w.pad(8); err != nil {
		return err
	}
	w.engine.PutUint64(w.scratch[:8], v)

	return w.raw(w.scratch[:8])
}

// WriteI64 writes a signed 64-bit integer, aligned to an 8-byte boundary.
func (w *Writer) WriteI64(v int64) error { return w.WriteU64(uint64(v)) }

// WriteF32 writes an IEEE-754 single-precision float, aligned to 4 bytes.
func (w *Writer) WriteF32(v float32) error { return w.WriteU32(math.Float32bits(v)) }

// WriteF64 writes an IEEE-754 double-precision float, aligned to 8 bytes.
func (w *Writer) WriteF64(v float64) error { return w.WriteU64(math.Float64bits(v)) }

// WriteChar writes a single character as exactly one UTF-8 byte. Multi-byte
// characters fail with *cdrerr.InvalidChar without writing anything; a
// char's alignment is 1, so no padding is ever needed.
func (w *Writer) WriteChar(v rune) error {
	if v < 0 || v > 0x7f {
		return &cdrerr.InvalidChar{Rune: v}
	}

	return w.raw([]byte{byte(v)})
}

// WriteString writes a string as a 4-byte length (the content's byte
// length plus one, for the trailing NUL), the content bytes, and a 0x00
// terminator. An empty string encodes to length 1 and a single NUL byte.
func (w *Writer) WriteString(s string) error {
	l := uint64(len(s)) + 1
	if l > math.MaxUint32 {
		return cdrerr.ErrNumberOutOfRange
	}
	if err := w.WriteU32(uint32(l)); err != nil {
		return err
	}
	if len(s) > 0 {
		if err := w.raw([]byte(s)); err != nil {
			return err
		}
	}

	return w.raw([]byte{0x00})
}

// WriteBytes writes a byte blob as a 4-byte length followed by the raw
// bytes, with no terminator.
func (w *Writer) WriteBytes(b []byte) error {
	if uint64(len(b)) > math.MaxUint32 {
		return cdrerr.ErrNumberOutOfRange
	}
	if err := w.WriteU32(uint32(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}

	return w.raw(b)
}

// WriteSeqLen writes a sequence's 4-byte length prefix. n must be
// non-negative (sequences must expose their length up front) and must not
// exceed 2^32-1.
func (w *Writer) WriteSeqLen(n int) error {
	if n < 0 {
		return cdrerr.ErrSequenceMustHaveLength
	}
	if uint64(n) > math.MaxUint32 {
		return cdrerr.ErrNumberOutOfRange
	}

	return w.WriteU32(uint32(n))
}

// WriteDiscriminant writes a tagged union's 4-byte unsigned discriminant.
func (w *Writer) WriteDiscriminant(idx uint32) error { return w.WriteU32(idx) }

// BeginStruct and EndStruct bracket a struct's fields. They are no-ops in
// plain CDR (a struct is just its fields concatenated in order) — they
// exist so a PlCdr writer could, in a future revision, tag member IDs
// without changing call sites; see spec.md §1 Non-goals.
func (w *Writer) BeginStruct(_ int) error { return nil }

// EndStruct closes a struct opened with BeginStruct.
func (w *Writer) EndStruct() error { return nil }
