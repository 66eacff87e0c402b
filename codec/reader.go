package codec

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/hrektts/go-cdr/cdrerr"
	"github.com/hrektts/go-cdr/dialect"
	"github.com/hrektts/go-cdr/endian"
	"github.com/hrektts/go-cdr/internal/cursor"
	"github.com/hrektts/go-cdr/sizelimit"
)

// blockSize bounds how many bytes ReadBytes/ReadString pull into memory
// per read.Read call, so a hostile or corrupt length prefix cannot force
// an unbounded allocation before any size-limit check runs.
const blockSize = 65536

// Reader deserializes primitives from an underlying io.Reader, consuming
// CDR padding exactly as Writer inserts it.
//
// A Reader uses the byte order of the Dialect given to NewReader until
// ReadEnvelope replaces it with the one named in the header; its
// size-limit policy is fixed for its lifetime. A Reader must not be used
// concurrently (spec.md §5).
type Reader struct {
	src     io.Reader
	engine  endian.EndianEngine
	limit   sizelimit.Limit
	cur     cursor.Cursor
	scratch [8]byte
}

// NewReader constructs a Reader that reads from src using d's byte order,
// consulting limit on every byte (including padding).
func NewReader(src io.Reader, d dialect.Dialect, limit sizelimit.Limit) *Reader {
	return &Reader{src: src, engine: d.ByteOrder(), limit: limit}
}

// Pos reports the reader's current offset since the last Reset.
func (r *Reader) Pos() uint64 { return r.cur.Pos() }

// Reset zeroes the reader's offset. Called exactly once, immediately
// after the 4-byte encapsulation envelope has been read.
func (r *Reader) Reset() { r.cur.Reset() }

func (r *Reader) raw(b []byte) error {
	if _, err := io.ReadFull(r.src, b); err != nil {
		return cdrerr.WrapIO(err)
	}
	r.cur.Advance(uint64(len(b)))

	return r.limit.Add(uint64(len(b)))
}

func (r *Reader) skipPad(width int) error {
	n := r.cur.PaddingFor(width)
	if n == 0 {
		return nil
	}

	return r.raw(r.scratch[:n])
}

// ReadBool reads a single byte and requires it to be exactly 0x00 or
// 0x01; any other value fails with *cdrerr.InvalidBoolEncoding.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, &cdrerr.InvalidBoolEncoding{Byte: v}
	}
}

// ReadU8 reads an unsigned 8-bit integer. Width 1 needs no padding.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.raw(r.scratch[:1]); err != nil {
		return 0, err
	}

	return r.scratch[0], nil
}

// ReadI8 reads a signed 8-bit integer. Width 1 needs no padding.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

// ReadU16 reads an unsigned 16-bit integer, aligned to 2 bytes.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.skipPad(2); err != nil {
		return 0, err
	}
	if err := r.raw(r.scratch[:2]); err != nil {
		return 0, err
	}

	return r.engine.Uint16(r.scratch[:2]), nil
}

// ReadI16 reads a signed 16-bit integer, aligned to 2 bytes.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU32 reads an unsigned 32-bit integer, aligned to 4 bytes.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.skipPad(4); err != nil {
		return 0, err
	}
	if err := r.raw(r.scratch[:4]); err != nil {
		return 0, err
	}

	return r.engine.Uint32(r.scratch[:4]), nil
}

// ReadI32 reads a signed 32-bit integer, aligned to 4 bytes.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU64 reads an unsigned 64-bit integer, aligned to 8 bytes.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.skipPad(8); err != nil {
		return 0, err
	}
	if err := r.raw(r.scratch[:8]); err != nil {
		return 0, err
	}

	return r.engine.Uint64(r.scratch[:8]), nil
}

// ReadI64 reads a signed 64-bit integer, aligned to 8 bytes.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadF32 reads an IEEE-754 single-precision float, aligned to 4 bytes.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadF64 reads an IEEE-754 double-precision float, aligned to 8 bytes.
func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// ReadChar reads a single character. It inspects the first byte's UTF-8
// lead-byte width; any width other than 1 fails with
// *cdrerr.InvalidChar without consuming further bytes, since a non-ASCII
// stream could never have been produced by WriteChar.
func (r *Reader) ReadChar() (rune, error) {
	b, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if utf8.RuneStart(b) && utf8.RuneLen(rune(b)) == 1 {
		return rune(b), nil
	}

	return 0, &cdrerr.InvalidChar{Rune: rune(b)}
}

// ReadString reads a 4-byte length, that many bytes, validates them as
// UTF-8, and strips the trailing NUL terminator. Large length prefixes
// are read in blockSize windows so a hostile length cannot force an
// unbounded allocation before the size limit rejects it.
func (r *Reader) ReadString() (string, error) {
	b, err := r.readLengthPrefixed()
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}

	content := b[:len(b)-1]
	if !utf8.Valid(content) {
		return "", cdrerr.ErrInvalidUtf8Encoding
	}

	return string(content), nil
}

// ReadBytes reads a 4-byte length followed by that many raw bytes, with
// no terminator.
func (r *Reader) ReadBytes() ([]byte, error) {
	return r.readLengthPrefixed()
}

func (r *Reader) readLengthPrefixed() ([]byte, error) {
	l, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, min(int(l), blockSize))
	remaining := int(l)
	for remaining > 0 {
		chunk := remaining
		if chunk > blockSize {
			chunk = blockSize
		}
		buf := make([]byte, chunk)
		if err := r.raw(buf); err != nil {
			return nil, err
		}
		out = append(out, buf...)
		remaining -= chunk
	}

	return out, nil
}

// ReadSeqLen reads a sequence's 4-byte length prefix.
func (r *Reader) ReadSeqLen() (int, error) {
	l, err := r.ReadU32()
	if err != nil {
		return 0, err
	}

	return int(l), nil
}

// ReadDiscriminant reads a tagged union's 4-byte unsigned discriminant.
// Validating the value against the variant range is the surrounding type
// system's responsibility (spec.md §4.D).
func (r *Reader) ReadDiscriminant() (uint32, error) { return r.ReadU32() }

// BeginStruct and EndStruct bracket a struct's fields; see
// Writer.BeginStruct.
func (r *Reader) BeginStruct(_ int) error { return nil }

// EndStruct closes a struct opened with BeginStruct.
func (r *Reader) EndStruct() error { return nil }
