package codec

import (
	"math"

	"github.com/hrektts/go-cdr/cdrerr"
	"github.com/hrektts/go-cdr/internal/cursor"
	"github.com/hrektts/go-cdr/sizelimit"
)

// SizeChecker mirrors Writer's padding state machine but emits no bytes.
// It reports the size a real serialization would produce, or fails fast
// with cdrerr.ErrSizeLimit if a bound is supplied.
//
// A freshly constructed SizeChecker has total 0; callers account for the
// 4-byte encapsulation header explicitly via SizeEnvelope, exactly as
// WriteEnvelope spends those bytes against a Writer's limit.
type SizeChecker struct {
	limit sizelimit.Limit
	cur   cursor.Cursor
	total uint64
}

// NewSizeChecker constructs an unbounded SizeChecker.
func NewSizeChecker() *SizeChecker {
	return &SizeChecker{limit: sizelimit.Unbounded{}}
}

// NewBoundedSizeChecker constructs a SizeChecker that fails with
// cdrerr.ErrSizeLimit as soon as the running total would exceed max
// minus sizelimit.EnvelopeSize, since sizelimit.Bounded keeps that much
// headroom on every Add.
func NewBoundedSizeChecker(max uint64) *SizeChecker {
	return &SizeChecker{limit: sizelimit.NewBounded(max)}
}

// Size reports the total number of bytes accumulated so far, including
// the 4-byte envelope once SizeEnvelope has been called.
func (c *SizeChecker) Size() uint64 { return c.total }

func (c *SizeChecker) add(n uint64) error {
	if err := c.limit.Add(n); err != nil {
		return err
	}
	c.total += n
	c.cur.Advance(n)

	return nil
}

func (c *SizeChecker) pad(width int) error {
	n := c.cur.PaddingFor(width)
	if n == 0 {
		return nil
	}

	return c.add(uint64(n))
}

// WriteBool accounts for a 1-byte boolean.
func (c *SizeChecker) WriteBool(_ bool) error { return c.add(1) }

// WriteU8 accounts for an unsigned 8-bit integer.
func (c *SizeChecker) WriteU8(_ uint8) error { return c.add(1) }

// WriteI8 accounts for a signed 8-bit integer.
func (c *SizeChecker) WriteI8(_ int8) error { return c.add(1) }

// WriteU16 accounts for an unsigned 16-bit integer, aligned to 2 bytes.
func (c *SizeChecker) WriteU16(_ uint16) error {
	if err := c.pad(2); err != nil {
		return err
	}

	return c.add(2)
}

// WriteI16 accounts for a signed 16-bit integer, aligned to 2 bytes.
func (c *SizeChecker) WriteI16(_ int16) error { return c.WriteU16(0) }

// WriteU32 accounts for an unsigned 32-bit integer, aligned to 4 bytes.
func (c *SizeChecker) WriteU32(_ uint32) error {
	if err := c.pad(4); err != nil {
		return err
	}

	return c.add(4)
}

// WriteI32 accounts for a signed 32-bit integer, aligned to 4 bytes.
func (c *SizeChecker) WriteI32(_ int32) error { return c.WriteU32(0) }

// WriteU64 accounts for an unsigned 64-bit integer, aligned to 8 bytes.
func (c *SizeChecker) WriteU64(_ uint64) error {
	if err := c.pad(8); err != nil {
		return err
	}

	return c.add(8)
}

// WriteI64 accounts for a signed 64-bit integer, aligned to 8 bytes.
func (c *SizeChecker) WriteI64(_ int64) error { return c.WriteU64(0) }

// WriteF32 accounts for a 32-bit float, aligned to 4 bytes.
func (c *SizeChecker) WriteF32(_ float32) error { return c.WriteU32(0) }

// WriteF64 accounts for a 64-bit float, aligned to 8 bytes.
func (c *SizeChecker) WriteF64(_ float64) error { return c.WriteU64(0) }

// WriteChar accounts for a single-byte character; fails with
// *cdrerr.InvalidChar for anything outside ASCII, matching Writer.WriteChar.
func (c *SizeChecker) WriteChar(v rune) error {
	if v < 0 || v > 0x7f {
		return &cdrerr.InvalidChar{Rune: v}
	}

	return c.add(1)
}

// WriteString accounts for a string's 4-byte length, content, and NUL terminator.
func (c *SizeChecker) WriteString(s string) error {
	l := uint64(len(s)) + 1
	if l > math.MaxUint32 {
		return cdrerr.ErrNumberOutOfRange
	}
	if err := c.WriteU32(0); err != nil {
		return err
	}

	return c.add(l)
}

// WriteBytes accounts for a byte blob's 4-byte length and raw content.
func (c *SizeChecker) WriteBytes(b []byte) error {
	if uint64(len(b)) > math.MaxUint32 {
		return cdrerr.ErrNumberOutOfRange
	}
	if err := c.WriteU32(0); err != nil {
		return err
	}

	return c.add(uint64(len(b)))
}

// WriteSeqLen accounts for a sequence's 4-byte length prefix.
func (c *SizeChecker) WriteSeqLen(n int) error {
	if n < 0 {
		return cdrerr.ErrSequenceMustHaveLength
	}
	if uint64(n) > math.MaxUint32 {
		return cdrerr.ErrNumberOutOfRange
	}

	return c.WriteU32(0)
}

// WriteDiscriminant accounts for a tagged union's 4-byte discriminant.
func (c *SizeChecker) WriteDiscriminant(_ uint32) error { return c.WriteU32(0) }

// BeginStruct is a no-op, mirroring Writer.BeginStruct.
func (c *SizeChecker) BeginStruct(_ int) error { return nil }

// EndStruct is a no-op, mirroring Writer.EndStruct.
func (c *SizeChecker) EndStruct() error { return nil }
