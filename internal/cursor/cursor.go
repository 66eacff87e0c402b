// Package cursor implements the pos-mod-8 padding state machine shared by
// the CDR serializer, size-checker, and deserializer.
//
// CDR's maximum alignment is 8 bytes, and the stream restarts from offset
// 0 immediately after the 4-byte encapsulation envelope. A primitive of
// width W therefore needs padding computed from pos mod 8, not pos mod W —
// the two are equivalent for W in {1,2,4,8}, but only the former lets a
// single mask (pos & 7) serve every width. Both the serializer and the
// size-checker hand-rolled this identical computation in the source crate
// this library was ported from; Cursor factors it into one type so neither
// caller duplicates it.
package cursor

// Cursor tracks the running byte offset since the last Reset.
type Cursor struct {
	pos uint64
}

// Pos reports the current offset, counted since the last Reset.
func (c *Cursor) Pos() uint64 { return c.pos }

// Reset zeroes the offset. Called exactly once, immediately after the
// 4-byte encapsulation envelope is written or read.
func (c *Cursor) Reset() { c.pos = 0 }

// Advance records n bytes as having been written or read.
func (c *Cursor) Advance(n uint64) { c.pos += n }

// PaddingFor returns the number of padding bytes required before a
// primitive of the given width (1, 2, 4, or 8) can be written or read,
// given the cursor's current position.
//
// width must be a CDR-legal alignment (1, 2, 4, or 8); any other value
// panics, since it would indicate a bug in a caller rather than a
// reachable runtime condition.
func (c *Cursor) PaddingFor(width int) int {
	switch width {
	case 1, 2, 4, 8:
	default:
		panic("cursor: width must be one of 1, 2, 4, 8")
	}

	rem := int(c.pos&7) % width
	if rem == 0 {
		return 0
	}

	return width - rem
}
