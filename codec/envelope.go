package codec

import (
	"github.com/hrektts/go-cdr/cdrerr"
	"github.com/hrektts/go-cdr/dialect"
	"github.com/hrektts/go-cdr/sizelimit"
)

// WriteEnvelope writes the 4-byte encapsulation header — d's 2-byte ID
// followed by the 2-byte zero options field — and then resets w's cursor,
// so everything written after this call is aligned relative to the start
// of the payload rather than the start of the buffer.
func WriteEnvelope(w *Writer, d dialect.Dialect) error {
	id := d.ID()
	if err := w.raw(id[:]); err != nil {
		return err
	}
	opt := d.Option()
	if err := w.raw(opt[:]); err != nil {
		return err
	}
	w.Reset()

	return nil
}

// SizeEnvelope accounts for the 4-byte encapsulation header against c's
// size limit and total, then resets c's padding cursor — the size-checker
// equivalent of WriteEnvelope.
func SizeEnvelope(c *SizeChecker) error {
	if err := c.add(sizelimit.EnvelopeSize); err != nil {
		return err
	}
	c.cur.Reset()

	return nil
}

// ReadEnvelope reads and validates the 4-byte encapsulation header,
// returning the dialect selected by byte 1. Byte 0 must be 0x00 and bytes
// 2-3 must be 0x00; any other header fails with
// cdrerr.ErrInvalidEncapsulation. On success, r's cursor is reset.
func ReadEnvelope(r *Reader) (dialect.Dialect, error) {
	var hdr [4]byte
	if err := r.raw(hdr[:]); err != nil {
		return 0, err
	}
	if hdr[0] != 0x00 || hdr[2] != 0x00 || hdr[3] != 0x00 {
		return 0, cdrerr.ErrInvalidEncapsulation
	}
	d, ok := dialect.FromByte(hdr[1])
	if !ok {
		return 0, cdrerr.ErrInvalidEncapsulation
	}
	// Swap the byte-order policy now that the dialect is known. This is a
	// pure type-level change in the source this was ported from (it
	// reconstructs the Deserializer<C> via an Into conversion that carries
	// over the reader, size limit, and pos fields unchanged); here it is
	// just reassigning the one field those primitive reads consult.
	r.engine = d.ByteOrder()
	r.Reset()

	return d, nil
}
