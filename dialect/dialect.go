// Package dialect names the four CDR encapsulation dialects and supplies
// each one's wire ID and byte order.
//
// A dialect is fixed for the lifetime of a codec instance (spec.md §5,
// §9: "Byte-order and dialect are fixed for the lifetime of a codec
// instance"). It is selected by the caller on encode and read back from
// the encapsulation header's byte 1 on decode.
package dialect

import (
	"fmt"

	"github.com/hrektts/go-cdr/endian"
)

// Dialect identifies one of the four CDR encapsulation schemes.
type Dialect uint8

const (
	// CdrBe is plain CDR, big-endian.
	CdrBe Dialect = iota
	// CdrLe is plain CDR, little-endian.
	CdrLe
	// PlCdrBe is parameter-list CDR, big-endian. At the core codec layer
	// its on-wire layout is identical to CdrBe; only the envelope ID and
	// a higher layer's semantic interpretation differ.
	PlCdrBe
	// PlCdrLe is parameter-list CDR, little-endian; see PlCdrBe.
	PlCdrLe
)

// ID is the 2-byte dialect identifier (bytes 0-1 of the encapsulation
// header: byte 0 is always 0x00, byte 1 selects the dialect).
func (d Dialect) ID() [2]byte {
	switch d {
	case CdrBe:
		return [2]byte{0x00, 0x00}
	case CdrLe:
		return [2]byte{0x00, 0x01}
	case PlCdrBe:
		return [2]byte{0x00, 0x02}
	case PlCdrLe:
		return [2]byte{0x00, 0x03}
	default:
		panic(fmt.Sprintf("dialect: invalid Dialect value %d", uint8(d)))
	}
}

// Option is the 2-byte options field of the encapsulation header. It is
// always zero for all four dialects in this core.
func (d Dialect) Option() [2]byte { return [2]byte{0x00, 0x00} }

// ByteOrder returns the endian engine this dialect uses for every
// multi-byte scalar.
func (d Dialect) ByteOrder() endian.EndianEngine {
	switch d {
	case CdrBe, PlCdrBe:
		return endian.GetBigEndianEngine()
	case CdrLe, PlCdrLe:
		return endian.GetLittleEndianEngine()
	default:
		panic(fmt.Sprintf("dialect: invalid Dialect value %d", uint8(d)))
	}
}

// IsParameterList reports whether d signals parameter-list semantics to
// higher layers. The core codec's on-wire layout does not change based on
// this value.
func (d Dialect) IsParameterList() bool {
	return d == PlCdrBe || d == PlCdrLe
}

// String implements fmt.Stringer.
func (d Dialect) String() string {
	switch d {
	case CdrBe:
		return "CdrBe"
	case CdrLe:
		return "CdrLe"
	case PlCdrBe:
		return "PlCdrBe"
	case PlCdrLe:
		return "PlCdrLe"
	default:
		return "Unknown"
	}
}

// FromByte maps encapsulation header byte 1 to the dialect it selects.
// The second return value is false if b does not identify any dialect.
func FromByte(b byte) (Dialect, bool) {
	switch b {
	case 0x00:
		return CdrBe, true
	case 0x01:
		return CdrLe, true
	case 0x02:
		return PlCdrBe, true
	case 0x03:
		return PlCdrLe, true
	default:
		return 0, false
	}
}
