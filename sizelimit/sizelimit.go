// Package sizelimit tracks the remaining byte budget for a CDR encode or
// decode operation.
//
// Every byte a codec touches — including padding bytes and the 4-byte
// encapsulation envelope — is consulted against the active Limit. An
// Unbounded limit never rejects; a Bounded limit fails once its budget
// would be exceeded.
package sizelimit

import "github.com/hrektts/go-cdr/cdrerr"

// EnvelopeSize is the size in bytes of the CDR encapsulation header that
// prefixes every top-level message.
const EnvelopeSize uint64 = 4

// Limit is consulted on every byte a serializer, size-checker, or
// deserializer touches.
type Limit interface {
	// Add records n additional bytes consumed and either succeeds or
	// returns cdrerr.ErrSizeLimit if the budget would be exceeded.
	Add(n uint64) error

	// Remaining reports the spare byte budget, or false if the limit is
	// Unbounded.
	Remaining() (uint64, bool)
}

// Unbounded is a Limit that never rejects a byte.
type Unbounded struct{}

var _ Limit = Unbounded{}

// Add always succeeds.
func (Unbounded) Add(_ uint64) error { return nil }

// Remaining reports ok=false: an Unbounded limit has no remaining budget
// to report.
func (Unbounded) Remaining() (uint64, bool) { return 0, false }

// Bounded is a Limit with a fixed byte budget.
//
// Add reserves EnvelopeSize (4 bytes) against every call in addition to n,
// matching the revision of the source crate's Bounded policy that
// accounts for the encapsulation header on every add rather than only
// once up front (see DESIGN.md, Open Questions). This makes a freshly
// constructed Bounded(max) behave consistently whether max is spent via
// many small Adds or one large one.
type Bounded struct {
	remaining uint64
}

var _ Limit = (*Bounded)(nil)

// NewBounded constructs a Bounded limit with the given maximum budget, in
// bytes, including the encapsulation envelope.
func NewBounded(max uint64) *Bounded {
	return &Bounded{remaining: max}
}

// Add consumes n bytes from the budget, reserving EnvelopeSize against
// every call. Returns cdrerr.ErrSizeLimit if the budget is insufficient.
func (b *Bounded) Add(n uint64) error {
	if b.remaining < n+EnvelopeSize {
		return cdrerr.ErrSizeLimit
	}
	b.remaining -= n

	return nil
}

// Remaining reports the spare byte budget.
func (b *Bounded) Remaining() (uint64, bool) { return b.remaining, true }
