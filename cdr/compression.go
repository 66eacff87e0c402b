package cdr

import (
	"github.com/hrektts/go-cdr/internal/options"
	"github.com/hrektts/go-cdr/transport"
)

// WithCompression wraps the finished CDR bytes (envelope and all) in a
// transport.Codec on Encode/EncodeInto, and unwraps them on
// Decode/DecodeFrom before the envelope is parsed. Compression happens
// entirely outside the CDR value model, so the same kind must be given
// on both ends; there is no in-band marker recording which kind, if any,
// was used.
func WithCompression(kind transport.CompressionKind) Option {
	return options.NoError(func(c *config) { c.compression = kind })
}
