package cdr

import (
	"github.com/hrektts/go-cdr/internal/options"
	"github.com/hrektts/go-cdr/transport"
)

// config collects the settings an Option can change before a codec is
// constructed. The zero value selects CdrBe, unbounded, uncompressed.
type config struct {
	littleEndian  bool
	parameterList bool
	bounded       bool
	maxSize       uint64
	compression   transport.CompressionKind
}

// Option configures Encode, Decode, and their variants.
type Option = options.Option[*config]

// WithBigEndian selects the CdrBe (or PlCdrBe, combined with
// WithParameterList) dialect. This is the default.
func WithBigEndian() Option {
	return options.NoError(func(c *config) { c.littleEndian = false })
}

// WithLittleEndian selects the CdrLe (or PlCdrLe) dialect.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) { c.littleEndian = true })
}

// WithParameterList selects the parameter-list variant of whichever byte
// order is in effect (PlCdrBe or PlCdrLe).
func WithParameterList() Option {
	return options.NoError(func(c *config) { c.parameterList = true })
}

// WithMaxSize bounds the operation to at most max bytes, including the
// 4-byte encapsulation header. Exceeding it fails with
// cdrerr.ErrSizeLimit.
func WithMaxSize(max uint64) Option {
	return options.NoError(func(c *config) {
		c.bounded = true
		c.maxSize = max
	})
}

func resolveConfig(opts ...Option) (*config, error) {
	c := &config{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
