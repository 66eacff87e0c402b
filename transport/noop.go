package transport

// NoOpCodec passes message bytes through unchanged. Useful for
// benchmarking the cost of the rest of the transport path in isolation,
// or for links where compression isn't worth the CPU.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
