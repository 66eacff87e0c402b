// Package transport compresses already-CDR-encoded message bytes before
// they go out over the wire, and decompresses them on the way back in.
// It has no knowledge of CDR's value model — it operates purely on the
// byte slice cdr.Encode produced — so wrapping a message in a transport
// Codec never changes its on-wire CDR representation, only how many bytes
// of it travel over the network.
package transport

import "fmt"

// Compressor compresses an encoded CDR message.
type Compressor interface {
	// Compress compresses data and returns the result. The compressing
	// codecs allocate a new slice; NoOpCodec returns data itself. The
	// input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a message a Compressor produced.
type Decompressor interface {
	// Decompress decompresses data and returns the result. The
	// decompressing codecs allocate a new slice; NoOpCodec returns data
	// itself. The input is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

// NewCodec is a factory that builds the built-in Codec for kind.
func NewCodec(kind CompressionKind) (Codec, error) {
	switch kind {
	case CompressionNone:
		return NoOpCodec{}, nil
	case CompressionS2:
		return S2Codec{}, nil
	case CompressionLZ4:
		return LZ4Codec{}, nil
	case CompressionZstd:
		return ZstdCodec{}, nil
	default:
		return nil, fmt.Errorf("transport: unsupported compression kind %s", kind)
	}
}

var builtinCodecs = map[CompressionKind]Codec{
	CompressionNone: NoOpCodec{},
	CompressionS2:   S2Codec{},
	CompressionLZ4:  LZ4Codec{},
	CompressionZstd: ZstdCodec{},
}

// GetCodec retrieves one of the package's built-in Codec singletons.
func GetCodec(kind CompressionKind) (Codec, error) {
	if c, ok := builtinCodecs[kind]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("transport: unsupported compression kind %s", kind)
}
