package transport

import "fmt"

// CompressionKind identifies which Codec compresses an encoded CDR
// message before it goes out over the wire. Compression operates on the
// already-serialized bytes, entirely outside the CDR value model, so it
// never reintroduces any of the shapes spec.md's Non-goals exclude.
type CompressionKind uint8

const (
	// CompressionNone passes bytes through unchanged.
	CompressionNone CompressionKind = iota
	// CompressionS2 uses the S2 extension of Snappy: fast, moderate ratio.
	CompressionS2
	// CompressionLZ4 trades a lower ratio than S2 for lower latency.
	CompressionLZ4
	// CompressionZstd gives the best ratio at the cost of more CPU time;
	// suited to archival or bandwidth-constrained links.
	CompressionZstd
)

// String implements fmt.Stringer.
func (k CompressionKind) String() string {
	switch k {
	case CompressionNone:
		return "none"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("CompressionKind(%d)", uint8(k))
	}
}
