package transport

// ZstdCodec compresses with Zstandard: the best ratio of the three, at
// the cost of more CPU time than S2 or LZ4. Its Compress/Decompress
// methods live in zstd_cgo.go (behind a cgo build, wrapping
// valyala/gozstd) or zstd_pure.go (the pure-Go fallback, wrapping
// klauspost/compress/zstd) so the rest of the package never branches on
// build tags.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
