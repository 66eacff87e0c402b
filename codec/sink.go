package codec

// Sink is the method set shared by Writer and SizeChecker. A Marshaler
// implementation writes its fields through a Sink so the exact same code
// path drives both a real serialization and a pre-flight size
// computation (spec.md §9 design note on sharing padding state between
// the serializer and the size-checker).
type Sink interface {
	WriteBool(v bool) error
	WriteU8(v uint8) error
	WriteI8(v int8) error
	WriteU16(v uint16) error
	WriteI16(v int16) error
	WriteU32(v uint32) error
	WriteI32(v int32) error
	WriteU64(v uint64) error
	WriteI64(v int64) error
	WriteF32(v float32) error
	WriteF64(v float64) error
	WriteChar(v rune) error
	WriteString(s string) error
	WriteBytes(b []byte) error
	WriteSeqLen(n int) error
	WriteDiscriminant(idx uint32) error
	BeginStruct(n int) error
	EndStruct() error
}

// Source is the method set shared by Reader, the deserializing
// counterpart of Sink.
type Source interface {
	ReadBool() (bool, error)
	ReadU8() (uint8, error)
	ReadI8() (int8, error)
	ReadU16() (uint16, error)
	ReadI16() (int16, error)
	ReadU32() (uint32, error)
	ReadI32() (int32, error)
	ReadU64() (uint64, error)
	ReadI64() (int64, error)
	ReadF32() (float32, error)
	ReadF64() (float64, error)
	ReadChar() (rune, error)
	ReadString() (string, error)
	ReadBytes() ([]byte, error)
	ReadSeqLen() (int, error)
	ReadDiscriminant() (uint32, error)
	BeginStruct(n int) error
	EndStruct() error
}

var (
	_ Sink   = (*Writer)(nil)
	_ Sink   = (*SizeChecker)(nil)
	_ Source = (*Reader)(nil)
)
