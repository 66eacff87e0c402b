// Package reflectcodec is the default structural walker that drives
// package codec's Sink/Source for plain Go values that implement neither
// cdr.Marshaler nor cdr.Unmarshaler.
//
// It maps Go kinds onto CDR shapes directly: bool, the sized integers,
// float32/float64, string, []byte (byte blob), fixed-size arrays (CDR
// fixed array, no length prefix), slices (CDR sequence, length-prefixed),
// and structs (CDR struct, fields concatenated in declaration order).
// Marshal follows a top-level pointer to the value it points at; nested
// pointers, maps, and anything else fail with cdrerr.ErrTypeNotSupported
// when the walk reaches them. The check is not made ahead of the walk:
// values earlier in the walk (for example, preceding struct fields) have
// already been written to the Sink or read from the Source by then.
package reflectcodec

import (
	"reflect"

	"github.com/hrektts/go-cdr/cdrerr"
	"github.com/hrektts/go-cdr/codec"
	"github.com/hrektts/go-cdr/internal/shape"
)

var charType = reflect.TypeOf(Char(0))

// marshaler and unmarshaler duck-type cdr.Marshaler/cdr.Unmarshaler so
// nested fields that implement them (e.g. a hand-written tagged union)
// are honored even though this package cannot import cdr back.
type marshaler interface {
	MarshalCDR(w codec.Sink) error
}

type unmarshaler interface {
	UnmarshalCDR(r codec.Source) error
}

// Marshal writes v's CDR representation to w using reflection.
func Marshal(v any, w codec.Sink) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return cdrerr.ErrTypeNotSupported
	}
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return cdrerr.ErrTypeNotSupported
		}
		rv = rv.Elem()
	}

	return marshalValue(rv, w)
}

func marshalValue(rv reflect.Value, w codec.Sink) error {
	if rv.Type() == charType {
		return w.WriteChar(rune(rv.Interface().(Char)))
	}

	if m, ok := asMarshaler(rv); ok {
		return m.MarshalCDR(w)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return w.WriteBool(rv.Bool())
	case reflect.Int8:
		return w.WriteI8(int8(rv.Int()))
	case reflect.Int16:
		return w.WriteI16(int16(rv.Int()))
	case reflect.Int32:
		return w.WriteI32(int32(rv.Int()))
	case reflect.Int64, reflect.Int:
		return w.WriteI64(rv.Int())
	case reflect.Uint8:
		return w.WriteU8(uint8(rv.Uint()))
	case reflect.Uint16:
		return w.WriteU16(uint16(rv.Uint()))
	case reflect.Uint32:
		return w.WriteU32(uint32(rv.Uint()))
	case reflect.Uint64, reflect.Uint:
		return w.WriteU64(rv.Uint())
	case reflect.Float32:
		return w.WriteF32(float32(rv.Float()))
	case reflect.Float64:
		return w.WriteF64(rv.Float())
	case reflect.String:
		return w.WriteString(rv.String())
	case reflect.Array:
		return marshalArray(rv, w)
	case reflect.Slice:
		return marshalSlice(rv, w)
	case reflect.Struct:
		return marshalStruct(rv, w)
	default:
		return cdrerr.ErrTypeNotSupported
	}
}

func marshalArray(rv reflect.Value, w codec.Sink) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)

		return writeFixedBytes(w, b)
	}

	for i := 0; i < rv.Len(); i++ {
		if err := marshalValue(rv.Index(i), w); err != nil {
			return err
		}
	}

	return nil
}

// writeFixedBytes writes a fixed-size byte array with no length prefix,
// one byte at a time through the Sink so no byte-slice-specific method
// is needed on the interface.
func writeFixedBytes(w codec.Sink, b []byte) error {
	for _, v := range b {
		if err := w.WriteU8(v); err != nil {
			return err
		}
	}

	return nil
}

func marshalSlice(rv reflect.Value, w codec.Sink) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return w.WriteBytes(rv.Bytes())
	}

	if err := w.WriteSeqLen(rv.Len()); err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := marshalValue(rv.Index(i), w); err != nil {
			return err
		}
	}

	return nil
}

func marshalStruct(rv reflect.Value, w codec.Sink) error {
	plan := shape.Of(rv.Type())
	if err := w.BeginStruct(len(plan.Fields)); err != nil {
		return err
	}
	for _, f := range plan.Fields {
		if err := marshalValue(rv.FieldByIndex(f.Index), w); err != nil {
			return err
		}
	}

	return w.EndStruct()
}

// Unmarshal reads a CDR representation from r into v, which must be a
// non-nil pointer.
func Unmarshal(v any, r codec.Source) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return cdrerr.ErrTypeNotSupported
	}

	return unmarshalValue(rv.Elem(), r)
}

func unmarshalValue(rv reflect.Value, r codec.Source) error {
	if !rv.CanSet() {
		return cdrerr.ErrTypeNotSupported
	}

	if u, ok := asUnmarshaler(rv); ok {
		return u.UnmarshalCDR(r)
	}

	if rv.Type() == charType {
		c, err := r.ReadChar()
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(Char(c)))

		return nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		v, err := r.ReadBool()
		if err != nil {
			return err
		}
		rv.SetBool(v)

		return nil
	case reflect.Int8:
		v, err := r.ReadI8()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))

		return nil
	case reflect.Int16:
		v, err := r.ReadI16()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))

		return nil
	case reflect.Int32:
		v, err := r.ReadI32()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))

		return nil
	case reflect.Int64, reflect.Int:
		v, err := r.ReadI64()
		if err != nil {
			return err
		}
		rv.SetInt(v)

		return nil
	case reflect.Uint8:
		v, err := r.ReadU8()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))

		return nil
	case reflect.Uint16:
		v, err := r.ReadU16()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))

		return nil
	case reflect.Uint32:
		v, err := r.ReadU32()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))

		return nil
	case reflect.Uint64, reflect.Uint:
		v, err := r.ReadU64()
		if err != nil {
			return err
		}
		rv.SetUint(v)

		return nil
	case reflect.Float32:
		v, err := r.ReadF32()
		if err != nil {
			return err
		}
		rv.SetFloat(float64(v))

		return nil
	case reflect.Float64:
		v, err := r.ReadF64()
		if err != nil {
			return err
		}
		rv.SetFloat(v)

		return nil
	case reflect.String:
		v, err := r.ReadString()
		if err != nil {
			return err
		}
		rv.SetString(v)

		return nil
	case reflect.Array:
		return unmarshalArray(rv, r)
	case reflect.Slice:
		return unmarshalSlice(rv, r)
	case reflect.Struct:
		return unmarshalStruct(rv, r)
	default:
		return cdrerr.ErrTypeNotSupported
	}
}

func unmarshalArray(rv reflect.Value, r codec.Source) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		for i := 0; i < rv.Len(); i++ {
			b, err := r.ReadU8()
			if err != nil {
				return err
			}
			rv.Index(i).SetUint(uint64(b))
		}

		return nil
	}

	for i := 0; i < rv.Len(); i++ {
		if err := unmarshalValue(rv.Index(i), r); err != nil {
			return err
		}
	}

	return nil
}

func unmarshalSlice(rv reflect.Value, r codec.Source) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b, err := r.ReadBytes()
		if err != nil {
			return err
		}
		rv.SetBytes(b)

		return nil
	}

	n, err := r.ReadSeqLen()
	if err != nil {
		return err
	}
	if n == 0 {
		rv.Set(reflect.Zero(rv.Type()))

		return nil
	}

	out := reflect.MakeSlice(rv.Type(), n, n)
	for i := 0; i < n; i++ {
		if err := unmarshalValue(out.Index(i), r); err != nil {
			return err
		}
	}
	rv.Set(out)

	return nil
}

func asMarshaler(rv reflect.Value) (marshaler, bool) {
	if rv.CanAddr() {
		if m, ok := rv.Addr().Interface().(marshaler); ok {
			return m, true
		}
	}
	if rv.CanInterface() {
		if m, ok := rv.Interface().(marshaler); ok {
			return m, true
		}
	}

	return nil, false
}

func asUnmarshaler(rv reflect.Value) (unmarshaler, bool) {
	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(unmarshaler); ok {
			return u, true
		}
	}

	return nil, false
}

func unmarshalStruct(rv reflect.Value, r codec.Source) error {
	plan := shape.Of(rv.Type())
	if err := r.BeginStruct(len(plan.Fields)); err != nil {
		return err
	}
	for _, f := range plan.Fields {
		if err := unmarshalValue(rv.FieldByIndex(f.Index), r); err != nil {
			return err
		}
	}

	return r.EndStruct()
}
