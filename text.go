package fixedmap

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// EncodeFunc appends the byte representation of v to dst.
// It's only used to render keys and values in String.
type EncodeFunc[T any] func(dst []byte, v T) []byte

// DefaultEncoder returns the encoder used when none is configured.
//
// Strings and byte slices are appended as is, including named string and
// byte slice types. Integers of kind int, uint and uintptr are appended as a
// native-endian machine word, whatever their named type. Other numbers and
// bools are appended in native byte order at their own size. Arrays and
// structs of those are appended element by element, field by field, packed:
// struct alignment padding is not part of the output, so the result can be
// shorter than the value's size in memory. Anything else (pointers, maps,
// slices of other types, interfaces) falls back to the bytes of fmt.Sprint.
func DefaultEncoder[T any]() EncodeFunc[T] {
	return appendDefault[T]
}

func appendDefault[T any](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case string:
		return append(dst, x...)
	case []byte:
		return append(dst, x...)
	}

	if b, ok := appendValue(dst, reflect.ValueOf(v)); ok {
		return b
	}

	return fmt.Append(dst, v)
}

// appendValue appends the packed native-endian bytes of rv.
// On false, dst is returned with its original length.
func appendValue(dst []byte, rv reflect.Value) ([]byte, bool) {
	switch rv.Kind() {
	case reflect.Int:
		return appendWord(dst, uint64(rv.Int())), true
	case reflect.Uint, reflect.Uintptr:
		return appendWord(dst, rv.Uint()), true
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return appendSized(dst, uint64(rv.Int()), rv.Type().Size()), true
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return appendSized(dst, rv.Uint(), rv.Type().Size()), true
	case reflect.Bool:
		if rv.Bool() {
			return append(dst, 1), true
		}
		return append(dst, 0), true
	case reflect.Float32:
		return binary.NativeEndian.AppendUint32(dst, math.Float32bits(float32(rv.Float()))), true
	case reflect.Float64:
		return binary.NativeEndian.AppendUint64(dst, math.Float64bits(rv.Float())), true
	case reflect.Complex64:
		c := rv.Complex()
		dst = binary.NativeEndian.AppendUint32(dst, math.Float32bits(float32(real(c))))
		return binary.NativeEndian.AppendUint32(dst, math.Float32bits(float32(imag(c)))), true
	case reflect.Complex128:
		c := rv.Complex()
		dst = binary.NativeEndian.AppendUint64(dst, math.Float64bits(real(c)))
		return binary.NativeEndian.AppendUint64(dst, math.Float64bits(imag(c))), true
	case reflect.String:
		return append(dst, rv.String()...), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return append(dst, rv.Bytes()...), true
		}
	case reflect.Array:
		n := len(dst)
		for i := range rv.Len() {
			var ok bool
			if dst, ok = appendValue(dst, rv.Index(i)); !ok {
				return dst[:n], false
			}
		}
		return dst, true
	case reflect.Struct:
		n := len(dst)
		for i := range rv.NumField() {
			var ok bool
			if dst, ok = appendValue(dst, rv.Field(i)); !ok {
				return dst[:n], false
			}
		}
		return dst, true
	}

	return dst, false
}

func appendSized(dst []byte, w uint64, size uintptr) []byte {
	switch size {
	case 1:
		return append(dst, byte(w))
	case 2:
		return binary.NativeEndian.AppendUint16(dst, uint16(w))
	case 4:
		return binary.NativeEndian.AppendUint32(dst, uint32(w))
	default:
		return binary.NativeEndian.AppendUint64(dst, w)
	}
}

func appendWord(dst []byte, w uint64) []byte {
	if strconv.IntSize == 32 {
		return binary.NativeEndian.AppendUint32(dst, uint32(w))
	}

	return binary.NativeEndian.AppendUint64(dst, w)
}

func (t *table[K, V]) appendText(b []byte, kind string, withValues bool) []byte {
	b = append(b, '<')
	b = append(b, kind...)
	b = append(b, " size("...)
	b = strconv.AppendInt(b, int64(t.capacity), 10)
	b = append(b, ") len("...)
	b = strconv.AppendInt(b, int64(t.size), 10)
	b = append(b, ") items({"...)

	var scratch []byte

	n := 0
	for idx := range t.occupied() {
		if n > 0 {
			b = append(b, ", "...)
		}

		scratch = t.keyEncoder(scratch[:0], t.keys[idx])
		b = appendQuotedHex(b, scratch)

		if withValues {
			scratch = t.valueEncoder(scratch[:0], t.values[idx])
			b = append(b, " : "...)
			b = appendQuotedHex(b, scratch)
		}

		n++
	}

	return append(b, "})>"...)
}

func appendQuotedHex(b, raw []byte) []byte {
	b = append(b, '"')
	b = hex.AppendEncode(b, raw)

	return append(b, '"')
}
