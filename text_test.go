package fixedmap

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultEncoder(t *testing.T) {
	type point struct {
		X, Y int16
	}

	type (
		id     int
		label  string
		blob   []byte
		record struct {
			ID    id
			count uint
		}
		padded struct {
			A int8
			B int32
		}
	)

	word := func(w uint64) []byte {
		if strconv.IntSize == 32 {
			return binary.NativeEndian.AppendUint32(nil, uint32(w))
		}
		return binary.NativeEndian.AppendUint64(nil, w)
	}

	t.Run("string", func(t *testing.T) {
		require.Equal(t, []byte("str1"), DefaultEncoder[string]()(nil, "str1"))
	})

	t.Run("[]byte", func(t *testing.T) {
		require.Equal(t, []byte{0xDE, 0xAD}, DefaultEncoder[[]byte]()(nil, []byte{0xDE, 0xAD}))
	})

	t.Run("int", func(t *testing.T) {
		require.Equal(t, word(7), DefaultEncoder[int]()(nil, 7))
		require.Equal(t, word(^uint64(0)), DefaultEncoder[int]()(nil, -1))
	})

	t.Run("uint", func(t *testing.T) {
		require.Equal(t, word(7), DefaultEncoder[uint]()(nil, 7))
	})

	t.Run("uint32", func(t *testing.T) {
		require.Equal(t, binary.NativeEndian.AppendUint32(nil, 20), DefaultEncoder[uint32]()(nil, 20))
	})

	t.Run("byte", func(t *testing.T) {
		require.Equal(t, []byte{'a'}, DefaultEncoder[byte]()(nil, 'a'))
	})

	t.Run("bool", func(t *testing.T) {
		require.Equal(t, []byte{1}, DefaultEncoder[bool]()(nil, true))
	})

	t.Run("array", func(t *testing.T) {
		require.Equal(t, []byte("str1\x00\x00\x00\x00"), DefaultEncoder[[8]byte]()(nil, [8]byte{'s', 't', 'r', '1'}))
	})

	t.Run("struct", func(t *testing.T) {
		want := binary.NativeEndian.AppendUint16(nil, 1)
		want = binary.NativeEndian.AppendUint16(want, 2)

		require.Equal(t, want, DefaultEncoder[point]()(nil, point{X: 1, Y: 2}))
	})

	t.Run("named int", func(t *testing.T) {
		require.Equal(t, word(7), DefaultEncoder[id]()(nil, 7))
		require.Equal(t, DefaultEncoder[int]()(nil, 7), DefaultEncoder[id]()(nil, 7))
	})

	t.Run("named string", func(t *testing.T) {
		require.Equal(t, []byte("str1"), DefaultEncoder[label]()(nil, "str1"))
	})

	t.Run("named []byte", func(t *testing.T) {
		require.Equal(t, []byte{0xBE, 0xEF}, DefaultEncoder[blob]()(nil, blob{0xBE, 0xEF}))
	})

	t.Run("[2]int", func(t *testing.T) {
		want := append(word(1), word(2)...)
		require.Equal(t, want, DefaultEncoder[[2]int]()(nil, [2]int{1, 2}))
	})

	t.Run("struct of ints", func(t *testing.T) {
		want := append(word(3), word(4)...)
		require.Equal(t, want, DefaultEncoder[record]()(nil, record{ID: 3, count: 4}))
	})

	t.Run("padded struct", func(t *testing.T) {
		want := append([]byte{1}, binary.NativeEndian.AppendUint32(nil, 2)...)
		require.Equal(t, want, DefaultEncoder[padded]()(nil, padded{A: 1, B: 2}))
	})

	t.Run("float64", func(t *testing.T) {
		want := binary.NativeEndian.AppendUint64(nil, math.Float64bits(1.5))
		require.Equal(t, want, DefaultEncoder[float64]()(nil, 1.5))
	})

	t.Run("int16", func(t *testing.T) {
		require.Equal(t, binary.NativeEndian.AppendUint16(nil, 0xFFFF), DefaultEncoder[int16]()(nil, -1))
	})

	t.Run("fallback keeps dst", func(t *testing.T) {
		type mixed struct {
			N int
			S []string
		}

		got := DefaultEncoder[mixed]()([]byte("x"), mixed{N: 1, S: []string{"a"}})
		require.Equal(t, []byte("x{1 [a]}"), got)
	})

	t.Run("fallback", func(t *testing.T) {
		require.Equal(t, []byte("[a b]"), DefaultEncoder[[]string]()(nil, []string{"a", "b"}))
	})

	t.Run("appends", func(t *testing.T) {
		require.Equal(t, []byte("abcd"), DefaultEncoder[string]()([]byte("ab"), "cd"))
	})
}

func TestAppendQuotedHex(t *testing.T) {
	require.Equal(t, `x"00ff1a"`, string(appendQuotedHex([]byte("x"), []byte{0x00, 0xFF, 0x1A})))
	require.Equal(t, `""`, string(appendQuotedHex(nil, nil)))
}

func TestFixedMap_String_NamedKey(t *testing.T) {
	type id int

	fm := NewComparable[id, int](2)
	require.NoError(t, fm.Insert(7, 1))

	key := hex.EncodeToString(DefaultEncoder[int]()(nil, 7))
	value := hex.EncodeToString(DefaultEncoder[int]()(nil, 1))

	require.Equal(t, `<map size(2) len(1) items({"`+key+`" : "`+value+`"})>`, fm.String())
}
