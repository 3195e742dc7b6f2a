package fixedmap

import (
	"bytes"
	"strings"
)

// EqualFunc reports whether two keys are considered equal.
// The map never compares keys any other way.
type EqualFunc[K any] func(a, b K) bool

// Equal compares keys with ==.
func Equal[K comparable]() EqualFunc[K] {
	return func(a, b K) bool {
		return a == b
	}
}

// EqualBytes compares byte slice keys by content.
func EqualBytes() EqualFunc[[]byte] {
	return bytes.Equal
}

// EqualFold compares string keys case-insensitively.
func EqualFold() EqualFunc[string] {
	return strings.EqualFold
}
