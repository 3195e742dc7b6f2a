package fixedmap

import "errors"

var (
	// ErrMapFull is returned when a new key doesn't fit: every slot is taken.
	ErrMapFull = errors.New("fixedmap: map is full")

	// ErrDuplicateKey is returned by Insert when the key is already present.
	ErrDuplicateKey = errors.New("fixedmap: duplicate key")

	// ErrKeyNotFound is returned by Update when the key is absent and
	// creation wasn't requested.
	ErrKeyNotFound = errors.New("fixedmap: key not found")
)
