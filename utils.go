package fixedmap

import (
	"unsafe"
)

// Estimates capacity (number of slots) from the given memory size in bytes.
// Accounts for the key and value regions and the occupancy bitmap, which
// takes one 8-byte word per 64 slots. Slice headers are not counted.
func CapacityFromSize[K any, V any](size uintptr) int {
	var (
		k K
		v V

		slotSize = unsafe.Sizeof(k) + unsafe.Sizeof(v)
		wordSize = unsafe.Sizeof(bitset(0))
	)

	if slotSize == 0 {
		return int(size/wordSize) * wordBits
	}

	// Every run of 64 slots costs 64 slots plus one bitmap word.
	runSize := slotSize*wordBits + wordSize
	runs := size / runSize
	capacity := runs * wordBits

	rest := size - runs*runSize
	if rest > wordSize {
		capacity += (rest - wordSize) / slotSize
	}

	return int(capacity)
}
