package fixedmap

import (
	"math/bits"
)

const wordBits = 64

// bitset is a single word of the occupancy bitmap.
//
// Bit i is set if and only if the slot at (word index * 64 + i) holds a live
// entry. Working a word at a time lets the scans skip 64 free slots with a
// single comparison.
type bitset uint64

// first returns the position of the lowest set bit.
//
// Returns 64 if the bitset is empty.
func (b bitset) first() int {
	return bits.TrailingZeros64(uint64(b))
}

// removeFirst resets the least significant set bit to 0.
func (b bitset) removeFirst() bitset {
	return b & (b - 1)
}

// firstClear returns the position of the lowest unset bit.
//
// Returns 64 if every bit is set.
func (b bitset) firstClear() int {
	return bits.TrailingZeros64(^uint64(b))
}

// occupancy is the per-slot occupancy bitmap, ceil(n/64) words long.
// Bits past the last slot are never set.
type occupancy []bitset

func newOccupancy(n int) occupancy {
	return make(occupancy, (n+wordBits-1)/wordBits)
}

func (o occupancy) has(idx int) bool {
	return o[idx/wordBits]&(1<<(uint(idx)%wordBits)) != 0
}

func (o occupancy) set(idx int) {
	o[idx/wordBits] |= 1 << (uint(idx) % wordBits)
}

func (o occupancy) unset(idx int) {
	o[idx/wordBits] &^= 1 << (uint(idx) % wordBits)
}

func (o occupancy) reset() {
	clear(o)
}

// firstFree returns the lowest slot index below n whose bit is unset.
// Returns -1 if all n slots are occupied.
func (o occupancy) firstFree(n int) int {
	for w, word := range o {
		if word == ^bitset(0) {
			continue
		}

		idx := w*wordBits + word.firstClear()
		if idx >= n {
			return -1
		}

		return idx
	}

	return -1
}

// count returns the number of occupied slots.
func (o occupancy) count() int {
	n := 0
	for _, word := range o {
		n += bits.OnesCount64(uint64(word))
	}

	return n
}
