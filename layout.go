package fixedmap

import "iter"

// slots is the storage of a table. It's allocated once, at construction,
// and never resized afterwards.
type slots[K any, V any] struct {
	// All keys are stored next to each other, so a lookup scan only walks
	// the key region and doesn't drag values through the CPU cache.
	keys []K

	// Values are stored in a parallel region, indexed by the same slot.
	// If V is a struct{} type, this region takes no memory at all.
	values []V

	// One bit per slot, see occupancy.
	used occupancy
}

func (s *slots[K, V]) initSlots(capacity int) {
	s.keys = make([]K, capacity)
	s.values = make([]V, capacity)
	s.used = newOccupancy(capacity)
}

// store copies the pair into the slot and marks it occupied.
func (s *slots[K, V]) store(idx int, key K, value V) {
	s.keys[idx] = key
	s.values[idx] = value
	s.used.set(idx)
}

// release marks the slot free. Key and value are zeroed so the slot doesn't
// keep anything they point to alive.
func (s *slots[K, V]) release(idx int) {
	var (
		zeroK K
		zeroV V
	)

	s.used.unset(idx)
	s.keys[idx] = zeroK
	s.values[idx] = zeroV
}

func (s *slots[K, V]) releaseAll() {
	s.used.reset()
	clear(s.keys)
	clear(s.values)
}

// occupied yields the indexes of live slots in ascending order.
func (s *slots[K, V]) occupied() iter.Seq[int] {
	return func(yield func(int) bool) {
		for w, word := range s.used {
			for m := word; m != 0; m = m.removeFirst() {
				if !yield(w*wordBits + m.first()) {
					return
				}
			}
		}
	}
}
