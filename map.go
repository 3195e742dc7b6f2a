package fixedmap

import "iter"

// FixedMap is a map-like data structure with a capacity fixed at construction.
//
// All storage is allocated by the constructor: keys, values and occupancy
// flags live in parallel, slot-indexed regions, and no operation allocates
// afterwards. Lookups are linear scans comparing keys with the EqualFunc the
// map was created with, so it's meant for small, known capacities where
// predictability matters more than asymptotics.
//
// Inserts take the lowest free slot. Deleting an entry frees its slot
// without moving any other entry.
//
// FixedMap is not safe for concurrent use.
type FixedMap[K any, V any] struct {
	table[K, V]
}

// Returns a new map with the given capacity, comparing keys with equal.
func New[K any, V any](capacity int, equal EqualFunc[K], opts ...Option[K, V]) *FixedMap[K, V] {
	var fm FixedMap[K, V]
	fm.init(capacity, equal, opts...)

	return &fm
}

// Returns a new map with the given capacity, comparing keys with ==.
func NewComparable[K comparable, V any](capacity int, opts ...Option[K, V]) *FixedMap[K, V] {
	return New(capacity, Equal[K](), opts...)
}

// Get returns the value stored under key.
func (fm *FixedMap[K, V]) Get(key K) (V, bool) {
	return fm.get(key)
}

// Has reports whether key is present.
func (fm *FixedMap[K, V]) Has(key K) bool {
	_, ok := fm.find(key)
	return ok
}

// Insert adds a new entry.
// Returns ErrDuplicateKey if the key is already present and ErrMapFull if
// there is no free slot. The map is left untouched on error.
func (fm *FixedMap[K, V]) Insert(key K, value V) error {
	return fm.insert(key, value)
}

// Update overwrites the value of an existing key in place.
// If the key is absent, it's inserted when createIfAbsent is set, and
// ErrKeyNotFound is returned otherwise.
func (fm *FixedMap[K, V]) Update(key K, value V, createIfAbsent bool) error {
	return fm.update(key, value, createIfAbsent)
}

// Set inserts or overwrites the entry.
func (fm *FixedMap[K, V]) Set(key K, value V) error {
	return fm.update(key, value, true)
}

// Deletes a key from the map.
// Returns false if the key wasn't there, which is not an error.
func (fm *FixedMap[K, V]) Delete(key K) bool {
	return fm.delete(key)
}

// Clear is an alias of Reset.
func (fm *FixedMap[K, V]) Clear() {
	fm.Reset()
}

// All yields live entries in ascending slot order.
func (fm *FixedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for idx := range fm.occupied() {
			if !yield(fm.keys[idx], fm.values[idx]) {
				return
			}
		}
	}
}

// Appends the String rendering of the map to b. The error is always nil.
func (fm *FixedMap[K, V]) AppendText(b []byte) ([]byte, error) {
	return fm.appendText(b, "map", true), nil
}

// String renders the map as
//
//	<map size(4) len(2) items({"01" : "0a", "02" : "0b"})>
//
// with every key and value hex-encoded, in ascending slot order.
func (fm *FixedMap[K, V]) String() string {
	return string(fm.appendText(nil, "map", true))
}
