package fixedmap

import "iter"

// FixedSet is a set-like data structure on top of the same fixed-capacity
// table as FixedMap. It doesn't store values, only keys.
type FixedSet[K any] struct {
	table[K, struct{}]
}

// Returns a new set with the given capacity, comparing keys with equal.
func NewSet[K any](capacity int, equal EqualFunc[K], opts ...Option[K, struct{}]) *FixedSet[K] {
	var fs FixedSet[K]
	fs.init(capacity, equal, opts...)

	return &fs
}

// Returns a new set with the given capacity, comparing keys with ==.
func NewComparableSet[K comparable](capacity int, opts ...Option[K, struct{}]) *FixedSet[K] {
	return NewSet(capacity, Equal[K](), opts...)
}

// Checks whether a key is in the set.
func (fs *FixedSet[K]) Has(key K) bool {
	_, ok := fs.find(key)
	return ok
}

// Puts a key in the set.
// Returns ErrDuplicateKey or ErrMapFull like FixedMap.Insert.
func (fs *FixedSet[K]) Add(key K) error {
	return fs.insert(key, struct{}{})
}

// Deletes a key from the set.
func (fs *FixedSet[K]) Delete(key K) bool {
	return fs.delete(key)
}

// All yields keys in ascending slot order.
func (fs *FixedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for idx := range fs.occupied() {
			if !yield(fs.keys[idx]) {
				return
			}
		}
	}
}

// String renders the set as <set size(4) len(2) items({"61", "62"})>.
func (fs *FixedSet[K]) String() string {
	return string(fs.appendText(nil, "set", false))
}
