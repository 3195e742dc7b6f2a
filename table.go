package fixedmap

type table[K any, V any] struct {
	slots[K, V]

	capacity int
	size     int

	equal        EqualFunc[K]
	keyEncoder   EncodeFunc[K]
	valueEncoder EncodeFunc[V]

	emptyV V
}

// Option configures a map or a set at construction.
type Option[K any, V any] func(t *table[K, V])

// Override the encoder used to render keys as hex in String.
func WithKeyEncoder[K any, V any](f EncodeFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.keyEncoder = f
	}
}

// Override the encoder used to render values as hex in String.
func WithValueEncoder[K any, V any](f EncodeFunc[V]) Option[K, V] {
	return func(t *table[K, V]) {
		t.valueEncoder = f
	}
}

func (t *table[K, V]) init(capacity int, equal EqualFunc[K], opts ...Option[K, V]) {
	if capacity < 0 {
		panic("fixedmap: negative capacity")
	}

	if equal == nil {
		panic("fixedmap: nil EqualFunc")
	}

	t.initSlots(capacity)
	t.capacity = capacity
	t.equal = equal

	for _, opt := range opts {
		opt(t)
	}

	if t.keyEncoder == nil {
		t.keyEncoder = DefaultEncoder[K]()
	}

	if t.valueEncoder == nil {
		t.valueEncoder = DefaultEncoder[V]()
	}
}

// Cap returns the number of slots, fixed at construction.
func (t *table[K, V]) Cap() int {
	return t.capacity
}

// Len returns the number of live entries.
func (t *table[K, V]) Len() int {
	return t.size
}

// Returns whether there are no live entries.
func (t *table[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Returns whether every slot is taken, so a new key can't be inserted.
func (t *table[K, V]) IsFull() bool {
	return t.size >= t.capacity
}

// Returns a snapshot of the slot usage.
func (t *table[K, V]) Stats() Stats {
	next := -1
	if !t.IsFull() {
		next = t.used.firstFree(t.capacity)
	}

	return Stats{
		Capacity: t.capacity,
		Size:     t.size,
		Free:     t.capacity - t.size,
		NextSlot: next,
	}
}

// find returns the slot holding a key equal to the given one.
func (t *table[K, V]) find(key K) (int, bool) {
	for w, word := range t.used {
		for m := word; m != 0; m = m.removeFirst() {
			idx := w*wordBits + m.first()
			if t.equal(key, t.keys[idx]) {
				return idx, true
			}
		}
	}

	return -1, false
}

// alloc returns the lowest free slot.
func (t *table[K, V]) alloc() (int, bool) {
	if t.IsFull() {
		return -1, false
	}

	idx := t.used.firstFree(t.capacity)

	return idx, idx >= 0
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx, ok := t.find(key)
	if !ok {
		return t.emptyV, false
	}

	return t.values[idx], true
}

func (t *table[K, V]) insert(key K, value V) error {
	// Duplicates are rejected before the capacity check, so a full table
	// still tells a present key apart from a missing slot.
	if _, ok := t.find(key); ok {
		return ErrDuplicateKey
	}

	idx, ok := t.alloc()
	if !ok {
		return ErrMapFull
	}

	t.store(idx, key, value)
	t.size++

	return nil
}

func (t *table[K, V]) update(key K, value V, createIfAbsent bool) error {
	if idx, ok := t.find(key); ok {
		t.values[idx] = value
		return nil
	}

	if !createIfAbsent {
		return ErrKeyNotFound
	}

	return t.insert(key, value)
}

func (t *table[K, V]) delete(key K) bool {
	idx, ok := t.find(key)
	if !ok {
		return false
	}

	t.release(idx)
	t.size--

	return true
}

// Reset drops every entry. Capacity and the key comparator are kept.
func (t *table[K, V]) Reset() {
	t.releaseAll()
	t.size = 0
}
