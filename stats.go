package fixedmap

type Stats struct {
	Capacity int
	Size     int
	Free     int
	// Slot the next successful insert will take, -1 when the map is full.
	NextSlot int
}
