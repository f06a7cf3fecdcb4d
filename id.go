package trellis

// ID identifies a view for the life of the process. IDs are strictly
// increasing in construction order and are never reused. Zero is never
// issued and means "no view".
type ID uint32

// idCounter is a plain counter (no atomic, trellis is single-threaded).
var idCounter uint32

func nextID() ID {
	idCounter++
	return ID(idCounter)
}
