package vector

// Stats contains bookkeeping information about a vector.
type Stats struct {
	Size          int     // Elements in use
	Capacity      int     // Allocated slots
	Reallocations int     // Buffer replacements since construction
	Utilization   float64 // Size/Capacity (0.0-1.0)
}

// Stats returns a snapshot of the vector's bookkeeping.
func (v *Vector[T]) Stats() Stats {
	s := Stats{
		Size:          v.size,
		Capacity:      v.capacity,
		Reallocations: v.reallocs,
	}
	if v.capacity > 0 {
		s.Utilization = float64(v.size) / float64(v.capacity)
	}
	return s
}
