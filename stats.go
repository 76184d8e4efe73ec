package roaring32

// Stats reports per-representation container counts and an estimated
// serialized size, the Go counterpart of CRoaring's roaring_bitmap_statistics
// (original_source/src/roaring.c), supplementing spec.md per SPEC_FULL.md §6.
// Purely observational: never mutates the bitmap it inspects.
type Stats struct {
	Containers       int
	ArrayContainers  int
	BitmapContainers int
	RunContainers    int
	Cardinality      int

	ArrayCardinality  int
	BitmapCardinality int
	RunCardinality    int

	// SizeBytes estimates the portable-format serialized size (spec.md
	// §6.2) without actually serializing.
	SizeBytes int
}

// Stats computes a snapshot of rb's container-representation breakdown.
func (rb *Bitmap) Stats() Stats {
	var s Stats
	s.Containers = rb.dir.len()
	for _, c := range rb.dir.containers {
		card := c.cardinality()
		s.Cardinality += card
		switch c.typ {
		case typeArray:
			s.ArrayContainers++
			s.ArrayCardinality += card
		case typeBitmap:
			s.BitmapContainers++
			s.BitmapCardinality += card
		case typeRun:
			s.RunContainers++
			s.RunCardinality += card
		}
		s.SizeBytes += containerBodySize(c) + 4 // +4 for the {key, count} header
	}
	return s
}
