package geometry

// A Filter rewrites a single coordinate. Geometry.Apply runs one over every
// coordinate of a geometry in sequence order.
type Filter func(Coordinate) (Coordinate, error)

// Geometry is the union over the five geometry kinds. Instances are built by
// a Factory (or the flat constructors) and are immutable except through the
// two explicit mutation points, SetSRID and Apply.
type Geometry interface {
	// SRID returns the spatial reference identifier; 0 means unassigned.
	SRID() int

	// SetSRID re-tags the geometry (and, for polygons and multipolygons,
	// every member ring or polygon, which share the container's SRID).
	SetSRID(srid int)

	// Clone returns a deep copy: no coordinate storage is shared.
	Clone() Geometry

	// Apply replaces coordinate i with f(coordinate i) for every coordinate
	// in sequence order, stopping at the first error. On error the geometry
	// may be partially rewritten.
	Apply(f Filter) error

	// Coordinates returns all coordinates in sequence order. For polygons
	// the shell precedes the holes; for multipolygons, polygons appear in
	// construction order. The returned slice shares no storage with the
	// geometry; mutating it does not mutate the geometry.
	Coordinates() []Coordinate
}

// CoordinateSequence is an ordered list of coordinates owned by exactly one
// geometry. Order is semantically significant: it defines the path or the
// ring winding.
type CoordinateSequence []Coordinate

// Clone returns a copy sharing no storage with s.
func (s CoordinateSequence) Clone() CoordinateSequence {
	if s == nil {
		return nil
	}
	out := make(CoordinateSequence, len(s))
	copy(out, s)
	return out
}

func (s CoordinateSequence) apply(f Filter) error {
	for i := range s {
		c, err := f(s[i])
		if err != nil {
			return err
		}
		s[i] = c
	}
	return nil
}
