package geometry

// CoordinateDimension returns the derived dimension of c. Equivalent to
// c.Dimension.
func CoordinateDimension(c Coordinate) int { return c.Dimension() }

// GeometryDimension returns the maximum dimension over all of g's
// coordinates (3 > 2 > unknown). A geometry with no coordinates has unknown
// dimension.
func GeometryDimension(g Geometry) int {
	dim := DimensionUnknown
	for _, c := range g.Coordinates() {
		if d := c.Dimension(); d > dim {
			dim = d
		}
	}
	return dim
}

// SameCoordinate reports whether c1 and c2 have the same derived dimension
// and equal ordinates. Equivalent to c1.Equal(c2).
func SameCoordinate(c1, c2 Coordinate) bool { return c1.Equal(c2) }

// SameSRID reports whether g1 and g2 carry the same assigned SRID. An
// unassigned SRID (0) never compares equal to anything, another unassigned
// SRID included.
func SameSRID(g1, g2 Geometry) bool {
	return g1.SRID() != 0 && g1.SRID() == g2.SRID()
}

// SameGeometry reports whether g1 and g2 are the same kind, share an
// assigned SRID, and have pairwise-equal coordinates in sequence order.
func SameGeometry(g1, g2 Geometry) bool {
	if !SameSRID(g1, g2) || !sameKind(g1, g2) {
		return false
	}
	c1, c2 := g1.Coordinates(), g2.Coordinates()
	if len(c1) != len(c2) {
		return false
	}
	for i := range c1 {
		if !c1[i].Equal(c2[i]) {
			return false
		}
	}
	return true
}

func sameKind(g1, g2 Geometry) bool {
	switch g1.(type) {
	case *Point:
		_, ok := g2.(*Point)
		return ok
	case *LineString:
		_, ok := g2.(*LineString)
		return ok
	case *LinearRing:
		_, ok := g2.(*LinearRing)
		return ok
	case *Polygon:
		_, ok := g2.(*Polygon)
		return ok
	case *MultiPolygon:
		_, ok := g2.(*MultiPolygon)
		return ok
	}
	return false
}
