// Package geometry holds SRID-tagged planar geometries (points, line
// strings, linear rings, polygons, multipolygons) and the factory that
// builds them from coordinates or flat WKT-style numeric lists.
//
// Geometric algorithms (area, centroid, encoding) live in the ops package,
// which delegates to the wrapped geometry library. Reprojection lives in the
// transform package.
package geometry

import "math"

// Dimension values derived from a coordinate's ordinates.
const (
	// DimensionUnknown means the coordinate is not a valid 2D or 3D
	// position (a non-finite x or y, or an infinite z).
	DimensionUnknown = 0
	Dimension2D      = 2
	Dimension3D      = 3
)

// Coordinate is a single x/y position with an optional elevation.
// A missing elevation is represented by NaN in Z, never by zero:
// zero is a valid elevation. The dimension of a coordinate is derived
// from its ordinates, not stored.
type Coordinate struct {
	X, Y, Z float64
}

// NewCoordinate returns a 2D coordinate. Z carries the NaN sentinel.
func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: math.NaN()}
}

// NewCoordinateZ returns a 3D coordinate.
func NewCoordinateZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Dimension returns Dimension3D if x, y and z are all finite, Dimension2D if
// x and y are finite and z is the NaN sentinel, and DimensionUnknown
// otherwise.
func (c Coordinate) Dimension() int {
	switch {
	case finite(c.X) && finite(c.Y) && finite(c.Z):
		return Dimension3D
	case finite(c.X) && finite(c.Y) && math.IsNaN(c.Z):
		return Dimension2D
	default:
		return DimensionUnknown
	}
}

// Equal reports whether c and other have the same derived dimension and all
// present ordinates compare equal. A coordinate of unknown dimension is not
// equal to anything, itself included.
func (c Coordinate) Equal(other Coordinate) bool {
	d := c.Dimension()
	if d == DimensionUnknown || d != other.Dimension() {
		return false
	}
	if c.X != other.X || c.Y != other.Y {
		return false
	}
	return d == Dimension2D || c.Z == other.Z
}
