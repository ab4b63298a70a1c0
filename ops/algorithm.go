package ops

import (
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"github.com/asiegf/geo/geometry"
)

// Area returns the planar area of g in squared CRS units. Points, line
// strings and rings have zero area (a ring bounds an area but is not one,
// matching ST_Area).
func Area(g geometry.Geometry) (float64, error) {
	t, err := ToGeom(g)
	if err != nil {
		return 0, err
	}
	switch t := t.(type) {
	case *geom.Polygon:
		return t.Area(), nil
	case *geom.MultiPolygon:
		return t.Area(), nil
	}
	return 0, nil
}

// Length returns the planar length of g in CRS units: the path length of a
// line string, the perimeter of a ring. Points and polygonal geometries
// report zero.
func Length(g geometry.Geometry) (float64, error) {
	switch g := g.(type) {
	case *geometry.LineString:
		t, err := ToGeom(g)
		if err != nil {
			return 0, err
		}
		return t.(*geom.LineString).Length(), nil
	case *geometry.LinearRing:
		// The library measures paths, not rings; a ring's perimeter is the
		// length of the same sequence read as a path.
		layout := layoutFor(g)
		return geom.NewLineStringFlat(layout, flatten(g.Coordinates(), layout)).Length(), nil
	}
	return 0, nil
}

// Centroid returns the centroid of g as a coordinate in g's CRS.
func Centroid(g geometry.Geometry) (geometry.Coordinate, error) {
	t, err := ToGeom(g)
	if err != nil {
		return geometry.Coordinate{}, err
	}
	c, err := xy.Centroid(t)
	if err != nil {
		return geometry.Coordinate{}, err
	}
	return geometry.NewCoordinate(c.X(), c.Y()), nil
}

// A Bound is an axis-aligned bounding box in CRS units.
type Bound struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds returns the bounding box of g.
func Bounds(g geometry.Geometry) (Bound, error) {
	t, err := ToGeom(g)
	if err != nil {
		return Bound{}, err
	}
	b := t.Bounds()
	return Bound{
		MinX: b.Min(0), MinY: b.Min(1),
		MaxX: b.Max(0), MaxY: b.Max(1),
	}, nil
}
