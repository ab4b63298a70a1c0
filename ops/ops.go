// Package ops exposes geometric algorithms over this module's geometries by
// delegating to the wrapped geometry library (twpayne/go-geom). Nothing here
// reimplements geometry math: ToGeom/FromGeom convert between the two
// representations and every operation runs on the library's types.
package ops

import (
	"math"

	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/asiegf/geo/geometry"
)

// layoutFor picks XYZ when any coordinate carries a finite elevation, XY
// otherwise.
func layoutFor(g geometry.Geometry) geom.Layout {
	if geometry.GeometryDimension(g) == geometry.Dimension3D {
		return geom.XYZ
	}
	return geom.XY
}

// flatten lowers coordinates into the library's fixed-stride layout. The
// missing-elevation sentinel is not representable there (and NaN is not
// encodable as JSON), so a 2D coordinate flattened into an XYZ layout gets
// z = 0.
func flatten(coords []geometry.Coordinate, layout geom.Layout) []float64 {
	flat := make([]float64, 0, len(coords)*layout.Stride())
	for _, c := range coords {
		flat = append(flat, c.X, c.Y)
		if layout.Stride() > 2 {
			z := c.Z
			if math.IsNaN(z) {
				z = 0
			}
			flat = append(flat, z)
		}
	}
	return flat
}

// flattenPolygon appends p's rings (shell first) to flat, returning the
// grown slice and the absolute end index of each ring.
func flattenPolygon(p *geometry.Polygon, layout geom.Layout, flat []float64) ([]float64, []int) {
	ends := make([]int, 0, 1+len(p.Holes()))
	flat = append(flat, flatten(p.Shell().Coordinates(), layout)...)
	ends = append(ends, len(flat))
	for _, h := range p.Holes() {
		flat = append(flat, flatten(h.Coordinates(), layout)...)
		ends = append(ends, len(flat))
	}
	return flat, ends
}

// ToGeom converts g to the wrapped library's representation, SRID included.
func ToGeom(g geometry.Geometry) (geom.T, error) {
	layout := layoutFor(g)
	switch g := g.(type) {
	case *geometry.Point:
		return geom.NewPointFlat(layout, flatten(g.Coordinates(), layout)).SetSRID(g.SRID()), nil
	case *geometry.LineString:
		return geom.NewLineStringFlat(layout, flatten(g.Coordinates(), layout)).SetSRID(g.SRID()), nil
	case *geometry.LinearRing:
		return geom.NewLinearRingFlat(layout, flatten(g.Coordinates(), layout)).SetSRID(g.SRID()), nil
	case *geometry.Polygon:
		flat, ends := flattenPolygon(g, layout, nil)
		return geom.NewPolygonFlat(layout, flat, ends).SetSRID(g.SRID()), nil
	case *geometry.MultiPolygon:
		var flat []float64
		endss := make([][]int, 0, len(g.Polygons()))
		for _, p := range g.Polygons() {
			var ends []int
			flat, ends = flattenPolygon(p, layout, flat)
			endss = append(endss, ends)
		}
		return geom.NewMultiPolygonFlat(layout, flat, endss).SetSRID(g.SRID()), nil
	}
	return nil, errors.Newf("ops: unsupported geometry type %T", g)
}

func inflate(flat []float64, layout geom.Layout) []geometry.Coordinate {
	stride := layout.Stride()
	coords := make([]geometry.Coordinate, 0, len(flat)/stride)
	for i := 0; i+stride <= len(flat); i += stride {
		if stride > 2 {
			coords = append(coords, geometry.NewCoordinateZ(flat[i], flat[i+1], flat[i+2]))
		} else {
			coords = append(coords, geometry.NewCoordinate(flat[i], flat[i+1]))
		}
	}
	return coords
}

// ringsFromFlat cuts rings out of flat between start and the absolute end
// indexes (the library's ends convention).
func ringsFromFlat(flat []float64, start int, ends []int, layout geom.Layout, srid int) []*geometry.LinearRing {
	f := geometry.NewFactory(srid)
	rings := make([]*geometry.LinearRing, 0, len(ends))
	for _, end := range ends {
		rings = append(rings, f.LinearRing(inflate(flat[start:end], layout)...))
		start = end
	}
	return rings
}

// FromGeom converts a library geometry back to this module's representation.
// Only the five kinds this module models are supported.
func FromGeom(t geom.T) (geometry.Geometry, error) {
	f := geometry.NewFactory(t.SRID())
	switch t := t.(type) {
	case *geom.Point:
		coords := inflate(t.FlatCoords(), t.Layout())
		if len(coords) == 0 {
			return f.Point(geometry.NewCoordinate(0, 0)), nil
		}
		return f.Point(coords[0]), nil
	case *geom.LineString:
		return f.LineString(inflate(t.FlatCoords(), t.Layout())...), nil
	case *geom.LinearRing:
		return f.LinearRing(inflate(t.FlatCoords(), t.Layout())...), nil
	case *geom.Polygon:
		rings := ringsFromFlat(t.FlatCoords(), 0, t.Ends(), t.Layout(), t.SRID())
		if len(rings) == 0 {
			return geometry.NewPolygonFlat(nil, t.SRID()), nil
		}
		return geometry.NewPolygon(rings[0], rings[1:]...), nil
	case *geom.MultiPolygon:
		polys := make([]*geometry.Polygon, 0, len(t.Endss()))
		start := 0
		for _, ends := range t.Endss() {
			rings := ringsFromFlat(t.FlatCoords(), start, ends, t.Layout(), t.SRID())
			if len(ends) > 0 {
				start = ends[len(ends)-1]
			}
			if len(rings) == 0 {
				continue
			}
			polys = append(polys, geometry.NewPolygon(rings[0], rings[1:]...))
		}
		mp := geometry.NewMultiPolygon(polys...)
		mp.SetSRID(t.SRID())
		return mp, nil
	}
	return nil, errors.Newf("ops: unsupported geometry type %T", t)
}
