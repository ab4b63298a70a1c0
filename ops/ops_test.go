package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/asiegf/geo/geometry"
)

func TestToGeomPoint(t *testing.T) {
	p := geometry.NewPointFlat(8.5417, 47.3769, 2056)

	tg, err := ToGeom(p)
	require.NoError(t, err)

	pt, ok := tg.(*geom.Point)
	require.True(t, ok)
	require.Equal(t, 2056, pt.SRID())
	require.Equal(t, geom.XY, pt.Layout())
	require.Equal(t, []float64{8.5417, 47.3769}, pt.FlatCoords())
}

func TestToGeomPointXYZ(t *testing.T) {
	p := geometry.NewFactory(4326).Point(geometry.NewCoordinateZ(1, 2, 3))

	tg, err := ToGeom(p)
	require.NoError(t, err)
	require.Equal(t, geom.XYZ, tg.Layout())
	require.Equal(t, []float64{1, 2, 3}, tg.FlatCoords())
}

func TestToGeomPolygonEnds(t *testing.T) {
	p := geometry.NewPolygonFlat([][]float64{
		{0, 0, 10, 0, 10, 10, 0, 0},
		{1, 1, 9, 1, 9, 9, 1, 1},
	}, 4326)

	tg, err := ToGeom(p)
	require.NoError(t, err)

	poly, ok := tg.(*geom.Polygon)
	require.True(t, ok)
	require.Equal(t, []int{8, 16}, poly.Ends())
	require.Equal(t, 4326, poly.SRID())
}

func TestRoundTripThroughLibrary(t *testing.T) {
	for _, g := range []geometry.Geometry{
		geometry.NewPointFlat(1, 2, 4326),
		geometry.NewLineStringFlat([]float64{0, 0, 1, 1, 2, 0}, 2056),
		geometry.NewLinearRingFlat([]float64{0, 0, 1, 0, 1, 1, 0, 0}, 3857),
		geometry.NewPolygonFlat([][]float64{
			{0, 0, 10, 0, 10, 10, 0, 10, 0, 0},
			{1, 1, 1, 9, 9, 9, 9, 1, 1, 1},
		}, 4326),
		geometry.NewMultiPolygonFlat([][][]float64{
			{{0, 0, 1, 0, 1, 1, 0, 0}},
			{{5, 5, 6, 5, 6, 6, 5, 5}},
		}, 4326),
	} {
		tg, err := ToGeom(g)
		require.NoError(t, err)
		back, err := FromGeom(tg)
		require.NoError(t, err)
		require.True(t, geometry.SameGeometry(g, back), "round trip of %T", g)
	}
}

func TestArea(t *testing.T) {
	// 10x10 shell (counterclockwise) minus 8x8 hole (clockwise).
	p := geometry.NewPolygonFlat([][]float64{
		{0, 0, 10, 0, 10, 10, 0, 10, 0, 0},
		{1, 1, 1, 9, 9, 9, 9, 1, 1, 1},
	}, 4326)

	area, err := Area(p)
	require.NoError(t, err)
	require.InDelta(t, 36.0, math.Abs(area), 1e-9)

	// Non-polygonal geometries have zero area.
	lineArea, err := Area(geometry.NewLineStringFlat([]float64{0, 0, 10, 10}, 4326))
	require.NoError(t, err)
	require.Zero(t, lineArea)
}

func TestLength(t *testing.T) {
	l := geometry.NewLineStringFlat([]float64{0, 0, 3, 4}, 4326)
	length, err := Length(l)
	require.NoError(t, err)
	require.InDelta(t, 5.0, length, 1e-9)

	// A ring's perimeter.
	r := geometry.NewLinearRingFlat([]float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}, 4326)
	perimeter, err := Length(r)
	require.NoError(t, err)
	require.InDelta(t, 40.0, perimeter, 1e-9)

	pointLength, err := Length(geometry.NewPointFlat(1, 2))
	require.NoError(t, err)
	require.Zero(t, pointLength)
}

func TestCentroid(t *testing.T) {
	p := geometry.NewPolygonFlat([][]float64{
		{0, 0, 10, 0, 10, 10, 0, 10, 0, 0},
	}, 4326)

	c, err := Centroid(p)
	require.NoError(t, err)
	require.InDelta(t, 5.0, c.X, 1e-9)
	require.InDelta(t, 5.0, c.Y, 1e-9)
}

func TestBounds(t *testing.T) {
	l := geometry.NewLineStringFlat([]float64{-3, 7, 12, -1, 4, 4}, 4326)

	b, err := Bounds(l)
	require.NoError(t, err)
	require.Equal(t, Bound{MinX: -3, MinY: -1, MaxX: 12, MaxY: 7}, b)
}

func TestMarshalGeoJSON(t *testing.T) {
	p := geometry.NewPointFlat(8.5417, 47.3769)

	out, err := MarshalGeoJSON(p)
	require.NoError(t, err)
	require.Contains(t, string(out), `"Point"`)
}

func TestMixedDimensionFlattensWithZeroZ(t *testing.T) {
	f := geometry.NewFactory(4326)
	l := f.LineString(
		geometry.NewCoordinateZ(1, 2, 3),
		geometry.NewCoordinate(4, 5), // no elevation
	)

	tg, err := ToGeom(l)
	require.NoError(t, err)
	require.Equal(t, geom.XYZ, tg.Layout())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 0}, tg.FlatCoords())

	out, err := MarshalGeoJSON(l)
	require.NoError(t, err)
	require.NotContains(t, string(out), "NaN")
}

func TestMarshalWKT(t *testing.T) {
	p := geometry.NewPointFlat(1, 2)

	out, err := MarshalWKT(p)
	require.NoError(t, err)
	require.Contains(t, out, "POINT")
}

func TestGeodesicDistance(t *testing.T) {
	zurich := geometry.NewPointFlat(8.5417, 47.3769)
	bern := geometry.NewPointFlat(7.4386, 46.9511)

	d, err := GeodesicDistance(zurich, bern)
	require.NoError(t, err)
	// Zurich to Bern is roughly 95 km.
	require.InDelta(t, 95500, d, 3000)

	_, err = GeodesicDistance(zurich, geometry.NewPointFlat(950000, 6000000, 3857))
	require.Error(t, err)
}
