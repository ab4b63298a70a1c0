package geometry

// DefaultSRID is the geodetic reference system (longitude/latitude) used by
// the flat constructors when no SRID is given.
const DefaultSRID = 4326

// Factory builds geometries bound to a single SRID. Constructors allocate
// new values, never mutate their inputs, and perform no geometric
// validation.
type Factory struct {
	srid int
}

// NewFactory returns a factory whose geometries carry the given SRID.
func NewFactory(srid int) *Factory { return &Factory{srid: srid} }

// SRID returns the spatial reference identifier the factory stamps on every
// geometry it builds.
func (f *Factory) SRID() int { return f.srid }

// Point builds a point from a coordinate.
func (f *Factory) Point(c Coordinate) *Point {
	return &Point{coord: c, srid: f.srid}
}

// PointXY builds a 2D point from an x/y pair.
func (f *Factory) PointXY(x, y float64) *Point {
	return f.Point(NewCoordinate(x, y))
}

// LineString builds a line string from an ordered coordinate sequence.
func (f *Factory) LineString(coords ...Coordinate) *LineString {
	return &LineString{seq: CoordinateSequence(coords).Clone(), srid: f.srid}
}

// LinearRing builds a linear ring from an ordered coordinate sequence. The
// closure invariant (first == last, length >= 4) is the caller's
// responsibility.
func (f *Factory) LinearRing(coords ...Coordinate) *LinearRing {
	return &LinearRing{seq: CoordinateSequence(coords).Clone(), srid: f.srid}
}

// NewPolygon builds a polygon from a shell ring and optional hole rings. The
// polygon takes the shell's SRID; the rings are copied and re-tagged to
// share it.
func NewPolygon(shell *LinearRing, holes ...*LinearRing) *Polygon {
	srid := shell.srid
	hs := make([]*LinearRing, len(holes))
	for i, h := range holes {
		hs[i] = h.cloneRing()
		hs[i].srid = srid
	}
	return &Polygon{shell: shell.cloneRing(), holes: hs, srid: srid}
}

// NewMultiPolygon builds a multipolygon from member polygons. The container
// takes the first polygon's SRID (0 when empty); the polygons are copied.
// Mixed-SRID inputs are a caller error and are not validated.
func NewMultiPolygon(polys ...*Polygon) *MultiPolygon {
	srid := 0
	if len(polys) > 0 {
		srid = polys[0].srid
	}
	ps := make([]*Polygon, len(polys))
	for i, p := range polys {
		ps[i] = p.Clone().(*Polygon)
	}
	return &MultiPolygon{polys: ps, srid: srid}
}

// sridOrDefault resolves the optional trailing SRID of the flat
// constructors.
func sridOrDefault(srid []int) int {
	if len(srid) > 0 {
		return srid[0]
	}
	return DefaultSRID
}

// coordsFromFlat partitions a flat number list into consecutive (x, y)
// pairs. A trailing unpaired number is ignored.
func coordsFromFlat(flat []float64) CoordinateSequence {
	seq := make(CoordinateSequence, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		seq = append(seq, NewCoordinate(flat[i], flat[i+1]))
	}
	return seq
}

// NewPointFlat builds a 2D point from an x/y pair with an optional trailing
// SRID (default 4326).
func NewPointFlat(x, y float64, srid ...int) *Point {
	return &Point{coord: NewCoordinate(x, y), srid: sridOrDefault(srid)}
}

// NewLineStringFlat builds a line string from a flat WKT-style number list,
// partitioned into consecutive (x, y) pairs, with an optional trailing SRID.
func NewLineStringFlat(flat []float64, srid ...int) *LineString {
	return &LineString{seq: coordsFromFlat(flat), srid: sridOrDefault(srid)}
}

// NewLinearRingFlat builds a linear ring from a flat WKT-style number list
// with an optional trailing SRID.
func NewLinearRingFlat(flat []float64, srid ...int) *LinearRing {
	return &LinearRing{seq: coordsFromFlat(flat), srid: sridOrDefault(srid)}
}

// NewPolygonFlat builds a polygon from a list of flat rings: the first ring
// is the shell, the remainder are holes. Optional trailing SRID.
func NewPolygonFlat(rings [][]float64, srid ...int) *Polygon {
	s := sridOrDefault(srid)
	p := &Polygon{shell: &LinearRing{srid: s}, srid: s}
	if len(rings) > 0 {
		p.shell.seq = coordsFromFlat(rings[0])
		for _, ring := range rings[1:] {
			p.holes = append(p.holes, &LinearRing{seq: coordsFromFlat(ring), srid: s})
		}
	}
	return p
}

// NewMultiPolygonFlat builds a multipolygon from a list of polygon ring
// groups (one more nesting level than NewPolygonFlat). Optional trailing
// SRID.
func NewMultiPolygonFlat(polys [][][]float64, srid ...int) *MultiPolygon {
	s := sridOrDefault(srid)
	m := &MultiPolygon{srid: s}
	for _, rings := range polys {
		m.polys = append(m.polys, NewPolygonFlat(rings, s))
	}
	return m
}
