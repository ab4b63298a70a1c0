package geometry

// Point is a single coordinate.
type Point struct {
	coord Coordinate
	srid  int
}

func (p *Point) SRID() int              { return p.srid }
func (p *Point) SetSRID(srid int)       { p.srid = srid }
func (p *Point) Coordinate() Coordinate { return p.coord }

func (p *Point) Clone() Geometry {
	c := *p
	return &c
}

func (p *Point) Apply(f Filter) error {
	c, err := f(p.coord)
	if err != nil {
		return err
	}
	p.coord = c
	return nil
}

func (p *Point) Coordinates() []Coordinate { return []Coordinate{p.coord} }

// LineString is an ordered path of two or more coordinates. The minimum is
// not validated here; degenerate inputs surface downstream.
type LineString struct {
	seq  CoordinateSequence
	srid int
}

func (l *LineString) SRID() int        { return l.srid }
func (l *LineString) SetSRID(srid int) { l.srid = srid }

func (l *LineString) Clone() Geometry {
	return &LineString{seq: l.seq.Clone(), srid: l.srid}
}

func (l *LineString) Apply(f Filter) error      { return l.seq.apply(f) }
func (l *LineString) Coordinates() []Coordinate { return l.seq.Clone() }
func (l *LineString) NumCoordinates() int       { return len(l.seq) }

// LinearRing is a closed path: first and last coordinate equal, at least
// four coordinates. The closure invariant is assumed, not checked; a ring
// that does not close is a caller error.
type LinearRing struct {
	seq  CoordinateSequence
	srid int
}

func (r *LinearRing) SRID() int        { return r.srid }
func (r *LinearRing) SetSRID(srid int) { r.srid = srid }

func (r *LinearRing) Clone() Geometry {
	return &LinearRing{seq: r.seq.Clone(), srid: r.srid}
}

func (r *LinearRing) cloneRing() *LinearRing {
	return &LinearRing{seq: r.seq.Clone(), srid: r.srid}
}

func (r *LinearRing) Apply(f Filter) error      { return r.seq.apply(f) }
func (r *LinearRing) Coordinates() []Coordinate { return r.seq.Clone() }
func (r *LinearRing) NumCoordinates() int       { return len(r.seq) }

// Polygon is one shell ring plus zero or more hole rings, all sharing the
// polygon's SRID.
type Polygon struct {
	shell *LinearRing
	holes []*LinearRing
	srid  int
}

func (p *Polygon) SRID() int { return p.srid }

// SetSRID re-tags the polygon and all its rings.
func (p *Polygon) SetSRID(srid int) {
	p.srid = srid
	p.shell.srid = srid
	for _, h := range p.holes {
		h.srid = srid
	}
}

func (p *Polygon) Shell() *LinearRing   { return p.shell }
func (p *Polygon) Holes() []*LinearRing { return p.holes }

func (p *Polygon) Clone() Geometry {
	holes := make([]*LinearRing, len(p.holes))
	for i, h := range p.holes {
		holes[i] = h.cloneRing()
	}
	return &Polygon{shell: p.shell.cloneRing(), holes: holes, srid: p.srid}
}

func (p *Polygon) Apply(f Filter) error {
	if err := p.shell.seq.apply(f); err != nil {
		return err
	}
	for _, h := range p.holes {
		if err := h.seq.apply(f); err != nil {
			return err
		}
	}
	return nil
}

func (p *Polygon) Coordinates() []Coordinate {
	n := len(p.shell.seq)
	for _, h := range p.holes {
		n += len(h.seq)
	}
	out := make([]Coordinate, 0, n)
	out = append(out, p.shell.seq...)
	for _, h := range p.holes {
		out = append(out, h.seq...)
	}
	return out
}

// MultiPolygon is an ordered set of polygons sharing a single SRID. Mixed
// SRIDs on input polygons are not validated; the container takes the first
// polygon's SRID.
type MultiPolygon struct {
	polys []*Polygon
	srid  int
}

func (m *MultiPolygon) SRID() int { return m.srid }

// SetSRID re-tags the multipolygon and every member polygon.
func (m *MultiPolygon) SetSRID(srid int) {
	m.srid = srid
	for _, p := range m.polys {
		p.SetSRID(srid)
	}
}

func (m *MultiPolygon) Polygons() []*Polygon { return m.polys }

func (m *MultiPolygon) Clone() Geometry {
	polys := make([]*Polygon, len(m.polys))
	for i, p := range m.polys {
		polys[i] = p.Clone().(*Polygon)
	}
	return &MultiPolygon{polys: polys, srid: m.srid}
}

func (m *MultiPolygon) Apply(f Filter) error {
	for _, p := range m.polys {
		if err := p.Apply(f); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiPolygon) Coordinates() []Coordinate {
	var out []Coordinate
	for _, p := range m.polys {
		out = append(out, p.Coordinates()...)
	}
	return out
}
