package transform

import (
	"github.com/cockroachdb/errors"

	"github.com/asiegf/geo/crs"
	"github.com/asiegf/geo/geometry"
)

// Geometry reprojects g from its own SRID to the target CRS. A geometry
// already in the target system (its SRID equals the target literally, or
// the EPSG-string form of its SRID does) is returned as is, no clone.
// A geometry with SRID 0 fails with ErrMissingSRID.
func Geometry(g geometry.Geometry, target crs.ID) (geometry.Geometry, error) {
	srid := g.SRID()
	if srid == 0 {
		return nil, errors.Mark(errors.New("transform: geometry has SRID 0"), ErrMissingSRID)
	}
	if target == crs.SRID(srid) || target == crs.Classify(crs.SRIDToEPSG(srid)) {
		return g, nil
	}
	return Between(g, crs.SRID(srid), target)
}

// Between reprojects g from source to target. Equal identifiers skip the
// geometric work entirely: g itself is re-tagged and returned, no clone.
// Otherwise g is deep-cloned, every coordinate of the clone is projected in
// sequence order, and the clone is re-tagged and returned; the caller's
// geometry is never mutated, and a clone abandoned on error carries no
// partial state anyone can observe.
func Between(g geometry.Geometry, source, target crs.ID) (geometry.Geometry, error) {
	if source == target {
		applyFinalSRID(g, target)
		return g, nil
	}

	t, err := New(source, target)
	if err != nil {
		return nil, err
	}
	clone := g.Clone()
	if err := clone.Apply(t.Apply); err != nil {
		return nil, err
	}
	applyFinalSRID(clone, target)
	return clone, nil
}

// applyFinalSRID applies the final-SRID rule: integer targets and EPSG
// authority names carry a derivable code, so the geometry is re-tagged with
// it. Any other target (non-EPSG authority, proj4 definition) has no
// derivable code and the tag is left exactly as it was.
func applyFinalSRID(g geometry.Geometry, target crs.ID) {
	if srid, ok := target.AsSRID(); ok {
		g.SetSRID(srid)
	}
}
