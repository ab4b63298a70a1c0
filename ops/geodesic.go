package ops

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s2"

	"github.com/asiegf/geo/geometry"
)

// Mean earth radius in meters, matching the s2 convention.
const earthRadiusMeters = 6371010.0

// GeodesicDistance returns the great-circle distance in meters between two
// points in the geodetic reference system (SRID 4326). Points in any other
// system must be transformed first.
func GeodesicDistance(a, b *geometry.Point) (float64, error) {
	if a.SRID() != geometry.DefaultSRID || b.SRID() != geometry.DefaultSRID {
		return 0, errors.Newf("ops: geodesic distance requires SRID %d, got %d and %d",
			geometry.DefaultSRID, a.SRID(), b.SRID())
	}
	ca, cb := a.Coordinate(), b.Coordinate()
	la := s2.LatLngFromDegrees(ca.Y, ca.X)
	lb := s2.LatLngFromDegrees(cb.Y, cb.X)
	return float64(la.Distance(lb)) * earthRadiusMeters, nil
}
