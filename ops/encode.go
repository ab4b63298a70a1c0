package ops

import (
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/asiegf/geo/geometry"
)

// MarshalGeoJSON encodes g as a GeoJSON geometry. Encoding only; this module
// does not parse GeoJSON.
func MarshalGeoJSON(g geometry.Geometry) ([]byte, error) {
	t, err := ToGeom(g)
	if err != nil {
		return nil, err
	}
	return geojson.Marshal(t)
}

// MarshalWKT encodes g as Well Known Text. Encoding only.
func MarshalWKT(g geometry.Geometry) (string, error) {
	t, err := ToGeom(g)
	if err != nil {
		return "", err
	}
	return wkt.Marshal(t)
}
