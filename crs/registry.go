package crs

import "github.com/cockroachdb/errors"

// defs maps authority names to proj4 definitions. It plays the role of the
// authority lookup: a name missing here is an unknown system. The built-in
// table covers the geographic datums of every recognized authority plus the
// projected systems this module's tools commonly meet; RegisterDef extends
// it.
var defs = map[string]string{
	// Geographic systems.
	"EPSG:4326":  "+proj=longlat +datum=WGS84 +no_defs",
	"EPSG:4269":  "+proj=longlat +datum=NAD83 +no_defs",
	"EPSG:4267":  "+proj=longlat +datum=NAD27 +no_defs",
	"WORLD:4326": "+proj=longlat +datum=WGS84 +no_defs",
	"NA83:4269":  "+proj=longlat +datum=NAD83 +no_defs",
	"NAD27:4267": "+proj=longlat +datum=NAD27 +no_defs",

	// Spherical mercator (web mapping).
	"EPSG:3857":   "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +no_defs",
	"EPSG:900913": "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +no_defs",
	"ESRI:102113": "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +no_defs",

	// World mercator (ellipsoidal).
	"EPSG:3395":  "+proj=merc +lon_0=0 +k=1 +x_0=0 +y_0=0 +datum=WGS84 +units=m +no_defs",
	"ESRI:54004": "+proj=merc +lon_0=0 +k=1 +x_0=0 +y_0=0 +datum=WGS84 +units=m +no_defs",

	// Swiss LV95.
	"EPSG:2056": "+proj=somerc +lat_0=46.9524055555556 +lon_0=7.43958333333333 +k_0=1 +x_0=2600000 +y_0=1200000 +ellps=bessel +towgs84=674.374,15.056,405.346,0,0,0,0 +units=m +no_defs",

	// UTM zone 32.
	"EPSG:25832": "+proj=utm +zone=32 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	"EPSG:32632": "+proj=utm +zone=32 +datum=WGS84 +units=m +no_defs",
}

// RegisterDef adds or replaces the proj4 definition for an authority name.
// Meant for init-time use; lookups do not lock.
func RegisterDef(name, def string) { defs[name] = def }

func lookupDef(name string) (string, error) {
	def, ok := defs[name]
	if !ok {
		return "", errors.Mark(errors.Newf("crs: unknown authority name %q", name), ErrResolution)
	}
	return def, nil
}
