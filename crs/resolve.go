package crs

import (
	"github.com/cockroachdb/errors"
	"github.com/ctessum/geom/proj"
)

// ErrResolution marks every failure to resolve a CRS identifier: an
// unrecognized identifier, an unknown authority name, or a definition the
// projection engine rejects.
var ErrResolution = errors.New("crs: identifier resolution failed")

// Proj4 returns the raw proj4 definition for id. Integer codes resolve
// through their EPSG authority name, authority names through the registry;
// a proj4 identifier is its own definition.
func (id ID) Proj4() (string, error) {
	switch id.kind {
	case IntegerSRID:
		return lookupDef(SRIDToEPSG(id.srid))
	case AuthorityName:
		return lookupDef(id.text)
	case Proj4String:
		return id.text, nil
	}
	return "", errors.Mark(errors.Newf("crs: unrecognized identifier %q", id.text), ErrResolution)
}

// Definition resolves id into a CRS definition usable to build a transform,
// by handing its proj4 form to the projection engine. Malformed definitions
// fail with whatever the engine reports, marked ErrResolution.
func (id ID) Definition() (*proj.SR, error) {
	def, err := id.Proj4()
	if err != nil {
		return nil, err
	}
	sr, err := proj.Parse(def)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "crs: resolving %s", id), ErrResolution)
	}
	return sr, nil
}
