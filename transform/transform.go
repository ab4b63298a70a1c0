// Package transform reprojects geometries between coordinate reference
// systems. A Transform is bound to one (source, target) CRS pair and applies
// the projection engine coordinate by coordinate; the Geometry and Between
// entry points drive it across a whole geometry, cloning first so the
// caller's value is never touched.
package transform

import (
	"github.com/cockroachdb/errors"
	"github.com/ctessum/geom/proj"

	"github.com/asiegf/geo/crs"
	"github.com/asiegf/geo/geometry"
)

var (
	// ErrConstruction marks failures to build a transform: the two systems
	// resolved but are structurally untransformable.
	ErrConstruction = errors.New("transform: construction failed")

	// ErrMissingSRID is returned when a geometry with SRID 0 is handed to
	// the single-CRS form: there is no way to know the source system.
	ErrMissingSRID = errors.New("transform: source geometry has no SRID")

	// ErrProjection marks per-coordinate failures, e.g. a point outside the
	// target projection's valid domain.
	ErrProjection = errors.New("transform: coordinate projection failed")
)

// A Transform converts coordinates from one CRS to another. It is a pure
// function of its input and safe to share between goroutines. Building one
// parses and validates projection parameters and is not cheap; nothing is
// cached here, so callers needing the same pair repeatedly should build once
// and reuse.
type Transform struct {
	source, target crs.ID
	project        proj.Transformer
}

// New builds a Transform for the (source, target) pair by resolving each
// side and handing both definitions to the projection engine.
func New(source, target crs.ID) (*Transform, error) {
	src, err := source.Definition()
	if err != nil {
		return nil, err
	}
	dst, err := target.Definition()
	if err != nil {
		return nil, err
	}
	project, err := src.NewTransform(dst)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "transform: building %s to %s", source, target), ErrConstruction)
	}
	return &Transform{source: source, target: target, project: project}, nil
}

// Source returns the CRS identifier coordinates are converted from.
func (t *Transform) Source() crs.ID { return t.source }

// Target returns the CRS identifier coordinates are converted to.
func (t *Transform) Target() crs.ID { return t.target }

// Apply projects a single coordinate. Elevation is not projected: z passes
// through untouched, present or not.
func (t *Transform) Apply(c geometry.Coordinate) (geometry.Coordinate, error) {
	x, y, err := t.project(c.X, c.Y)
	if err != nil {
		return geometry.Coordinate{}, errors.Mark(
			errors.Wrapf(err, "transform: projecting (%v, %v)", c.X, c.Y), ErrProjection)
	}
	c.X, c.Y = x, y
	return c, nil
}
