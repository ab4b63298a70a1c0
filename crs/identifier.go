// Package crs classifies and resolves coordinate reference system
// identifiers. An identifier lives in one of three namespaces: an integer
// SRID, an authority-prefixed name such as "EPSG:4326", or a raw proj4
// definition string. Classification happens once, at this package's
// boundary; everything downstream works with the resulting ID value.
package crs

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind is the classification of a CRS identifier.
type Kind int

const (
	Unrecognized Kind = iota
	IntegerSRID
	AuthorityName
	Proj4String
)

func (k Kind) String() string {
	switch k {
	case IntegerSRID:
		return "integer SRID"
	case AuthorityName:
		return "authority name"
	case Proj4String:
		return "proj4 definition"
	}
	return "unrecognized"
}

// authorityPrefixes are the exact, case-sensitive prefixes recognized on
// string identifiers.
var authorityPrefixes = []string{"EPSG:", "ESRI:", "NA83:", "WORLD:", "NAD27:"}

// ID is a classified CRS identifier. The zero value is Unrecognized. IDs
// compare by value: SRID(4326) and Classify("EPSG:4326") identify the same
// system but are distinct identifiers.
type ID struct {
	kind Kind
	srid int
	text string
}

// SRID returns the identifier for an integer spatial reference code.
func SRID(n int) ID { return ID{kind: IntegerSRID, srid: n} }

// Classify classifies a string identifier: an authority-prefixed name, a
// raw proj4 definition (anything containing "+proj="), or Unrecognized.
func Classify(s string) ID {
	for _, p := range authorityPrefixes {
		if strings.HasPrefix(s, p) {
			return ID{kind: AuthorityName, text: s}
		}
	}
	if strings.Contains(s, "+proj=") {
		return ID{kind: Proj4String, text: s}
	}
	return ID{kind: Unrecognized, text: s}
}

// Kind returns the identifier's classification.
func (id ID) Kind() Kind { return id.kind }

func (id ID) String() string {
	if id.kind == IntegerSRID {
		return strconv.Itoa(id.srid)
	}
	return id.text
}

// AsSRID returns the integer code derivable from id: the code itself for an
// integer identifier, the parsed suffix for an EPSG authority name. Every
// other identifier (non-EPSG authorities, proj4 definitions) has no
// derivable code and reports ok == false.
func (id ID) AsSRID() (srid int, ok bool) {
	switch id.kind {
	case IntegerSRID:
		return id.srid, true
	case AuthorityName:
		n, err := EPSGToSRID(id.text)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// SRIDToEPSG returns the EPSG authority name for an integer code.
func SRIDToEPSG(srid int) string { return "EPSG:" + strconv.Itoa(srid) }

// EPSGToSRID parses the integer code out of an EPSG authority name.
func EPSGToSRID(s string) (int, error) {
	rest, ok := strings.CutPrefix(s, "EPSG:")
	if !ok {
		return 0, errors.Newf("crs: %q is not an EPSG string", s)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, errors.Newf("crs: %q is not an EPSG string", s)
	}
	return n, nil
}
