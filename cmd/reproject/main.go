// reproject builds a geometry from flat coordinates and reprojects it to a
// target CRS. Coordinates are given as x y pairs in argument order; polygon
// rings are separated by a literal "/" argument, the first ring being the
// shell.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/asiegf/geo/crs"
	"github.com/asiegf/geo/geometry"
	"github.com/asiegf/geo/ops"
	"github.com/asiegf/geo/transform"
)

func main() {
	var (
		kind    string
		srid    int
		from    string
		to      string
		geojson bool
	)

	flag.StringVar(&kind, "type", "point", "Geometry type: point, linestring, linearring, polygon")
	flag.IntVar(&srid, "srid", geometry.DefaultSRID, "SRID of the input coordinates")
	flag.StringVar(&from, "from", "", "Source CRS identifier (default: the geometry's SRID)")
	flag.StringVar(&to, "to", "", "Target CRS identifier (required)")
	flag.BoolVar(&geojson, "geojson", false, "Print the result as GeoJSON instead of coordinate pairs")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reproject -to <crs> [flags] <x> <y> [<x> <y> ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reproject flat coordinates between coordinate reference systems.\n")
		fmt.Fprintf(os.Stderr, "CRS identifiers: integer SRID, authority name (EPSG:3857, ...),\n")
		fmt.Fprintf(os.Stderr, "or a proj4 definition string.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if to == "" {
		fmt.Fprintf(os.Stderr, "Error: -to is required\n\n")
		flag.Usage()
		os.Exit(2)
	}
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: no coordinates given\n\n")
		flag.Usage()
		os.Exit(2)
	}

	g, err := buildGeometry(kind, srid, flag.Args())
	if err != nil {
		log.Fatalf("building geometry: %v", err)
	}

	var result geometry.Geometry
	if from != "" {
		result, err = transform.Between(g, parseIdentifier(from), parseIdentifier(to))
	} else {
		result, err = transform.Geometry(g, parseIdentifier(to))
	}
	if err != nil {
		log.Fatalf("reprojecting: %v", err)
	}

	if geojson {
		out, err := ops.MarshalGeoJSON(result)
		if err != nil {
			log.Fatalf("encoding: %v", err)
		}
		fmt.Printf("%s\n", out)
		return
	}

	fmt.Printf("SRID=%d\n", result.SRID())
	for _, c := range result.Coordinates() {
		fmt.Printf("%.9g %.9g\n", c.X, c.Y)
	}
}

func buildGeometry(kind string, srid int, args []string) (geometry.Geometry, error) {
	groups, err := parseCoordGroups(args)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "point":
		flat := groups[0]
		if len(flat) < 2 {
			return nil, fmt.Errorf("a point needs an x y pair")
		}
		return geometry.NewPointFlat(flat[0], flat[1], srid), nil
	case "linestring":
		return geometry.NewLineStringFlat(groups[0], srid), nil
	case "linearring":
		return geometry.NewLinearRingFlat(groups[0], srid), nil
	case "polygon":
		return geometry.NewPolygonFlat(groups, srid), nil
	}
	return nil, fmt.Errorf("unknown geometry type %q", kind)
}

// parseCoordGroups parses numeric arguments into groups separated by "/"
// arguments. Non-polygon types use only the first group.
func parseCoordGroups(args []string) ([][]float64, error) {
	groups := [][]float64{nil}
	for _, arg := range args {
		if arg == "/" {
			groups = append(groups, nil)
			continue
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %w", arg, err)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], v)
	}
	return groups, nil
}

func parseIdentifier(s string) crs.ID {
	if n, err := strconv.Atoi(s); err == nil {
		return crs.SRID(n)
	}
	return crs.Classify(s)
}
