// crsinfo classifies a CRS identifier and prints what the library can
// resolve for it: the identifier namespace, the derivable EPSG form, and the
// proj4 definition handed to the projection engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/asiegf/geo/crs"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: crsinfo <identifier> [...]\n\n")
		fmt.Fprintf(os.Stderr, "Identifiers: an integer SRID (4326), an authority name (EPSG:3857,\n")
		fmt.Fprintf(os.Stderr, "ESRI:..., NA83:..., WORLD:..., NAD27:...), or a proj4 definition\n")
		fmt.Fprintf(os.Stderr, "string containing +proj=.\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	for _, arg := range flag.Args() {
		id := parseIdentifier(arg)
		fmt.Printf("%s\n", arg)
		fmt.Printf("  kind: %s\n", id.Kind())

		if srid, ok := id.AsSRID(); ok {
			fmt.Printf("  epsg: %s\n", crs.SRIDToEPSG(srid))
		}

		def, err := id.Proj4()
		if err != nil {
			log.Fatalf("resolving %q: %v", arg, err)
		}
		fmt.Printf("  proj4: %s\n", def)

		// Round-trip through the projection engine so malformed definitions
		// are reported here rather than at first use.
		if _, err := id.Definition(); err != nil {
			log.Fatalf("resolving %q: %v", arg, err)
		}
	}
}

// parseIdentifier reads an integer as an SRID and anything else as a string
// identifier.
func parseIdentifier(s string) crs.ID {
	if n, err := strconv.Atoi(s); err == nil {
		return crs.SRID(n)
	}
	return crs.Classify(s)
}
