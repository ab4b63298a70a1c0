package crs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"EPSG:4326", AuthorityName},
		{"ESRI:102113", AuthorityName},
		{"NA83:4269", AuthorityName},
		{"WORLD:4326", AuthorityName},
		{"NAD27:4267", AuthorityName},
		{"+proj=longlat +datum=WGS84 +no_defs", Proj4String},
		// The sniff looks anywhere in the string.
		{"+ellps=GRS80 +proj=utm +zone=32", Proj4String},
		{"NOT-A-CRS", Unrecognized},
		{"", Unrecognized},
		// Prefixes are exact and case-sensitive.
		{"epsg:4326", Unrecognized},
		{"EPSG 4326", Unrecognized},
		{"xEPSG:4326", Unrecognized},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Classify(tt.in).Kind(), "Classify(%q)", tt.in)
	}
}

func TestSRIDIdentifier(t *testing.T) {
	id := SRID(4326)
	require.Equal(t, IntegerSRID, id.Kind())

	srid, ok := id.AsSRID()
	require.True(t, ok)
	require.Equal(t, 4326, srid)
}

func TestEPSGRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 4326, 3857, 2056, 900913, 999999} {
		got, err := EPSGToSRID(SRIDToEPSG(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestEPSGToSRIDRejectsNonEPSG(t *testing.T) {
	for _, s := range []string{"ESRI:54004", "NAD27:4267", "EPSG:abc", "EPSG:", "4326", "+proj=longlat"} {
		_, err := EPSGToSRID(s)
		require.Error(t, err, "EPSGToSRID(%q)", s)
		require.Contains(t, err.Error(), "not an EPSG string")
	}
}

func TestAsSRID(t *testing.T) {
	tests := []struct {
		id     ID
		want   int
		wantOK bool
	}{
		{SRID(3857), 3857, true},
		{Classify("EPSG:3857"), 3857, true},
		{Classify("ESRI:102113"), 0, false},
		{Classify("+proj=longlat +datum=WGS84 +no_defs"), 0, false},
		{Classify("NOT-A-CRS"), 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.id.AsSRID()
		require.Equal(t, tt.wantOK, ok, "AsSRID(%s)", tt.id)
		require.Equal(t, tt.want, got, "AsSRID(%s)", tt.id)
	}
}

func TestIDComparesByValue(t *testing.T) {
	require.Equal(t, SRID(4326), SRID(4326))
	require.Equal(t, Classify("EPSG:4326"), Classify("EPSG:4326"))
	// Same system, different namespace: distinct identifiers.
	require.NotEqual(t, SRID(4326), Classify("EPSG:4326"))
}
