package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZones_CoversTheClosedSet(t *testing.T) {
	zones := Zones()

	require.Len(t, zones, 7)
	for _, zone := range zones {
		assert.True(t, zone.IsValid(), "zone %q", zone)
	}
	assert.Equal(t, ZoneCommercial, zones[0])
	assert.Equal(t, ZoneInstitutional, zones[len(zones)-1])
}

func TestParseZone(t *testing.T) {
	for _, zone := range Zones() {
		assert.Equal(t, zone, ParseZone(string(zone)))
	}

	assert.Equal(t, ZoneResidential, ParseZone(""))
	assert.Equal(t, ZoneResidential, ParseZone("Lunar"))
	assert.Equal(t, ZoneResidential, ParseZone("commercial"))
}
