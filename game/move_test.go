package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceAbbrev(t *testing.T) {
	for p := Place(0); p < NumRealPlaces; p++ {
		got, ok := PlaceFromAbbrev(p.Abbrev())
		require.True(t, ok, "%s should parse", p.Name())
		require.Equal(t, p, got, "%s should round trip", p.Name())
	}

	_, ok := PlaceFromAbbrev("NW")
	require.False(t, ok, "Nowhere is not a real place")
	require.Equal(t, "NW", Nowhere.String(), "Nowhere prints as NW")
	require.Equal(t, "Place(99)", Place(99).String(), "Out of range places print their id")
	require.Equal(t, Hospital, StJosephAndStMary, "Hospital alias")
	require.True(t, IonianSea.IsSea(), "Ionian Sea is a sea")
	require.False(t, Madrid.IsSea(), "Madrid is land")
	require.False(t, Nowhere.IsSea(), "Nowhere is not a sea")
}

func TestMoveFromAbbrev(t *testing.T) {
	tests := []struct {
		abbrev string
		want   Move
	}{
		{"MA", Location(Madrid)},
		{"HI", Hide},
		{"TP", Teleport},
		{"C?", CityUnknown},
		{"S?", SeaUnknown},
		{"D1", DoubleBack(1)},
		{"D5", DoubleBack(5)},
		{"DU", Location(Dublin)},
	}
	for _, tt := range tests {
		got, ok := MoveFromAbbrev(tt.abbrev)

		require.True(t, ok, "%s should parse", tt.abbrev)
		require.Equal(t, tt.want, got, "%s should parse to the right move", tt.abbrev)
		require.Equal(t, tt.abbrev, got.Abbrev(), "%s should round trip", tt.abbrev)
	}

	for _, bad := range []string{"", "D0", "D6", "ZZ", "MAD"} {
		_, ok := MoveFromAbbrev(bad)
		require.False(t, ok, "%q should not parse", bad)
	}
}

func TestMoveKinds(t *testing.T) {
	require.True(t, Move{}.IsZero(), "Zero value is no move")
	require.True(t, Location(Madrid).IsLocation(), "Location move")
	require.True(t, DoubleBack(2).IsDoubleBack(), "Double back move")
	require.False(t, Hide.IsLocation(), "Hide is not a location move")
	require.Len(t, DoubleBacks(), MaxDoubleBack, "One double back per trail slot")
	require.Equal(t, DoubleBack(1), DoubleBacks()[0], "Double backs in order")
	require.Panics(t, func() { DoubleBack(6) }, "D6 does not exist")
	require.Equal(t, "--", Move{}.String(), "No move prints as dashes")
}

func TestTransport(t *testing.T) {
	require.True(t, AnyTransport.Has(Road|Boat), "Any includes road and boat")
	require.False(t, Road.Has(Boat), "Road excludes boat")
	require.False(t, AnyTransport.Has(NoTransport), "Nothing is never enabled")
	require.Equal(t, Road|Boat, AnyTransport.Without(Rail), "Rail removed")
	require.Equal(t, "road|boat", (Road | Boat).String(), "Modes print in order")
	require.Equal(t, "none", NoTransport.String(), "No modes")
}

func TestPlayers(t *testing.T) {
	require.Len(t, Hunters(), 4, "Four hunters")
	require.False(t, Dracula.IsHunter(), "Dracula is not a hunter")
	require.False(t, Player(7).IsValid(), "Out of range player")
	require.Equal(t, "Van Helsing", VanHelsing.String(), "Player names")

	p, ok := playerFromChar('M')
	require.True(t, ok, "M is a player")
	require.Equal(t, MinaHarker, p, "M is Mina Harker")
}
