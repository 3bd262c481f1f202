package game

import "fmt"

// MoveKind tags the variant held by a Move.
type MoveKind int

const (
	NoMove MoveKind = iota
	LocationMove
	HideMove
	DoubleBackMove
	TeleportMove
	CityUnknownMove // redacted city move, as a hunter sees it
	SeaUnknownMove  // redacted sea move, as a hunter sees it
)

// MaxDoubleBack is the furthest a double-back can reach into the trail.
const MaxDoubleBack = 5

// Move is one turn's action: either travel to a real place or one of the
// pseudo-moves. Moves are comparable, so they can be used as map keys.
type Move struct {
	Kind  MoveKind
	Place Place // set for LocationMove only
	Back  int   // set for DoubleBackMove only, 1..MaxDoubleBack
}

var (
	Hide        = Move{Kind: HideMove, Place: Nowhere}
	Teleport    = Move{Kind: TeleportMove, Place: Nowhere}
	CityUnknown = Move{Kind: CityUnknownMove, Place: Nowhere}
	SeaUnknown  = Move{Kind: SeaUnknownMove, Place: Nowhere}
)

// Location returns the move that travels to p.
func Location(p Place) Move {
	return Move{Kind: LocationMove, Place: p}
}

// DoubleBack returns the move that revisits the location k turns back.
// It panics when k is outside 1..MaxDoubleBack.
func DoubleBack(k int) Move {
	if k < 1 || k > MaxDoubleBack {
		panic(fmt.Sprintf("double back %d out of range", k))
	}
	return Move{Kind: DoubleBackMove, Place: Nowhere, Back: k}
}

// DoubleBacks lists DoubleBack(1) through DoubleBack(5) in order.
func DoubleBacks() []Move {
	moves := make([]Move, 0, MaxDoubleBack)
	for k := 1; k <= MaxDoubleBack; k++ {
		moves = append(moves, DoubleBack(k))
	}
	return moves
}

func (m Move) IsLocation() bool   { return m.Kind == LocationMove }
func (m Move) IsDoubleBack() bool { return m.Kind == DoubleBackMove }
func (m Move) IsZero() bool       { return m.Kind == NoMove }

// Abbrev is the two-character code used in the past-plays log.
func (m Move) Abbrev() string {
	switch m.Kind {
	case LocationMove:
		return m.Place.Abbrev()
	case HideMove:
		return "HI"
	case DoubleBackMove:
		return fmt.Sprintf("D%d", m.Back)
	case TeleportMove:
		return "TP"
	case CityUnknownMove:
		return "C?"
	case SeaUnknownMove:
		return "S?"
	default:
		return "--"
	}
}

func (m Move) String() string {
	return m.Abbrev()
}

// MoveFromAbbrev parses a two-character move code.
func MoveFromAbbrev(abbrev string) (Move, bool) {
	switch abbrev {
	case "HI":
		return Hide, true
	case "TP":
		return Teleport, true
	case "C?":
		return CityUnknown, true
	case "S?":
		return SeaUnknown, true
	}
	if len(abbrev) == 2 && abbrev[0] == 'D' && abbrev[1] >= '1' && abbrev[1] <= '5' {
		return DoubleBack(int(abbrev[1] - '0')), true
	}
	if p, ok := PlaceFromAbbrev(abbrev); ok {
		return Location(p), true
	}
	return Move{}, false
}
