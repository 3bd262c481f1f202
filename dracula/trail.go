package dracula

import (
	"hunt/game"
	"hunt/meta"
	"hunt/utils"
)

// TrailLength is how many of Dracula's previous moves restrict his next one.
const TrailLength = meta.TrailSize - 1

// Trail is Dracula's latest moves and the real locations they left him in,
// most recent first. It is rebuilt from the game state whenever the state
// changes and is never modified afterwards.
type Trail struct {
	moves     []game.Move
	locations []game.Place
}

// NewTrail reads Dracula's latest TrailLength moves and locations from s.
func NewTrail(s State) Trail {
	moves := s.LastMoves(game.Dracula, TrailLength)
	locations := s.LastLocations(game.Dracula, TrailLength)

	n := min(len(moves), len(locations), TrailLength)
	moves = moves[len(moves)-n:]
	locations = locations[len(locations)-n:]

	return Trail{
		moves:     utils.Reversed(moves),
		locations: utils.Reversed(locations),
	}
}

// Len is the number of entries, between 0 and TrailLength.
func (t Trail) Len() int {
	return len(t.moves)
}

// Moves returns a copy of the moves, most recent first.
func (t Trail) Moves() []game.Move {
	return append([]game.Move(nil), t.moves...)
}

// Locations returns a copy of the locations, most recent first.
func (t Trail) Locations() []game.Place {
	return append([]game.Place(nil), t.locations...)
}

// LastMove is the most recent move, or the zero Move for an empty trail.
func (t Trail) LastMove() game.Move {
	if len(t.moves) == 0 {
		return game.Move{}
	}
	return t.moves[0]
}

func (t Trail) Contains(move game.Move) bool {
	return utils.Contains(t.moves, move)
}

func (t Trail) ContainsDoubleBack() bool {
	for _, m := range t.moves {
		if m.IsDoubleBack() {
			return true
		}
	}
	return false
}

// Resolve returns the location a double-back refers to, or game.Nowhere
// when the trail is too short or the move is not a double-back.
func (t Trail) Resolve(move game.Move) game.Place {
	if !move.IsDoubleBack() {
		return game.Nowhere
	}
	pos := move.Back - 1
	if pos >= len(t.locations) {
		return game.Nowhere
	}
	return t.locations[pos]
}
