package dracula

import (
	"fmt"
	"hunt/game"
	"hunt/searcher"
	"hunt/utils"
)

// draculaModes are the only modes Dracula may travel by.
const draculaModes = game.Road | game.Boat

// View answers Dracula's questions about the current turn. It is a pure
// function of the snapshot it was built from.
type View struct {
	state State
	trail Trail
}

// NewView builds a view over s, reading Dracula's trail from it.
func NewView(s State) *View {
	return &View{state: s, trail: NewTrail(s)}
}

func (v *View) State() State {
	return v.state
}

func (v *View) Trail() Trail {
	return v.trail
}

func (v *View) Round() game.Round {
	return v.state.Round()
}

func (v *View) Score() int {
	return v.state.Score()
}

func (v *View) Health(p game.Player) int {
	return v.state.Health(p)
}

func (v *View) Location(p game.Player) game.Place {
	return v.state.Location(p)
}

func (v *View) VampireLocation() game.Place {
	return v.state.VampireLocation()
}

func (v *View) TrapLocations() []game.Place {
	return v.state.TrapLocations()
}

// WhereAmI is Dracula's current location.
func (v *View) WhereAmI() game.Place {
	return v.state.Location(game.Dracula)
}

// reachable lists the places Dracula can travel to this turn by the given
// modes, ignoring his trail.
func (v *View) reachable(modes game.Transport) []game.Place {
	return v.state.Reachable(game.Dracula, v.state.Round(), v.WhereAmI(), modes.Without(game.Rail))
}

// LegalMoves returns every move Dracula may make this turn: location moves
// first, then double-backs, then hide. It is empty when Dracula has no
// location yet.
func (v *View) LegalMoves() []game.Move {
	if v.WhereAmI() == game.Nowhere {
		return nil
	}

	reachable := v.reachable(draculaModes)
	var moves []game.Move
	for _, place := range reachable {
		if move := game.Location(place); v.moveIsLegal(move, reachable) {
			moves = append(moves, move)
		}
	}
	for _, move := range game.DoubleBacks() {
		if v.moveIsLegal(move, reachable) {
			moves = append(moves, move)
		}
	}
	if v.moveIsLegal(game.Hide, reachable) {
		moves = append(moves, game.Hide)
	}
	return moves
}

// IsLegal reports whether move is one of LegalMoves.
func (v *View) IsLegal(move game.Move) bool {
	if v.WhereAmI() == game.Nowhere {
		return false
	}
	return v.moveIsLegal(move, v.reachable(draculaModes))
}

// moveIsLegal applies the trail restrictions to a single move.
func (v *View) moveIsLegal(move game.Move, reachable []game.Place) bool {
	switch move.Kind {
	case game.LocationMove:
		return !v.trail.Contains(move) && utils.Contains(reachable, move.Place)
	case game.DoubleBackMove:
		location := v.trail.Resolve(move)
		return !v.trail.ContainsDoubleBack() && location != game.Nowhere &&
			utils.Contains(reachable, location)
	case game.HideMove:
		return !v.trail.Contains(game.Hide) && !v.WhereAmI().IsSea()
	default:
		return false
	}
}

// WhereCanIGo lists the places Dracula can end up in this turn by road or sea.
func (v *View) WhereCanIGo() []game.Place {
	return v.WhereCanIGoByType(draculaModes)
}

// WhereCanIGoByType lists the places Dracula can end up in this turn using
// the given modes. Rail is ignored.
func (v *View) WhereCanIGoByType(modes game.Transport) []game.Place {
	if v.WhereAmI() == game.Nowhere {
		return nil
	}

	var places []game.Place
	for _, place := range v.reachable(modes) {
		if v.canMoveTo(place) {
			places = append(places, place)
		}
	}
	return places
}

// canMoveTo decides whether Dracula can end up in an adjacent location,
// by any move. This differs from moveIsLegal: a trail location stays
// available through a double-back until one has been used, and the current
// location stays available through hide.
func (v *View) canMoveTo(location game.Place) bool {
	if !v.trail.Contains(game.Location(location)) {
		return true
	}
	if !v.trail.ContainsDoubleBack() {
		return true
	}
	if location != v.WhereAmI() {
		return false
	}
	return !v.trail.Contains(game.Hide) && !location.IsSea()
}

// WhereCanTheyGo lists the places p can end up in on their next move, by any
// mode.
func (v *View) WhereCanTheyGo(p game.Player) []game.Place {
	return v.WhereCanTheyGoByType(p, game.AnyTransport)
}

// WhereCanTheyGoByType lists the places p can end up in on their next move
// using the given modes. Hunters move next round and are not bound by a
// trail; Dracula's answer is WhereCanIGoByType.
func (v *View) WhereCanTheyGoByType(p game.Player, modes game.Transport) []game.Place {
	if v.state.Location(p) == game.Nowhere {
		return nil
	}
	if p == game.Dracula {
		return v.WhereCanIGoByType(modes)
	}
	return v.state.Reachable(p, nextRound(v.state, p), v.state.Location(p), modes)
}

// nextRound is the round in which p makes their next move. Hunters have
// already moved this round when Dracula is deciding.
func nextRound(s State, p game.Player) game.Round {
	if p == game.Dracula {
		return s.Round()
	}
	return s.Round() + 1
}

// ShortestPath returns the places p would pass through to reach dest in
// the fewest turns, travelling only by the given modes. The path excludes
// p's current location and ends at dest.
func (v *View) ShortestPath(p game.Player, dest game.Place, modes game.Transport) ([]game.Place, error) {
	src := v.state.Location(p)
	if src == game.Nowhere {
		return nil, fmt.Errorf("shortest path for %s: %w", p, ErrNowhere)
	}
	if p == game.Dracula {
		modes = modes.Without(game.Rail)
	}
	return searcher.ShortestPath(v.state, p, src, dest, nextRound(v.state, p), modes)
}
