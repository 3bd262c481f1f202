package searcher

import (
	"errors"
	"hunt/game"
)

// ErrNoPath is returned when the destination was never reached by the search.
var ErrNoPath = errors.New("no path")

// Graph answers one-step reachability. The answer may depend on the round,
// so implementations must not cache across rounds.
type Graph interface {
	Reachable(p game.Player, r game.Round, from game.Place, modes game.Transport) []game.Place
}
