package dracula

import (
	"errors"
	"hunt/game"
	"hunt/searcher"
)

// ErrNowhere is returned for path queries about a player with no location.
var ErrNowhere = errors.New("player has no location")

// State is a read-only snapshot of the game as Dracula sees it. Histories are
// returned oldest first. game.View implements it.
type State interface {
	searcher.Graph

	Round() game.Round
	Score() int
	Health(p game.Player) int
	Location(p game.Player) game.Place
	VampireLocation() game.Place
	TrapLocations() []game.Place
	LastMoves(p game.Player, n int) []game.Move
	LastLocations(p game.Player, n int) []game.Place
	MoveHistory(p game.Player) []game.Move
}

var _ State = (*game.View)(nil)
