package searcher

import (
	"fmt"
	"hunt/game"
	"hunt/utils"
)

// Predecessors maps every place to the place it was first reached from.
// The source maps to itself; unvisited places map to game.Nowhere.
type Predecessors struct {
	source game.Place
	pred   []game.Place
}

// Search runs a breadth-first search from src that expands one round at a
// time: every place reached after k turns is expanded with round r+k before
// any place reached after k+1 turns. Path lengths are therefore measured in
// turns even when reachability changes from round to round.
func Search(g Graph, p game.Player, src game.Place, r game.Round, modes game.Transport) Predecessors {
	pred := make([]game.Place, game.NumRealPlaces)
	for i := range pred {
		pred[i] = game.Nowhere
	}
	if !src.IsReal() {
		return Predecessors{source: src, pred: pred}
	}
	pred[src] = src

	current := utils.NewQueue[game.Place]() // Places to expand this round
	next := utils.NewQueue[game.Place]()    // Places to expand next round
	current.Enqueue(src)

	for !(current.IsEmpty() && next.IsEmpty()) {
		curr, _ := current.Dequeue()
		for _, place := range g.Reachable(p, r, curr, modes) {
			if !place.IsReal() || pred[place] != game.Nowhere {
				continue
			}
			pred[place] = curr
			next.Enqueue(place)
		}

		// Round exhausted, move on to the places it discovered
		if current.IsEmpty() {
			current, next = next, current
			r++
		}
	}

	return Predecessors{source: src, pred: pred}
}

func (ps Predecessors) Source() game.Place {
	return ps.source
}

// Visited reports whether the search reached p.
func (ps Predecessors) Visited(p game.Place) bool {
	return p.IsReal() && ps.pred[p] != game.Nowhere
}

// Of returns the place p was reached from, or game.Nowhere.
func (ps Predecessors) Of(p game.Place) game.Place {
	if !p.IsReal() {
		return game.Nowhere
	}
	return ps.pred[p]
}

// PathTo returns the places visited after leaving the source, in order,
// ending at dest. The path to the source itself is empty.
func (ps Predecessors) PathTo(dest game.Place) ([]game.Place, error) {
	if !ps.Visited(dest) {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoPath, ps.source, dest)
	}

	// One pass to get the path length
	length := 0
	for curr := dest; curr != ps.source; curr = ps.pred[curr] {
		length++
	}

	// Another pass to copy the path in
	path := make([]game.Place, length)
	curr := dest
	for i := length - 1; i >= 0; i-- {
		path[i] = curr
		curr = ps.pred[curr]
	}
	return path, nil
}

// Distance returns the number of turns from the source to dest.
func (ps Predecessors) Distance(dest game.Place) (int, error) {
	path, err := ps.PathTo(dest)
	if err != nil {
		return 0, err
	}
	return len(path), nil
}

// ShortestPath is Search followed by PathTo.
func ShortestPath(g Graph, p game.Player, src, dest game.Place, r game.Round, modes game.Transport) ([]game.Place, error) {
	return Search(g, p, src, r, modes).PathTo(dest)
}
