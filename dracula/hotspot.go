package dracula

import (
	"hunt/game"
	"hunt/meta"
	"hunt/utils"
)

// Status describes where the router is within its current sequence.
type Status int

const (
	// NoRoute: Dracula has no location, or the anchor cannot be reached.
	NoRoute Status = iota
	// Approaching: heading for the anchor along a shortest path.
	Approaching
	// ApproachUnplanned: the sequence has no approach to its anchor yet.
	ApproachUnplanned
	// Following: at or past the anchor, playing the sequence's moves.
	Following
	// OffScript: the anchor is in the trail but the last move is not part
	// of the sequence.
	OffScript
)

func (s Status) String() string {
	switch s {
	case Approaching:
		return "approaching"
	case ApproachUnplanned:
		return "approach-unplanned"
	case Following:
		return "following"
	case OffScript:
		return "off-script"
	default:
		return "no-route"
	}
}

// Sequence is one teleport cycle: reach the anchor, then play Moves in order.
// Moves starts with the anchor and ends with game.Teleport.
type Sequence struct {
	Anchor   game.Place
	Approach game.Transport // game.NoTransport when no approach is planned
	Moves    []game.Move
}

// Sequences are the three cycles, indexed by teleports taken mod 3.
var Sequences = [meta.HotspotSequences]Sequence{
	{
		Anchor:   game.Madrid,
		Approach: game.Road,
		Moves: []game.Move{
			game.Location(game.Madrid), game.Location(game.Alicante), game.Location(game.Granada),
			game.Location(game.Cadiz), game.DoubleBack(1), game.Hide, game.Teleport,
		},
	},
	{
		Anchor:   game.Prague,
		Approach: game.NoTransport,
		Moves: []game.Move{
			game.Location(game.Prague), game.Location(game.Berlin), game.Location(game.Leipzig),
			game.Location(game.Hamburg), game.DoubleBack(3), game.Hide, game.Teleport,
		},
	},
	{
		Anchor:   game.Rome,
		Approach: game.Road | game.Boat,
		Moves: []game.Move{
			game.Location(game.Rome), game.Location(game.Florence), game.Location(game.Genoa),
			game.Location(game.Venice), game.DoubleBack(3), game.Hide, game.Teleport,
		},
	},
}

// Step is the router's suggestion for this turn. Move is only set when
// Status is Approaching or Following.
type Step struct {
	Move     game.Move
	Sequence int
	Status   Status
}

// HasMove reports whether the step carries a move to play.
func (s Step) HasMove() bool {
	return !s.Move.IsZero()
}

// Teleports counts how many times Dracula has teleported so far.
func Teleports(s State) int {
	count := 0
	for _, m := range s.MoveHistory(game.Dracula) {
		if m == game.Teleport {
			count++
		}
	}
	return count
}

// SequenceIndex picks the cycle to follow after the given number of teleports.
func SequenceIndex(teleports int) int {
	return teleports % meta.HotspotSequences
}

// NextHotspotStep returns the next step of the current teleport cycle.
func (v *View) NextHotspotStep() Step {
	index := SequenceIndex(Teleports(v.state))
	seq := Sequences[index]
	step := Step{Sequence: index}

	if v.WhereAmI() == game.Nowhere {
		step.Status = NoRoute
		return step
	}

	if !v.atHotspot(seq) {
		if seq.Approach == game.NoTransport {
			step.Status = ApproachUnplanned
			return step
		}
		path, err := v.ShortestPath(game.Dracula, seq.Anchor, seq.Approach)
		if err != nil || len(path) == 0 {
			step.Status = NoRoute
			return step
		}
		step.Move = game.Location(path[0])
		step.Status = Approaching
		return step
	}

	next, ok := seq.after(v.trail.LastMove())
	if !ok {
		step.Status = OffScript
		return step
	}
	step.Move = next
	step.Status = Following
	return step
}

// atHotspot reports whether the anchor is among Dracula's last TrailSize
// locations. The window includes the current turn's predecessor beyond the
// movement trail, so the anchor is still seen when a cycle reaches Teleport.
func (v *View) atHotspot(seq Sequence) bool {
	recent := v.state.LastLocations(game.Dracula, meta.TrailSize)
	return utils.Contains(recent, seq.Anchor)
}

// after returns the move following last within the sequence.
func (seq Sequence) after(last game.Move) (game.Move, bool) {
	i := utils.FindIndex(seq.Moves, last)
	if i < 0 || i+1 >= len(seq.Moves) {
		return game.Move{}, false
	}
	return seq.Moves[i+1], true
}
