package game

import (
	"errors"
	"fmt"
	"hunt/meta"
	"strings"
)

// PlayLength is the width of one play in the past-plays log.
const PlayLength = 7

var (
	ErrMalformedPlay = errors.New("malformed play")
	ErrUnknownPlace  = errors.New("unknown place")
	ErrOutOfTurn     = errors.New("play out of turn")
	ErrInvalidMove   = errors.New("invalid move")
)

// ParseError reports which play in the log could not be applied.
type ParseError struct {
	Index int
	Play  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("play %d %q: %v", e.Index, e.Play, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type trap struct {
	place Place
	turn  int // Dracula turn that placed it
}

// View is a read-only snapshot of a game, derived from its past-plays log.
type View struct {
	board        *Map
	plays        int
	score        int
	health       [NumPlayers]int
	moves        [NumPlayers][]Move
	locations    [NumPlayers][]Place
	traps        []trap
	vampire      Place
	draculaTurns int
}

// NewView parses a past-plays log against the standard board.
func NewView(plays string) (*View, error) {
	return NewViewWithMap(StandardMap(), plays)
}

// NewViewWithMap parses a past-plays log against the given board.
func NewViewWithMap(m *Map, plays string) (*View, error) {
	v := &View{
		board:   m,
		score:   meta.GameStartScore,
		vampire: Nowhere,
	}
	for _, p := range Hunters() {
		v.health[p] = meta.GameStartHunterLifePoints
	}
	v.health[Dracula] = meta.GameStartBloodPoints

	for i, play := range strings.Fields(plays) {
		if err := v.apply(play); err != nil {
			return nil, &ParseError{Index: i, Play: play, Err: err}
		}
	}
	return v, nil
}

// SplitPlays breaks a past-plays log into its plays.
func SplitPlays(plays string) []string {
	return strings.Fields(plays)
}

func (v *View) apply(play string) error {
	if len(play) != PlayLength {
		return fmt.Errorf("%w: want %d characters, got %d", ErrMalformedPlay, PlayLength, len(play))
	}
	player, ok := playerFromChar(play[0])
	if !ok {
		return fmt.Errorf("%w: unknown player %q", ErrMalformedPlay, play[0])
	}
	if player != v.CurrentPlayer() {
		return fmt.Errorf("%w: expected %s, got %s", ErrOutOfTurn, v.CurrentPlayer(), player)
	}
	move, ok := MoveFromAbbrev(play[1:3])
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlace, play[1:3])
	}

	var err error
	if player == Dracula {
		err = v.applyDracula(move, play[3:])
	} else {
		err = v.applyHunter(player, move, play[3:])
	}
	if err != nil {
		return err
	}
	v.plays++
	return nil
}

func (v *View) applyHunter(p Player, move Move, actions string) error {
	if !move.IsLocation() {
		return fmt.Errorf("%w: hunters can only move to places, got %s", ErrInvalidMove, move)
	}
	if v.health[p] <= 0 {
		v.health[p] = meta.GameStartHunterLifePoints
	}

	loc := move.Place
	if prev := v.Location(p); prev == loc {
		v.health[p] = min(v.health[p]+meta.LifeGainRest, meta.GameStartHunterLifePoints)
	}

	for _, a := range actions {
		switch a {
		case 'T':
			v.health[p] -= meta.LifeLossTrapEncounter
			v.removeTrapAt(loc)
		case 'V':
			v.vampire = Nowhere
		case 'D':
			v.health[p] -= meta.LifeLossDraculaEncounter
			v.health[Dracula] -= meta.LifeLossHunterEncounter
		case '.':
		default:
			return fmt.Errorf("%w: unknown hunter action %q", ErrMalformedPlay, a)
		}
	}

	if v.health[p] <= 0 {
		v.health[p] = 0
		v.score -= meta.ScoreLossHunterHospital
		loc = Hospital
	}

	v.moves[p] = append(v.moves[p], move)
	v.locations[p] = append(v.locations[p], loc)
	return nil
}

func (v *View) applyDracula(move Move, actions string) error {
	loc, err := v.resolveDracula(move)
	if err != nil {
		return err
	}

	switch actions[0] {
	case 'T':
		if loc.IsReal() {
			v.traps = append(v.traps, trap{place: loc, turn: v.draculaTurns})
		}
	case '.':
	default:
		return fmt.Errorf("%w: unknown encounter %q", ErrMalformedPlay, actions[0])
	}
	switch actions[1] {
	case 'V':
		if loc.IsReal() {
			v.vampire = loc
		}
	case '.':
	default:
		return fmt.Errorf("%w: unknown encounter %q", ErrMalformedPlay, actions[1])
	}
	switch actions[2] {
	case 'M':
		v.expireTrap(v.draculaTurns - meta.TrailSize)
	case 'V':
		v.vampire = Nowhere
		v.score -= meta.ScoreLossVampireMatures
	case '.':
	default:
		return fmt.Errorf("%w: unknown action %q", ErrMalformedPlay, actions[2])
	}

	v.score -= meta.ScoreLossDraculaTurn
	if loc.IsSea() {
		v.health[Dracula] -= meta.LifeLossSea
	}
	if loc == CastleDracula {
		v.health[Dracula] += meta.LifeGainCastleDracula
	}

	v.moves[Dracula] = append(v.moves[Dracula], move)
	v.locations[Dracula] = append(v.locations[Dracula], loc)
	v.draculaTurns++
	return nil
}

// resolveDracula works out where Dracula ends up after move.
func (v *View) resolveDracula(move Move) (Place, error) {
	history := v.locations[Dracula]
	switch move.Kind {
	case LocationMove:
		return move.Place, nil
	case HideMove:
		if len(history) == 0 {
			return Nowhere, fmt.Errorf("%w: hide before any move", ErrInvalidMove)
		}
		return history[len(history)-1], nil
	case DoubleBackMove:
		if move.Back > len(history) {
			return Nowhere, fmt.Errorf("%w: %s with %d moves made", ErrInvalidMove, move, len(history))
		}
		return history[len(history)-move.Back], nil
	case TeleportMove:
		return CastleDracula, nil
	default:
		// Redacted moves leave the location unknown.
		return Nowhere, nil
	}
}

func (v *View) removeTrapAt(p Place) {
	for i, t := range v.traps {
		if t.place == p {
			v.traps = append(v.traps[:i], v.traps[i+1:]...)
			return
		}
	}
}

func (v *View) expireTrap(turn int) {
	for i, t := range v.traps {
		if t.turn == turn {
			v.traps = append(v.traps[:i], v.traps[i+1:]...)
			return
		}
	}
}

// Map returns the board the view was parsed against.
func (v *View) Map() *Map {
	return v.board
}

// Round is the number of completed rounds.
func (v *View) Round() Round {
	return Round(v.plays / NumPlayers)
}

// CurrentPlayer is the player whose turn is next.
func (v *View) CurrentPlayer() Player {
	return Player(v.plays % NumPlayers)
}

func (v *View) Score() int {
	return v.score
}

func (v *View) Health(p Player) int {
	if !p.IsValid() {
		return 0
	}
	return v.health[p]
}

// Location is where p currently is, or Nowhere if p has not moved yet.
func (v *View) Location(p Player) Place {
	if !p.IsValid() || len(v.locations[p]) == 0 {
		return Nowhere
	}
	return v.locations[p][len(v.locations[p])-1]
}

// VampireLocation is where the immature vampire is, or Nowhere.
func (v *View) VampireLocation() Place {
	return v.vampire
}

// TrapLocations lists the places holding traps, one entry per trap.
func (v *View) TrapLocations() []Place {
	locs := make([]Place, len(v.traps))
	for i, t := range v.traps {
		locs[i] = t.place
	}
	return locs
}

// MoveHistory returns every move p has made, oldest first.
func (v *View) MoveHistory(p Player) []Move {
	if !p.IsValid() {
		return nil
	}
	return append([]Move(nil), v.moves[p]...)
}

// LocationHistory returns every location p has been in, oldest first.
func (v *View) LocationHistory(p Player) []Place {
	if !p.IsValid() {
		return nil
	}
	return append([]Place(nil), v.locations[p]...)
}

// LastMoves returns up to n of p's latest moves, oldest first.
func (v *View) LastMoves(p Player, n int) []Move {
	return lastN(v.MoveHistory(p), n)
}

// LastLocations returns up to n of p's latest locations, oldest first.
func (v *View) LastLocations(p Player, n int) []Place {
	return lastN(v.LocationHistory(p), n)
}

// Reachable delegates to the board.
func (v *View) Reachable(p Player, r Round, from Place, modes Transport) []Place {
	return v.board.Reachable(p, r, from, modes)
}

func lastN[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	return items[len(items)-n:]
}
