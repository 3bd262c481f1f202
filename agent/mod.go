package agent

import (
	"hunt/dracula"
	"hunt/game"
	"hunt/meta"
	"hunt/utils"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Source records which part of the agent produced a decision.
type Source int

const (
	SourceNone     Source = iota // Dracula has no location yet
	SourceHotspot                // legal step from the hotspot router
	SourceFallback               // router had nothing usable, picked from the legal moves
	SourceTeleport               // no legal moves at all
)

func (s Source) String() string {
	switch s {
	case SourceHotspot:
		return "hotspot"
	case SourceFallback:
		return "fallback"
	case SourceTeleport:
		return "teleport"
	default:
		return "none"
	}
}

type Decision struct {
	ID     string
	Round  game.Round
	Move   game.Move
	Source Source
	Step   dracula.Step
	Legal  []game.Move
}

type Option func(d *Dracula)

// Dracula picks Dracula's move each turn: the hotspot router's step when it is
// legal, otherwise a legal move chosen by the fallback policy.
type Dracula struct {
	seed     uint64
	fallback meta.Fallback

	mu  sync.Mutex
	rng *rand.Rand
}

func WithSeed(seed uint64) Option {
	return func(d *Dracula) {
		d.seed = seed
	}
}

func WithFallback(fallback meta.Fallback) Option {
	return func(d *Dracula) {
		if fallback != "" {
			d.fallback = fallback
		}
	}
}

func New(options ...Option) *Dracula {
	d := &Dracula{
		seed:     1,
		fallback: meta.FallbackRandom,
	}
	for _, option := range options {
		option(d)
	}
	d.rng = rand.New(rand.NewSource(d.seed))
	return d
}

// Decide returns the move Dracula should play in state s.
func (d *Dracula) Decide(s dracula.State) Decision {
	view := dracula.NewView(s)
	decision := Decision{
		ID:    uuid.NewString(),
		Round: s.Round(),
	}

	if view.WhereAmI() == game.Nowhere {
		decision.Source = SourceNone
		d.logDecision(decision)
		return decision
	}

	decision.Step = view.NextHotspotStep()
	decision.Legal = view.LegalMoves()

	switch {
	case len(decision.Legal) == 0:
		decision.Move = game.Teleport
		decision.Source = SourceTeleport
	case d.playable(decision.Step, decision.Legal):
		decision.Move = decision.Step.Move
		decision.Source = SourceHotspot
	default:
		if decision.Step.HasMove() {
			log.Warn().
				Str("decision", decision.ID).
				Stringer("step", decision.Step.Move).
				Stringer("status", decision.Step.Status).
				Msg("hotspot step is not legal, falling back")
		}
		decision.Move = d.pick(decision.Legal)
		decision.Source = SourceFallback
	}

	d.logDecision(decision)
	return decision
}

// playable reports whether the router's step can be played as is. Teleport
// is never among the legal moves but closes every sequence, so the router
// may always ask for it.
func (d *Dracula) playable(step dracula.Step, legal []game.Move) bool {
	if !step.HasMove() {
		return false
	}
	return step.Move == game.Teleport || utils.Contains(legal, step.Move)
}

func (d *Dracula) pick(legal []game.Move) game.Move {
	if d.fallback == meta.FallbackFirst {
		return legal[0]
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return legal[d.rng.Intn(len(legal))]
}

func (d *Dracula) logDecision(decision Decision) {
	log.Info().
		Str("decision", decision.ID).
		Int("round", int(decision.Round)).
		Stringer("move", decision.Move).
		Stringer("source", decision.Source).
		Int("sequence", decision.Step.Sequence).
		Stringer("status", decision.Step.Status).
		Int("legal", len(decision.Legal)).
		Msg("dracula decided")
}
