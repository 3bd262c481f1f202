package communication

import (
	"hunt/agent"
)

// Communicator asks a decision service for Dracula's next move.
type Communicator interface {
	Decide(plays string) (Decision, error)
}

type DecideRequest struct {
	Plays string `json:"plays"`
}

// Decision is the wire form of agent.Decision. Moves are sent as their
// past-plays abbreviations.
type Decision struct {
	ID       string   `json:"id"`
	Round    int      `json:"round"`
	Move     string   `json:"move"`
	Source   string   `json:"source"`
	Sequence int      `json:"sequence"`
	Status   string   `json:"status"`
	Legal    []string `json:"legal"`
}

func NewDecision(d agent.Decision) Decision {
	legal := make([]string, len(d.Legal))
	for i, m := range d.Legal {
		legal[i] = m.Abbrev()
	}
	return Decision{
		ID:       d.ID,
		Round:    int(d.Round),
		Move:     d.Move.Abbrev(),
		Source:   d.Source.String(),
		Sequence: d.Step.Sequence,
		Status:   d.Step.Status.String(),
		Legal:    legal,
	}
}
