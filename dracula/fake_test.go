package dracula

import "hunt/game"

// fakeState is an in-memory State. With adjacency set, Reachable returns
// exactly the listed neighbours; otherwise it uses the standard board.
type fakeState struct {
	round     game.Round
	locations map[game.Player]game.Place
	history   []game.Move  // Dracula's moves, oldest first
	trail     []game.Place // Dracula's locations, oldest first
	adjacency map[game.Place][]game.Place
	asked     []game.Round // rounds passed to Reachable
}

// played builds a state in which Dracula has made the given moves.
func played(moves ...game.Move) *fakeState {
	s := &fakeState{locations: map[game.Player]game.Place{}}
	for _, m := range moves {
		s.play(m)
	}
	return s
}

func (s *fakeState) play(m game.Move) {
	loc := game.Nowhere
	switch m.Kind {
	case game.LocationMove:
		loc = m.Place
	case game.HideMove:
		loc = s.trail[len(s.trail)-1]
	case game.DoubleBackMove:
		loc = s.trail[len(s.trail)-m.Back]
	case game.TeleportMove:
		loc = game.CastleDracula
	}
	s.history = append(s.history, m)
	s.trail = append(s.trail, loc)
	s.locations[game.Dracula] = loc
}

func (s *fakeState) at(p game.Player, place game.Place) *fakeState {
	s.locations[p] = place
	return s
}

func (s *fakeState) Round() game.Round { return s.round }
func (s *fakeState) Score() int        { return 366 }

func (s *fakeState) Health(p game.Player) int {
	if p == game.Dracula {
		return 40
	}
	return 9
}

func (s *fakeState) Location(p game.Player) game.Place {
	if loc, ok := s.locations[p]; ok {
		return loc
	}
	return game.Nowhere
}

func (s *fakeState) VampireLocation() game.Place { return game.Nowhere }
func (s *fakeState) TrapLocations() []game.Place { return nil }

func (s *fakeState) LastMoves(p game.Player, n int) []game.Move {
	if p != game.Dracula {
		return nil
	}
	return tail(s.history, n)
}

func (s *fakeState) LastLocations(p game.Player, n int) []game.Place {
	if p != game.Dracula {
		return nil
	}
	return tail(s.trail, n)
}

func (s *fakeState) MoveHistory(p game.Player) []game.Move {
	if p != game.Dracula {
		return nil
	}
	return append([]game.Move(nil), s.history...)
}

func (s *fakeState) Reachable(p game.Player, r game.Round, from game.Place, modes game.Transport) []game.Place {
	s.asked = append(s.asked, r)
	if s.adjacency != nil {
		return s.adjacency[from]
	}
	return game.StandardMap().Reachable(p, r, from, modes)
}

func tail[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	return append([]T(nil), items[len(items)-n:]...)
}

func loc(p game.Place) game.Move {
	return game.Location(p)
}
