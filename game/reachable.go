package game

// maxRailHops bounds how far a hunter can travel by rail in one turn.
const maxRailHops = 3

// RailHops is the number of rail hops a player may take in the given round.
// Dracula never travels by rail.
func RailHops(p Player, r Round) int {
	if !p.IsHunter() {
		return 0
	}
	return (int(r) + int(p)) % (maxRailHops + 1)
}

// Reachable returns every place p can end its move on when starting from
// `from` in round r, using only the enabled modes. The starting place is
// always included. The result is sorted by place.
func (m *Map) Reachable(p Player, r Round, from Place, modes Transport) []Place {
	if !from.IsReal() {
		return nil
	}

	seen := [NumRealPlaces]bool{}
	seen[from] = true

	for _, c := range m.adjacency[from] {
		if c.Mode == Rail || !modes.Has(c.Mode) {
			continue
		}
		if p == Dracula && c.To == Hospital {
			continue
		}
		seen[c.To] = true
	}

	if modes.Has(Rail) {
		m.addRail(seen[:], from, RailHops(p, r))
	}

	reachable := make([]Place, 0, len(m.adjacency[from])+1)
	for id, ok := range seen {
		if ok {
			reachable = append(reachable, Place(id))
		}
	}
	return reachable
}

// addRail marks places within hops rail connections of from.
func (m *Map) addRail(seen []bool, from Place, hops int) {
	frontier := []Place{from}
	visited := map[Place]bool{from: true}
	for depth := 0; depth < hops && len(frontier) > 0; depth++ {
		var next []Place
		for _, curr := range frontier {
			for _, c := range m.adjacency[curr] {
				if c.Mode != Rail || visited[c.To] {
					continue
				}
				visited[c.To] = true
				seen[c.To] = true
				next = append(next, c.To)
			}
		}
		frontier = next
	}
}
