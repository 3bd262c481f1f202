package game

import "fmt"

// Connection is one edge leaving a place.
type Connection struct {
	To   Place
	Mode Transport
}

// Map is the static board: every real place and its road, rail and boat
// connections. It never changes during a game.
type Map struct {
	adjacency   [NumRealPlaces][]Connection
	connections int
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{}
}

// AddConnection adds a bidirectional edge between two places.
func (m *Map) AddConnection(a, b Place, mode Transport) {
	if !containsConnection(m.adjacency[a], b, mode) {
		m.adjacency[a] = append(m.adjacency[a], Connection{To: b, Mode: mode})
		m.connections++
	}
	if !containsConnection(m.adjacency[b], a, mode) {
		m.adjacency[b] = append(m.adjacency[b], Connection{To: a, Mode: mode})
		m.connections++
	}
}

// Connections returns the edges leaving p.
func (m *Map) Connections(p Place) []Connection {
	if !p.IsReal() {
		return nil
	}
	return m.adjacency[p]
}

// NumConnections counts directed edges.
func (m *Map) NumConnections() int {
	return m.connections
}

// IsConnected reports whether a and b share an edge of the given mode.
func (m *Map) IsConnected(a, b Place, mode Transport) bool {
	if !a.IsReal() || !b.IsReal() {
		return false
	}
	return containsConnection(m.adjacency[a], b, mode)
}

func containsConnection(conns []Connection, to Place, mode Transport) bool {
	for _, c := range conns {
		if c.To == to && c.Mode == mode {
			return true
		}
	}
	return false
}

// CreateMap builds the board from the connection tables below.
func CreateMap() *Map {
	m := NewMap()
	for _, table := range []struct {
		mode  Transport
		pairs [][2]string
	}{
		{Road, roadConnections},
		{Rail, railConnections},
		{Boat, boatConnections},
	} {
		for _, pair := range table.pairs {
			a, ok := PlaceFromAbbrev(pair[0])
			if !ok {
				panic(fmt.Sprintf("unknown place %q in %s table", pair[0], table.mode))
			}
			b, ok := PlaceFromAbbrev(pair[1])
			if !ok {
				panic(fmt.Sprintf("unknown place %q in %s table", pair[1], table.mode))
			}
			m.AddConnection(a, b, table.mode)
		}
	}
	return m
}

var roadConnections = [][2]string{
	{"AL", "GR"}, {"AL", "MA"}, {"AL", "SR"},
	{"AM", "BU"}, {"AM", "CO"},
	{"AT", "VA"},
	{"BA", "SR"}, {"BA", "TO"},
	{"BI", "NP"}, {"BI", "RO"},
	{"BE", "BC"}, {"BE", "KL"}, {"BE", "SA"}, {"BE", "SJ"}, {"BE", "SO"}, {"BE", "SZ"},
	{"BR", "HA"}, {"BR", "LI"}, {"BR", "PR"},
	{"BO", "CF"}, {"BO", "NA"}, {"BO", "SR"}, {"BO", "TO"},
	{"BU", "CO"}, {"BU", "LE"}, {"BU", "PA"}, {"BU", "ST"},
	{"BC", "CN"}, {"BC", "GA"}, {"BC", "KL"}, {"BC", "SO"}, {"BC", "SZ"},
	{"BD", "KL"}, {"BD", "SZ"}, {"BD", "VI"}, {"BD", "ZA"},
	{"CA", "GR"}, {"CA", "LS"}, {"CA", "MA"},
	{"CD", "GA"}, {"CD", "KL"},
	{"CF", "GE"}, {"CF", "MR"}, {"CF", "NA"}, {"CF", "PA"}, {"CF", "TO"},
	{"CO", "FR"}, {"CO", "HA"}, {"CO", "LI"}, {"CO", "ST"},
	{"CN", "GA"}, {"CN", "VR"},
	{"DU", "GW"},
	{"ED", "MN"},
	{"FL", "GO"}, {"FL", "RO"}, {"FL", "VE"},
	{"FR", "LI"}, {"FR", "NU"}, {"FR", "ST"},
	{"GA", "KL"},
	{"GE", "MR"}, {"GE", "PA"}, {"GE", "ST"}, {"GE", "ZU"},
	{"GO", "MR"}, {"GO", "MI"}, {"GO", "VE"},
	{"GR", "MA"},
	{"HA", "LI"},
	{"KL", "SZ"},
	{"LE", "NA"}, {"LE", "PA"},
	{"LI", "NU"},
	{"LS", "MA"}, {"LS", "SN"},
	{"LV", "MN"}, {"LV", "SW"},
	{"LO", "MN"}, {"LO", "PL"}, {"LO", "SW"},
	{"MA", "SN"}, {"MA", "SR"},
	{"MR", "MI"}, {"MR", "TO"}, {"MR", "ZU"},
	{"MI", "MU"}, {"MI", "VE"}, {"MI", "ZU"},
	{"MU", "NU"}, {"MU", "ST"}, {"MU", "VE"}, {"MU", "VI"}, {"MU", "ZA"}, {"MU", "ZU"},
	{"NA", "PA"},
	{"NP", "RO"},
	{"NU", "PR"}, {"NU", "ST"},
	{"PA", "ST"},
	{"PR", "VI"},
	{"SA", "SO"}, {"SA", "VA"},
	{"SN", "SR"},
	{"SR", "TO"},
	{"SJ", "SO"}, {"SJ", "VA"}, {"SJ", "ZA"},
	{"SO", "VR"}, {"SO", "VA"},
	{"ST", "ZU"},
	{"SZ", "ZA"},
	{"VE", "VI"},
	{"VI", "ZA"},
}

var railConnections = [][2]string{
	{"AL", "BA"}, {"AL", "MA"},
	{"BA", "SR"},
	{"BI", "NP"},
	{"BE", "SO"}, {"BE", "SZ"},
	{"BR", "HA"}, {"BR", "LI"}, {"BR", "PR"},
	{"BO", "PA"}, {"BO", "SR"},
	{"BU", "CO"}, {"BU", "PA"},
	{"BC", "CN"}, {"BC", "GA"}, {"BC", "SZ"},
	{"BD", "SZ"}, {"BD", "VI"},
	{"CO", "FR"},
	{"ED", "MN"},
	{"FL", "MI"}, {"FL", "RO"},
	{"FR", "LI"}, {"FR", "ST"},
	{"GE", "MI"},
	{"GO", "MI"},
	{"LE", "PA"},
	{"LI", "NU"},
	{"LS", "MA"},
	{"LV", "MN"},
	{"LO", "MN"}, {"LO", "SW"},
	{"MA", "SN"}, {"MA", "SR"},
	{"MR", "PA"},
	{"MI", "ZU"},
	{"MU", "NU"},
	{"NP", "RO"},
	{"PR", "VI"},
	{"SA", "SO"},
	{"SO", "VR"},
	{"ST", "ZU"},
	{"VE", "VI"},
}

var boatConnections = [][2]string{
	{"AS", "BI"}, {"AS", "IO"}, {"AS", "VE"},
	{"AO", "BB"}, {"AO", "CA"}, {"AO", "EC"}, {"AO", "GW"}, {"AO", "IR"}, {"AO", "LS"}, {"AO", "MS"}, {"AO", "NS"},
	{"BB", "BO"}, {"BB", "NA"}, {"BB", "SN"},
	{"BS", "CN"}, {"BS", "IO"}, {"BS", "VR"},
	{"EC", "LE"}, {"EC", "LO"}, {"EC", "NS"}, {"EC", "PL"},
	{"IO", "AT"}, {"IO", "SA"}, {"IO", "TS"}, {"IO", "VA"},
	{"IR", "DU"}, {"IR", "LV"}, {"IR", "SW"},
	{"MS", "AL"}, {"MS", "BA"}, {"MS", "CG"}, {"MS", "MR"}, {"MS", "TS"},
	{"NS", "AM"}, {"NS", "ED"}, {"NS", "HA"},
	{"TS", "CG"}, {"TS", "GO"}, {"TS", "NP"}, {"TS", "RO"},
}
