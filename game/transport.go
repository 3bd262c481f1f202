package game

import "strings"

// Transport is a set of travel modes.
type Transport uint8

const (
	Road Transport = 1 << iota
	Rail
	Boat

	AnyTransport = Road | Rail | Boat
	NoTransport  Transport = 0
)

// Has reports whether every mode in other is enabled in t.
func (t Transport) Has(other Transport) bool {
	return t&other == other && other != 0
}

// Without returns t with the modes in other removed.
func (t Transport) Without(other Transport) Transport {
	return t &^ other
}

func (t Transport) String() string {
	if t == NoTransport {
		return "none"
	}
	var modes []string
	if t.Has(Road) {
		modes = append(modes, "road")
	}
	if t.Has(Rail) {
		modes = append(modes, "rail")
	}
	if t.Has(Boat) {
		modes = append(modes, "boat")
	}
	return strings.Join(modes, "|")
}
