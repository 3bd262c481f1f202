package game

// Player identifies a seat in turn order. The four hunters move first each
// round, Dracula last.
type Player int

const (
	LordGodalming Player = iota
	DrSeward
	VanHelsing
	MinaHarker
	Dracula
)

// NumPlayers is the number of seats in a round.
const NumPlayers = 5

// Round counts completed rounds, starting at 0.
type Round int

var playerNames = [NumPlayers]string{
	"Lord Godalming", "Dr. Seward", "Van Helsing", "Mina Harker", "Dracula",
}

var playerChars = [NumPlayers]byte{'G', 'S', 'H', 'M', 'D'}

// Hunters lists the hunters in turn order.
func Hunters() []Player {
	return []Player{LordGodalming, DrSeward, VanHelsing, MinaHarker}
}

func (p Player) IsHunter() bool {
	return p >= LordGodalming && p < Dracula
}

func (p Player) IsValid() bool {
	return p >= LordGodalming && p <= Dracula
}

func (p Player) String() string {
	if !p.IsValid() {
		return "Unknown"
	}
	return playerNames[p]
}

// playerFromChar maps the leading character of a play to its player.
func playerFromChar(c byte) (Player, bool) {
	for i, pc := range playerChars {
		if pc == c {
			return Player(i), true
		}
	}
	return 0, false
}
