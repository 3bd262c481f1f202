// meta/meta.go
package meta

// TrailSize is the number of Dracula moves that stay on the board, including
// the current one. Movement restrictions look at the TrailSize-1 before it.
const TrailSize = 6

// GameStartScore is the score at the start of a game.
const GameStartScore = 366

// ScoreLossDraculaTurn is deducted every time Dracula finishes a turn.
const ScoreLossDraculaTurn = 1

// ScoreLossHunterHospital is deducted when a hunter is sent to the hospital.
const ScoreLossHunterHospital = 6

// ScoreLossVampireMatures is deducted when a vampire matures.
const ScoreLossVampireMatures = 13

const (
	GameStartHunterLifePoints = 9
	GameStartBloodPoints      = 40
)

const (
	LifeLossTrapEncounter    = 2
	LifeLossDraculaEncounter = 4
	LifeLossHunterEncounter  = 10
	LifeLossSea              = 2
	LifeGainCastleDracula    = 10
	LifeGainRest             = 3
)

// HotspotSequences is the number of teleport cycles the router rotates through.
const HotspotSequences = 3
