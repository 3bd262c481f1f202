package experiments

import (
	"hunt/agent"
	"hunt/experiments/metrics"
	"hunt/meta"

	"github.com/rs/zerolog/log"
)

// SweepResult summarises one replay of a log.
type SweepResult struct {
	Seed      uint64
	Fallback  meta.Fallback
	Decisions int
	Matched   int // decisions equal to the move in the log
	Fallbacks int // decisions where the router had nothing usable
}

// RunSeedSweep replays the same log once per seed, so fallback behaviour can
// be compared across seeds.
func RunSeedSweep(plays string, fallback meta.Fallback, seeds []uint64) ([]SweepResult, error) {
	log.Info().Msgf("starting seed sweep over %d seeds...", len(seeds))

	results := make([]SweepResult, 0, len(seeds))
	for i, seed := range seeds {
		d := agent.New(agent.WithSeed(seed), agent.WithFallback(fallback))
		records, err := Replay(plays, d, metrics.NewDummyCollector())
		if err != nil {
			return nil, err
		}

		result := SweepResult{Seed: seed, Fallback: fallback, Decisions: len(records)}
		for _, r := range records {
			if r.Chosen == r.Actual {
				result.Matched++
			}
			if r.Source == agent.SourceFallback.String() {
				result.Fallbacks++
			}
		}
		results = append(results, result)

		log.Info().Msgf("completed seed %d of %d: %d of %d matched", i+1, len(seeds), result.Matched, result.Decisions)
	}

	log.Info().Msg("completed seed sweep")
	return results, nil
}
