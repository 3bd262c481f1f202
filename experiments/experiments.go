package experiments

import (
	"fmt"
	"hunt/agent"
	"hunt/dracula"
	"hunt/experiments/metrics"
	"hunt/game"
	"hunt/meta"
	"strings"

	"github.com/rs/zerolog/log"
)

// Replay asks d for a decision at every Dracula turn of the log, using only
// the plays made before that turn, and records it next to the move Dracula
// actually made.
func Replay(plays string, d *agent.Dracula, c metrics.Collector) ([]metrics.DecisionRecord, error) {
	// Reject a broken log up front rather than part way through
	if _, err := game.NewView(plays); err != nil {
		return nil, fmt.Errorf("failed to parse plays: %w", err)
	}

	all := game.SplitPlays(plays)
	records := []metrics.DecisionRecord{}
	for i, play := range all {
		if game.Player(i%game.NumPlayers) != game.Dracula {
			continue
		}

		state, err := game.NewView(strings.Join(all[:i], " "))
		if err != nil {
			return nil, fmt.Errorf("failed to rebuild turn %d: %w", i, err)
		}

		c.Start()
		decision := d.Decide(state)
		c.AddLegal(len(decision.Legal))
		metric := c.Complete()

		actual, _ := game.MoveFromAbbrev(play[1:3])
		records = append(records, metrics.DecisionRecord{
			Turn:           i,
			Round:          int(decision.Round),
			Chosen:         decision.Move.String(),
			Actual:         actual.String(),
			Source:         decision.Source.String(),
			Status:         decision.Step.Status.String(),
			ActualLegal:    dracula.NewView(state).IsLegal(actual),
			DecisionMetric: metric,
		})
	}
	return records, nil
}

// RunReplay replays a log with the agent described by cfg and stores the
// records under cfg.MetricsDir.
func RunReplay(plays string, cfg meta.Config) error {
	log.Info().Msg("starting replay experiment...")

	d := agent.New(agent.WithSeed(cfg.Seed), agent.WithFallback(cfg.Fallback))
	records, err := Replay(plays, d, metrics.NewCollector())
	if err != nil {
		return err
	}

	agreed := 0
	for _, r := range records {
		if r.Chosen == r.Actual {
			agreed++
		}
	}
	log.Info().Msgf("completed replay of %d decisions, %d matched the log", len(records), agreed)

	writer, err := metrics.NewWriter(cfg.MetricsDir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfig(metrics.AgentConfig{Seed: cfg.Seed, Fallback: string(cfg.Fallback)})
	if err != nil {
		return fmt.Errorf("failed to store agent config: %w", err)
	}
	log.Info().Msg("stored agent config")

	err = writer.WriteDecisionRecords(records)
	if err != nil {
		return fmt.Errorf("failed to write decision records: %w", err)
	}
	log.Info().Msgf("stored decision records in %s", writer.Dir())
	return nil
}
