package experiments

import (
	"encoding/csv"
	"hunt/agent"
	"hunt/experiments/metrics"
	"hunt/game"
	"hunt/meta"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rounds builds a log in which the hunters stay in Lisbon and Dracula makes
// the given plays, one per round.
func rounds(draculaPlays ...string) string {
	var plays []string
	for _, d := range draculaPlays {
		plays = append(plays, "GLS....", "SLS....", "HLS....", "MLS....", d)
	}
	return strings.Join(plays, " ")
}

var approach = rounds("DBO....", "DSR....", "DMA....")

func TestReplay(t *testing.T) {
	t.Run("one record per dracula turn", func(t *testing.T) {
		records, err := Replay(approach, agent.New(), metrics.NewCollector())

		require.NoError(t, err, "Replay should succeed")
		require.Len(t, records, 3, "Three Dracula turns")

		first := records[0]
		require.Equal(t, 4, first.Turn, "Dracula plays fifth")
		require.Equal(t, agent.SourceNone.String(), first.Source, "No decision before the first move")
		require.Equal(t, "BO", first.Actual, "Actual move comes from the log")
		require.False(t, first.ActualLegal, "Nothing is legal without a location")

		for _, r := range records[1:] {
			require.Equal(t, agent.SourceHotspot.String(), r.Source, "Turn %d follows the road to Madrid", r.Turn)
			require.Equal(t, r.Actual, r.Chosen, "Turn %d matches the log", r.Turn)
			require.True(t, r.ActualLegal, "Turn %d was legal", r.Turn)
			require.Positive(t, r.Legal, "Turn %d had legal moves", r.Turn)
		}
		require.Equal(t, []int{0, 1, 2}, []int{records[0].Round, records[1].Round, records[2].Round},
			"Rounds are taken from the rebuilt state")
	})

	t.Run("dummy collector", func(t *testing.T) {
		records, err := Replay(approach, agent.New(), metrics.NewDummyCollector())

		require.NoError(t, err, "Replay should succeed")
		for _, r := range records {
			require.Zero(t, r.Legal, "Dummy collector records nothing")
		}
	})

	t.Run("broken log", func(t *testing.T) {
		_, err := Replay("GLS.... DMA....", agent.New(), metrics.NewDummyCollector())

		require.ErrorIs(t, err, game.ErrOutOfTurn, "Parse error should be wrapped")
	})
}

func TestRunReplay(t *testing.T) {
	cfg := meta.DefaultConfig()
	cfg.MetricsDir = t.TempDir()

	err := RunReplay(approach, cfg)
	require.NoError(t, err, "Replay experiment should succeed")

	matches, err := filepath.Glob(filepath.Join(cfg.MetricsDir, "*", "decision_records.csv"))
	require.NoError(t, err, "Glob should succeed")
	require.Len(t, matches, 1, "One records file should be written")

	f, err := os.Open(matches[0])
	require.NoError(t, err, "Records file should open")
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err, "Records file should be valid CSV")
	require.Len(t, rows, 4, "Header plus one row per decision")
	require.Equal(t, "turn", rows[0][0], "Header comes first")
}

func TestRunSeedSweep(t *testing.T) {
	results, err := RunSeedSweep(approach, meta.FallbackRandom, []uint64{1, 2})

	require.NoError(t, err, "Sweep should succeed")
	require.Len(t, results, 2, "One result per seed")
	for _, r := range results {
		require.Equal(t, 3, r.Decisions, "Seed %d replays every Dracula turn", r.Seed)
		require.Equal(t, 2, r.Matched, "Seed %d follows the router on both located turns", r.Seed)
		require.Zero(t, r.Fallbacks, "Seed %d never needs the fallback", r.Seed)
	}
}
