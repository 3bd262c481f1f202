package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts legal moves", func(t *testing.T) {
		c := NewCollector()

		c.Start()
		c.AddLegal(3)
		c.AddLegal(2)
		metric := c.Complete()

		require.Equal(t, 5, metric.Legal, "Legal moves should accumulate")
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0), "Duration is measured from Start")
	})

	t.Run("start resets", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddLegal(3)

		c.Start()

		require.Zero(t, c.Complete().Legal, "Start should reset the count")
	})

	t.Run("dummy", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddLegal(3)

		require.Equal(t, DecisionMetric{}, c.Complete(), "Dummy collector records nothing")
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err, "Writer should create its directory")

	records := []DecisionRecord{
		{Turn: 9, Round: 1, Chosen: "SR", Actual: "SR", Source: "hotspot", Status: "approaching", ActualLegal: true,
			DecisionMetric: DecisionMetric{Legal: 6, Duration: time.Millisecond}},
	}
	require.NoError(t, w.WriteDecisionRecords(records), "Records should be written")
	require.NoError(t, w.WriteAgentConfig(AgentConfig{Seed: 7, Fallback: "first"}), "Config should be written")

	rows := readCSV(t, filepath.Join(w.Dir(), "decision_records.csv"))
	require.Equal(t, []string{"turn", "round", "chosen", "actual", "source", "status", "actual_legal", "legal", "duration"},
		rows[0], "Header row")
	require.Equal(t, []string{"9", "1", "SR", "SR", "hotspot", "approaching", "true", "6", "1ms"}, rows[1], "Record row")

	rows = readCSV(t, filepath.Join(w.Dir(), "agent_config.csv"))
	require.Equal(t, []string{"7", "first"}, rows[1], "Config row")
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err, "%s should exist", path)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err, "%s should be valid CSV", path)
	return rows
}
