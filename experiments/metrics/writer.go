package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type DecisionRecord struct {
	Turn        int // index of Dracula's play in the log
	Round       int
	Chosen      string
	Actual      string
	Source      string
	Status      string
	ActualLegal bool
	DecisionMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(dir string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfig(config AgentConfig) error {
	return w.write("agent_config.csv", []string{"seed", "fallback"}, [][]string{
		{strconv.FormatUint(config.Seed, 10), config.Fallback},
	})
}

func (w *Writer) WriteDecisionRecords(records []DecisionRecord) error {
	header := []string{"turn", "round", "chosen", "actual", "source", "status", "actual_legal", "legal", "duration"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Round),
			record.Chosen,
			record.Actual,
			record.Source,
			record.Status,
			strconv.FormatBool(record.ActualLegal),
			strconv.Itoa(record.Legal),
			record.Duration.String(),
		})
	}
	return w.write("decision_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
