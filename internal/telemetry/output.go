// Package telemetry writes per-run records of headless simulations as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/reef-runner/internal/runner"
)

// RunRecord is one CSV row describing a finished (or cut-off) run.
type RunRecord struct {
	Run       int     `csv:"run"`
	Character string  `csv:"character"`
	Preset    string  `csv:"preset"`
	Seed      int64   `csv:"seed"`
	Frames    int     `csv:"frames"`
	Score     int     `csv:"score"`
	Speed     float64 `csv:"final_speed"`
	Distance  float64 `csv:"distance"`
	Jumps     int     `csv:"jumps"`
	Spawned   int     `csv:"spawned"`
	Passed    int     `csv:"passed"`
	HitBy     string  `csv:"hit_by"`
}

// NewRunRecord builds a record from a run summary.
func NewRunRecord(run int, preset string, s runner.Summary) RunRecord {
	return RunRecord{
		Run:       run,
		Character: s.Character,
		Preset:    preset,
		Seed:      s.Seed,
		Frames:    s.Frames,
		Score:     s.Score,
		Speed:     s.Speed,
		Distance:  s.Distance,
		Jumps:     s.Jumps,
		Spawned:   s.Spawned,
		Passed:    s.Passed,
		HitBy:     s.HitBy,
	}
}

// Writer appends run records to a CSV stream. The header is written with
// the first record. A nil *Writer discards everything.
type Writer struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// Create opens path for writing, creating parent directories.
// Returns nil if path is empty (telemetry disabled).
func Create(path string) (*Writer, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("telemetry: creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating %s: %w", path, err)
	}
	return &Writer{w: f, closer: f}, nil
}

// NewWriter wraps an existing stream. Closing the Writer does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one record.
func (tw *Writer) Write(rec RunRecord) error {
	if tw == nil {
		return nil
	}

	records := []RunRecord{rec}
	if !tw.headerWritten {
		if err := gocsv.Marshal(records, tw.w); err != nil {
			return fmt.Errorf("telemetry: writing record: %w", err)
		}
		tw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, tw.w); err != nil {
		return fmt.Errorf("telemetry: writing record: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the Writer owns one.
func (tw *Writer) Close() error {
	if tw == nil || tw.closer == nil {
		return nil
	}
	return tw.closer.Close()
}

// ReadRecords parses a CSV stream written by Writer.
func ReadRecords(r io.Reader) ([]RunRecord, error) {
	var records []RunRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("telemetry: reading records: %w", err)
	}
	return records, nil
}
