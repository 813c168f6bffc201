// Package outwriter has output and writer logic for PEP reports.
package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/pepalyzer/internal/contract"
	"github.com/huangsam/pepalyzer/internal/parquet"
	"github.com/huangsam/pepalyzer/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport renders the activity report, dispatching on the configured
// output format.
func (ow *OutWriter) WriteReport(activities []schema.PepActivity, signals []schema.PepSignal, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONReport(w, activities, signals)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVReport(w, activities, signals)
		}, "Wrote CSV")
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, activities, signals, cfg, duration)
		}, "Wrote table")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return parquet.WriteReport(activities, signals, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTextReport(w, activities, signals, cfg)
		}, "Wrote report")
	}
}

// WriteSignals renders only the detected signal set.
func (ow *OutWriter) WriteSignals(signals []schema.PepSignal, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONSignals(w, signals)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSignals(w, signals)
		}, "Wrote CSV")
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSignalsTable(w, signals, cfg, duration)
		}, "Wrote table")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return parquet.WriteSignals(signals, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTextSignals(w, signals, cfg)
		}, "Wrote report")
	}
}
