// Package parquet exports PEP report data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/pepalyzer/schema"
)

// ActivityRow is the columnar shape of one PEP activity. Optional metadata
// fields stay nullable so absence survives the export.
type ActivityRow struct {
	// PepNumber is the PEP this row describes
	PepNumber int32 `parquet:"pep_number,snappy"`

	// Title from the document header (nullable)
	Title *string `parquet:"title,optional,snappy"`

	// Status from the document header (nullable)
	Status *string `parquet:"status,optional,snappy"`

	// PepType from the document header (nullable)
	PepType *string `parquet:"pep_type,optional,snappy"`

	// Created from the document header (nullable)
	Created *string `parquet:"created,optional,snappy"`

	// Authors joined with "; " (empty when no Author header)
	Authors string `parquet:"authors,snappy"`

	// Abstract lead paragraph (nullable)
	Abstract *string `parquet:"abstract,optional,snappy"`

	// CommitCount is the number of distinct commits touching this PEP
	CommitCount int32 `parquet:"commit_count,snappy"`

	// Files joined with "; ", sorted and deduplicated
	Files string `parquet:"files,snappy"`

	// CommitMessages joined with "; ", oldest first
	CommitMessages string `parquet:"commit_messages,snappy"`

	// SignalCount is the number of signals detected for this PEP
	SignalCount int32 `parquet:"signal_count,snappy"`

	// TopSignal is the heaviest signal kind (nullable)
	TopSignal *string `parquet:"top_signal,optional,snappy"`
}

// SignalRow is the columnar shape of one detected signal.
type SignalRow struct {
	PepNumber   int32  `parquet:"pep_number,snappy"`
	Kind        string `parquet:"type,snappy"`
	Description string `parquet:"description,snappy"`
	Weight      int32  `parquet:"signal_value,snappy"`
}

// WriteReport writes the activity report to a Parquet file.
func WriteReport(activities []schema.PepActivity, signals []schema.PepSignal, outputPath string) error {
	grouped := schema.GroupSignalsByPep(signals)

	rows := make([]ActivityRow, 0, len(activities))
	for _, activity := range activities {
		pepSignals := grouped[activity.Number]
		schema.SortSignalsForDisplay(pepSignals)

		row := ActivityRow{
			PepNumber:      int32(activity.Number),
			Title:          activity.Metadata.Title,
			Status:         activity.Metadata.Status,
			PepType:        activity.Metadata.PepType,
			Created:        activity.Metadata.Created,
			Authors:        strings.Join(activity.Metadata.Authors, "; "),
			Abstract:       activity.Metadata.Abstract,
			CommitCount:    int32(activity.CommitCount),
			Files:          strings.Join(activity.Files, "; "),
			CommitMessages: strings.Join(activity.CommitMessages, "; "),
			SignalCount:    int32(len(pepSignals)),
		}
		if len(pepSignals) > 0 {
			kind := string(pepSignals[0].Kind)
			row.TopSignal = &kind
		}
		rows = append(rows, row)
	}

	return writeRows(rows, outputPath)
}

// WriteSignals writes the signals-only report to a Parquet file.
func WriteSignals(signals []schema.PepSignal, outputPath string) error {
	rows := make([]SignalRow, 0, len(signals))
	for _, s := range signals {
		rows = append(rows, SignalRow{
			PepNumber:   int32(s.Number),
			Kind:        string(s.Kind),
			Description: s.Description,
			Weight:      int32(s.Weight),
		})
	}
	return writeRows(rows, outputPath)
}

// writeRows writes any row type to a Parquet file using struct schema
// inference from the parquet tags.
func writeRows[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
