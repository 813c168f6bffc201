package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/pepalyzer/schema"
)

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	return writeRows(csvWriter)
}

// writeCSVReport flattens the report into one row per PEP. Multi-value
// fields are joined with "; " so the row count matches the activity count.
func writeCSVReport(w io.Writer, activities []schema.PepActivity, signals []schema.PepSignal) error {
	header := []string{
		"pep_number",
		"title",
		"status",
		"pep_type",
		"created",
		"authors",
		"commit_count",
		"files",
		"commit_messages",
		"signals",
	}
	grouped := schema.GroupSignalsByPep(signals)

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, activity := range activities {
			pepSignals := grouped[activity.Number]
			schema.SortSignalsForDisplay(pepSignals)

			signalParts := make([]string, 0, len(pepSignals))
			for _, s := range pepSignals {
				signalParts = append(signalParts, fmt.Sprintf("%s:%d", s.Kind, s.Weight))
			}

			row := []string{
				strconv.Itoa(activity.Number),
				schema.StringValue(activity.Metadata.Title, ""),
				schema.StringValue(activity.Metadata.Status, ""),
				schema.StringValue(activity.Metadata.PepType, ""),
				schema.StringValue(activity.Metadata.Created, ""),
				strings.Join(activity.Metadata.Authors, "; "),
				strconv.Itoa(activity.CommitCount),
				strings.Join(activity.Files, "; "),
				strings.Join(activity.CommitMessages, "; "),
				strings.Join(signalParts, "; "),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeCSVSignals writes one row per detected signal.
func writeCSVSignals(w io.Writer, signals []schema.PepSignal) error {
	header := []string{"pep_number", "type", "description", "signal_value"}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range signals {
			row := []string{
				strconv.Itoa(s.Number),
				string(s.Kind),
				s.Description,
				strconv.Itoa(s.Weight),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
