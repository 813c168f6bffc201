package outwriter

import (
	"io"

	"github.com/huangsam/pepalyzer/schema"
)

// ReportSignal is the wire shape of one signal within an activity element.
type ReportSignal struct {
	Kind        schema.SignalKind `json:"type"`
	Description string            `json:"description"`
	Weight      int               `json:"signal_value"`
}

// ReportRow is the wire shape of one report element. Absent metadata
// fields render as null; list fields always render as arrays.
type ReportRow struct {
	PepNumber      int            `json:"pep_number"`
	Title          *string        `json:"title"`
	Status         *string        `json:"status"`
	Abstract       *string        `json:"abstract"`
	Authors        []string       `json:"authors"`
	PepType        *string        `json:"pep_type"`
	Created        *string        `json:"created"`
	CommitCount    int            `json:"commit_count"`
	CommitMessages []string       `json:"commit_messages"`
	Files          []string       `json:"files"`
	Signals        []ReportSignal `json:"signals"`
}

// BuildReportRows converts activities and their signals into wire rows.
func BuildReportRows(activities []schema.PepActivity, signals []schema.PepSignal) []ReportRow {
	grouped := schema.GroupSignalsByPep(signals)

	rows := make([]ReportRow, 0, len(activities))
	for _, activity := range activities {
		pepSignals := grouped[activity.Number]
		schema.SortSignalsForDisplay(pepSignals)

		signalRows := make([]ReportSignal, 0, len(pepSignals))
		for _, s := range pepSignals {
			signalRows = append(signalRows, ReportSignal{
				Kind:        s.Kind,
				Description: s.Description,
				Weight:      s.Weight,
			})
		}

		rows = append(rows, ReportRow{
			PepNumber:      activity.Number,
			Title:          activity.Metadata.Title,
			Status:         activity.Metadata.Status,
			Abstract:       activity.Metadata.Abstract,
			Authors:        emptyIfNil(activity.Metadata.Authors),
			PepType:        activity.Metadata.PepType,
			Created:        activity.Metadata.Created,
			CommitCount:    activity.CommitCount,
			CommitMessages: emptyIfNil(activity.CommitMessages),
			Files:          emptyIfNil(activity.Files),
			Signals:        signalRows,
		})
	}
	return rows
}

// emptyIfNil keeps list fields rendering as [] instead of null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// writeJSONReport writes the full report as a JSON array.
func writeJSONReport(w io.Writer, activities []schema.PepActivity, signals []schema.PepSignal) error {
	return writeJSON(w, BuildReportRows(activities, signals))
}

// writeJSONSignals writes the signals-only report as a JSON array.
func writeJSONSignals(w io.Writer, signals []schema.PepSignal) error {
	if signals == nil {
		signals = []schema.PepSignal{}
	}
	return writeJSON(w, signals)
}
