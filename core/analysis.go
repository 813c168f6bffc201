package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/pepalyzer/core/agg"
	"github.com/huangsam/pepalyzer/core/signal"
	"github.com/huangsam/pepalyzer/internal/contract"
	"github.com/huangsam/pepalyzer/internal/outwriter"
	"github.com/huangsam/pepalyzer/schema"
)

// GetPepReportResults runs the full pipeline: fetch the commit log, aggregate
// per PEP, merge metadata, detect signals, then order and cap the result.
// The commit fetch degrades to an empty set on git failure, so the only
// error-free outcome of an unreadable repository is an empty report.
func GetPepReportResults(ctx context.Context, cfg *contract.Config, client contract.GitClient, reader contract.FileReader) ([]schema.PepActivity, []schema.PepSignal) {
	if !shouldSuppressHeader(ctx) {
		logReportHeader(cfg)
	}

	// --- 1. Commit history ---
	commits := contract.FetchCommits(ctx, client, cfg)

	// --- 2. Aggregation, with metadata when requested ---
	var metaReader contract.FileReader
	if cfg.WithMetadata {
		metaReader = reader
	}
	activities := agg.AggregateByPep(commits, cfg.RepoPath, metaReader)

	// --- 3. Ordering and limit ---
	agg.SortActivities(activities, cfg.Order)
	if cfg.ResultLimit > 0 && len(activities) > cfg.ResultLimit {
		activities = activities[:cfg.ResultLimit]
	}

	// --- 4. Signal detection over the retained activities ---
	var signals []schema.PepSignal
	if cfg.WithSignals {
		for _, activity := range activities {
			content, ok := agg.ReadPepDocument(activity.Files, cfg.RepoPath, reader)
			if !ok {
				continue
			}
			signals = append(signals, signal.Detect(content, activity.Number)...)
		}
	}

	return activities, signals
}

// ExecutePepReport runs the pipeline against the local git binary and
// renders the activity report in the configured output format.
func ExecutePepReport(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	activities, signals := GetPepReportResults(ctx, cfg, contract.NewLocalGitClient(), contract.NewLocalFileReader())
	ow := outwriter.NewOutWriter()
	return ow.WriteReport(activities, signals, cfg, time.Since(start))
}

// ExecuteSignalScan runs the same pipeline but renders only the signal set.
func ExecuteSignalScan(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	cfg = cfg.Clone()
	cfg.WithSignals = true
	_, signals := GetPepReportResults(ctx, cfg, contract.NewLocalGitClient(), contract.NewLocalFileReader())
	ow := outwriter.NewOutWriter()
	return ow.WriteSignals(signals, cfg, time.Since(start))
}

// logReportHeader writes a short progress banner to stderr, leaving stdout
// clean for the report itself.
func logReportHeader(cfg *contract.Config) {
	window := fmt.Sprintf("since %s", cfg.StartTime.Format(time.RFC3339))
	if !cfg.EndTime.IsZero() {
		window += fmt.Sprintf(" until %s", cfg.EndTime.Format(time.RFC3339))
	}
	_, _ = fmt.Fprintf(os.Stderr, "Scanning %s for PEP activity %s\n", cfg.RepoPath, window)
}
