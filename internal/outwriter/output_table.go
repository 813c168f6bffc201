package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/pepalyzer/internal/contract"
	"github.com/huangsam/pepalyzer/schema"
)

// writeReportTable renders the summary table view of the report.
func writeReportTable(w io.Writer, activities []schema.PepActivity, signals []schema.PepSignal, cfg *contract.Config, duration time.Duration) error {
	if len(activities) == 0 {
		_, err := fmt.Fprintln(w, "No PEP changes found in the specified time period.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"PEP", "Title", "Status", "Commits", "Files", "Top Signal"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	grouped := schema.GroupSignalsByPep(signals)
	titleWidth := getMaxTitleWidth(cfg)

	var data [][]string
	totalCommits := 0
	for _, activity := range activities {
		totalCommits += activity.CommitCount
		data = append(data, []string{
			strconv.Itoa(activity.Number),
			contract.TruncateText(schema.StringValue(activity.Metadata.Title, "-"), titleWidth),
			schema.StringValue(activity.Metadata.Status, "-"),
			strconv.Itoa(activity.CommitCount),
			strconv.Itoa(len(activity.Files)),
			formatTopSignal(grouped[activity.Number], cfg),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d PEPs (total commits: %d). Report generated in %v\n", len(activities), totalCommits, duration)
	return err
}

// formatTopSignal renders the heaviest signal for a PEP, or "-" when none.
func formatTopSignal(pepSignals []schema.PepSignal, cfg *contract.Config) string {
	if len(pepSignals) == 0 {
		return "-"
	}
	schema.SortSignalsForDisplay(pepSignals)
	top := pepSignals[0]
	label := contract.GetPlainWeightLabel(top.Weight)
	if cfg.UseColors {
		label = contract.GetColorWeightLabel(top.Weight)
	}
	return fmt.Sprintf("%s (%s)", top.Kind, label)
}

// writeSignalsTable renders the signals-only table view.
func writeSignalsTable(w io.Writer, signals []schema.PepSignal, cfg *contract.Config, duration time.Duration) error {
	if len(signals) == 0 {
		_, err := fmt.Fprintln(w, "No signals detected in the specified time period.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"PEP", "Kind", "Weight", "Label", "Description"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, s := range signals {
		label := contract.GetPlainWeightLabel(s.Weight)
		if cfg.UseColors {
			label = contract.GetColorWeightLabel(s.Weight)
		}
		data = append(data, []string{
			strconv.Itoa(s.Number),
			string(s.Kind),
			strconv.Itoa(s.Weight),
			label,
			s.Description,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d signals. Report generated in %v\n", len(signals), duration)
	return err
}
