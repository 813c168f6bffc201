package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/huangsam/pepalyzer/internal/contract"
	"github.com/huangsam/pepalyzer/schema"
)

// maxAbstractLines caps how much of the abstract the text report shows.
const maxAbstractLines = 8

// writeTextReport renders the line-oriented report: one block per PEP with
// header, link, abstract, files, commits and signals.
func writeTextReport(w io.Writer, activities []schema.PepActivity, signals []schema.PepSignal, cfg *contract.Config) error {
	if len(activities) == 0 {
		_, err := fmt.Fprintln(w, "No PEP changes found in the specified time period.")
		return err
	}

	grouped := schema.GroupSignalsByPep(signals)

	var lines []string
	for _, activity := range activities {
		lines = append(lines, formatActivityBlock(activity, grouped[activity.Number], cfg)...)
		lines = append(lines, "")
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// formatActivityBlock renders one PEP's portion of the text report.
func formatActivityBlock(activity schema.PepActivity, pepSignals []schema.PepSignal, cfg *contract.Config) []string {
	lines := []string{formatActivityHeader(activity)}

	lines = append(lines, "  "+schema.PepURL(activity.Number))

	if activity.Metadata.Abstract != nil {
		lines = append(lines, formatAbstract(*activity.Metadata.Abstract)...)
	}

	if len(activity.Files) > 0 {
		lines = append(lines, "  Files: "+strings.Join(activity.Files, ", "))
	}

	if len(activity.CommitMessages) > 0 {
		lines = append(lines, "  Commits:")
		for _, message := range activity.CommitMessages {
			lines = append(lines, "    - "+message)
		}
	}

	lines = append(lines, formatSignalLines(pepSignals, cfg)...)
	return lines
}

// formatActivityHeader builds a line like
// "PEP 815 — Title (Status) [3 commits]". Metadata pieces drop out silently
// when absent.
func formatActivityHeader(activity schema.PepActivity) string {
	header := fmt.Sprintf("PEP %d", activity.Number)
	if activity.Metadata.Title != nil {
		header += " — " + *activity.Metadata.Title
	}
	if activity.Metadata.Status != nil {
		header += fmt.Sprintf(" (%s)", *activity.Metadata.Status)
	}
	commitWord := "commits"
	if activity.CommitCount == 1 {
		commitWord = "commit"
	}
	header += fmt.Sprintf(" [%d %s]", activity.CommitCount, commitWord)
	return header
}

// formatAbstract indents the abstract and truncates long ones.
func formatAbstract(abstract string) []string {
	abstractLines := strings.Split(abstract, "\n")
	if len(abstractLines) > maxAbstractLines {
		abstractLines = append(abstractLines[:maxAbstractLines], "...")
	}

	lines := []string{"  Abstract: " + abstractLines[0]}
	for _, line := range abstractLines[1:] {
		lines = append(lines, "            "+line)
	}
	return lines
}

// formatSignalLines renders a PEP's signals sorted by descending weight.
func formatSignalLines(pepSignals []schema.PepSignal, cfg *contract.Config) []string {
	if len(pepSignals) == 0 {
		return nil
	}

	schema.SortSignalsForDisplay(pepSignals)

	lines := []string{"  Signals:"}
	for _, s := range pepSignals {
		lines = append(lines, "    - "+formatWeightTag(s.Weight, cfg)+" "+s.Description)
	}
	return lines
}

// formatWeightTag renders the "[50]" weight marker, colored by tier when
// colors are on.
func formatWeightTag(weight int, cfg *contract.Config) string {
	tag := fmt.Sprintf("[%d]", weight)
	if !cfg.UseColors {
		return tag
	}
	switch contract.GetPlainWeightLabel(weight) {
	case contract.HighValue:
		return contract.HighColor.Sprint(tag)
	case contract.MediumValue:
		return contract.MediumColor.Sprint(tag)
	default:
		return contract.LowColor.Sprint(tag)
	}
}

// writeTextSignals renders the signals-only report as one line per signal.
func writeTextSignals(w io.Writer, signals []schema.PepSignal, cfg *contract.Config) error {
	if len(signals) == 0 {
		_, err := fmt.Fprintln(w, "No signals detected in the specified time period.")
		return err
	}

	ordered := make([]schema.PepSignal, len(signals))
	copy(ordered, signals)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Number != ordered[j].Number {
			return ordered[i].Number < ordered[j].Number
		}
		if ordered[i].Weight != ordered[j].Weight {
			return ordered[i].Weight > ordered[j].Weight
		}
		return ordered[i].Kind < ordered[j].Kind
	})

	for _, s := range ordered {
		if _, err := fmt.Fprintf(w, "PEP %d %s %s: %s\n", s.Number, formatWeightTag(s.Weight, cfg), s.Kind, s.Description); err != nil {
			return err
		}
	}
	return nil
}
