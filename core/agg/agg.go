// Package agg has aggregation logic for PEP repository activity.
package agg

import (
	"sort"
	"strings"

	"github.com/huangsam/pepalyzer/core/docmeta"
	"github.com/huangsam/pepalyzer/core/pepnum"
	"github.com/huangsam/pepalyzer/internal/contract"
	"github.com/huangsam/pepalyzer/schema"
)

// metadataExtensions is the priority order for choosing which of a PEP's
// files to read for metadata. Within each extension, files are tried in
// path-sorted order; the first readable, non-empty content wins.
var metadataExtensions = []string{".rst", ".md", ".txt"}

// accumulator collects per-PEP facts across the commit pass.
type accumulator struct {
	commitCount int
	files       map[string]struct{}
	messages    []string
}

// AggregateByPep converts a chronologically ordered commit sequence into one
// PepActivity per PEP number observed, sorted by ascending number. Files that
// map to no PEP number are dropped. A commit touching several files of the
// same PEP counts once for that PEP. When reader is non-nil, each activity is
// enriched with metadata parsed from the PEP's current document.
func AggregateByPep(commits []schema.CommitRecord, repoPath string, reader contract.FileReader) []schema.PepActivity {
	byPep := make(map[int]*accumulator)

	for _, commit := range commits {
		// First pass over the commit: which PEPs does it touch?
		pepsInCommit := make(map[int]struct{})
		for _, changed := range commit.Files {
			number, ok := pepnum.Extract(changed.Path)
			if !ok {
				continue
			}
			pepsInCommit[number] = struct{}{}

			acc := byPep[number]
			if acc == nil {
				acc = &accumulator{files: make(map[string]struct{})}
				byPep[number] = acc
			}
			acc.files[changed.Path] = struct{}{}
		}

		// Second pass: one count and one message per touched PEP, so a
		// commit never double-counts against a single PEP.
		for number := range pepsInCommit {
			acc := byPep[number]
			acc.commitCount++
			acc.messages = append(acc.messages, commit.Message)
		}
	}

	activities := make([]schema.PepActivity, 0, len(byPep))
	for number, acc := range byPep {
		files := make([]string, 0, len(acc.files))
		for f := range acc.files {
			files = append(files, f)
		}
		sort.Strings(files)

		activity := schema.PepActivity{
			Number:         number,
			CommitCount:    acc.commitCount,
			Files:          files,
			CommitMessages: acc.messages,
		}
		if reader != nil {
			if content, ok := ReadPepDocument(files, repoPath, reader); ok {
				activity.Metadata = docmeta.Extract(content)
			}
		}
		activities = append(activities, activity)
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Number < activities[j].Number
	})
	return activities
}

// ReadPepDocument picks the main document among a PEP's files using the
// extension priority order and returns its current content. Unreadable or
// empty candidates are skipped in place; false means no candidate yielded
// content, which callers treat as "no metadata", not as an error.
func ReadPepDocument(files []string, repoPath string, reader contract.FileReader) (string, bool) {
	for _, ext := range metadataExtensions {
		for _, f := range files {
			if !strings.HasSuffix(f, ext) {
				continue
			}
			content, err := reader.ReadFile(repoPath, f)
			if err != nil || content == "" {
				continue
			}
			return content, true
		}
	}
	return "", false
}

// SortActivities orders activities for rendering. NumberOrder is ascending
// PEP number; ActivityOrder is descending commit count with ties broken by
// ascending number.
func SortActivities(activities []schema.PepActivity, order schema.OrderMode) {
	switch order {
	case schema.ActivityOrder:
		sort.SliceStable(activities, func(i, j int) bool {
			if activities[i].CommitCount != activities[j].CommitCount {
				return activities[i].CommitCount > activities[j].CommitCount
			}
			return activities[i].Number < activities[j].Number
		})
	default:
		sort.SliceStable(activities, func(i, j int) bool {
			return activities[i].Number < activities[j].Number
		})
	}
}
