package contract

import (
	"context"
	"strings"
	"time"

	"github.com/huangsam/pepalyzer/schema"
)

// commitHeaderPrefix marks commit header lines in the change log output.
const commitHeaderPrefix = "COMMIT:"

// FetchCommits runs the change log for the configured window and parses it
// into chronological commit records (oldest first). Any git failure is
// recovered here by returning an empty slice: the aggregator never sees an
// error from the log retrieval path.
func FetchCommits(ctx context.Context, client GitClient, cfg *Config) []schema.CommitRecord {
	out, err := client.GetChangeLog(ctx, cfg.RepoPath, cfg.StartTime, cfg.EndTime)
	if err != nil {
		LogWarn("Could not read git history", err)
		return nil
	}
	return ParseChangeLog(out)
}

// ParseChangeLog parses raw `git log --name-status` output into commit
// records. Git emits newest first; the result is reversed so downstream
// message ordering is chronological. Lines that fit neither the commit
// header nor the file status shape are skipped.
func ParseChangeLog(out []byte) []schema.CommitRecord {
	var commits []schema.CommitRecord
	var current *schema.CommitRecord

	save := func() {
		if current != nil {
			commits = append(commits, *current)
			current = nil
		}
	}

	for _, raw := range strings.Split(string(out), "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, commitHeaderPrefix) {
			save()
			current = parseCommitHeader(strings.TrimPrefix(line, commitHeaderPrefix))
			continue
		}

		if current == nil {
			continue
		}
		if changed, ok := parseFileStatusLine(line); ok {
			current.Files = append(current.Files, changed)
		}
	}
	save()

	// Newest-first to oldest-first.
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
	return commits
}

// parseCommitHeader reads "hash|iso-date|subject". The subject may contain
// pipes, so only the first two separators split.
func parseCommitHeader(header string) *schema.CommitRecord {
	parts := strings.SplitN(header, "|", 3)
	if len(parts) < 2 {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		return nil
	}
	record := &schema.CommitRecord{Hash: parts[0], Timestamp: ts}
	if len(parts) == 3 {
		record.Message = parts[2]
	}
	return record
}

// parseFileStatusLine reads a --name-status line such as "M\tpep-0001.rst"
// or "R100\told.rst\tnew.rst". Rename and copy entries resolve to the
// destination path so renamed PEP files keep aggregating under their new
// name; the change kind is the status letter.
func parseFileStatusLine(line string) (schema.ChangedFile, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) < 2 || parts[0] == "" {
		return schema.ChangedFile{}, false
	}

	status := parts[0]
	path := parts[1]
	if (status[0] == 'R' || status[0] == 'C') && len(parts) >= 3 {
		path = parts[2]
	}

	return schema.ChangedFile{
		Path: path,
		Kind: schema.ChangeKind(status[:1]),
	}, true
}
