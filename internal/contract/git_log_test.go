package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/pepalyzer/schema"
)

// TestParseChangeLog_TwoCommits covers the standard shape with a blank line
// between commits and verifies the chronological reversal.
func TestParseChangeLog_TwoCommits(t *testing.T) {
	out := []byte("COMMIT:def456|2025-06-02T10:00:00Z|Newer commit\n" +
		"M\tpep-0020.rst\n" +
		"\n" +
		"COMMIT:abc123|2025-06-01T09:00:00Z|Older commit\n" +
		"A\tpep-0099.rst\n" +
		"D\tpep-0042.txt\n")

	commits := ParseChangeLog(out)

	require.Len(t, commits, 2)
	assert.Equal(t, "abc123", commits[0].Hash, "oldest first after reversal")
	assert.Equal(t, "Older commit", commits[0].Message)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), commits[0].Timestamp)
	require.Len(t, commits[0].Files, 2)
	assert.Equal(t, schema.ChangedFile{Path: "pep-0099.rst", Kind: schema.AddedKind}, commits[0].Files[0])
	assert.Equal(t, schema.ChangedFile{Path: "pep-0042.txt", Kind: schema.DeletedKind}, commits[0].Files[1])

	assert.Equal(t, "def456", commits[1].Hash)
	require.Len(t, commits[1].Files, 1)
	assert.Equal(t, schema.ModifiedKind, commits[1].Files[0].Kind)
}

// TestParseChangeLog_RenameAndCopy verifies rename/copy entries resolve to
// the destination path.
func TestParseChangeLog_RenameAndCopy(t *testing.T) {
	out := []byte("COMMIT:abc123|2025-06-01T09:00:00Z|Rename PEP files\n" +
		"R100\tpep-0001.txt\tpep-0001.rst\n" +
		"C75\tpep-0002.rst\tpep-0003.rst\n")

	commits := ParseChangeLog(out)

	require.Len(t, commits, 1)
	require.Len(t, commits[0].Files, 2)
	assert.Equal(t, "pep-0001.rst", commits[0].Files[0].Path)
	assert.Equal(t, schema.ChangeKind("R"), commits[0].Files[0].Kind)
	assert.Equal(t, "pep-0003.rst", commits[0].Files[1].Path)
	assert.Equal(t, schema.ChangeKind("C"), commits[0].Files[1].Kind)
}

// TestParseChangeLog_PipeInSubject ensures only the first two separators
// split the commit header.
func TestParseChangeLog_PipeInSubject(t *testing.T) {
	out := []byte("COMMIT:abc123|2025-06-01T09:00:00Z|Fix a | b | c\n" +
		"M\tpep-0001.rst\n")

	commits := ParseChangeLog(out)

	require.Len(t, commits, 1)
	assert.Equal(t, "Fix a | b | c", commits[0].Message)
}

// TestParseChangeLog_MalformedLines ensures garbage lines and broken headers
// are skipped without dropping the surrounding commits.
func TestParseChangeLog_MalformedLines(t *testing.T) {
	out := []byte("noise before anything\n" +
		"M\torphan-status-line.rst\n" +
		"COMMIT:badheader\n" +
		"COMMIT:abc123|not-a-date|Subject\n" +
		"COMMIT:def456|2025-06-01T09:00:00Z|Good commit\n" +
		"not a status line\n" +
		"M\tpep-0001.rst\n")

	commits := ParseChangeLog(out)

	require.Len(t, commits, 1)
	assert.Equal(t, "def456", commits[0].Hash)
	require.Len(t, commits[0].Files, 1)
	assert.Equal(t, "pep-0001.rst", commits[0].Files[0].Path)
}

// TestParseChangeLog_Empty covers empty and whitespace-only output.
func TestParseChangeLog_Empty(t *testing.T) {
	assert.Empty(t, ParseChangeLog(nil))
	assert.Empty(t, ParseChangeLog([]byte("")))
	assert.Empty(t, ParseChangeLog([]byte("\n\n\n")))
}

// TestParseChangeLog_CRLF verifies carriage returns are stripped before
// parsing.
func TestParseChangeLog_CRLF(t *testing.T) {
	out := []byte("COMMIT:abc123|2025-06-01T09:00:00Z|Subject\r\n" +
		"M\tpep-0001.rst\r\n")

	commits := ParseChangeLog(out)

	require.Len(t, commits, 1)
	assert.Equal(t, "pep-0001.rst", commits[0].Files[0].Path)
}

// TestFetchCommits_ErrorRecovery verifies a git failure surfaces as an empty
// commit set, never an error.
func TestFetchCommits_ErrorRecovery(t *testing.T) {
	ctx := context.Background()
	cfg := &Config{RepoPath: "/repo", StartTime: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)}
	client := new(MockGitClient)
	client.
		On("GetChangeLog", ctx, cfg.RepoPath, cfg.StartTime, cfg.EndTime).
		Return([]byte(nil), errors.New("fatal: not a git repository")).
		Once()

	commits := FetchCommits(ctx, client, cfg)

	assert.Empty(t, commits)
	client.AssertExpectations(t)
}

// TestFetchCommits_Success verifies the happy path parses through.
func TestFetchCommits_Success(t *testing.T) {
	ctx := context.Background()
	cfg := &Config{RepoPath: "/repo", StartTime: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)}
	client := new(MockGitClient)
	client.
		On("GetChangeLog", ctx, cfg.RepoPath, cfg.StartTime, cfg.EndTime).
		Return([]byte("COMMIT:abc|2025-06-01T09:00:00Z|Subject\nM\tpep-0001.rst\n"), nil).
		Once()

	commits := FetchCommits(ctx, client, cfg)

	require.Len(t, commits, 1)
	assert.Equal(t, "abc", commits[0].Hash)
	client.AssertExpectations(t)
}
