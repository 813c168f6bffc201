// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
	"time"
)

// ErrNoContent is a generic unreadable-file error for FileReader doubles.
var ErrNoContent = errors.New("no readable content")

// GitClient defines the Git operations the report pipeline needs.
// This allows the core logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git
	// repository containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetChangeLog returns the raw commit log output with per-commit file
	// status lines for the given time window. A zero bound means unbounded.
	GetChangeLog(ctx context.Context, repoPath string, since, until time.Time) ([]byte, error)
}

// FileReader reads the current content of a repository file. Implementations
// return an error for any unreadable file (missing, permission, not valid
// text); callers treat every error identically as "no content".
type FileReader interface {
	ReadFile(repoPath, relPath string) (string, error)
}
