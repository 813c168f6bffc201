// Package schema has models and constants for all parts of pepalyzer.
package schema

import "time"

// ChangedFile represents a single file touched by a Git commit.
type ChangedFile struct {
	Path string     // Relative path to the file in the repository
	Kind ChangeKind // Added, modified or deleted
}

// CommitRecord represents a single Git commit and the files it touched.
// Records are immutable once parsed from the git log output.
type CommitRecord struct {
	Hash      string        // Commit hash (short or full)
	Timestamp time.Time     // Author timestamp
	Message   string        // Commit subject line
	Files     []ChangedFile // Files changed in this commit, in log order
}

// PepMetadata holds the structured fields extracted from a PEP document's
// header block plus the lead paragraph. Every field is optional: a nil
// pointer means the field was not present in the document, which is a normal
// outcome and must stay distinguishable from an empty string.
type PepMetadata struct {
	Title    *string  `json:"title"`
	Status   *string  `json:"status"`
	PepType  *string  `json:"pep_type"`
	Created  *string  `json:"created"`
	Authors  []string `json:"authors"`
	Abstract *string  `json:"abstract"`
}

// PepActivity aggregates all observed changes for one PEP number within the
// analysis window. Built once by the aggregator and never mutated after.
type PepActivity struct {
	Number         int         // PEP number (e.g. 815)
	CommitCount    int         // Distinct commits touching this PEP
	Files          []string    // Sorted, deduplicated file paths
	CommitMessages []string    // One message per commit, oldest first
	Metadata       PepMetadata // Extracted from the current document snapshot
}

// PepSignal is a rule-detected editorial indicator for a PEP.
// Signals describe, they do not judge; the weight ranks them for display.
type PepSignal struct {
	Number      int        `json:"pep_number"`
	Kind        SignalKind `json:"type"`
	Description string     `json:"description"`
	Weight      int        `json:"signal_value"`
}
