package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/pepalyzer/internal/contract"
	"github.com/huangsam/pepalyzer/schema"
)

func strPtr(s string) *string { return &s }

// sampleActivity builds a fully populated activity for rendering tests.
func sampleActivity() schema.PepActivity {
	return schema.PepActivity{
		Number:         815,
		CommitCount:    2,
		Files:          []string{"pep-0815.rst"},
		CommitMessages: []string{"First change", "Second change"},
		Metadata: schema.PepMetadata{
			Title:    strPtr("Example Proposal"),
			Status:   strPtr("Draft"),
			Abstract: strPtr("One line abstract."),
		},
	}
}

// plainConfig disables colors so assertions see raw text.
func plainConfig() *contract.Config {
	return &contract.Config{UseColors: false}
}

// TestWriteTextReport_Empty verifies the no-results message.
func TestWriteTextReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := writeTextReport(&buf, nil, nil, plainConfig())

	require.NoError(t, err)
	assert.Equal(t, "No PEP changes found in the specified time period.\n", buf.String())
}

// TestWriteTextReport_FullBlock checks every section of one activity block.
func TestWriteTextReport_FullBlock(t *testing.T) {
	activity := sampleActivity()
	signals := []schema.PepSignal{
		{Number: 815, Kind: schema.NormativeSignal, Description: "Contains normative language (RFC 2119 keywords)", Weight: schema.WeightMedium},
	}

	var buf bytes.Buffer
	err := writeTextReport(&buf, []schema.PepActivity{activity}, signals, plainConfig())
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "PEP 815 — Example Proposal (Draft) [2 commits]")
	assert.Contains(t, out, "  https://peps.python.org/pep-0815/")
	assert.Contains(t, out, "  Abstract: One line abstract.")
	assert.Contains(t, out, "  Files: pep-0815.rst")
	assert.Contains(t, out, "  Commits:\n    - First change\n    - Second change")
	assert.Contains(t, out, "  Signals:\n    - [50] Contains normative language (RFC 2119 keywords)")
}

// TestWriteTextReport_MissingMetadata verifies optional pieces drop out of
// the header silently.
func TestWriteTextReport_MissingMetadata(t *testing.T) {
	activity := schema.PepActivity{
		Number:         42,
		CommitCount:    1,
		Files:          []string{"pep-0042.rst"},
		CommitMessages: []string{"Touch"},
	}

	var buf bytes.Buffer
	err := writeTextReport(&buf, []schema.PepActivity{activity}, nil, plainConfig())
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "PEP 42 [1 commit]")
	assert.NotContains(t, out, "Abstract:")
	assert.NotContains(t, out, "Signals:")
	assert.NotContains(t, out, "(")
}

// TestFormatAbstract_Truncation verifies the line cap and ellipsis.
func TestFormatAbstract_Truncation(t *testing.T) {
	long := strings.TrimSuffix(strings.Repeat("line\n", 12), "\n")

	lines := formatAbstract(long)

	// Cap lines plus the ellipsis row.
	assert.Len(t, lines, maxAbstractLines+1)
	assert.Equal(t, "  Abstract: line", lines[0])
	assert.Equal(t, "            ...", lines[len(lines)-1])

	short := formatAbstract("a\nb")
	assert.Equal(t, []string{"  Abstract: a", "            b"}, short)
}

// TestWriteTextSignals verifies per-signal lines and their ordering.
func TestWriteTextSignals(t *testing.T) {
	signals := []schema.PepSignal{
		{Number: 20, Kind: schema.NormativeSignal, Description: "Normative", Weight: schema.WeightMedium},
		{Number: 8, Kind: schema.NormativeSignal, Description: "Normative", Weight: schema.WeightMedium},
		{Number: 8, Kind: schema.DeprecationSignal, Description: "Deprecation", Weight: schema.WeightHigh},
	}

	var buf bytes.Buffer
	err := writeTextSignals(&buf, signals, plainConfig())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "PEP 8 [100] deprecation: Deprecation", lines[0])
	assert.Equal(t, "PEP 8 [50] normative_language: Normative", lines[1])
	assert.Equal(t, "PEP 20 [50] normative_language: Normative", lines[2])
}

// TestWriteTextSignals_Empty verifies the no-signals message.
func TestWriteTextSignals_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := writeTextSignals(&buf, nil, plainConfig())

	require.NoError(t, err)
	assert.Equal(t, "No signals detected in the specified time period.\n", buf.String())
}
