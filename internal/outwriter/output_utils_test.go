package outwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/pepalyzer/internal/contract"
	"github.com/huangsam/pepalyzer/schema"
)

// TestGetMaxTitleWidth verifies the width budget math with overrides.
func TestGetMaxTitleWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"standard terminal", 100, 48},
		{"wide terminal clamps high", 200, 60},
		{"narrow terminal clamps low", 60, 15},
		{"exactly at the floor", 67, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, getMaxTitleWidth(cfg))
		})
	}
}

// TestWriteJSONHelper verifies indentation and trailing newline behavior.
func TestWriteJSONHelper(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"a": 1})

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

// TestFormatTopSignal verifies the table cell for the heaviest signal.
func TestFormatTopSignal(t *testing.T) {
	cfg := &contract.Config{UseColors: false}

	assert.Equal(t, "-", formatTopSignal(nil, cfg))

	signals := []schema.PepSignal{
		{Kind: schema.NormativeSignal, Weight: schema.WeightMedium},
		{Kind: schema.DeprecationSignal, Weight: schema.WeightHigh},
	}
	assert.Equal(t, "deprecation (High)", formatTopSignal(signals, cfg))
}

// TestWriteReportTable_Footer checks the summary line under the table.
func TestWriteReportTable_Footer(t *testing.T) {
	activities := []schema.PepActivity{
		{Number: 8, CommitCount: 3},
		{Number: 20, CommitCount: 1},
	}
	cfg := &contract.Config{Width: 100, UseColors: false}

	var buf bytes.Buffer
	err := writeReportTable(&buf, activities, nil, cfg, 0)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Showing 2 PEPs (total commits: 4)")
}

// TestWriteReportTable_Empty verifies the no-results message.
func TestWriteReportTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := writeReportTable(&buf, nil, nil, &contract.Config{}, 0)

	require.NoError(t, err)
	assert.Equal(t, "No PEP changes found in the specified time period.\n", buf.String())
}
