package docmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractBody is a test helper that runs the full Extract and returns the
// abstract field.
func extractBody(t *testing.T, content string) *string {
	t.Helper()
	meta := Extract(content)
	return meta.Abstract
}

// TestAbstract_RSTSectionHeading covers the classic RST layout with an
// Abstract heading and an underline row.
func TestAbstract_RSTSectionHeading(t *testing.T) {
	content := "Title: T\n" +
		"\n" +
		"Abstract\n" +
		"========\n" +
		"\n" +
		"This document proposes a thing\n" +
		"and explains why.\n" +
		"\n" +
		"Motivation\n" +
		"==========\n"

	abstract := extractBody(t, content)

	require.NotNil(t, abstract)
	assert.Equal(t, "This document proposes a thing\nand explains why.", *abstract)
}

// TestAbstract_MarkdownHeading covers the markdown form of the Abstract
// marker.
func TestAbstract_MarkdownHeading(t *testing.T) {
	content := "Title: T\n" +
		"\n" +
		"## Abstract\n" +
		"\n" +
		"A short summary.\n" +
		"\n" +
		"## Motivation\n"

	abstract := extractBody(t, content)

	require.NotNil(t, abstract)
	assert.Equal(t, "A short summary.", *abstract)
}

// TestAbstract_NoMarker verifies the lead paragraph is taken as-is when the
// body starts with prose directly.
func TestAbstract_NoMarker(t *testing.T) {
	content := "Title: T\n" +
		"\n" +
		"This paragraph opens the body directly,\n" +
		"with no Abstract heading above it.\n" +
		"\n" +
		"More text later.\n"

	abstract := extractBody(t, content)

	require.NotNil(t, abstract)
	assert.Equal(t, "This paragraph opens the body directly,\nwith no Abstract heading above it.", *abstract)
}

// TestAbstract_DirectivesSkipped ensures RST directive lines never count as
// abstract prose.
func TestAbstract_DirectivesSkipped(t *testing.T) {
	content := "Title: T\n" +
		"\n" +
		".. note:: housekeeping\n" +
		"\n" +
		"Actual prose starts here.\n"

	abstract := extractBody(t, content)

	require.NotNil(t, abstract)
	assert.Equal(t, "Actual prose starts here.", *abstract)
}

// TestAbstract_StopsAtSectionHeading verifies the paragraph ends when the
// next section title appears without an intervening blank line.
func TestAbstract_StopsAtSectionHeading(t *testing.T) {
	content := "Title: T\n" +
		"\n" +
		"Abstract\n" +
		"--------\n" +
		"Summary sentence here.\n" +
		"Motivation\n" +
		"----------\n"

	abstract := extractBody(t, content)

	require.NotNil(t, abstract)
	assert.Equal(t, "Summary sentence here.", *abstract)
}

// TestAbstract_AbsentBody ensures headers-only documents yield no abstract.
func TestAbstract_AbsentBody(t *testing.T) {
	assert.Nil(t, extractBody(t, "Title: T\nStatus: Draft"))
	assert.Nil(t, extractBody(t, "Title: T\n\n"))
	assert.Nil(t, extractBody(t, "Title: T\n\n.. directive:: only\n"))
}

// TestAbstract_BlankLinesBeforeParagraph verifies leading blank lines in the
// body are tolerated.
func TestAbstract_BlankLinesBeforeParagraph(t *testing.T) {
	content := "Title: T\n\n\n\nEventually, prose.\n"

	abstract := extractBody(t, content)

	require.NotNil(t, abstract)
	assert.Equal(t, "Eventually, prose.", *abstract)
}
