// Package docmeta parses PEP documents into structured metadata.
//
// A PEP document opens with an RFC 822-style header block (Title:, Status:,
// Author: and friends), terminated by the first blank line, followed by free
// form body text. The parser is deliberately tolerant: malformed lines are
// skipped, unknown keys are ignored, and every field is optional.
package docmeta

import (
	"strings"

	"github.com/huangsam/pepalyzer/schema"
)

// Header keys recognized by the field mapping. All other keys parse cleanly
// but are discarded.
const (
	keyTitle   = "title"
	keyStatus  = "status"
	keyType    = "type"
	keyCreated = "created"
	keyAuthor  = "author"
)

// Extract parses full document text into PepMetadata. Empty or whitespace
// only input yields metadata with every field absent; Extract never fails.
func Extract(content string) schema.PepMetadata {
	if strings.TrimSpace(content) == "" {
		return schema.PepMetadata{}
	}

	lines := strings.Split(content, "\n")
	headers := parseHeaders(lines)

	meta := schema.PepMetadata{
		Title:   headerField(headers, keyTitle),
		Status:  headerField(headers, keyStatus),
		PepType: headerField(headers, keyType),
		Created: headerField(headers, keyCreated),
	}

	if authors, ok := headers[keyAuthor]; ok {
		meta.Authors = splitAuthors(authors)
	}

	if abstract, ok := extractAbstract(lines); ok {
		meta.Abstract = &abstract
	}

	return meta
}

// parseHeaders scans the header phase: lines from the top until the first
// blank line. A header line has a colon and starts with a non-whitespace
// character; lines starting with whitespace continue the current header's
// value. Anything else is skipped without aborting the parse.
func parseHeaders(lines []string) map[string]string {
	headers := make(map[string]string)
	var currentKey string
	var currentValue []string

	save := func() {
		if currentKey != "" {
			headers[currentKey] = strings.TrimSpace(strings.Join(currentValue, " "))
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			// Blank line ends the header block.
			save()
			return headers
		}

		switch {
		case strings.Contains(line, ":") && !startsWithSpace(line):
			save()
			key, value, _ := strings.Cut(line, ":")
			currentKey = strings.ToLower(strings.TrimSpace(key))
			currentValue = []string{strings.TrimSpace(value)}
		case startsWithSpace(line) && currentKey != "":
			currentValue = append(currentValue, strings.TrimSpace(line))
		}
		// Unparseable lines fall through and are ignored.
	}

	// Headers-only content: no blank line before EOF.
	save()
	return headers
}

func startsWithSpace(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// headerField returns a pointer to the header value, or nil if the key was
// never parsed. A parsed-but-empty value still counts as present.
func headerField(headers map[string]string, key string) *string {
	if v, ok := headers[key]; ok {
		return &v
	}
	return nil
}

// splitAuthors breaks a comma-separated author header into a trimmed list.
// Empty fragments are dropped.
func splitAuthors(raw string) []string {
	var authors []string
	for _, part := range strings.Split(raw, ",") {
		if a := strings.TrimSpace(part); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}
