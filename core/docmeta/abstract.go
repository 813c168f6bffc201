package docmeta

import (
	"regexp"
	"strings"
)

var (
	// abstractMarkerRe matches a standalone Abstract section heading, plain
	// or in its lightweight markup form.
	abstractMarkerRe = regexp.MustCompile(`(?i)^(Abstract|##\s*Abstract)\s*$`)

	// underlineRe matches RST-style heading underline rows.
	underlineRe = regexp.MustCompile(`^[=\-]+\s*$`)

	// markdownHeadingRe matches ATX-style markdown headings.
	markdownHeadingRe = regexp.MustCompile(`^#{1,6}\s+`)

	// titleCaseLineRe matches a full line consisting of an uppercase letter
	// followed by word characters and spaces, the shape of a prose section
	// title such as "Motivation" or "Backwards Compatibility".
	titleCaseLineRe = regexp.MustCompile(`^[A-Z][\w ]*$`)
)

// extractAbstract pulls the lead paragraph out of the body phase: the text
// after the header-terminating blank line. It returns false when the body
// yields no paragraph at all, which downstream treats as an absent field.
func extractAbstract(lines []string) (string, bool) {
	body := skipToBody(lines)
	collected := collectAbstractLines(body)
	if len(collected) == 0 {
		return "", false
	}
	return strings.Join(collected, "\n"), true
}

// skipToBody returns the lines after the first blank line, or nothing when
// the document is headers-only.
func skipToBody(lines []string) []string {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return lines[i+1:]
		}
	}
	return nil
}

// collectAbstractLines gathers the lead paragraph, skipping structural
// markers (Abstract headings, underline rows) and markup directives.
func collectAbstractLines(lines []string) []string {
	var collected []string

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		// Skip blank lines before the paragraph starts.
		if len(collected) == 0 && line == "" {
			continue
		}

		if abstractMarkerRe.MatchString(line) {
			continue
		}
		if underlineRe.MatchString(line) {
			continue
		}

		// Directive lines (".. note::") are markup, not prose.
		if strings.HasPrefix(line, ".. ") {
			continue
		}

		if isParagraphEnd(line, collected) {
			break
		}
		collected = append(collected, line)
	}

	return collected
}

// isParagraphEnd reports whether the line terminates the lead paragraph:
// a blank line, or (once content exists) something shaped like the next
// section heading.
func isParagraphEnd(line string, collected []string) bool {
	if line == "" {
		return true
	}
	return len(collected) > 0 && looksLikeSectionHeading(line)
}

// looksLikeSectionHeading is the heading heuristic, isolated here so it can
// be swapped for a real lightweight markup parser without touching the rest
// of the extraction. It is fuzzy on purpose: a markdown heading or a short
// title-cased line both count.
func looksLikeSectionHeading(line string) bool {
	return markdownHeadingRe.MatchString(line) || titleCaseLineRe.MatchString(line)
}
