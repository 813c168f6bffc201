// Package signal applies rule-based editorial signal detection to PEP text.
package signal

import (
	"regexp"

	"github.com/huangsam/pepalyzer/schema"
)

// rule is one independent detection rule. Each rule contributes at most one
// signal per document: the first matching pattern wins.
type rule struct {
	kind        schema.SignalKind
	description string
	weight      int
	patterns    []*regexp.Regexp
}

// rules is the fixed, ordered rule list applied to every document snapshot.
var rules = []rule{
	{
		kind:        schema.DeprecationSignal,
		description: "Contains deprecation or removal language",
		weight:      schema.WeightMedium,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bdeprecated\b`),
			regexp.MustCompile(`(?i)\bremoved\b`),
			regexp.MustCompile(`(?i)\bno longer\b`),
		},
	},
	{
		kind:        schema.NormativeSignal,
		description: "Contains normative language (RFC 2119 keywords)",
		weight:      schema.WeightMedium,
		patterns: []*regexp.Regexp{
			// Case-sensitive on purpose: lowercase "must" is prose, MUST is a
			// conformance requirement.
			regexp.MustCompile(`\bMUST\b`),
			regexp.MustCompile(`\bMUST NOT\b`),
			regexp.MustCompile(`\bSHOULD\b`),
			regexp.MustCompile(`\bSHOULD NOT\b`),
			regexp.MustCompile(`\bREQUIRED\b`),
			regexp.MustCompile(`\bSHALL\b`),
			regexp.MustCompile(`\bSHALL NOT\b`),
		},
	},
}

// diffDetector is the hook for a future status-transition rule. Detecting a
// transition needs the before and after revisions of the document: the mere
// presence of "Status: Final" in a snapshot cannot distinguish "just became
// Final" from "has always been Final", so no snapshot-based status rule is
// registered.
type diffDetector func(before, after string, number int) []schema.PepSignal

var _ diffDetector = nil

// Detect applies every rule to the document text and returns the signals for
// the given PEP number. Empty input yields an empty result, never an error.
func Detect(content string, number int) []schema.PepSignal {
	var signals []schema.PepSignal
	if content == "" {
		return signals
	}

	for _, r := range rules {
		for _, p := range r.patterns {
			if p.MatchString(content) {
				signals = append(signals, schema.PepSignal{
					Number:      number,
					Kind:        r.kind,
					Description: r.description,
					Weight:      r.weight,
				})
				break
			}
		}
	}

	return signals
}
