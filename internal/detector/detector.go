package detector

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// defaultPatterns is the fixed list of textual signatures that implicate an
// environment variable in log output. Each pattern has exactly one capture
// group holding the variable name. Matching is case-insensitive; captures
// are normalized to upper case.
var defaultPatterns = []*regexp.Regexp{
	// Direct access syntax, e.g. "process.env.API_KEY is undefined"
	regexp.MustCompile(`(?i)process\.env\.([A-Za-z_][A-Za-z0-9_]*)`),
	// Property access on an undefined config object
	regexp.MustCompile(`(?i)cannot read property '([A-Za-z_][A-Za-z0-9_]*)' of undefined`),
	// ReferenceError-style messages
	regexp.MustCompile(`(?i)\b([A-Za-z_][A-Za-z0-9_]*) is not defined`),
	// Plain "Missing X" complaints
	regexp.MustCompile(`(?i)missing ([A-Za-z_][A-Za-z0-9_]*)`),
}

// Detector extracts environment variable candidates from log text.
// The pattern list is bound at construction and never mutated.
type Detector struct {
	patterns []*regexp.Regexp
	debug    bool
}

// New creates a detector with the default pattern list
func New() *Detector {
	return &Detector{patterns: defaultPatterns}
}

// SetDebug enables or disables debug logging
func (d *Detector) SetDebug(debug bool) {
	d.debug = debug
}

// Detect applies every pattern to the full log text and returns the
// captured variable names, upper-cased and deduplicated, in the order they
// were first seen. An empty or pattern-free text yields a nil slice.
func (d *Detector) Detect(text string) []string {
	var candidates []string
	seen := make(map[string]bool)

	for i, pattern := range d.patterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if len(match) < 2 {
				continue
			}

			name := strings.ToUpper(match[1])
			if name == "" {
				continue
			}

			if d.debug {
				fmt.Fprintf(os.Stderr, "[DEBUG] pattern %d captured %s (%q)\n", i, name, match[0])
			}

			if seen[name] {
				continue
			}
			seen[name] = true
			candidates = append(candidates, name)
		}
	}

	return candidates
}
