package analyzer

import (
	"github.com/jenian/screamgrd/internal/config"
)

// Classify partitions detected candidates against the declared variables.
// candidates: upper-cased names from the detector, in detection order
// refVars: declared variables from the reference file (key -> raw value)
// cfg: optional ignore rules; nil behaves like an empty config
//
// A candidate absent from refVars is missing; a candidate present in
// refVars is declared but still screaming, so it is flagged for manual
// review. Candidate order is preserved in both sequences.
func Classify(candidates []string, refVars map[string]string, cfg *config.Config) Result {
	result := Result{
		Candidates:    candidates,
		Missing:       []string{},
		Misconfigured: []string{},
		RefVars:       refVars,
	}

	for _, name := range candidates {
		if _, declared := refVars[name]; declared {
			result.Misconfigured = append(result.Misconfigured, name)
			continue
		}

		if cfg != nil && cfg.ShouldIgnoreMissing(name) {
			result.IgnoredMissing++
			continue
		}

		result.Missing = append(result.Missing, name)
	}

	return result
}
