package analyzer

// Result contains the complete classification of detected candidates
// against the reference file. Missing and Misconfigured partition the
// candidate set: a candidate lands in exactly one of the two (unless its
// name is on the configured ignore list, in which case it is only counted).
type Result struct {
	Candidates     []string          // All candidate names, detector order
	Missing        []string          // Candidates not declared in the reference file
	Misconfigured  []string          // Candidates declared but still implicated by the log
	RefVars        map[string]string // Declared variables from the reference file
	RefPath        string            // Path of the reference file that was consulted
	IgnoredMissing int               // Count of missing candidates suppressed via config
}
