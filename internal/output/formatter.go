package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jenian/screamgrd/internal/analyzer"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// Options controls how a scan result is rendered
type Options struct {
	JSON     bool // Emit machine-readable JSON instead of the report
	Silent   bool // Suppress all report output (exit code only)
	NoHeader bool // Skip the report header line
}

// Formatter renders scan results to a writer
type Formatter struct {
	w     io.Writer
	color bool
}

// New creates a formatter for the given writer. Colors are enabled only
// when the writer is a terminal that supports ANSI escape sequences.
func New(w io.Writer) *Formatter {
	f := &Formatter{w: w}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		// On Windows, ANSI processing has to be switched on for the
		// console the writer is attached to (formatter_windows.go)
		f.color = enableANSI(file)
	}
	return f
}

// DisableColor turns off ANSI colors regardless of terminal detection
func (f *Formatter) DisableColor() {
	f.color = false
}

// paint returns the color code if colors are enabled, empty string otherwise
func (f *Formatter) paint(code string) string {
	if f.color {
		return code
	}
	return ""
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Missing        []MissingVar `json:"missing"`
	Misconfigured  []string     `json:"misconfigured"`
	IgnoredMissing int          `json:"ignored_missing"`
}

// MissingVar represents a missing environment variable with a suggested
// declaration line for the reference file
type MissingVar struct {
	Key        string `json:"key"`
	Suggestion string `json:"suggestion"`
}

// Format renders the scan result according to the given options
func (f *Formatter) Format(logPath string, result analyzer.Result, opts Options) error {
	if opts.Silent {
		// In silent mode, only the exit code matters (handled by caller)
		return nil
	}

	if opts.JSON {
		return f.formatJSON(result)
	}

	return f.formatHumanReadable(logPath, result, opts.NoHeader)
}

// formatJSON outputs results in JSON format, keys sorted for stable output
func (f *Formatter) formatJSON(result analyzer.Result) error {
	output := JSONOutput{
		Missing:        []MissingVar{},
		Misconfigured:  []string{},
		IgnoredMissing: result.IgnoredMissing,
	}

	for _, key := range result.Missing {
		output.Missing = append(output.Missing, MissingVar{
			Key:        key,
			Suggestion: key + "=your_value_here",
		})
	}
	sort.Slice(output.Missing, func(i, j int) bool {
		return output.Missing[i].Key < output.Missing[j].Key
	})

	output.Misconfigured = append(output.Misconfigured, result.Misconfigured...)
	sort.Strings(output.Misconfigured)

	encoder := json.NewEncoder(f.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// formatHumanReadable outputs the report in human-readable form
func (f *Formatter) formatHumanReadable(logPath string, result analyzer.Result, noHeader bool) error {
	if !noHeader {
		fmt.Fprintf(f.w, "%sScream report for %s%s\n\n", f.paint(colorBold), logPath, f.paint(colorReset))
	}

	if len(result.Candidates) == 0 {
		fmt.Fprintf(f.w, "%sNo screams detected. The log is quiet, or the pain is elsewhere.%s\n", f.paint(colorGreen), f.paint(colorReset))
		return nil
	}

	refName := result.RefPath
	if refName == "" {
		refName = ".env"
	}

	if len(result.Missing) > 0 {
		fmt.Fprintf(f.w, "%s%sMissing from %s:%s\n\n", f.paint(colorBold), f.paint(colorRed), refName, f.paint(colorReset))
		for _, key := range result.Missing {
			fmt.Fprintf(f.w, "  %s%s%s\n", f.paint(colorRed), key, f.paint(colorReset))
			fmt.Fprintf(f.w, "    %sadd:%s %s=your_value_here\n", f.paint(colorGray), f.paint(colorReset), key)
		}
		fmt.Fprintln(f.w)
	}

	if len(result.Misconfigured) > 0 {
		fmt.Fprintf(f.w, "%s%sDeclared in %s but still screaming:%s\n\n", f.paint(colorBold), f.paint(colorYellow), refName, f.paint(colorReset))
		for _, key := range result.Misconfigured {
			value := redactValue(result.RefVars[key])
			fmt.Fprintf(f.w, "  %s%s%s=%s%s%s %s(check the value)%s\n", f.paint(colorYellow), key, f.paint(colorReset), f.paint(colorGray), value, f.paint(colorReset), f.paint(colorGray), f.paint(colorReset))
		}
		fmt.Fprintln(f.w)
	}

	if result.IgnoredMissing > 0 {
		fmt.Fprintf(f.w, "%sNote:%s %d missing variable(s) were ignored (configured in .screamgrd.config)\n\n", f.paint(colorGray), f.paint(colorReset), result.IgnoredMissing)
	}

	fmt.Fprintf(f.w, "%sFix the missing ones first. Good luck out there.%s\n", f.paint(colorGray), f.paint(colorReset))

	return nil
}

// redactValue redacts sensitive values while showing the type
func redactValue(value string) string {
	if value == "" {
		return `""`
	}
	// If it looks like a secret (long, random-looking), redact it
	if len(value) > 20 {
		return "[REDACTED]"
	}
	// If it contains special characters that suggest it's a secret
	if strings.ContainsAny(value, "=+/") && len(value) > 10 {
		return "[REDACTED]"
	}
	// For short values, show first and last char
	if len(value) > 4 {
		return string(value[0]) + "..." + string(value[len(value)-1])
	}
	// For very short values, just show asterisks
	return "***"
}

// HasIssues returns true if the result should fail a strict run.
// Misconfigured variables are review items, not failures; ignored missing
// variables don't count either.
func HasIssues(result analyzer.Result) bool {
	return len(result.Missing) > 0
}
