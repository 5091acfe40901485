package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Loader handles loading and parsing the flat KEY=VALUE reference file
type Loader struct {
	path string
}

// NewLoader creates a loader for the given reference file path
func NewLoader(path string) *Loader {
	if path == "" {
		path = ".env"
	}
	return &Loader{path: path}
}

// Path returns the reference file path this loader reads from
func (l *Loader) Path() string {
	return l.path
}

// Load parses the reference file and returns the declared variables keyed
// by upper-cased name. A missing file means no declared variables and is
// not an error.
//
// The parse rule is deliberately permissive: any line containing '=' counts
// as a declaration, comments included. The key is the substring before the
// first '=', whitespace-trimmed and upper-cased; the value is the raw
// remainder. Commented-out declarations therefore count as declared;
// compatibility behavior, keep it.
func (l *Loader) Load() (map[string]string, error) {
	vars := make(map[string]string)

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return vars, nil
		}
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if !strings.Contains(line, "=") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		key := strings.ToUpper(strings.TrimSpace(parts[0]))
		if key == "" {
			continue
		}

		vars[key] = parts[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", l.path, err)
	}

	return vars, nil
}
