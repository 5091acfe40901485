package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// The test binary re-executes itself to run main, so every scenario gets a
// fresh process with a real exit code and real standard streams.
const runMainEnv = "SCREAMGRD_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runCLI runs the tool in dir with the given arguments and returns its
// stdout, stderr and exit code.
func runCLI(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()

	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("Failed to locate test binary: %v", err)
	}

	cmd := exec.Command(exe, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), runMainEnv+"=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("Failed to run CLI: %v", err)
	}

	return stdout.String(), stderr.String(), exitCode
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestCLI_NoArgs(t *testing.T) {
	_, stderr, exitCode := runCLI(t, t.TempDir())

	if exitCode != 1 {
		t.Errorf("Expected exit code 1 with no arguments, got %d", exitCode)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("Expected usage text on stderr, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "screamgrd <logfile>") {
		t.Errorf("Expected invocation form in usage, got:\n%s", stderr)
	}
}

func TestCLI_MissingLogFile(t *testing.T) {
	stdout, _, exitCode := runCLI(t, t.TempDir(), "absent.log")

	if exitCode != 0 {
		t.Errorf("Missing log file is a notice, not a failure; got exit code %d", exitCode)
	}
	if !strings.Contains(stdout, "Log file not found: absent.log") {
		t.Errorf("Expected not-found notice, got:\n%s", stdout)
	}
}

func TestCLI_NoScreams(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.log", "")

	stdout, _, exitCode := runCLI(t, dir, "app.log")

	if exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout, "No screams detected") {
		t.Errorf("Expected no-screams notice, got:\n%s", stdout)
	}
	if strings.Contains(stdout, "Missing from") || strings.Contains(stdout, "still screaming") {
		t.Errorf("Empty log should print no sections, got:\n%s", stdout)
	}
}

func TestCLI_MissingVariable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.log", "process.env.API_KEY is undefined\n")

	stdout, _, exitCode := runCLI(t, dir, "app.log")

	if exitCode != 0 {
		t.Errorf("Default run exits 0 even with findings, got %d", exitCode)
	}
	if !strings.Contains(stdout, "Missing from .env:") {
		t.Errorf("Expected missing section, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "add: API_KEY=your_value_here") {
		t.Errorf("Expected suggestion line, got:\n%s", stdout)
	}
}

func TestCLI_MisconfiguredVariable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.log", "Missing DATABASE_URL\n")
	writeFile(t, dir, ".env", "DATABASE_URL=postgres://x\n")

	stdout, _, exitCode := runCLI(t, dir, "app.log")

	if exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout, "Declared in .env but still screaming:") {
		t.Errorf("Expected misconfigured section, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "DATABASE_URL=") {
		t.Errorf("Expected DATABASE_URL listed, got:\n%s", stdout)
	}
	if strings.Contains(stdout, "Missing from .env:") {
		t.Errorf("Declared variable must not be reported missing, got:\n%s", stdout)
	}
}

func TestCLI_StrictExitCode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.log", "ReferenceError: STRIPE_KEY is not defined\n")

	_, _, exitCode := runCLI(t, dir, "--strict", "app.log")
	if exitCode != 1 {
		t.Errorf("Expected exit code 1 in strict mode with missing variables, got %d", exitCode)
	}

	// Declared variables are review items, not strict failures
	writeFile(t, dir, ".env", "STRIPE_KEY=sk_test_123\n")
	_, _, exitCode = runCLI(t, dir, "--strict", "app.log")
	if exitCode != 0 {
		t.Errorf("Expected exit code 0 in strict mode with nothing missing, got %d", exitCode)
	}
}
