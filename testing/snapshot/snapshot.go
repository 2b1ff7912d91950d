// Package snapshot provides golden-file testing for rendered TUI output.
// Rendered frames are normalized (ANSI stripped, trailing space removed)
// before comparison so color-profile differences between terminals do not
// break tests.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// GoldenDir is the default directory for golden files.
const GoldenDir = "testdata/golden"

// Snap provides snapshot assertions for one test.
type Snap struct {
	t         *testing.T
	goldenDir string
	update    bool
}

// New creates a Snap for the given test. Set UPDATE_GOLDEN=1 to rewrite
// golden files instead of comparing.
func New(t *testing.T) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv("UPDATE_GOLDEN") == "1",
	}
}

// WithDir sets a custom golden file directory.
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// Assert compares actual output against the named golden file, or rewrites
// the file in update mode.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()

	goldenPath := filepath.Join(s.goldenDir, name+".golden")
	normalized := Normalize(actual)

	if s.update {
		if err := os.MkdirAll(s.goldenDir, 0o755); err != nil {
			s.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(normalized), 0o644); err != nil {
			s.t.Fatalf("failed to write golden file: %v", err)
		}
		s.t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.t.Fatalf("golden file not found: %s\nRun with UPDATE_GOLDEN=1 to create it.\nActual output:\n%s", goldenPath, normalized)
		}
		s.t.Fatalf("failed to read golden file: %v", err)
	}

	if string(expected) != normalized {
		s.t.Errorf("snapshot mismatch for %s\n\nExpected:\n%s\n\nActual:\n%s\n\nRun with UPDATE_GOLDEN=1 to update.",
			name, string(expected), normalized)
	}
}

// AssertContains checks that the normalized output contains substr.
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := Normalize(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("output does not contain %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that the normalized output does not contain substr.
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := Normalize(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("output unexpectedly contains %q\nActual:\n%s", substr, normalized)
	}
}

var (
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex  = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Normalize strips ANSI codes, normalizes line endings and removes
// trailing whitespace per line.
func Normalize(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes ANSI escape codes, including OSC 8 hyperlinks.
func StripANSI(s string) string {
	s = ansiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the line count of the rendered output.
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the maximum display width across lines, wide runes counted
// properly.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(StripANSI(s), "\n") {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
