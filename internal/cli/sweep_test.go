package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirmRemoval(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"yes", "yes\n", true},
		{"uppercase yes", "YES\n", true},
		{"padded yes", "  yes  \n", true},
		{"yes without newline", "yes", true},
		{"no", "no\n", false},
		{"empty line", "\n", false},
		{"closed input", "", false},
		{"abbreviation", "y\n", false},
		{"trailing junk", "yes please\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirmRemoval(strings.NewReader(tt.input), &out)
			if got != tt.expected {
				t.Errorf("confirmRemoval(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if !strings.Contains(out.String(), "Remove old duplicates? (yes/no): ") {
				t.Errorf("prompt missing from output: %q", out.String())
			}
		})
	}
}

// runSweepCommand executes the sweep command against root with the given
// stdin and flags, returning combined output.
func runSweepCommand(t *testing.T, stdin io.Reader, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(append([]string{"sweep"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		sweepAutoApprove = false
		sweepQuarantine = ""
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	return out.String()
}

func TestSweepAutoApprove(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "exts")
	quarantineDir := filepath.Join(tmp, "old_versions")
	for _, dir := range []string{"foo-1.0.0", "foo-1.1.0", "bar-2.0.0"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}

	out := runSweepCommand(t, strings.NewReader(""), root, "--auto-approve", "--quarantine", quarantineDir)

	if !strings.Contains(out, "* foo (Latest: 1.1.0, Old: 1.0.0)") {
		t.Errorf("missing report line in output: %q", out)
	}
	if strings.Contains(out, "Remove old duplicates?") {
		t.Errorf("auto-approve still prompted: %q", out)
	}
	if _, err := os.Stat(filepath.Join(quarantineDir, "foo-1.0.0")); err != nil {
		t.Errorf("foo-1.0.0 not quarantined: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "foo-1.1.0")); err != nil {
		t.Errorf("latest version moved away: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "bar-2.0.0")); err != nil {
		t.Errorf("non-duplicate moved away: %v", err)
	}
	if _, err := os.Stat(filepath.Join(quarantineDir, "sweep-manifest.yaml")); err != nil {
		t.Errorf("sweep manifest missing: %v", err)
	}
}

func TestSweepDeclinedConfirmation(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "exts")
	quarantineDir := filepath.Join(tmp, "old_versions")
	for _, dir := range []string{"foo-1.0.0", "foo-1.1.0"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}

	out := runSweepCommand(t, strings.NewReader("no\n"), root, "--quarantine", quarantineDir)

	if !strings.Contains(out, "No duplicates removed.") {
		t.Errorf("missing decline line in output: %q", out)
	}
	if _, err := os.Stat(filepath.Join(root, "foo-1.0.0")); err != nil {
		t.Errorf("directory moved despite decline: %v", err)
	}
	if _, err := os.Stat(quarantineDir); !os.IsNotExist(err) {
		t.Errorf("quarantine directory created despite decline")
	}
}

func TestSweepNoDuplicates(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "exts")
	quarantineDir := filepath.Join(tmp, "old_versions")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}

	out := runSweepCommand(t, strings.NewReader(""), root, "--quarantine", quarantineDir)

	if !strings.Contains(out, "No duplicate extensions found.") {
		t.Errorf("missing no-duplicates line: %q", out)
	}
	if strings.Contains(out, "Remove old duplicates?") {
		t.Errorf("prompted with no duplicates: %q", out)
	}
	if _, err := os.Stat(quarantineDir); !os.IsNotExist(err) {
		t.Errorf("quarantine directory created with no duplicates")
	}
}
