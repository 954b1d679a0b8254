package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runReportCommand(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"report"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		reportJSON = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("report: %v", err)
	}
	return out.String()
}

func TestReportNeverMoves(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"foo-1.0.0", "foo-1.1.0"} {
		if err := os.Mkdir(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}

	out := runReportCommand(t, root)

	if !strings.Contains(out, "* foo (Latest: 1.1.0, Old: 1.0.0)") {
		t.Errorf("missing report line: %q", out)
	}
	if strings.Contains(out, "Remove old duplicates?") {
		t.Errorf("report prompted for removal: %q", out)
	}
	for _, dir := range []string{"foo-1.0.0", "foo-1.1.0"} {
		if _, err := os.Stat(filepath.Join(root, dir)); err != nil {
			t.Errorf("%s moved by report: %v", dir, err)
		}
	}
}

func TestReportJSON(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"foo-1.0.0", "foo-1.1.0"} {
		if err := os.Mkdir(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}

	out := runReportCommand(t, root, "--json")

	var entries []reportEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Name != "foo" || entries[0].Latest != "1.1.0" {
		t.Errorf("entries[0] = %+v, want foo latest 1.1.0", entries[0])
	}
	if len(entries[0].Old) != 1 || entries[0].Old[0] != "1.0.0" {
		t.Errorf("Old = %v, want [1.0.0]", entries[0].Old)
	}
}
