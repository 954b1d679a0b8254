package scanner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Entry is one versioned directory discovered under the extensions root.
type Entry struct {
	Name    string          // logical extension name, version suffix removed
	Version *semver.Version // nil when the directory name carries no version
	DirName string          // directory name as it appears on disk
}

// Inventory maps logical extension names to the versioned directories found
// for them. Names and entries keep directory listing order.
type Inventory struct {
	names   []string
	entries map[string][]Entry
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{entries: make(map[string][]Entry)}
}

// Add records an entry under its logical name, registering the name on first
// sight. An entry without a parsed version registers the name only.
func (inv *Inventory) Add(e Entry) {
	if _, ok := inv.entries[e.Name]; !ok {
		inv.names = append(inv.names, e.Name)
		inv.entries[e.Name] = nil
	}
	if e.Version != nil {
		inv.entries[e.Name] = append(inv.entries[e.Name], e)
	}
}

// Names returns the logical names in the order they were first seen.
func (inv *Inventory) Names() []string { return inv.names }

// Entries returns the versioned directories recorded for name.
func (inv *Inventory) Entries(name string) []Entry { return inv.entries[name] }

// Versions returns the parsed versions recorded for name, in listing order.
func (inv *Inventory) Versions(name string) []*semver.Version {
	var versions []*semver.Version
	for _, e := range inv.entries[name] {
		versions = append(versions, e.Version)
	}
	return versions
}

// Len returns the number of logical names recorded.
func (inv *Inventory) Len() int { return len(inv.names) }

// Scan lists the immediate subdirectories of root and tokenizes each name.
// Non-directory entries are ignored. Diagnostics for version-like suffixes
// that fail parsing are written to diag. A root that cannot be read is the
// only fatal condition.
func Scan(root string, diag io.Writer) (*Inventory, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scanning extensions root %s: %w", root, err)
	}

	inv := NewInventory()
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}
		inv.Add(ParseDirName(d.Name(), diag))
	}
	return inv, nil
}

// ParseDirName splits a directory name into a logical name and a semantic
// version. Candidates are the trailing hyphen-delimited suffixes, longest
// first, shrinking until one parses as a strict semantic version. A name with
// no valid version suffix is retained under its full directory name with a
// nil version; a diagnostic is written only when the trailing segment starts
// with a digit, i.e. it resembled a version and failed parsing.
func ParseDirName(dirName string, diag io.Writer) Entry {
	parts := strings.Split(dirName, "-")
	for i := 1; i < len(parts); i++ {
		candidate := strings.Join(parts[i:], "-")
		version, err := semver.StrictNewVersion(candidate)
		if err != nil {
			continue
		}
		return Entry{
			Name:    strings.Join(parts[:i], "-"),
			Version: version,
			DirName: dirName,
		}
	}

	if last := parts[len(parts)-1]; len(parts) > 1 && startsWithDigit(last) {
		fmt.Fprintf(diag, "Skipping version for '%s': '%s' is not a semantic version.\n", dirName, last)
	}
	return Entry{Name: dirName, DirName: dirName}
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
