package quarantine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/extsweep-labs/extsweep/internal/scanner"
)

// Move is one planned relocation of a non-latest versioned directory.
type Move struct {
	Name    string
	Version *semver.Version
	Src     string // <root>/<dir-name>
	Dst     string // <quarantine>/<dir-name>
}

// Plan returns the moves that would relocate every duplicate directory whose
// version is not equal to its group's latest. The comparison is by version
// value: directories whose parsed version equals the latest all stay in
// place, even when several share that value.
func Plan(duplicates *scanner.Inventory, latest map[string]*semver.Version, root, quarantineDir string) []Move {
	var moves []Move
	for _, name := range duplicates.Names() {
		latestVersion := latest[name]
		for _, e := range duplicates.Entries(name) {
			if e.Version.Equal(latestVersion) {
				continue
			}
			moves = append(moves, Move{
				Name:    e.Name,
				Version: e.Version,
				Src:     filepath.Join(root, e.DirName),
				Dst:     filepath.Join(quarantineDir, e.DirName),
			})
		}
	}
	return moves
}

// Execute creates the quarantine directory if absent and attempts every move.
// Moves are independent: a failure is reported on w and does not stop the
// remaining moves. The moves that succeeded are returned. Only a failure to
// create the quarantine directory itself is an error.
func Execute(moves []Move, quarantineDir string, w io.Writer) ([]Move, error) {
	if err := os.MkdirAll(quarantineDir, 0755); err != nil {
		return nil, fmt.Errorf("creating quarantine directory %s: %w", quarantineDir, err)
	}

	var done []Move
	for _, m := range moves {
		if err := os.Rename(m.Src, m.Dst); err != nil {
			fmt.Fprintf(w, "Error moving '%s' to '%s': %v\n", m.Src, m.Dst, err)
			continue
		}
		fmt.Fprintf(w, "Moved '%s' to '%s'\n", m.Src, m.Dst)
		done = append(done, m)
	}
	return done, nil
}
