package quarantine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Restore moves every manifest entry back to its recorded root and rewrites
// the manifest with whatever could not be restored. Failures are reported on
// w per entry and do not stop the remaining restores. It returns the number
// of restored and remaining entries.
func Restore(quarantineDir string, w io.Writer) (restored, remaining int, err error) {
	m, err := LoadManifest(quarantineDir)
	if err != nil {
		return 0, 0, err
	}

	var left []ManifestEntry
	for _, e := range m.Entries {
		src := filepath.Join(quarantineDir, e.Directory)
		dst := filepath.Join(e.Root, e.Directory)
		if renameErr := os.Rename(src, dst); renameErr != nil {
			fmt.Fprintf(w, "Error restoring '%s' to '%s': %v\n", src, dst, renameErr)
			left = append(left, e)
			continue
		}
		fmt.Fprintf(w, "Restored '%s' to '%s'\n", src, dst)
		restored++
	}

	m.Entries = left
	if err := WriteManifest(quarantineDir, m); err != nil {
		return restored, len(left), err
	}
	return restored, len(left), nil
}
