package dedupe

import (
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/extsweep-labs/extsweep/internal/scanner"
)

// WriteReport prints a human-readable duplicate report to w, one line per
// duplicate name. Versions equal in value to the latest are never listed as
// old, so a group of identical versions reports as having no older duplicates.
func WriteReport(w io.Writer, duplicates *scanner.Inventory, latest map[string]*semver.Version) {
	if duplicates.Len() == 0 {
		fmt.Fprintln(w, "No duplicate extensions found.")
		return
	}

	fmt.Fprintln(w, "Duplicate extensions Report:")
	for _, name := range duplicates.Names() {
		latestVersion := latest[name]
		var old []string
		for _, v := range duplicates.Versions(name) {
			if !v.Equal(latestVersion) {
				old = append(old, v.String())
			}
		}
		if len(old) > 0 {
			fmt.Fprintf(w, "* %s (Latest: %s, Old: %s)\n", name, latestVersion, strings.Join(old, ", "))
		} else {
			fmt.Fprintf(w, "* %s (Latest version: %s - no older duplicates)\n", name, latestVersion)
		}
	}
}
