package dedupe

import (
	"github.com/Masterminds/semver/v3"

	"github.com/extsweep-labs/extsweep/internal/scanner"
)

// FindDuplicates returns the subset of the inventory restricted to logical
// names with more than one recorded version. The input is not modified and
// no names are added or renamed.
func FindDuplicates(inv *scanner.Inventory) *scanner.Inventory {
	duplicates := scanner.NewInventory()
	for _, name := range inv.Names() {
		entries := inv.Entries(name)
		if len(entries) < 2 {
			continue
		}
		for _, e := range entries {
			duplicates.Add(e)
		}
	}
	return duplicates
}

// LatestVersions reduces each duplicate group to its maximum version under
// semantic-version ordering. Groups whose versions are all equal reduce to
// that shared value.
func LatestVersions(duplicates *scanner.Inventory) map[string]*semver.Version {
	latest := make(map[string]*semver.Version, duplicates.Len())
	for _, name := range duplicates.Names() {
		for _, v := range duplicates.Versions(name) {
			if current, ok := latest[name]; !ok || v.GreaterThan(current) {
				latest[name] = v
			}
		}
	}
	return latest
}
