package quarantine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// ManifestName is the ledger file kept inside a quarantine directory.
const ManifestName = "sweep-manifest.yaml"

// ManifestEntry records one directory that was moved into quarantine.
type ManifestEntry struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	Directory string `yaml:"directory"`
	Root      string `yaml:"root"`
	MovedAt   string `yaml:"moved_at,omitempty"`
}

// Manifest is the ledger of everything living in a quarantine directory.
type Manifest struct {
	Entries []ManifestEntry `yaml:"entries"`
}

// manifestPath returns the manifest location for a quarantine directory.
func manifestPath(quarantineDir string) string {
	return filepath.Join(quarantineDir, ManifestName)
}

// LoadManifest reads and validates the manifest in quarantineDir. A missing
// manifest is reported as os.ErrNotExist wrapped with context.
func LoadManifest(quarantineDir string) (*Manifest, error) {
	path := manifestPath(quarantineDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep manifest %s: %w", path, err)
	}

	if err := validateManifest(data); err != nil {
		return nil, fmt.Errorf("validating sweep manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing sweep manifest %s: %w", path, err)
	}
	return &m, nil
}

// WriteManifest serializes the manifest into quarantineDir.
func WriteManifest(quarantineDir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding sweep manifest: %w", err)
	}
	path := manifestPath(quarantineDir)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing sweep manifest %s: %w", path, err)
	}
	return nil
}

// AppendMoves records executed moves in the quarantine's manifest, creating
// the manifest on first use. The scanned root is stored per entry so restore
// knows where each directory came from.
func AppendMoves(quarantineDir, root string, moves []Move, now time.Time) error {
	m := &Manifest{}
	if _, err := os.Stat(manifestPath(quarantineDir)); err == nil {
		existing, err := LoadManifest(quarantineDir)
		if err != nil {
			return err
		}
		m = existing
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	for _, mv := range moves {
		m.Entries = append(m.Entries, ManifestEntry{
			Name:      mv.Name,
			Version:   mv.Version.String(),
			Directory: filepath.Base(mv.Dst),
			Root:      absRoot,
			MovedAt:   now.UTC().Format(time.RFC3339),
		})
	}

	return WriteManifest(quarantineDir, m)
}
