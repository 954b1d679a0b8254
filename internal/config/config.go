package config

import (
	"os"
	"path/filepath"

	"github.com/extsweep-labs/extsweep/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// keyQuarantineDir names the directory that old versions are moved into,
	// resolved against the process working directory when relative.
	keyQuarantineDir = "quarantine_dir"

	defaultQuarantineDir = "old_versions"
)

// Dir returns the path to the ExtSweep config directory (~/.extsweep/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.extsweep/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(keyQuarantineDir, defaultQuarantineDir)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// QuarantineDir returns the configured quarantine directory, falling back to
// the default "old_versions" when neither config file nor environment set it.
func QuarantineDir() string {
	return viper.GetString(keyQuarantineDir)
}
