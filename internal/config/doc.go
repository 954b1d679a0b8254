// Package config manages user-level settings stored at ~/.extsweep/config.yaml.
// It provides read-only access to configuration keys such as the quarantine
// directory used by the sweep and restore commands.
package config
