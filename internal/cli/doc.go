// Package cli defines the Cobra command tree for the extsweep CLI. Each file
// in this package registers one top-level command (sweep, report, restore,
// version) with the root command. Command implementations delegate to
// internal packages for the pipeline logic and only handle flag parsing,
// I/O formatting, and user interaction.
package cli
