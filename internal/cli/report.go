package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/extsweep-labs/extsweep/internal/dedupe"
	"github.com/extsweep-labs/extsweep/internal/scanner"
	"github.com/spf13/cobra"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report <extensions-path>",
	Short: "Report duplicate extension versions without moving anything",
	Long: `Scan a directory of versioned extension folders and print the duplicate
report. Nothing is prompted and nothing is moved; this is the read-only
counterpart of sweep.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output duplicate groups as JSON")
	rootCmd.AddCommand(reportCmd)
}

// reportEntry represents one duplicate group for JSON output.
type reportEntry struct {
	Name     string   `json:"name"`
	Latest   string   `json:"latest"`
	Versions []string `json:"versions"`
	Old      []string `json:"old"`
}

func runReport(cmd *cobra.Command, args []string) error {
	// Parse diagnostics go to stderr so they don't pollute --json output.
	inv, err := scanner.Scan(args[0], cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	duplicates := dedupe.FindDuplicates(inv)
	latest := dedupe.LatestVersions(duplicates)

	if reportJSON {
		return printReportJSON(cmd, duplicates, latest)
	}
	dedupe.WriteReport(cmd.OutOrStdout(), duplicates, latest)
	return nil
}

func printReportJSON(cmd *cobra.Command, duplicates *scanner.Inventory, latest map[string]*semver.Version) error {
	entries := []reportEntry{}
	for _, name := range duplicates.Names() {
		latestVersion := latest[name]
		entry := reportEntry{
			Name:   name,
			Latest: latestVersion.String(),
			Old:    []string{},
		}
		for _, v := range duplicates.Versions(name) {
			entry.Versions = append(entry.Versions, v.String())
			if !v.Equal(latestVersion) {
				entry.Old = append(entry.Old, v.String())
			}
		}
		entries = append(entries, entry)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
