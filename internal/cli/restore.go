package cli

import (
	"fmt"

	"github.com/extsweep-labs/extsweep/internal/config"
	"github.com/extsweep-labs/extsweep/internal/quarantine"
	"github.com/spf13/cobra"
)

var restoreQuarantine string

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Move quarantined extension versions back to where they came from",
	Long: `Read the sweep manifest inside the quarantine directory and move every
recorded extension directory back to its original root. Entries that cannot
be restored stay in the manifest for a later attempt.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().StringVar(&restoreQuarantine, "quarantine", "", "Quarantine directory to restore from (default from config)")
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	quarantineDir := restoreQuarantine
	if quarantineDir == "" {
		quarantineDir = config.QuarantineDir()
	}

	out := cmd.OutOrStdout()
	restored, remaining, err := quarantine.Restore(quarantineDir, out)
	if err != nil {
		return err
	}

	if restored == 0 && remaining == 0 {
		fmt.Fprintln(out, "Nothing to restore.")
		return nil
	}
	fmt.Fprintf(out, "Restored %d extension(s), %d remaining in quarantine.\n", restored, remaining)
	return nil
}
