package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/extsweep-labs/extsweep/internal/config"
	"github.com/extsweep-labs/extsweep/internal/dedupe"
	"github.com/extsweep-labs/extsweep/internal/quarantine"
	"github.com/extsweep-labs/extsweep/internal/scanner"
	"github.com/spf13/cobra"
)

var (
	sweepAutoApprove bool
	sweepQuarantine  string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <extensions-path>",
	Short: "Report and quarantine duplicate extension versions",
	Long: `Scan a directory of versioned extension folders, report every logical name
with more than one version, and after confirmation move the non-latest
versions into the quarantine directory. The latest version of each extension
stays in place.

The quarantine directory defaults to "old_versions" resolved against the
current working directory; override it with --quarantine, the
EXTSWEEP_QUARANTINE_DIR environment variable, or the quarantine_dir config key.`,
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().BoolVar(&sweepAutoApprove, "auto-approve", false, "Automatically approve removal of duplicates")
	sweepCmd.Flags().StringVar(&sweepQuarantine, "quarantine", "", "Quarantine directory for old versions (default from config)")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	root := args[0]
	out := cmd.OutOrStdout()

	inv, err := scanner.Scan(root, out)
	if err != nil {
		return err
	}

	duplicates := dedupe.FindDuplicates(inv)
	latest := dedupe.LatestVersions(duplicates)
	dedupe.WriteReport(out, duplicates, latest)

	// No duplicates: no prompt, no quarantine directory.
	if duplicates.Len() == 0 {
		return nil
	}

	if !sweepAutoApprove && !confirmRemoval(cmd.InOrStdin(), out) {
		fmt.Fprintln(out, "No duplicates removed.")
		return nil
	}

	quarantineDir := sweepQuarantine
	if quarantineDir == "" {
		quarantineDir = config.QuarantineDir()
	}

	moves := quarantine.Plan(duplicates, latest, root, quarantineDir)
	done, err := quarantine.Execute(moves, quarantineDir, out)
	if err != nil {
		return err
	}

	if len(done) > 0 {
		if err := quarantine.AppendMoves(quarantineDir, root, done, time.Now()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: updating sweep manifest: %v\n", err)
		}
	}
	return nil
}

// confirmRemoval reads one line from r and returns true only for a
// case-insensitive "yes".
func confirmRemoval(r io.Reader, w io.Writer) bool {
	fmt.Fprint(w, "Remove old duplicates? (yes/no): ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}
