package cmd

import (
	"fmt"
	"strings"

	"github.com/brogergvhs/cometdom/internal/audit"

	"github.com/spf13/cobra"
)

var flagAuditUnused bool

func init() {
	auditCmd := &cobra.Command{
		Use:   "audit <dir>",
		Short: "Find references to comet-dom.js exports that the registry does not provide",
		Args:  cobra.ExactArgs(1),
		RunE:  runAudit,
	}

	auditCmd.Flags().BoolVar(&flagAuditUnused, "unused", false, "also list exports nothing references")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	logSvc := newLogger(false)
	defer logSvc.Sync()

	rep, err := audit.Scan(args[0])
	if err != nil {
		return fmt.Errorf("audit %s: %w", args[0], err)
	}

	logSvc.Infof("Scanned %d file(s), %d reference(s)\n", rep.Files, len(rep.References))

	for _, u := range rep.Unknown {
		logSvc.Errorf("%s:%d: unknown export %q\n", u.File, u.Line, u.Name)
	}

	if flagAuditUnused {
		if unused := rep.Unused(); len(unused) > 0 {
			logSvc.Infof("Unused exports: %s\n", strings.Join(unused, ", "))
		}
	}

	if len(rep.Unknown) > 0 {
		return fmt.Errorf("%d unknown reference(s)", len(rep.Unknown))
	}

	return nil
}
