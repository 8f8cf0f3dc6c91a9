package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/krux-signer/core/internal/kef"
)

func init() {
	rootCmd.AddCommand(versionsCmd)
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the registered KEF version table",
	RunE:  runVersions,
}

func runVersions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tMODE\tIV\tPADDING\tCOMPRESS\tAUTH\tAUTH SIZE")
	for _, row := range kef.Versions {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%t\t%s\t%d\n",
			row.Version, row.Mode, row.IVSize, row.Padding, row.Compress, row.AuthType, row.AuthSize)
	}
	return w.Flush()
}
