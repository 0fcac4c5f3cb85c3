package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/pkg/bench"
)

// reportCommand creates the report command, which tabulates saved report
// blocks from bench output or any program using the same format.
func (c *CLI) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report <file>...",
		Short: "Summarize REPORT_START ... REPORT_END blocks from log files",
		Example: `  poscode bench --size 11 > run.log
  poscode report run.log`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var all []*bench.Report
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				reports, err := bench.ParseText(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				all = append(all, reports...)
			}
			if len(all) == 0 {
				printWarning("No reports found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), reportTable(all))
			return nil
		},
	}
}
