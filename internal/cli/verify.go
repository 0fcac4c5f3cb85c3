package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/internal/config"
	"github.com/matzehuels/poscode/pkg/bench"
)

// verifyCommand creates the verify command.
func (c *CLI) verifyCommand() *cobra.Command {
	var noCache, refresh bool

	cmd := &cobra.Command{
		Use:   "verify <n>",
		Short: "Check every rank/unrank law for sizes 1..n",
		Long: `Check every rank/unrank law exhaustively for sizes 1..n:
round trips in both directions for each family, agreement between families,
lookup consistency, and full coverage of the incremental enumerator.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0], bench.MaxVerifySize)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, config.Default(), noCache)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Verifying sizes 1..%d...", n))
			spinner.Start()
			prog := newProgress(loggerFromContext(ctx))
			rep, cached, err := runner.Verify(ctx, n, refresh)
			spinner.Stop()
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Verified %d checks", len(rep.Checks)))

			failed := rep.Failed()
			if len(failed) == 0 {
				status := iconFresh
				if cached {
					status = iconCached
				}
				printSuccess("All %d checks passed (%s)", len(rep.Checks), status)
				return nil
			}
			for _, f := range failed {
				printError("%s n=%d", f.Property, f.Size)
				printDetail("%s", f.Detail)
			}
			return fmt.Errorf("%d of %d checks failed", len(failed), len(rep.Checks))
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")

	return cmd
}
