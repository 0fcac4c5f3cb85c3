package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/pkg/perm"
)

// enumerateCommand creates the enumerate command.
func (c *CLI) enumerateCommand() *cobra.Command {
	var limit int
	var codes bool
	var heap bool

	cmd := &cobra.Command{
		Use:   "enumerate <n>",
		Short: "Print every permutation of size n",
		Long: `Print every permutation of size n, one per line.

Permutations come from the incremental enumerator, which steps the code
space as a mixed-radix counter and patches the permutation in place. With
--codes each line is prefixed with the code of the emitted permutation's
inverse. --heap uses Heap's algorithm instead.`,
		Example: `  poscode enumerate 3
  poscode enumerate --codes --limit 10 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0], maxListSize)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			defer w.Flush()

			if heap {
				i := 0
				for p := range perm.HeapSeq(n) {
					if limit > 0 && i >= limit {
						break
					}
					fmt.Fprintln(w, p.Join(","))
					i++
				}
				return nil
			}

			e, err := perm.NewEnumerator(n)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			for e.Next() {
				if limit > 0 && e.Count() > limit {
					break
				}
				if e.Count()&0xffff == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				if codes {
					fmt.Fprintf(w, "%s\t%s\n", e.Code().Join(","), e.Permutation().Join(","))
				} else {
					fmt.Fprintln(w, e.Permutation().Join(","))
				}
			}
			loggerFromContext(ctx).Debug("enumerated", "n", n, "count", e.Count(), "checksum", e.Checksum())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "stop after this many permutations (0 = all)")
	cmd.Flags().BoolVar(&codes, "codes", false, "prefix each permutation with its code")
	cmd.Flags().BoolVar(&heap, "heap", false, "use Heap's algorithm")

	return cmd
}
