package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/pkg/perm"
)

// unrankCommand creates the unrank command.
func (c *CLI) unrankCommand() *cobra.Command {
	var family string
	var index bool

	cmd := &cobra.Command{
		Use:   "unrank <code|index>",
		Short: "Decode a position code into its permutation",
		Long: `Decode a position code into its permutation.

The code is a comma- or space-separated list with C[0] = 0 and
0 <= C[i] <= i. With --index the argument is a mixed-radix index instead
and --size gives the permutation size.`,
		Example: `  poscode unrank 0,1,1,2
  poscode unrank --family streamlined "[0 0 2 1]"
  poscode unrank --index --size 4 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := perm.ParseFamily(family)
			if err != nil {
				return err
			}

			var code perm.Code
			if index {
				size, _ := cmd.Flags().GetInt("size")
				idx, err := parseIndex(args[0], "index")
				if err != nil {
					return err
				}
				if code, err = perm.CodeFromIndex(idx, size); err != nil {
					return err
				}
			} else if code, err = parseCode(args[0]); err != nil {
				return err
			}

			d, err := perm.Unrank(f, code)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("unranked", "family", f, "code", bracket(code), "index", code.Index())
			fmt.Fprintln(cmd.OutOrStdout(), d.Join(","))
			return nil
		},
	}

	cmd.Flags().StringVarP(&family, "family", "f", "classical", "algorithm family: classical, fastmap, streamlined")
	cmd.Flags().BoolVar(&index, "index", false, "treat the argument as a mixed-radix code index")
	cmd.Flags().Int("size", 0, "permutation size for --index")

	return cmd
}

// rankCommand creates the rank command.
func (c *CLI) rankCommand() *cobra.Command {
	var family string
	var index bool

	cmd := &cobra.Command{
		Use:   "rank <permutation>",
		Short: "Encode a permutation as its position code",
		Example: `  poscode rank 0,3,1,2
  poscode rank --index 3,2,1,0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := perm.ParseFamily(family)
			if err != nil {
				return err
			}
			d, err := parsePermutation(args[0])
			if err != nil {
				return err
			}
			code, err := perm.Rank(f, d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if index {
				if len(code) > perm.MaxIndexSize {
					return fmt.Errorf("index only defined for n <= %d", perm.MaxIndexSize)
				}
				fmt.Fprintln(out, code.Index())
				return nil
			}
			fmt.Fprintln(out, code.Join(","))
			return nil
		},
	}

	cmd.Flags().StringVarP(&family, "family", "f", "classical", "algorithm family: classical, fastmap, streamlined")
	cmd.Flags().BoolVar(&index, "index", false, "print the mixed-radix index instead of the code")

	return cmd
}

// lookupCommand creates the lookup command and its subcommands.
func (c *CLI) lookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Decode a single entry of a permutation from its code",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "value-at <code> <k>",
		Short:   "Print the value at position k",
		Example: `  poscode lookup value-at 0,1,1,2 1`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			k, err := parseIndex(args[1], "position")
			if err != nil {
				return err
			}
			v, err := perm.ValueAt(code, k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "position-of <code> <x>",
		Short:   "Print the position holding value x",
		Example: `  poscode lookup position-of 0,1,1,2 3`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			x, err := parseIndex(args[1], "value")
			if err != nil {
				return err
			}
			p, err := perm.PositionOf(code, x)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	})

	return cmd
}
