package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/pkg/perm"
)

// dotCommand creates the dot command for visualizing a transposition chain.
func (c *CLI) dotCommand() *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "dot <code>",
		Short: "Render the transposition chain of a code (debug tool)",
		Long: `Render the transposition chain of a code as a Graphviz graph.

Each node is the permutation after one step of the classical unrank; the
edge into it is labelled with the swap applied. Trivial swaps are dashed.`,
		Example: `  poscode dot 0,1,1,2
  poscode dot --format svg -o chain.svg 0,0,2,1,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "dot":
				data = []byte(perm.ChainDOT(code))
			case "svg":
				if data, err = perm.RenderChainSVG(cmd.Context(), code); err != nil {
					return fmt.Errorf("render: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (want dot or svg)", format)
			}

			w, err := openOutput(output, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("open output: %w", err)
			}
			if _, err := w.Write(data); err != nil {
				w.Close()
				return fmt.Errorf("write output: %w", err)
			}
			if err := w.Close(); err != nil {
				return err
			}

			if output != "" {
				printSuccess("Chain rendered")
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&format, "format", "dot", "output format: dot or svg")

	return cmd
}
