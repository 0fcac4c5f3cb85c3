package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/internal/config"
	"github.com/matzehuels/poscode/pkg/bench"
)

// benchFlags holds flag values that override the config file.
type benchFlags struct {
	configPath string
	algorithms []string
	size       int
	iterations int
	cpu        int
	seed       int64
	noCache    bool
	refresh    bool
	table      bool
}

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the rank/unrank families and enumerators",
		Long: `Benchmark the rank/unrank families and enumerators over the full code
space of one size. Each run prints a REPORT_START ... REPORT_END block.

Settings come from --config (TOML) and are overridden by explicit flags.
Reports are cached per build and settings; --refresh measures again.`,
		Example: `  poscode bench --size 10 --algorithm enumerate,fastmap
  poscode bench --config bench.toml --cpu 1 --table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadBenchConfig(cmd, f)
			if err != nil {
				return err
			}
			return c.runBench(cmd, cfg, f)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringSliceVarP(&f.algorithms, "algorithm", "a", nil, "algorithms to run (default all)")
	cmd.Flags().IntVarP(&f.size, "size", "n", config.DefaultSize, "permutation size")
	cmd.Flags().IntVar(&f.iterations, "iterations", config.DefaultIterations, "iterations per algorithm (fastest is reported)")
	cmd.Flags().IntVar(&f.cpu, "cpu", config.NoPin, "pin the measuring thread to this CPU (-1 disables)")
	cmd.Flags().Int64Var(&f.seed, "seed", config.DefaultSeed, "seed for the unrank visit order")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached reports")
	cmd.Flags().BoolVar(&f.table, "table", false, "print a summary table instead of report blocks")

	return cmd
}

// loadBenchConfig reads the config file (if any) and applies flags the
// user set explicitly.
func loadBenchConfig(cmd *cobra.Command, f benchFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithms = f.algorithms
	}
	if flags.Changed("size") {
		cfg.Size = f.size
	}
	if flags.Changed("iterations") {
		cfg.Iterations = f.iterations
	}
	if flags.Changed("cpu") {
		cpu := f.cpu
		cfg.CPU = &cpu
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CLI) runBench(cmd *cobra.Command, cfg *config.Config, f benchFlags) error {
	ctx := cmd.Context()
	runner, err := c.newRunner(ctx, cfg, f.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	out := cmd.OutOrStdout()
	var reports []*bench.Report
	for _, name := range cfg.Algorithms {
		a, err := bench.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Running %s (n=%d)...", a, cfg.Size))
		spinner.Start()
		rep, cached, err := runner.Run(ctx, bench.Options{
			Algorithm:  a,
			Size:       cfg.Size,
			Iterations: cfg.Iterations,
			Seed:       cfg.Seed,
			CPU:        cfg.PinnedCPU(),
			Refresh:    f.refresh,
		})
		spinner.Stop()
		if err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
		reports = append(reports, rep)

		if f.table {
			fmt.Fprintln(os.Stderr, runStats(rep, cached))
			continue
		}
		if err := rep.WriteText(out); err != nil {
			return err
		}
	}

	if f.table {
		fmt.Fprintln(out, reportTable(reports))
	}
	return nil
}
