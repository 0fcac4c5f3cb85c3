package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/internal/cli"
	perrors "github.com/matzehuels/poscode/pkg/errors"
)

// Exit codes.
const (
	exitFailure  = 1
	exitUsage    = 2   // rejected input: bad code, permutation, size or config
	exitCanceled = 130 // shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return exitCanceled
	case perrors.IsValidation(err), perrors.Is(err, perrors.ErrCodeInvalidConfig):
		fmt.Fprintf(os.Stderr, "poscode: %s\n", perrors.UserMessage(err))
		return exitUsage
	default:
		fmt.Fprintf(os.Stderr, "poscode: %v\n", err)
		return exitFailure
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level is only known after flag parsing, so it is applied ahead of
	// the root hook that attaches the logger to the context.
	attach := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if attach != nil {
			return attach(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
