// Command silicon builds verification check programs from session files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dinanoe/silicon"
	"github.com/dinanoe/silicon/formatter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "silicon",
		Short:         "Check-program builder for specification inference",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBuildCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	var (
		branchBools bool
		watch       bool
		verbose     bool
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "build <session.yaml>",
		Short: "Instrument a session's check templates and print the program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			opts := silicon.Options{}
			if cmd.Flags().Changed("branch-bools") {
				opts.BranchBools = &branchBools
			}
			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer logger.Sync()
				opts.Logger = logger
			}

			if !watch {
				result, err := silicon.Run(args[0], opts)
				if err != nil {
					fmt.Fprintln(os.Stderr, "error:", err)
					return err
				}
				fmt.Print(formatter.Format(result.Program, result.Context))
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			err := silicon.Watch(ctx, args[0], opts, func(result *silicon.Result, err error) {
				if err != nil {
					fmt.Fprintln(os.Stderr, "error:", err)
					return
				}
				fmt.Print(formatter.Format(result.Program, result.Context))
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&branchBools, "branch-bools", false, "snapshot booleans through explicit branches")
	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild whenever the session file changes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
