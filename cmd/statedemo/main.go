// Command statedemo exercises observable values and lists from the terminal.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/odvcencio/furry-state/state"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "statedemo: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "statedemo",
		Short:         "Walk through observable value bindings and list change events",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if !debug {
				state.SetLogger(nil)
				return
			}
			state.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log bindings and change events to stderr")

	cmd.AddCommand(
		valueCmd(),
		listCmd(),
		dumpCmd(),
	)
	return cmd
}
