package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lifegrid %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// newLogger returns a stderr logger when debug is set and a no-op logger
// otherwise.
func newLogger(debug bool) calculation.Logger {
	if !debug {
		return calculation.NopLogger{}
	}
	return stderrLogger(true)
}

func stderrLogger(verbose bool) calculation.StdLogger {
	return calculation.StdLogger{L: log.New(os.Stderr, "lifegrid ", log.LstdFlags), Verbose: verbose}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lifegrid",
		Short: "Visualize your life in days",
		Long: "LifeGrid lays out an expected lifespan as a grid of days, one square per day,\n" +
			"and reports how much of it has been lived.",
		SilenceUsage: true,
	}

	root.AddCommand(statsCmd())
	root.AddCommand(renderCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
