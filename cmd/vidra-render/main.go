// SPDX-License-Identifier: Unlicense OR MIT

// Command vidra-render is the CLI entrypoint that exercises the core
// render pipeline as a runnable program: load a project IR file,
// validate it, run the pipeline, and write out a content-hash receipt
// (or individual PNG frames). Every other CLI surface named in the
// broader system (auth, jobs, brand kits, telemetry, workspaces,
// publish, sync, templates, the dev server, the LSP) is out of scope.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sansa-Organisation/vidra-sub001/rlog"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "vidra-render",
		Short: "Deterministic frame-by-frame video synthesis",
		Long: `vidra-render loads a project IR file, validates it, and renders it
frame by frame through a single-threaded, content-hash-verifiable
compositing pipeline.`,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug|info|warning|error")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lvl, err := parseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = rlog.NewLogger(lvl)
		return nil
	}

	root.AddCommand(validateCmd())
	root.AddCommand(renderCmd())
	root.AddCommand(hashCmd())
	return root
}

// logger is assigned once in PersistentPreRunE before any subcommand
// runs.
var logger *rlog.Logger

func parseLevel(s string) (rlog.Level, error) {
	switch s {
	case "debug":
		return rlog.LevelDebug, nil
	case "info":
		return rlog.LevelInfo, nil
	case "warning":
		return rlog.LevelWarning, nil
	case "error":
		return rlog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
