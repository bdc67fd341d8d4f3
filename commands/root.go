// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/render"
)

type runFunc func(cmd *cobra.Command, args []string) error

// NewRoot builds the command tree. Shared flags live on the root and are
// resolved against the environment before any subcommand runs.
func NewRoot() *cobra.Command {
	cfg := &cliparse.Config{}

	root := &cobra.Command{
		Use:           "panchayat",
		Short:         "Village election simulator and sibling exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliparse.ApplyEnv(cfg); err != nil {
				return err
			}
			slog.SetDefault(NewLogger(cmd.ErrOrStderr(), cfg.Level()))
			return nil
		},
	}
	root.PersistentFlags().AddFlagSet(cliparse.NewFlagSet(cfg))

	root.AddCommand(
		newSimulateCommand(cfg),
		newRegionsCommand(cfg),
		newTiffinCommand(cfg),
		newPatternCommand(cfg),
	)

	return root
}

// NewLogger logs text to terminals and JSON everywhere else
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// withLogging wraps a command with start and completion logging
func withLogging(next runFunc) runFunc {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		slog.Debug("command started", "command", cmd.Name(), "args", args)

		err := next(cmd, args)

		slog.Debug("command completed",
			"command", cmd.Name(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)

		return err
	}
}

// write renders v as JSON, or with text when the text format is selected
func write(cmd *cobra.Command, cfg *cliparse.Config, v any, text func(io.Writer) error) error {
	if cfg.Format == cliparse.FormatJSON {
		return render.JSON(cmd.OutOrStdout(), v)
	}
	return text(cmd.OutOrStdout())
}
