// Package cli implements the fcmopts commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/douglasroos/fcm/pkg/logger"
)

type rootFlags struct {
	logFormat string
	verbose   bool
}

// NewRootCmd returns the fcmopts command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "fcmopts",
		Short: "Build and validate FCM message options",
		Long: `fcmopts builds the optional delivery parameters of an FCM downstream
message (collapse key, priority, time to live, ...) from flags, an options
file or FCM_* environment variables, validates them and prints the resulting
request body fields as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", string(logger.FormatText), "log format: text or json")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newBuildCmd(flags), newPrioritiesCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func (f *rootFlags) logger(w io.Writer) (*slog.Logger, error) {
	format := logger.Format(f.logFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("invalid --log-format %q: must be %q or %q", f.logFormat, logger.FormatText, logger.FormatJSON)
	}
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	return logger.New(
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("fcmopts")),
	), nil
}
