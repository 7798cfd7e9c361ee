package cli

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/douglasroos/fcm/pkg/config"
	"github.com/douglasroos/fcm/pkg/fcm"
	"github.com/douglasroos/fcm/pkg/logger"
)

type buildFlags struct {
	file     string
	fromEnv  bool
	envFiles []string
	pretty   bool

	collapseKey           string
	priority              string
	ttl                   int
	restrictedPackageName string
	contentAvailable      bool
	delayWhileIdle        bool
	dryRun                bool
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build message options and print them as JSON",
		Long: `Build message options and print the FCM request body fields as JSON.

Sources are applied in order, later ones overriding earlier ones:
FCM_* environment variables (with --from-env or --env-file), the options
file (--file), then individual flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runBuild(cmd, flags, log)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "YAML or JSON options file")
	f.BoolVar(&flags.fromEnv, "from-env", false, "read FCM_* environment variables")
	f.StringSliceVar(&flags.envFiles, "env-file", nil, ".env files to load before reading the environment (implies --from-env)")
	f.BoolVar(&flags.pretty, "pretty", false, "indent the JSON output")

	f.StringVar(&flags.collapseKey, "collapse-key", "", "collapse key")
	f.StringVar(&flags.priority, "priority", "", "priority: high or normal")
	f.IntVar(&flags.ttl, "ttl", 0, "time to live in seconds (0-2419200)")
	f.StringVar(&flags.restrictedPackageName, "restricted-package-name", "", "restricted package name")
	f.BoolVar(&flags.contentAvailable, "content-available", false, "set content_available")
	f.BoolVar(&flags.delayWhileIdle, "delay-while-idle", false, "set delay_while_idle")
	f.BoolVar(&flags.dryRun, "dry-run", false, "set dry_run")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *buildFlags, log *slog.Logger) error {
	b := fcm.NewOptionsBuilder()

	if flags.fromEnv || len(flags.envFiles) > 0 {
		if err := applyEnv(b, flags.envFiles); err != nil {
			return logRejected(log, "env", err)
		}
		log.Debug("applied environment", logger.Source("env"))
	}

	if flags.file != "" {
		if err := applyFile(b, flags.file); err != nil {
			return logRejected(log, "file", err)
		}
		log.Debug("applied options file", logger.Source("file"), slog.String("path", flags.file))
	}

	if err := applyFlags(cmd, b, flags); err != nil {
		return logRejected(log, "flag", err)
	}

	opts := b.Build()
	log.Debug("built options", logger.Options(opts))

	enc := json.NewEncoder(cmd.OutOrStdout())
	if flags.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(opts)
}

func applyEnv(b *fcm.OptionsBuilder, envFiles []string) error {
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return err
		}
	}
	cfg, err := fcm.LoadConfig()
	if err != nil {
		return err
	}
	return cfg.Apply(b)
}

func applyFile(b *fcm.OptionsBuilder, path string) error {
	r, err := os.Open(path)
	if err != nil {
		return errors.Join(fcm.ErrDecodeFile, err)
	}
	defer r.Close()

	f, err := fcm.ParseFile(r)
	if err != nil {
		return err
	}
	return f.Apply(b)
}

func applyFlags(cmd *cobra.Command, b *fcm.OptionsBuilder, flags *buildFlags) error {
	changed := cmd.Flags().Changed

	if changed("collapse-key") {
		b.SetCollapseKey(flags.collapseKey)
	}
	if changed("priority") {
		if _, err := b.SetPriority(fcm.Priority(flags.priority)); err != nil {
			return err
		}
	}
	if changed("ttl") {
		if _, err := b.SetTimeToLive(flags.ttl); err != nil {
			return err
		}
	}
	if changed("restricted-package-name") {
		b.SetRestrictedPackageName(flags.restrictedPackageName)
	}
	if changed("content-available") {
		b.SetContentAvailable(flags.contentAvailable)
	}
	if changed("delay-while-idle") {
		b.SetDelayWhileIdle(flags.delayWhileIdle)
	}
	if changed("dry-run") {
		b.SetDryRun(flags.dryRun)
	}
	return nil
}

func logRejected(log *slog.Logger, source string, err error) error {
	attrs := []any{logger.Source(source), logger.Error(err)}
	var optErr *fcm.InvalidOptionError
	if errors.As(err, &optErr) {
		attrs = append(attrs, logger.OptionKey(optErr.Option))
	}
	log.Error("options rejected", attrs...)
	return err
}
