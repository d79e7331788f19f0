// Package cmd wires the healthsnap command line.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"healthsnap/internal/config"
	"healthsnap/internal/health"
	"healthsnap/internal/metrics"
	"healthsnap/internal/report"
)

var version = "dev"

var rootCmd = newRootCmd(nil)

// Execute runs the root command. Cobra prints the error before this returns,
// so callers only decide the exit code.
func Execute() error {
	return rootCmd.Execute()
}

type options struct {
	cfgFile        string
	sampleWindowMS int
	rootPath       string
	verbose        bool
}

// newRootCmd builds the command. A nil source means the running host; tests
// pass a fake.
func newRootCmd(source metrics.Source) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "healthsnap",
		Short: "Print a one-shot health snapshot of this host",
		Long: `healthsnap samples CPU utilization over a fixed window, queries memory,
root-filesystem usage and cumulative disk IO counters, and prints the result
as one indented JSON record on stdout.

The CPU sample blocks for the sampling window (1s unless configured), so a
run is expected to take about that long.`,
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := source
			if src == nil {
				src = metrics.NewSystemSource()
			}
			return run(cmd, opts, src)
		},
	}

	cmd.Flags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default ~/.healthsnap.yaml)")
	cmd.Flags().IntVar(&opts.sampleWindowMS, "sample-window-ms", config.DefaultSampleWindowMS, "CPU sampling window in milliseconds")
	cmd.Flags().StringVar(&opts.rootPath, "root-path", config.DefaultRootPath, "filesystem path measured for disk usage")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, source metrics.Source) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	path := opts.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Error("loading config", zap.Error(err))
		return err
	}
	if cmd.Flags().Changed("sample-window-ms") {
		cfg.SampleWindowMS = opts.sampleWindowMS
	}
	if cmd.Flags().Changed("root-path") {
		cfg.RootPath = opts.rootPath
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	collector := health.NewCollector(source, cfg.RootPath, cfg.Window(), logger)
	rec, err := collector.Collect()
	if err != nil {
		logger.Error("collecting health snapshot", zap.Error(err))
		return err
	}

	if err := report.New(cmd.OutOrStdout()).Report(rec); err != nil {
		logger.Error("writing health snapshot", zap.Error(err))
		return err
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
