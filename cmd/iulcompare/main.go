package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iulcompare/iulcompare/internal/calculation"
	"github.com/iulcompare/iulcompare/internal/config"
	"github.com/iulcompare/iulcompare/internal/output"
	"github.com/iulcompare/iulcompare/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "iulcompare",
		Short:         "Compare an IUL illustration against IRA, 401(k) and mutual fund projections",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCompareCmd(&verbose),
		newExampleCmd(),
		newFormatsCmd(),
		newServeCmd(),
	)
	return root
}

func newCompareCmd(verbose *bool) *cobra.Command {
	var (
		input     string
		formats   string
		outputDir string
		toStdout  bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run a comparison for a scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(input)
			if err != nil {
				return err
			}

			engine := calculation.NewComparisonEngine()
			if *verbose {
				logger, err := newLogger("debug", "console")
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
				engine.SetLogger(logger.Sugar())
			}

			report, err := engine.RunComparison(cfg)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			for _, name := range output.ExpandFormatNames(formats) {
				if toStdout {
					f := output.GetFormatterByName(name)
					if f == nil {
						return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, name)
					}
					data, err := f.Format(report)
					if err != nil {
						return err
					}
					if _, err := cmd.OutOrStdout().Write(data); err != nil {
						return err
					}
					continue
				}
				files, err := output.GenerateReport(report, name, outputDir)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "scenario YAML file")
	cmd.Flags().StringVarP(&formats, "format", "f", "console", "comma-separated output formats, or 'all'")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for written reports")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write reports to stdout instead of files")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example scenario written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "example_scenario.yaml", "destination file")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, n := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %s\n", n)
			}
			fmt.Fprintln(out, "Aliases:")
			for _, a := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", a, output.NormalizeFormatName(a))
			}
		},
	}
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			engine := calculation.NewComparisonEngine()
			engine.SetLogger(logger.Sugar())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, engine, logger).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides IULCOMPARE_ADDR)")
	return cmd
}

// newLogger sets up structured logging with zap
func newLogger(level, format string) (*zap.Logger, error) {
	var zapConfig zap.Config
	if format == "console" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zapConfig.Level = lvl
	return zapConfig.Build()
}
