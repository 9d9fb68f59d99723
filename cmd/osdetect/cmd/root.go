// Package cmd implements the osdetect command line.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	appconfig "github.com/dmitrymomot/osdetect/internal/config"
)

// rootOptions carries the persistent flags and what PersistentPreRunE builds
// from them.
type rootOptions struct {
	output   string
	noColor  bool
	logLevel string

	format Format
	cfg    appconfig.Config
	log    *slog.Logger
}

func (o *rootOptions) printer(cmd *cobra.Command) printer {
	return printer{out: cmd.OutOrStdout(), format: o.format}
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	format, err := ParseFormat(o.output)
	if err != nil {
		return err
	}
	o.format = format

	if o.noColor {
		color.NoColor = true
	}

	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	o.cfg = cfg
	o.log = cfg.Logger(cmd.ErrOrStderr())
	return nil
}

// NewRootCmd builds the osdetect command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "osdetect",
		Short: "Classify operating systems by name, version and architecture",
		Long: `osdetect maps raw operating system strings to a family, a release and
its support tier, and reports the architecture and whether the system looks
like a desktop. It can classify arbitrary input, identify the current host
and serve the classifier over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", string(FormatTable), "Output format. One of: table|json|yaml")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")

	root.AddCommand(
		newClassifyCmd(opts),
		newCurrentCmd(opts),
		newRulesCmd(opts),
		newServeCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// Execute runs the command line until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}
