package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"guide-backend/internal/bootstrap"
	"guide-backend/internal/content"
	"guide-backend/internal/shared/config"
	"guide-backend/internal/shared/telemetry"
)

type options struct {
	contentDir string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "guidectl",
		Short: "Query the career, resort and shoulder guides from the terminal",
		Long: `guidectl runs the same lookups as the web pages against the content tables.

Examples:
  guidectl careers --mbti INTJ --interest IT/개발 --count 3
  guidectl resorts --mode car --max 100
  guidectl validate --dir ./content`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			telemetry.SetLogger(telemetry.New(opts.logLevel, "console"))
		},
	}
	root.PersistentFlags().StringVar(&opts.contentDir, "content-dir", "", "read content YAML from this directory instead of the built-in tables")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newCareersCmd(opts),
		newResortsCmd(opts),
		newShoulderCmd(opts),
		newValidateCmd(),
	)
	return root
}

// load reads config and the content bundle the subcommands work on.
func (o *options) load(ctx context.Context) (config.Config, *content.Bundle, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if o.contentDir != "" {
		cfg.Content.Source = "dir"
		cfg.Content.Dir = o.contentDir
	}
	src, err := bootstrap.BuildSource(ctx, cfg.Content, cfg.AWSRegion)
	if err != nil {
		return config.Config{}, nil, err
	}
	b, err := content.Load(ctx, src)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, b, nil
}
