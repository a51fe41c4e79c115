package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"excalc/internal/bootstrap"
	"excalc/internal/platform/config"
	"excalc/internal/platform/layout"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// A second interrupt kills the process the default way.
	context.AfterFunc(ctx, stop)
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := config.DefaultOptions()

	root := &cobra.Command{
		Use:           "excalc",
		Short:         "Estimate calories burned biking, running and swimming",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			_, err = app.SessionCLI.Run(cmd.Context())
			return err
		},
	}
	flags := root.PersistentFlags()
	flags.BoolVar(&opts.Plain, "plain", opts.Plain, "disable cursor-control escape sequences")
	flags.BoolVar(&opts.TreadmillQuestion, "treadmill-question", opts.TreadmillQuestion, "ask whether a run was on a treadmill")
	flags.BoolVar(&opts.OptionsListing, "options-listing", opts.OptionsListing, "allow 'options' at choice prompts and the 'swimming styles' command")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug|info|warn|error")
	flags.StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "log format: text|json")

	root.AddCommand(newStylesCmd(&opts))
	return root
}

func loadApp(cmd *cobra.Command, opts config.Options) (*bootstrap.App, error) {
	cfg, err := config.New(opts)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, bootstrap.IO{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
}

func newStylesCmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List swimming styles and their MET values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, *opts)
			if err != nil {
				return err
			}
			styles, err := app.ExerciseCLI.SwimmingStyles(cmd.Context())
			if err != nil {
				return err
			}
			for _, style := range styles {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s | %s\n", layout.PadRight(style.Name, config.DefaultLabelWidth), layout.Number(style.MET))
			}
			return nil
		},
	}
}
