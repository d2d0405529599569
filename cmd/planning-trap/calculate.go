package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/planning-trap/internal/config"
	"github.com/iwvelando/planning-trap/internal/engine"
	"github.com/iwvelando/planning-trap/internal/platform"
	"github.com/iwvelando/planning-trap/internal/prefs"
	"github.com/iwvelando/planning-trap/internal/session"
	"github.com/iwvelando/planning-trap/internal/tui"
	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/output"
	"github.com/iwvelando/planning-trap/pkg/share"
	"github.com/iwvelando/planning-trap/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	shareLinkedIn = "linkedin"
	shareTwitter  = "twitter"
)

// Package-level variables allow mocking in tests.
var (
	copyText     = platform.CopyText
	openURL      = platform.OpenURL
	runAnimation = tui.Run
	openStore    = prefs.Open
)

type calculateOptions struct {
	rate         string
	duration     string
	customWeeks  string
	hours        string
	outputFormat string
	share        string
	animate      bool
	copy         bool
	open         bool
}

func newCalculateCommand(root *rootOptions) *cobra.Command {
	opts := &calculateOptions{}

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the cost of planning instead of shipping",
		Long: "Calculate the direct and opportunity cost of time spent planning.\n" +
			"Hourly rate and hours per week fall back to the values saved by the\n" +
			"previous run, then to $75/hour and 20 hours/week.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := root.loadApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()
			return runCalculate(cmd, conf, logger, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.rate, "rate", "r", "", "hourly rate in dollars (default 75)")
	flags.StringVarP(&opts.duration, "duration", "d", "4", "planning duration in weeks (1, 2, 4, 8, 12, 26, 52) or custom")
	flags.StringVar(&opts.customWeeks, "custom-weeks", "1", "number of weeks when --duration is custom")
	flags.StringVarP(&opts.hours, "hours", "H", "", "planning hours per week (default 20)")
	flags.StringVarP(&opts.outputFormat, "output-format", "o", "", "type of output override: pretty, csv, json")
	flags.StringVar(&opts.share, "share", "", "print a share link: linkedin or twitter")
	flags.BoolVar(&opts.animate, "animate", false, "play the results reveal in the terminal")
	flags.BoolVar(&opts.copy, "copy", false, "copy the results summary to the clipboard")
	flags.BoolVar(&opts.open, "open", false, "open the share link, or the sprint booking page without --share")
	return cmd
}

func runCalculate(cmd *cobra.Command, conf *config.Configuration, logger *zap.Logger, opts *calculateOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}
	if opts.share != "" && opts.share != shareLinkedIn && opts.share != shareTwitter {
		return fmt.Errorf("expected share target of %s or %s, got %s", shareLinkedIn, shareTwitter, opts.share)
	}
	if err := validation.ValidateDuration(opts.duration); err != nil {
		logger.Warn("unusual planning duration",
			zap.String("op", "main.runCalculate"),
			zap.Error(err),
		)
	}

	store, err := openStore(ctx, conf.Storage)
	if err != nil {
		logger.Warn("preferences unavailable, using memory",
			zap.String("op", "main.runCalculate"),
			zap.String("backend", conf.Storage.Backend),
			zap.Error(err),
		)
		store = prefs.NewMemoryStore()
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("failed to close preference store",
				zap.String("op", "main.runCalculate"),
				zap.Error(closeErr),
			)
		}
	}()

	sess := session.New(logger, store, conf.Storage.Key, session.WithLinks(share.Links{
		SiteURL: conf.Share.SiteURL,
		CTAURL:  conf.Share.CTAURL,
	}))

	saved, err := sess.Restore(ctx)
	if err != nil {
		logger.Warn("failed to load preferences",
			zap.String("op", "main.runCalculate"),
			zap.Error(err),
		)
	}

	in := saved.Apply(engine.Input{})
	flags := cmd.Flags()
	if flags.Changed("rate") {
		in.HourlyRate = engine.Raw(opts.rate)
	}
	if flags.Changed("hours") {
		in.HoursPerWeek = engine.Raw(opts.hours)
	}
	in.Duration = engine.Raw(opts.duration)
	in.CustomWeeks = engine.Raw(opts.customWeeks)

	snap := sess.Calculate(ctx, in)
	display := snap.Display()

	if opts.animate && outputFormat == constants.OutputFormatPretty {
		if err := runAnimation(ctx, display, tea.WithOutput(out)); err != nil {
			return err
		}
	} else if err := output.Write(out, outputFormat, display); err != nil {
		return err
	}

	return shareResult(out, logger, sess, opts)
}

func shareResult(out io.Writer, logger *zap.Logger, sess *session.Session, opts *calculateOptions) error {
	bundle, err := sess.Share()
	if err != nil {
		return err
	}

	if opts.copy {
		if err := copyText(bundle.Summary); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, "Results copied to clipboard.")
	}

	target := ""
	switch opts.share {
	case shareLinkedIn:
		// LinkedIn only accepts a URL, so the post text goes to the clipboard
		target = bundle.LinkedIn.URL
		_, _ = fmt.Fprintf(out, "\n%s\n\n%s\n", bundle.LinkedIn.Text, target)
		if err := copyText(bundle.LinkedIn.Text); err != nil {
			logger.Warn("failed to copy post text",
				zap.String("op", "main.shareResult"),
				zap.Error(err),
			)
		}
	case shareTwitter:
		target = bundle.Twitter.URL
		_, _ = fmt.Fprintf(out, "\n%s\n", target)
	}

	if opts.open {
		if target == "" {
			target = bundle.CTAURL
		}
		return openURL(target)
	}
	return nil
}
