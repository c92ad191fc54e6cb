package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/mj1618/window-walker/internal/config"
	"github.com/mj1618/window-walker/internal/lock"
	"github.com/mj1618/window-walker/internal/logger"
	"github.com/mj1618/window-walker/internal/output"
	"github.com/mj1618/window-walker/internal/platform"
	"github.com/mj1618/window-walker/internal/walker"
	"github.com/spf13/cobra"
)

// lockPath is the instance lock shared by every walking command.
var lockPath = lock.DefaultPath()

func newProvider() (*platform.Provider, error) {
	return platform.NewProvider(platform.ProviderOptions{AccessorDLL: currentConfig().AccessorDLL})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// switchOptions builds the app-switcher walk: restore unless filtered,
// no payload.
func switchOptions(cfg *config.Config, dryRun bool, title string, currentDesktop bool) walker.Options {
	opts := walker.Options{
		DryRun:             dryRun,
		CurrentDesktopOnly: currentDesktop,
		Interval:           cfg.Walk.Interval,
		DryRunInterval:     cfg.Walk.DryRunInterval,
		Restore:            walker.RestoreUnlessFiltered,
	}
	if title != "" {
		opts.Matcher = walker.TitleEquals(title)
	}
	return opts
}

// sendOptions builds the messaging walk: fixed title, payload on every
// match, and focus always returned to where the user was.
func sendOptions(cfg *config.Config, content string) walker.Options {
	return walker.Options{
		Matcher:     walker.TitleEquals(cfg.Send.Title),
		Payload:     content,
		SubmitKey:   cfg.Send.SubmitKey,
		KeyDelayMs:  cfg.Send.KeyDelayMs,
		Interval:    cfg.Send.Interval,
		SettleDelay: cfg.Send.SettleDelay,
		Restore:     walker.RestoreAlways,
	}
}

// runWalker runs one walk, streaming events to events when it is non-nil.
// Live walks hold the instance lock; dry runs never touch focus and skip it.
func runWalker(ctx context.Context, provider *platform.Provider, opts walker.Options, events io.Writer) (*walker.Report, error) {
	if !opts.DryRun {
		l, err := lock.Acquire(lockPath)
		if err != nil {
			return nil, err
		}
		defer l.Release()
	}

	options := []walker.Option{walker.WithLogger(logger.Get())}
	if events != nil {
		options = append(options, walker.WithObserver(walker.ObserverFunc(func(e walker.Event) {
			if e.Kind != walker.EventFailure {
				output.WriteEvent(events, e)
			}
		})))
	}

	w, err := walker.New(provider.Reader, provider.WindowManager, provider.Inputter, opts, options...)
	if err != nil {
		return nil, err
	}
	report, err := w.Run(ctx)
	if err != nil {
		logger.Error("Walk aborted", err)
		return report, fmt.Errorf("walk aborted: %w", err)
	}
	logger.Infof("Walk finished: %d of %d windows visited, %d failures", len(report.Visits), report.Matched, len(report.Failures))
	return report, nil
}

// Parameter extraction helpers for MCP tool arguments

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
