// Package walker visits application windows one by one: it enumerates the
// windows in z-order, filters them, switches desktop and focus to each in
// turn (or only previews the switch in dry-run mode), optionally types a
// payload into each, and finally returns focus to the window that was active
// before the walk started.
package walker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/window-walker/internal/model"
	"github.com/mj1618/window-walker/internal/platform"
	"github.com/rs/zerolog"
)

// RestorePolicy decides whether focus returns to the original window after
// the walk.
type RestorePolicy int

const (
	// RestoreUnlessFiltered restores only when no matcher was supplied.
	RestoreUnlessFiltered RestorePolicy = iota
	// RestoreAlways restores after every walk.
	RestoreAlways
	// RestoreNever leaves focus on the last visited window.
	RestoreNever
)

func (p RestorePolicy) String() string {
	switch p {
	case RestoreUnlessFiltered:
		return "unless-filtered"
	case RestoreAlways:
		return "always"
	case RestoreNever:
		return "never"
	default:
		return fmt.Sprintf("RestorePolicy(%d)", int(p))
	}
}

// Options configures a single walk.
type Options struct {
	Matcher            Matcher       // nil visits every window
	DryRun             bool          // preview only, no OS mutation
	CurrentDesktopOnly bool          // enumerate the active desktop only
	Payload            string        // typed into each visited window, then submitted
	SubmitKey          string        // key pressed after the payload (default enter)
	KeyDelayMs         int           // delay between payload keystrokes
	Interval           time.Duration // wait after each live visit
	DryRunInterval     time.Duration // wait after each dry-run visit
	SettleDelay        time.Duration // wait between focusing and typing the payload
	Restore            RestorePolicy
}

// Walker performs one walk over the current set of windows.
type Walker struct {
	reader   platform.Reader
	wm       platform.WindowManager
	inputter platform.Inputter
	opts     Options
	log      zerolog.Logger
	observer Observer
	sleep    func(ctx context.Context, d time.Duration) error
}

// Option customizes a Walker.
type Option func(*Walker)

// WithLogger sets the logger used for failures and debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Walker) { w.log = l }
}

// WithObserver sets the receiver of per-window events.
func WithObserver(o Observer) Option {
	return func(w *Walker) { w.observer = o }
}

// New creates a Walker. inputter may be nil when no payload is configured.
func New(reader platform.Reader, wm platform.WindowManager, inputter platform.Inputter, opts Options, options ...Option) (*Walker, error) {
	if reader == nil {
		return nil, fmt.Errorf("window enumeration not available on this platform")
	}
	if wm == nil && !opts.DryRun {
		return nil, fmt.Errorf("window management not available on this platform")
	}
	if opts.Payload != "" && inputter == nil && !opts.DryRun {
		return nil, fmt.Errorf("input simulation not available on this platform")
	}
	w := &Walker{
		reader:   reader,
		wm:       wm,
		inputter: inputter,
		opts:     opts,
		log:      zerolog.Nop(),
		observer: ObserverFunc(func(Event) {}),
		sleep:    sleepContext,
	}
	for _, o := range options {
		o(w)
	}
	return w, nil
}

// Run enumerates, filters, visits and restores. Per-window failures are
// recorded in the report and never abort the walk; the returned error is
// non-nil only when enumeration fails or ctx is cancelled.
func (w *Walker) Run(ctx context.Context) (*Report, error) {
	windows, err := w.reader.ListWindows(platform.ListOptions{CurrentDesktop: w.opts.CurrentDesktopOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}
	targets := Filter(windows, w.opts.Matcher)

	report := &Report{
		DryRun:     w.opts.DryRun,
		Filtered:   w.opts.Matcher != nil,
		Enumerated: len(windows),
		Matched:    len(targets),
		Visits:     []Visit{},
		Failures:   []Failure{},
	}

	// Snapshot before any switching so the restore target is well defined.
	original, err := w.reader.CurrentWindow()
	if err != nil {
		w.log.Warn().Err(err).Msg("Failed to read the focused window, focus will not be restored")
	} else {
		report.RestoreTarget = &original
	}

	w.log.Debug().
		Int("enumerated", len(windows)).
		Int("matched", len(targets)).
		Bool("dry_run", w.opts.DryRun).
		Msg("Starting walk")

	for _, win := range targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := w.visit(win); err != nil {
			w.fail(report, win, StageVisit, err)
			continue
		}
		visit := Visit{Window: win, DryRun: w.opts.DryRun}

		if w.opts.Payload != "" {
			if !w.opts.DryRun {
				if err := w.sleep(ctx, w.opts.SettleDelay); err != nil {
					return report, err
				}
			}
			if err := w.inject(win); err != nil {
				report.Visits = append(report.Visits, visit)
				w.fail(report, win, StageInject, err)
				continue
			}
			visit.Injected = !w.opts.DryRun
		}
		report.Visits = append(report.Visits, visit)

		if err := w.sleep(ctx, w.interval()); err != nil {
			return report, err
		}
	}

	if report.RestoreTarget != nil && w.shouldRestore() {
		target := *report.RestoreTarget
		if err := w.visitAs(target, EventRestore); err != nil {
			w.fail(report, target, StageRestore, err)
		} else {
			report.Restored = true
			w.log.Debug().Stringer("window", target).Msg("Restored to the application")
		}
	}

	return report, nil
}

func (w *Walker) interval() time.Duration {
	if w.opts.DryRun {
		return w.opts.DryRunInterval
	}
	return w.opts.Interval
}

func (w *Walker) submitKey() string {
	if w.opts.SubmitKey == "" {
		return platform.KeyEnter
	}
	return w.opts.SubmitKey
}

func (w *Walker) shouldRestore() bool {
	switch w.opts.Restore {
	case RestoreAlways:
		return true
	case RestoreUnlessFiltered:
		return w.opts.Matcher == nil
	default:
		return false
	}
}

func (w *Walker) visit(win model.Window) error {
	return w.visitAs(win, EventSwitch)
}

// visitAs switches to the window's desktop and focuses it, or only reports
// the intended switch in dry-run mode.
func (w *Walker) visitAs(win model.Window, kind EventKind) error {
	if w.opts.DryRun {
		w.observer.Observe(Event{Kind: kind, Window: win, DryRun: true})
		return nil
	}
	if err := w.wm.SwitchDesktop(win.Desktop); err != nil {
		return fmt.Errorf("switch to desktop %q: %w", win.Desktop.Label(), err)
	}
	if err := w.wm.FocusWindow(win); err != nil {
		return fmt.Errorf("focus window: %w", err)
	}
	w.observer.Observe(Event{Kind: kind, Window: win})
	return nil
}

// inject types the payload into the focused window and submits it.
func (w *Walker) inject(win model.Window) error {
	if w.opts.DryRun {
		w.observer.Observe(Event{Kind: EventInject, Window: win, DryRun: true, Payload: w.opts.Payload})
		return nil
	}
	if err := w.inputter.TypeText(w.opts.Payload, w.opts.KeyDelayMs); err != nil {
		return fmt.Errorf("type payload: %w", err)
	}
	if err := w.inputter.KeyPress(w.submitKey()); err != nil {
		return fmt.Errorf("submit payload: %w", err)
	}
	w.observer.Observe(Event{Kind: EventInject, Window: win, Payload: w.opts.Payload})
	return nil
}

func (w *Walker) fail(report *Report, win model.Window, stage Stage, err error) {
	w.log.Error().
		Err(err).
		Str("stage", string(stage)).
		Str("hwnd", fmt.Sprintf("%#x", win.Handle)).
		Str("title", win.Title).
		Str("desktop", win.Desktop.Label()).
		Bool("stale", errors.Is(err, platform.ErrStaleWindow)).
		Msg("Failed to find window")
	report.Failures = append(report.Failures, Failure{
		Window: win,
		Stage:  stage,
		Error:  err.Error(),
		Err:    err,
	})
	w.observer.Observe(Event{Kind: EventFailure, Window: win, Err: err})
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
