package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mj1618/window-walker/internal/model"
	"github.com/mj1618/window-walker/internal/walker"
)

var (
	desktopColor = color.New(color.FgCyan)
	titleColor   = color.New(color.FgGreen)
	dryRunColor  = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
)

// PrintText writes a human-readable rendering of windows, desktops and walk
// reports. Other values fall back to YAML.
func PrintText(v interface{}) error {
	switch v := v.(type) {
	case []model.Window:
		for _, w := range v {
			writeWindowLine(Out, w)
		}
		return nil
	case []model.Desktop:
		for _, d := range v {
			marker := " "
			if d.Current {
				marker = "*"
			}
			fmt.Fprintf(Out, "%s %d %s %s\n", marker, d.Number, desktopColor.Sprint(d.Label()), dimColor.Sprint(d.ID))
		}
		return nil
	case *walker.Report:
		writeReport(Out, v)
		return nil
	default:
		return PrintYAML(v)
	}
}

func writeWindowLine(w io.Writer, win model.Window) {
	focused := " "
	if win.Focused {
		focused = "*"
	}
	fmt.Fprintf(w, "%s %3d %s %s %s\n",
		focused,
		win.ZOrder,
		desktopColor.Sprintf("[%s]", win.Desktop.Label()),
		titleColor.Sprintf("%q", win.Title),
		dimColor.Sprintf("%#x pid=%d", win.Handle, win.PID),
	)
}

func writeReport(w io.Writer, r *walker.Report) {
	mode := "live"
	if r.DryRun {
		mode = dryRunColor.Sprint("dry run")
	}
	fmt.Fprintf(w, "%s: visited %d of %d matched (%d enumerated), %d failed\n",
		mode, len(r.Visits), r.Matched, r.Enumerated, len(r.Failures))
	for _, f := range r.Failures {
		fmt.Fprintf(w, "  %s %s %s: %s\n", failColor.Sprint("failed"), f.Stage, f.Window, f.Error)
	}
	if r.Restored && r.RestoreTarget != nil {
		fmt.Fprintf(w, "restored to %s\n", titleColor.Sprintf("%q", r.RestoreTarget.Title))
	}
}

// WriteEvent writes the console notice for a walk event.
func WriteEvent(w io.Writer, e walker.Event) {
	desktop := desktopColor.Sprintf("%q", e.Window.Desktop.Label())
	title := titleColor.Sprintf("%q", e.Window.Title)
	switch e.Kind {
	case walker.EventSwitch:
		if e.DryRun {
			fmt.Fprintf(w, "%s switch to desktop: %s, title: %s\n", dryRunColor.Sprint("Dry run"), desktop, title)
			return
		}
		fmt.Fprintf(w, "Switched to desktop: %s, title: %s\n", desktop, title)
	case walker.EventRestore:
		if e.DryRun {
			fmt.Fprintf(w, "%s restore to desktop: %s, title: %s\n", dryRunColor.Sprint("Dry run"), desktop, title)
			return
		}
		fmt.Fprintf(w, "Restored to desktop: %s, title: %s\n", desktop, title)
	case walker.EventInject:
		if e.DryRun {
			fmt.Fprintf(w, "%s send %q to title: %s\n", dryRunColor.Sprint("Dry run"), e.Payload, title)
			return
		}
		fmt.Fprintf(w, "Sent %q to title: %s\n", e.Payload, title)
	case walker.EventFailure:
		fmt.Fprintf(w, "%s desktop: %s, title: %s: %v\n", failColor.Sprint("Failed"), desktop, title, e.Err)
	}
}
