package cmd

import (
	"fmt"

	"github.com/mj1618/window-walker/internal/logger"
	"github.com/mj1618/window-walker/internal/output"
	"github.com/mj1618/window-walker/internal/walker"
	"github.com/spf13/cobra"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Switch to every application window in z-order, then return",
	Long: `Switch to each application window in front-to-back z-order, across all
virtual desktops, then restore focus to the window that was active before.

Nothing happens unless --dry-run, --execute, or --title is given. With
--title only windows whose title is exactly that string are visited, dry-run
is ignored, and focus is not restored.

Examples:
  window-walker walk --dry-run
  window-walker walk --execute
  window-walker walk --title "微信"`,
	RunE: runWalk,
}

func init() {
	rootCmd.AddCommand(walkCmd)
	walkCmd.Flags().BoolP("dry-run", "d", false, "Preview the walk without switching anything")
	walkCmd.Flags().BoolP("execute", "e", false, "Actually switch desktops and focus")
	walkCmd.Flags().StringP("title", "t", "", "Only visit windows with exactly this title (forces dry-run off)")
	walkCmd.Flags().Bool("current-desktop", false, "Only visit windows on the active virtual desktop")
	walkCmd.Flags().Duration("interval", 0, "Delay after each switch (default from config: 200ms, 0 in dry-run)")
}

func runWalk(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	execute, _ := cmd.Flags().GetBool("execute")
	title, _ := cmd.Flags().GetString("title")
	currentDesktop, _ := cmd.Flags().GetBool("current-desktop")
	interval, _ := cmd.Flags().GetDuration("interval")
	if interval < 0 {
		return fmt.Errorf("--interval must not be negative")
	}

	effectiveDryRun, err := walker.AuthorizeSwitch(dryRun, execute, title)
	if err != nil {
		logger.Warn("Not executing the walk since the --execute argument is not set.")
		return err
	}
	if title != "" {
		logger.Debugf("Specifying title: %s, the dry-run argument is set to false ignoring the argument.", title)
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}

	opts := switchOptions(currentConfig(), effectiveDryRun, title, currentDesktop)
	if cmd.Flags().Changed("interval") {
		opts.Interval = interval
		opts.DryRunInterval = interval
	}

	report, err := runWalker(commandContext(cmd), provider, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return output.Print(report)
}
