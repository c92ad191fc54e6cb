package cmd

import (
	"github.com/mj1618/window-walker/internal/logger"
	"github.com/mj1618/window-walker/internal/output"
	"github.com/mj1618/window-walker/internal/walker"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Type a message into every window of the messaging app",
	Long: `Switch to every window whose title equals the configured messaging app
title (send.title, default "微信"), type the content, press Enter, and
finally return focus to the window that was active before.

--execute is required. Because the target title is fixed, --dry-run is
ignored.

Examples:
  window-walker send --execute
  window-walker send --execute --content "Good morning"`,
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().BoolP("dry-run", "d", false, "Ignored: the fixed title forces a live run")
	sendCmd.Flags().BoolP("execute", "e", false, "Actually switch windows and type the content")
	sendCmd.Flags().StringP("content", "c", "", "Content to send (default from config)")
}

func runSend(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	execute, _ := cmd.Flags().GetBool("execute")
	content, _ := cmd.Flags().GetString("content")

	if _, err := walker.AuthorizeSend(dryRun, execute); err != nil {
		logger.Warn("Not executing the walk since the --execute argument is not set.")
		return err
	}

	cfg := currentConfig()
	if dryRun {
		logger.Debugf("Specifying title: %s, the dry-run argument is set to false ignoring the argument.", cfg.Send.Title)
	}
	if content == "" {
		content = cfg.Send.Content
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}

	report, err := runWalker(commandContext(cmd), provider, sendOptions(cfg, content), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return output.Print(report)
}
