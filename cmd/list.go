package cmd

import (
	"fmt"

	"github.com/mj1618/window-walker/internal/model"
	"github.com/mj1618/window-walker/internal/output"
	"github.com/mj1618/window-walker/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List application windows in z-order",
	Long:  "List application windows front to back with their title, owning virtual desktop, handle, and PID. This is the order a walk visits them in.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("current-desktop", false, "Only list windows on the active virtual desktop")
	listCmd.Flags().StringP("title", "t", "", "Only list windows with exactly this title")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.Reader == nil {
		return fmt.Errorf("window enumeration not available on this platform")
	}

	currentDesktop, _ := cmd.Flags().GetBool("current-desktop")
	title, _ := cmd.Flags().GetString("title")

	windows, err := provider.Reader.ListWindows(platform.ListOptions{
		CurrentDesktop: currentDesktop,
		Title:          title,
	})
	if err != nil {
		return err
	}
	if windows == nil {
		windows = []model.Window{}
	}
	return output.Print(windows)
}
