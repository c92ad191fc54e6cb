package cmd

import (
	"fmt"

	"github.com/mj1618/window-walker/internal/model"
	"github.com/mj1618/window-walker/internal/output"
	"github.com/spf13/cobra"
)

var desktopsCmd = &cobra.Command{
	Use:   "desktops",
	Short: "List virtual desktops",
	Long:  "List virtual desktops with their number and name. The active desktop is marked current.",
	RunE:  runDesktops,
}

func init() {
	rootCmd.AddCommand(desktopsCmd)
}

func runDesktops(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.Reader == nil {
		return fmt.Errorf("desktop enumeration not available on this platform")
	}

	desktops, err := provider.Reader.ListDesktops()
	if err != nil {
		return err
	}
	if desktops == nil {
		desktops = []model.Desktop{}
	}
	return output.Print(desktops)
}
