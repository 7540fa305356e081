package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tripsplice/internal/domain"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View reports from previous batch runs",
		Long:  "View the per-edit reports stored by \"tripsplice batch\" in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: m.Path(cfg.Reports)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
