package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tripsplice/internal/config"
	"github.com/mouse-blink/tripsplice/internal/domain"
)

const listLongDescription = `List the flights and hotels sections of generated pages.

Every <AirplaneSection> and <HotelsSection> block is shown with its section
index and the number of elements in its array prop. Use the section index
with "tripsplice edit --section".

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories`

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List flights and hotels sections",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{
				Paths:      parsePaths(args),
				Extensions: cfg.Extensions,
				Exclude:    listExcludeFlags,
			})
		},
	}
	cmd.Flags().StringSlice(config.KeyExtensions, config.DefaultExtensions, "source file extensions to scan")
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
