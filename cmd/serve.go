package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tripsplice/internal/mcp"
)

// serveMCP runs the MCP server; tests replace it.
var serveMCP = func() error {
	server, err := mcp.NewServer(editor, logger, version)
	if err != nil {
		return err
	}

	return server.Run()
}

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the splice editor as MCP tools over stdio",
		Long: `Serve the splice editor as Model Context Protocol tools over stdin and stdout.

Tools: sections_list, flight_update, flight_remove, flight_add, hotel_update,
hotel_remove and hotel_add. Each takes the page source as "code" and returns
the edit status followed by the resulting code.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return serveMCP()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
