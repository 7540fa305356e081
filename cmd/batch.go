package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tripsplice/internal/config"
	"github.com/mouse-blink/tripsplice/internal/domain"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

const batchLongDescription = `Apply a YAML plan of edits to one or more generated pages.

Files are processed in parallel; the edits of one file are applied in order,
each against the result of the previous one. A report per edit is stored in
the reports directory unless --dry-run is given.

Example plan:

  files:
    - path: src/Trip.jsx
      edits:
        - {op: remove, component: hotels, section: 0, element: 1}
        - op: add
          component: flights
          section: 1
          flight: {date: "2024-06-06", fromAirport: OPO, toAirport: JFK}`

var batchDryRunFlag bool

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <plan.yaml>",
		Short: "Apply a plan of edits",
		Long:  batchLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Batch(domain.BatchArgs{
				Plan:    m.Path(args[0]),
				Reports: m.Path(cfg.Reports),
				Threads: cfg.Parallel,
				DryRun:  batchDryRunFlag,
				Strict:  cfg.Strict,
			})
		},
	}
	cmd.Flags().IntP(config.KeyParallel, "p", config.DefaultParallel, "number of files edited in parallel")
	cmd.Flags().BoolVar(&batchDryRunFlag, "dry-run", false, "apply edits in memory only; write neither sources nor reports")
	cmd.Flags().Bool(config.KeyStrict, false, "fail when any edit is skipped")

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
