// Package cmd provides the root command and CLI setup for tripsplice.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/tripsplice/internal/adapter"
	"github.com/mouse-blink/tripsplice/internal/config"
	"github.com/mouse-blink/tripsplice/internal/controller"
	"github.com/mouse-blink/tripsplice/internal/domain"
	"github.com/mouse-blink/tripsplice/internal/logging"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

// version is overridden at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

var logger *logrus.Logger
var fsAdapter adapter.SourceFSAdapter
var recordStore adapter.RecordStore
var reportStore adapter.ReportStore
var editor domain.Editor
var workflow domain.Workflow
var ui controller.UI

// cfg is resolved before every command runs.
var cfg = config.DefaultConfig()

func init() {
	logger = logging.New(os.Stderr)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	recordStore = adapter.NewRecordStore()
	reportStore = adapter.NewReportStore()
	editor = domain.NewEditor(logger)
	workflow = domain.NewWorkflow(
		fsAdapter,
		recordStore,
		reportStore,
		ui,
		editor,
		logger,
	)
}

var configFileFlag string
var logLevelFlag string
var reportsFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tripsplice",
		Short: "Edit flights and hotels in generated trip pages",
		Long: `Tripsplice edits the flights and hotels arrays of generated JSX trip pages
in place. It finds <AirplaneSection flights={[...]} /> and
<HotelsSection hotels={[...]} /> blocks by position, then updates, removes
or appends one element while leaving every other byte of the file untouched.

Edits that cannot be applied (missing block, index out of range, removing the
last element) leave the source unchanged and are reported with a reason.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
	cmd.PersistentFlags().StringVar(&configFileFlag, "config", "", "config file (default is .tripsplice.yaml in the working or home directory)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, config.KeyLogLevel, config.DefaultLogLevel, "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&reportsFlag, config.KeyReports, config.DefaultReports, "directory where batch reports are stored")

	return cmd
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(cmd.Flags(), configFileFlag)
	if err != nil {
		return err
	}

	if err := logging.SetLevel(logger, loaded.LogLevel); err != nil {
		return err
	}

	cfg = loaded
	logger.WithField("config", cfg.String()).Debug("configuration loaded")

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
