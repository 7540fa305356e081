package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tripsplice/internal/domain"
	domainmocks "github.com/mouse-blink/tripsplice/internal/domain/mocks"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

// setupMockWorkflow swaps the global workflow for a mock and isolates the
// test from config files in the working and home directories.
func setupMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	originalLevel := logger.GetLevel()
	workflow = mockWorkflow

	t.Cleanup(func() {
		workflow = originalWorkflow
		logger.SetLevel(originalLevel)
	})

	return mockWorkflow
}

func executeCmd(sub *cobra.Command, args ...string) error {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "tripsplice", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"config", "log-level", "reports"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing --%s flag", name)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"batch", "edit", "list", "serve", "view"})
}

func TestRootCmd_LogLevelFlag(t *testing.T) {
	mockWorkflow := setupMockWorkflow(t)

	mockWorkflow.EXPECT().View(mock.Anything).Return(nil)

	err := executeCmd(newViewCmd(), "--log-level", "debug", "view")
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	setupMockWorkflow(t)

	err := executeCmd(newViewCmd(), "--log-level", "loud", "view")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level: loud")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	mockWorkflow := setupMockWorkflow(t)

	file := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("reports: from-file\nlog-level: warn\n"), 0o644))

	mockWorkflow.EXPECT().
		View(domain.ViewArgs{Reports: m.Path("from-file")}).
		Return(nil)

	err := executeCmd(newViewCmd(), "--config", file, "view")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	setupMockWorkflow(t)

	err := executeCmd(newViewCmd(), "--config", filepath.Join(t.TempDir(), "missing.yaml"), "view")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"defaults to recursive working directory", nil, []m.Path{"./..."}},
		{"single path", []string{"./src"}, []m.Path{"./src"}},
		{"multiple paths", []string{"./a", "b/..."}, []m.Path{"./a", "b/..."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePaths(tt.args))
		})
	}
}
