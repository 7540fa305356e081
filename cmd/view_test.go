package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tripsplice/internal/domain"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

func TestViewCmd_UsesDefaultReportsDir(t *testing.T) {
	mockWorkflow := setupMockWorkflow(t)

	mockWorkflow.EXPECT().
		View(domain.ViewArgs{Reports: m.Path(".tripsplice-reports")}).
		Return(nil)

	err := executeCmd(newViewCmd(), "view")
	require.NoError(t, err)
}

func TestViewCmd_ReportsFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := setupMockWorkflow(t)

	mockWorkflow.EXPECT().
		View(domain.ViewArgs{Reports: m.Path("custom-reports")}).
		Return(nil)

	err := executeCmd(newViewCmd(), "--reports", "custom-reports", "view")
	require.NoError(t, err)
}

func TestViewCmd_ReportsFromEnvironment(t *testing.T) {
	mockWorkflow := setupMockWorkflow(t)
	t.Setenv("TRIPSPLICE_REPORTS", "env-reports")

	mockWorkflow.EXPECT().
		View(domain.ViewArgs{Reports: m.Path("env-reports")}).
		Return(nil)

	err := executeCmd(newViewCmd(), "view")
	require.NoError(t, err)
}

func TestViewCmd_RejectsArguments(t *testing.T) {
	setupMockWorkflow(t)

	err := executeCmd(newViewCmd(), "view", "extra")
	assert.Error(t, err)
}

func TestViewCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := setupMockWorkflow(t)

	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: m.Path(".tripsplice-reports")}).Return(errors.New("boom"))

	err := executeCmd(newViewCmd(), "view")
	assert.EqualError(t, err, "boom")
}
