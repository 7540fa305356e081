package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tripsplice/internal/domain"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

func TestListCmd_Defaults(t *testing.T) {
	mockWorkflow := setupMockWorkflow(t)

	mockWorkflow.EXPECT().
		List(domain.ListArgs{
			Paths:      []m.Path{"./..."},
			Extensions: []string{".jsx", ".tsx", ".js", ".ts"},
			Exclude:    nil,
		}).
		Return(nil)

	err := executeCmd(newListCmd(), "list")
	require.NoError(t, err)
}

func TestListCmd_WithExtensionsAndExcludes(t *testing.T) {
	mockWorkflow := setupMockWorkflow(t)

	mockWorkflow.EXPECT().
		List(mock.MatchedBy(func(args domain.ListArgs) bool {
			return len(args.Paths) == 2 &&
				args.Paths[0] == m.Path("./src/...") &&
				assert.ObjectsAreEqual([]string{".tsx"}, args.Extensions) &&
				assert.ObjectsAreEqual([]string{"^vendor/", "_test"}, args.Exclude)
		})).
		Return(nil)

	err := executeCmd(newListCmd(), "list", "--ext", "TSX", "-x", "^vendor/", "-x", "_test", "./src/...", "./pages")
	require.NoError(t, err)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
	assert.NotNil(t, cmd.Flags().Lookup("ext"))
}
