package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zdex.dev/pkg/zdex/internal/domain"
	m "zdex.dev/pkg/zdex/internal/model"
)

func TestTotalCmd(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Total", mock.Anything, mock.MatchedBy(func(args domain.TotalArgs) bool {
		return args.Root == m.Path("./app") &&
			args.PreviewLength == 150 &&
			assert.ObjectsAreEqual([]m.Path{"./app/dist"}, args.Ignored)
	})).Return(nil)

	cmd, _ := newTestRootCmd(newTotalCmd())
	cmd.SetArgs([]string{"total", "./app", "--ignoredPaths", "./app/dist"})

	err := cmd.Execute()
	require.NoError(t, err)
}

func TestTotalCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	scanErr := errors.New("read file ./app/a.css: permission denied")

	mockWorkflow.On("Total", mock.Anything, mock.Anything).Return(scanErr)

	cmd, _ := newTestRootCmd(newTotalCmd())
	cmd.SetArgs([]string{"total", "./app"})

	err := cmd.Execute()
	require.ErrorIs(t, err, scanErr)
}

func TestTotalCmd_MissingDirectory(t *testing.T) {
	useMockWorkflow(t)

	cmd, out := newTestRootCmd(newTotalCmd())
	cmd.SetArgs([]string{"total"})

	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrMissingDirectory)
	assert.Contains(t, out.String(), "total <directory>")
}
