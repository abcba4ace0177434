package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zdex.dev/pkg/zdex/internal/adapter"
	uimocks "zdex.dev/pkg/zdex/internal/controller/mocks"
	m "zdex.dev/pkg/zdex/internal/model"
)

func newTestWorkflow(ui *uimocks.MockUI) Workflow {
	fs := adapter.NewLocalSourceFSAdapter()
	return NewWorkflow(NewScanner(fs), NewVariableResolver(fs), ui)
}

func fixtureTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "modal.tsx"), "const Modal = styled.div`\n  z-index: 999;\n`\n")
	writeFile(t, filepath.Join(root, "styles", "_layers.scss"), "$overlay: 20;\n")
	writeFile(t, filepath.Join(root, "styles", "overlay.scss"), ".overlay { z-index: $overlay; }\n.toast { z-index: $toast; }\n")
	writeFile(t, filepath.Join(root, "styles", "base.css"), "z-index: 10;\nz-index: 10;\nz-index: banana;\n")

	return root
}

func TestWorkflow_List(t *testing.T) {
	root := fixtureTree(t)
	ui := uimocks.NewMockUI(t)

	ui.On("DisplayWarning", mock.Anything, mock.MatchedBy(func(w m.Warning) bool {
		return w.Value == "banana" && w.Location.Line == 3
	})).Once()

	var report m.ListReport
	ui.On("DisplayList", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		report = args.Get(1).(m.ListReport)
	}).Return(nil).Once()

	err := newTestWorkflow(ui).List(context.Background(), ListArgs{
		ScanOptions: ScanOptions{Root: m.Path(root)},
	})
	require.NoError(t, err)

	require.Len(t, report.ZIndexes, 2)
	assert.Equal(t, 10, report.ZIndexes[0].Value, "default sort is by total")
	assert.Equal(t, 2, report.ZIndexes[0].Total)
	assert.Equal(t, 999, report.ZIndexes[1].Value)

	require.Len(t, report.SassVariables, 2)
	assert.Equal(t, "$overlay", report.SassVariables[0].Name)
	require.NotNil(t, report.SassVariables[0].Value)
	assert.Equal(t, 20, *report.SassVariables[0].Value)
	assert.Equal(t, "$toast", report.SassVariables[1].Name)
	assert.Nil(t, report.SassVariables[1].Value)
}

func TestWorkflow_List_SortByZIndexAndIgnored(t *testing.T) {
	root := fixtureTree(t)
	ui := uimocks.NewMockUI(t)

	var report m.ListReport
	ui.On("DisplayList", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		report = args.Get(1).(m.ListReport)
	}).Return(nil).Once()

	err := newTestWorkflow(ui).List(context.Background(), ListArgs{
		ScanOptions: ScanOptions{
			Root:    m.Path(root),
			Ignored: []m.Path{m.Path(filepath.Join(root, "styles", "base.css"))},
		},
		Sort: m.SortByZIndex,
	})
	require.NoError(t, err)

	require.Len(t, report.ZIndexes, 1)
	assert.Equal(t, 999, report.ZIndexes[0].Value)
}

func TestWorkflow_Total(t *testing.T) {
	root := fixtureTree(t)
	ui := uimocks.NewMockUI(t)

	ui.On("DisplayWarning", mock.Anything, mock.Anything).Once()
	ui.On("DisplayTotal", mock.Anything, mock.MatchedBy(func(s m.Summary) bool {
		return s.ZIndexCount == 3 &&
			s.UniqueCount == 2 &&
			s.SassVariableCount == 2 &&
			assert.ObjectsAreEqual([]int{10, 10, 999}, s.Values)
	}), 150).Return(nil).Once()

	err := newTestWorkflow(ui).Total(context.Background(), TotalArgs{
		ScanOptions:   ScanOptions{Root: m.Path(root)},
		PreviewLength: 150,
	})
	require.NoError(t, err)
}

func TestWorkflow_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		ui := uimocks.NewMockUI(t)
		err := newTestWorkflow(ui).Total(context.Background(), TotalArgs{})
		require.ErrorIs(t, err, ErrMissingDirectory)
	})

	t.Run("unreadable root", func(t *testing.T) {
		ui := uimocks.NewMockUI(t)
		missing := filepath.Join(t.TempDir(), "nope")

		err := newTestWorkflow(ui).List(context.Background(), ListArgs{ScanOptions: ScanOptions{Root: m.Path(missing)}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), missing)
	})

	t.Run("ui error is returned", func(t *testing.T) {
		root := t.TempDir()
		ui := uimocks.NewMockUI(t)
		uiErr := errors.New("broken pipe")
		ui.On("DisplayList", mock.Anything, mock.Anything).Return(uiErr).Once()

		err := newTestWorkflow(ui).List(context.Background(), ListArgs{ScanOptions: ScanOptions{Root: m.Path(root)}})
		require.ErrorIs(t, err, uiErr)
	})
}
