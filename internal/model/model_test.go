package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationString(t *testing.T) {
	loc := Location{Path: "src/styles/modal.scss", Line: 42}
	assert.Equal(t, "src/styles/modal.scss:42", loc.String())
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{"total", SortByTotal, false},
		{"zIndex", SortByZIndex, false},
		{"zindex", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "total, zIndex")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanResult_VariableNames(t *testing.T) {
	result := ScanResult{
		SassVariables: []SassVariableMatch{
			{Name: "$overlay"},
			{Name: "$modal"},
			{Name: "$overlay"},
		},
	}

	assert.Equal(t, []string{"$overlay", "$modal"}, result.VariableNames())
	assert.Empty(t, ScanResult{}.VariableNames())
}
