package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromColumns(t *testing.T) {
	tbl, err := FromColumns(map[string][]any{
		ColumnModule:      {"ShieldAndGpt", "llm-attacks"},
		ColumnFailureRate: {37.5, int(80)},
		ColumnTokens:      {int64(880), float32(1569)},
	})
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	assert.Equal(t, Row{Module: "ShieldAndGpt", FailureRate: 37.5, Tokens: 880}, tbl.Rows[0])
	assert.Equal(t, "llm-attacks", tbl.Rows[1].Module)
	assert.Equal(t, 80.0, tbl.Rows[1].FailureRate)
	assert.Equal(t, 1569.0, tbl.Rows[1].Tokens)
}

func TestFromColumns_IgnoresExtraColumns(t *testing.T) {
	tbl, err := FromColumns(map[string][]any{
		ColumnModule:      {"m"},
		ColumnFailureRate: {1.0},
		ColumnTokens:      {2.0},
		"notes":           {"ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestFromColumns_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cols map[string][]any
	}{
		{name: "nil map", cols: nil},
		{
			name: "missing tokens column",
			cols: map[string][]any{
				ColumnModule:      {"m"},
				ColumnFailureRate: {1.0},
			},
		},
		{
			name: "missing module column",
			cols: map[string][]any{
				ColumnFailureRate: {1.0},
				ColumnTokens:      {2.0},
			},
		},
		{
			name: "ragged columns",
			cols: map[string][]any{
				ColumnModule:      {"a", "b"},
				ColumnFailureRate: {1.0},
				ColumnTokens:      {2.0, 3.0},
			},
		},
		{
			name: "non-numeric failure rate",
			cols: map[string][]any{
				ColumnModule:      {"m"},
				ColumnFailureRate: {"80%"},
				ColumnTokens:      {2.0},
			},
		},
		{
			name: "non-string module",
			cols: map[string][]any{
				ColumnModule:      {42},
				ColumnFailureRate: {1.0},
				ColumnTokens:      {2.0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := FromColumns(tt.cols)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), "want ErrInvalidInput, got %v", err)
			assert.Nil(t, tbl)
		})
	}
}

func TestLen_NilTable(t *testing.T) {
	var tbl *Table
	assert.Equal(t, 0, tbl.Len())
}
