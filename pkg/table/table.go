// Package table holds the dataset model consumed by the report renderer.
//
// A Table is an ordered set of per-module test outcomes. Callers that
// already hold typed rows construct a Table directly; callers holding a
// column-oriented dataset (column name -> column of values) go through
// FromColumns, which validates the required columns and coerces numeric
// cells.
package table

import (
	"errors"
	"fmt"
)

// Required column names for a column-oriented dataset.
const (
	ColumnModule      = "module"
	ColumnFailureRate = "failureRate"
	ColumnTokens      = "tokens"
)

// ErrInvalidInput indicates the input is not a recognized tabular
// structure: a required column is missing, columns have ragged lengths,
// or a cell has the wrong type. Check with errors.Is().
var ErrInvalidInput = errors.New("table: invalid input")

// Row is one tested module's outcome.
type Row struct {
	// Module is the name of the tested component.
	Module string

	// FailureRate is a percentage. The expected range is 0-100 but is
	// not enforced.
	FailureRate float64

	// Tokens is the token cost of testing the module, used only for
	// color intensity in the rendered chart.
	Tokens float64
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// FromColumns builds a Table from a column-oriented dataset. The three
// required columns must be present and of equal length; module cells
// must be strings and the numeric cells any Go integer or float type.
// Extra columns are ignored.
func FromColumns(cols map[string][]any) (*Table, error) {
	if cols == nil {
		return nil, fmt.Errorf("%w: nil column map", ErrInvalidInput)
	}

	modules, ok := cols[ColumnModule]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %q", ErrInvalidInput, ColumnModule)
	}
	rates, ok := cols[ColumnFailureRate]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %q", ErrInvalidInput, ColumnFailureRate)
	}
	tokens, ok := cols[ColumnTokens]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %q", ErrInvalidInput, ColumnTokens)
	}
	if len(rates) != len(modules) || len(tokens) != len(modules) {
		return nil, fmt.Errorf("%w: ragged columns (module=%d failureRate=%d tokens=%d)",
			ErrInvalidInput, len(modules), len(rates), len(tokens))
	}

	rows := make([]Row, len(modules))
	for i := range modules {
		name, ok := modules[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: column %q row %d: expected string, got %T",
				ErrInvalidInput, ColumnModule, i, modules[i])
		}
		rate, err := toFloat(rates[i])
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %v", ErrInvalidInput, ColumnFailureRate, i, err)
		}
		toks, err := toFloat(tokens[i])
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %v", ErrInvalidInput, ColumnTokens, i, err)
		}
		rows[i] = Row{Module: name, FailureRate: rate, Tokens: toks}
	}
	return &Table{Rows: rows}, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected numeric, got %T", v)
	}
}
