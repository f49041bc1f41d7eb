package report

import "fmt"

// RenderError wraps a failure from any stage of report generation.
// The underlying cause is preserved: errors.Is() reaches sentinels such
// as identifier.ErrEmptyInput or table.ErrInvalidInput through it, and
// errors.As() recovers the *RenderError itself.
type RenderError struct {
	// Stage names the pipeline stage that failed, e.g. "preprocess",
	// "canvas", "encode", "pdf".
	Stage string

	// Err is the underlying cause.
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("report: %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
