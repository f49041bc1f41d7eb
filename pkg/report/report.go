package report

import (
	"bytes"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/threatviz/threatviz/pkg/identifier"
	"github.com/threatviz/threatviz/pkg/table"
)

// Generator renders security reports. The zero value is not usable;
// construct with New. A Generator holds no per-render state and is safe
// to reuse across calls.
type Generator struct {
	style  Style
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for render checkpoints. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithStyle replaces the default appearance. The style is validated on
// the first render.
func WithStyle(s Style) Option {
	return func(g *Generator) { g.style = s }
}

// New constructs a Generator with the stock style and default logger.
func New(opts ...Option) *Generator {
	g := &Generator{
		style:  DefaultStyle(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}

// reportRow is a dataset row after preprocessing: sorted into place and
// tagged with its positional identifier.
type reportRow struct {
	table.Row
	ID string
}

// Render produces the polar bar-chart report as a PNG in an in-memory
// buffer, positioned at the start and ready for the caller to write out.
// Any failure is returned as a *RenderError wrapping the cause; no
// partial output is produced.
func (g *Generator) Render(t *table.Table) (*bytes.Buffer, error) {
	log := g.log().With("report_id", uuid.NewString())
	buf, err := g.render(t, log)
	if err != nil {
		log.Error("security report generation failed", "error", err)
		return nil, err
	}
	log.Info("report generated and saved to buffer", "bytes", buf.Len())
	return buf, nil
}

// RenderColumns validates a column-oriented dataset and renders it.
// Structural problems (missing column, non-numeric cell) surface as a
// *RenderError wrapping table.ErrInvalidInput.
func (g *Generator) RenderColumns(cols map[string][]any) (*bytes.Buffer, error) {
	t, err := table.FromColumns(cols)
	if err != nil {
		wrapped := &RenderError{Stage: "validate", Err: err}
		g.log().Error("security report generation failed", "error", wrapped)
		return nil, wrapped
	}
	return g.Render(t)
}

func (g *Generator) render(t *table.Table, log *slog.Logger) (*bytes.Buffer, error) {
	if err := g.style.Validate(); err != nil {
		return nil, &RenderError{Stage: "style", Err: err}
	}

	log.Info("data preprocessing started")
	rows, err := preprocess(t)
	if err != nil {
		return nil, &RenderError{Stage: "preprocess", Err: err}
	}

	r, err := chart.PNG(g.style.Width, g.style.Height)
	if err != nil {
		return nil, &RenderError{Stage: "canvas", Err: err}
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, &RenderError{Stage: "canvas", Err: err}
	}
	r.SetDPI(g.style.DPI)
	r.SetFont(font)

	p, err := newPainter(r, g.style, rows)
	if err != nil {
		return nil, &RenderError{Stage: "layout", Err: err}
	}
	log.Info("plot setup complete")

	p.paint(rows)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, &RenderError{Stage: "encode", Err: err}
	}
	return &buf, nil
}

// preprocess sorts rows by failure rate descending and assigns each its
// positional identifier. The stable sort keeps the original relative
// order of rows with equal failure rates, which fixes the row-to-label
// correspondence used by both the chart and the side table.
func preprocess(t *table.Table) ([]reportRow, error) {
	ids, err := identifier.Generate(t.Len())
	if err != nil {
		return nil, err
	}

	sorted := make([]table.Row, len(t.Rows))
	copy(sorted, t.Rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FailureRate > sorted[j].FailureRate
	})

	rows := make([]reportRow, len(sorted))
	for i, row := range sorted {
		rows[i] = reportRow{Row: row, ID: ids[i]}
	}
	return rows, nil
}
