// Package report renders a polar bar-chart security report from tabular
// failure-rate data into an in-memory PNG, with an optional PDF wrapper.
//
// The package is organized by logical concern across multiple files:
//
// # Core Rendering (report.go)
//
// Generator, Option, WithLogger, WithStyle. Render sorts the dataset by
// failure rate, assigns positional identifiers, and produces the chart
// as a bytes.Buffer ready for the caller to persist or transmit.
//
// # Polar Geometry (polar.go)
//
// The painter walks the renderer through background, gridlines, spokes,
// bars, axis labels, tip annotations, color-bar legend, side table,
// title, and caption. Angles start at 12 o'clock and proceed clockwise.
//
// # Color Scale (colors.go)
//
// A 4-stop linear gradient over the dataset's token range. A degenerate
// range (all rows sharing one token count) maps to a constant color.
//
// # Appearance (style.go)
//
// Style holds every visual tunable; DefaultStyle reproduces the stock
// report look. LoadStyle layers YAML overrides onto the defaults.
//
// # PDF Export (pdf.go)
//
// WritePDF and RenderPDF embed the rendered chart in a one-page
// landscape PDF with document metadata.
//
// # Errors (errors.go)
//
// RenderError wraps any stage failure and preserves the cause for
// errors.Is / errors.As.
package report
