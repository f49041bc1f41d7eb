package report

import (
	"bytes"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/threatviz/threatviz/pkg/table"
)

// WritePDF renders the report and writes it to w as a one-page
// landscape A4 PDF with the chart embedded and document metadata set.
// Failures are returned as *RenderError.
func (g *Generator) WritePDF(t *table.Table, w io.Writer) error {
	buf, err := g.Render(t)
	if err != nil {
		return err
	}

	reportID := uuid.NewString()
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(g.style.Title, false)
	pdf.SetSubject("report "+reportID, false)
	pdf.SetCreator("threatviz", false)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(buf.Bytes()))

	// Fit the chart to the page height, preserving the canvas aspect
	// ratio, centered horizontally inside the margins.
	pageW, pageH := pdf.GetPageSize()
	const margin = 10.0
	imgH := pageH - 2*margin
	imgW := imgH * float64(g.style.Width) / float64(g.style.Height)
	if imgW > pageW-2*margin {
		imgW = pageW - 2*margin
		imgH = imgW * float64(g.style.Height) / float64(g.style.Width)
	}
	pdf.ImageOptions("chart", (pageW-imgW)/2, (pageH-imgH)/2, imgW, imgH, false, opts, 0, "")

	if pdf.Err() {
		err := &RenderError{Stage: "pdf", Err: pdf.Error()}
		g.log().Error("pdf export failed", "report_id", reportID, "error", err)
		return err
	}
	if err := pdf.Output(w); err != nil {
		wrapped := &RenderError{Stage: "pdf", Err: err}
		g.log().Error("pdf export failed", "report_id", reportID, "error", wrapped)
		return wrapped
	}
	g.log().Info("pdf report written", "report_id", reportID)
	return nil
}

// RenderPDF is a convenience wrapper around WritePDF that returns the
// document in an in-memory buffer, positioned at the start.
func (g *Generator) RenderPDF(t *table.Table) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := g.WritePDF(t, &buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
