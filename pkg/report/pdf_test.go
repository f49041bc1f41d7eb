package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/threatviz/threatviz/pkg/identifier"
	"github.com/threatviz/threatviz/pkg/testutil"
)

func TestRenderPDF_ProducesDocument(t *testing.T) {
	g := New(WithStyle(testStyle()))
	buf, err := g.RenderPDF(testTable())
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("buffer does not start with the PDF signature")
	}
}

func TestWritePDF_EmptyTable(t *testing.T) {
	g := New(WithStyle(testStyle()))
	var buf bytes.Buffer
	err := g.WritePDF(nil, &buf)
	if !errors.Is(err, identifier.ErrEmptyInput) {
		t.Fatalf("err = %v, want identifier.ErrEmptyInput", err)
	}
	if buf.Len() != 0 {
		t.Error("expected no partial PDF output on failure")
	}
}

func TestWritePDF_WriterFailure(t *testing.T) {
	g := New(WithStyle(testStyle()))
	err := g.WritePDF(testTable(), &testutil.FailingWriter{})
	if err == nil {
		t.Fatal("expected error writing to failing writer")
	}
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("err = %T, want *RenderError", err)
	}
	if re.Stage != "pdf" {
		t.Errorf("stage = %q, want pdf", re.Stage)
	}
}
