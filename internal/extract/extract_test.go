package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func exportSample(t *testing.T, format render.Format) []byte {
	t.Helper()
	doc := model.GeneratedDocument{
		Kind:  model.KindResume,
		Title: "Ada Lovelace",
		Sections: []model.Section{
			{Heading: "Core Skills", Body: "- Mathematics\n- Analytical Engines"},
			{Heading: "Experience", Body: "Analyst at Babbage & Co"},
		},
	}
	art, err := render.NewExporter(render.Options{}).Export(context.Background(), doc, format)
	if err != nil {
		t.Fatalf("export %s: %v", format, err)
	}
	return art.Bytes
}

func TestExtractTextFromBytes_ZipDocxNormalizes(t *testing.T) {
	data := exportSample(t, render.FormatDOCX)

	text, err := ExtractTextFromBytes(context.Background(), data, "application/zip", "test.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "Core Skills", "Analytical Engines", "Babbage & Co"} {
		if !strings.Contains(text, want) {
			t.Fatalf("extracted text missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "<w:") {
		t.Fatalf("expected markup to be stripped:\n%s", text)
	}
}

func TestExtractTextFromBytes_DocxByExtension(t *testing.T) {
	data := exportSample(t, render.FormatDOCX)
	if _, err := ExtractTextFromBytes(context.Background(), data, "", "resume.docx"); err != nil {
		t.Fatalf("expected docx by extension, got %v", err)
	}
}

func TestExtractTextFromBytes_PDF(t *testing.T) {
	data := exportSample(t, render.FormatPDF)

	text, err := ExtractTextFromBytes(context.Background(), data, "application/pdf", "resume.pdf")
	if err != nil {
		t.Fatalf("extract pdf: %v", err)
	}
	compact := strings.ReplaceAll(text, " ", "")
	if !strings.Contains(compact, "CoreSkills") {
		t.Fatalf("expected heading in pdf text:\n%s", text)
	}
}

func TestExtractTextFromBytes_HTML(t *testing.T) {
	page := `<html><head><style>body{color:red}</style><script>var x = 1;</script></head>
<body><h1>Grace Hopper</h1><p>Rear admiral and   computer scientist.</p><ul><li>COBOL</li><li>Compilers</li></ul></body></html>`

	text, err := ExtractTextFromBytes(context.Background(), []byte(page), "text/html; charset=utf-8", "")
	if err != nil {
		t.Fatalf("extract html: %v", err)
	}
	want := "Grace Hopper\nRear admiral and computer scientist.\nCOBOL\nCompilers"
	if text != want {
		t.Fatalf("unexpected html text:\n%q\nwant\n%q", text, want)
	}
}

func TestExtractTextFromBytes_PlainText(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("  Jane Doe\nPython  \n"), "", "resume.txt")
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	if text != "Jane Doe\nPython" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = ExtractTextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType for zip, got %v", err)
	}
	if !strings.Contains(err.Error(), "application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractTextFromBytes_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ExtractTextFromBytes(ctx, []byte("x"), "text/plain", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
