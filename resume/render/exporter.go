package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
)

// PDFEngine selects how PDFs are produced.
type PDFEngine string

const (
	PDFEngineNative   PDFEngine = "native"
	PDFEngineChromium PDFEngine = "chromium"
)

// ParsePDFEngine accepts "native" (default when empty) or "chromium".
func ParsePDFEngine(raw string) (PDFEngine, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "native", "fpdf":
		return PDFEngineNative, nil
	case "chromium", "chrome", "chromedp":
		return PDFEngineChromium, nil
	default:
		return "", fmt.Errorf("unknown pdf engine %q", raw)
	}
}

var errEmptyDocument = errors.New("document has no content")

// Artifact is an exported file held in memory.
type Artifact struct {
	Format      Format
	FileName    string
	ContentType string
	Bytes       []byte
}

// Options configures an Exporter.
type Options struct {
	PDFEngine     PDFEngine
	ChromePath    string
	ChromeTimeout time.Duration
	Now           func() time.Time
}

// Exporter renders generated documents. Rendering is synchronous and
// single-shot; failures are reported as *RenderError.
type Exporter struct {
	opts Options
}

// NewExporter returns an Exporter. Zero options select the native PDF engine.
func NewExporter(opts Options) *Exporter {
	if opts.PDFEngine == "" {
		opts.PDFEngine = PDFEngineNative
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Exporter{opts: opts}
}

// Export renders doc in the requested format.
func (e *Exporter) Export(ctx context.Context, doc model.GeneratedDocument, format Format) (Artifact, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return Artifact{}, err
	}
	if strings.TrimSpace(doc.Title) == "" && len(doc.Sections) == 0 {
		return Artifact{}, &RenderError{Format: format, Cause: errEmptyDocument}
	}

	var data []byte
	switch format {
	case FormatPDF:
		if e.opts.PDFEngine == PDFEngineChromium {
			data, err = chromiumPDF{execPath: e.opts.ChromePath, timeout: e.opts.ChromeTimeout}.render(ctx, doc)
		} else {
			data, err = renderPDF(doc)
		}
	case FormatDOCX:
		data, err = renderDOCX(doc, e.modified(doc))
	case FormatHTML:
		data, err = renderHTML(doc)
	}
	if err != nil {
		return Artifact{}, &RenderError{Format: format, Cause: err}
	}

	return Artifact{
		Format:      format,
		FileName:    FileName(doc, format),
		ContentType: format.ContentType(),
		Bytes:       data,
	}, nil
}

// FileName derives the download name from the document title.
func FileName(doc model.GeneratedDocument, format Format) string {
	title := doc.Title
	if strings.TrimSpace(title) == "" {
		title = string(doc.Kind)
	}
	return util.SlugFileName(title, format.Extension())
}

func (e *Exporter) modified(doc model.GeneratedDocument) time.Time {
	if !doc.CreatedAt.IsZero() {
		return doc.CreatedAt
	}
	return e.opts.Now()
}
