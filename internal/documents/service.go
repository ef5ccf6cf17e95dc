package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/classify"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/textprep"
	"resume-builder/resume/fields"
	"resume-builder/resume/generate"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// Service runs the classify, generate, store and export pipeline for a session.
type Service struct {
	Classifier *classify.Service
	Generator  *generate.Generator
	Exporter   *render.Exporter
	Repo       DocumentsRepo
	// Store receives a copy of every export when set.
	Store object.ObjectStore

	Now   func() time.Time
	NewID func() string
}

// Generate classifies the resume text, extracts fields (overlaid with any
// supplied ones), builds the document and stores it in the session.
func (s *Service) Generate(ctx context.Context, sessionID string, in GenerateInput) (model.GeneratedDocument, error) {
	if sessionID == "" {
		return model.GeneratedDocument{}, fmt.Errorf("%w: session id required", ErrInvalidInput)
	}
	kind := in.Kind
	if kind == "" {
		kind = model.KindResume
	}

	res, err := s.Classifier.Classify(ctx, in.ResumeText)
	if err != nil {
		metrics.IncGeneration(string(kind), generationOutcome(err))
		return model.GeneratedDocument{}, err
	}

	fieldSet := fields.Extract(in.ResumeText)
	if in.Fields != nil {
		fieldSet = fields.Merge(fieldSet, *in.Fields)
	}

	doc, err := s.Generator.Generate(kind, fieldSet, res.Prediction, in.JobDescription)
	if err != nil {
		metrics.IncGeneration(string(kind), generationOutcome(err))
		return model.GeneratedDocument{}, err
	}
	doc.ID = s.newID()
	doc.CreatedAt = s.now()

	if err := s.Repo.Create(ctx, sessionID, doc); err != nil {
		metrics.IncGeneration(string(kind), "error")
		return model.GeneratedDocument{}, err
	}
	metrics.IncGeneration(string(kind), "ok")
	telemetry.Info("document.generated", map[string]any{
		"session_id":  sessionID,
		"document_id": doc.ID,
		"kind":        doc.Kind,
		"category":    doc.Category.Label,
		"confidence":  doc.Category.Confidence,
		"tailored":    strings.TrimSpace(in.JobDescription) != "",
		"sections":    len(doc.Sections),
	})
	return doc, nil
}

// Get returns one document from the session.
func (s *Service) Get(ctx context.Context, sessionID, documentID string) (model.GeneratedDocument, error) {
	if strings.TrimSpace(documentID) == "" {
		return model.GeneratedDocument{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, sessionID, documentID)
}

// List returns the session's documents, newest first.
func (s *Service) List(ctx context.Context, sessionID string, limit, offset int) ([]model.GeneratedDocument, error) {
	return s.Repo.ListBySession(ctx, sessionID, limit, offset)
}

// Export renders a stored document. A failure to save the optional copy is
// logged and does not fail the export.
func (s *Service) Export(ctx context.Context, sessionID, documentID string, format render.Format) (ExportResult, error) {
	doc, err := s.Get(ctx, sessionID, documentID)
	if err != nil {
		return ExportResult{}, err
	}

	start := time.Now()
	artifact, err := s.Exporter.Export(ctx, doc, format)
	metrics.ObserveRenderDurationMs(metrics.SinceMillis(start))
	if err != nil {
		metrics.IncExport(exportFormatLabel(format), exportOutcome(err))
		telemetry.Error("document.export_failed", map[string]any{
			"session_id":  sessionID,
			"document_id": documentID,
			"format":      format,
			"error":       err.Error(),
		})
		return ExportResult{}, err
	}
	metrics.IncExport(string(artifact.Format), "ok")

	result := ExportResult{Artifact: artifact}
	if s.Store != nil {
		saved, err := s.Store.Save(ctx, sessionID, artifact.FileName, artifact.ContentType, bytes.NewReader(artifact.Bytes))
		if err != nil {
			telemetry.Warn("document.export_save_failed", map[string]any{
				"session_id":  sessionID,
				"document_id": documentID,
				"error":       err.Error(),
			})
		} else {
			result.Saved = &saved
		}
	}
	return result, nil
}

// OpenExport streams back a copy saved by Export.
func (s *Service) OpenExport(ctx context.Context, sessionID, key string) (io.ReadCloser, object.Object, error) {
	if s.Store == nil {
		return nil, object.Object{}, ErrExportsDisabled
	}
	return s.Store.Open(ctx, sessionID, strings.TrimPrefix(key, "/"))
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func generationOutcome(err error) string {
	var missing *model.MissingRequiredFieldError
	switch {
	case errors.Is(err, textprep.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, classify.ErrModelNotLoaded):
		return "model_not_loaded"
	case errors.As(err, &missing):
		return "missing_required_field"
	default:
		return "error"
	}
}

// exportFormatLabel keeps the format label set bounded for metrics.
func exportFormatLabel(format render.Format) string {
	parsed, err := render.ParseFormat(string(format))
	if err != nil {
		return "unknown"
	}
	return string(parsed)
}

func exportOutcome(err error) string {
	var renderErr *render.RenderError
	switch {
	case errors.Is(err, render.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.As(err, &renderErr):
		return "render_error"
	default:
		return "error"
	}
}
