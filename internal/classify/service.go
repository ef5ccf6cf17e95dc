// Package classify predicts the job category of resume text.
package classify

import (
	"context"
	"errors"
	"strings"

	"resume-builder/internal/extract"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/textprep"
	"resume-builder/resume/model"
)

// Predictor is the read-only model surface the service needs.
// *classifier.Classifier satisfies it, including a nil pointer.
type Predictor interface {
	Predict(text textprep.PreprocessedText) (model.CategoryPrediction, error)
	Labels() []model.Category
}

// Result is a prediction plus the number of tokens the model saw.
type Result struct {
	Prediction model.CategoryPrediction `json:"prediction"`
	Tokens     int                      `json:"tokens"`
}

// FileResult adds extraction details for uploaded files.
type FileResult struct {
	Result
	FileName   string `json:"fileName"`
	TextLength int    `json:"textLength"`
	Text       string `json:"-"`
}

// Service classifies resume text with a shared, immutable model.
type Service struct {
	Model Predictor
}

// NewService builds a Service. p may be nil when no artifact was loaded.
func NewService(p Predictor) *Service {
	return &Service{Model: p}
}

// ModelLoaded reports whether predictions are available.
func (s *Service) ModelLoaded() bool {
	return s != nil && s.Model != nil && len(s.Model.Labels()) > 0
}

// Labels returns the model's label set, or nil without a model.
func (s *Service) Labels() []model.Category {
	if !s.ModelLoaded() {
		return nil
	}
	return s.Model.Labels()
}

// Classify preprocesses text and predicts its category.
func (s *Service) Classify(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	pre, err := textprep.Normalize(text)
	if err != nil {
		metrics.IncClassification(outcome(err))
		return Result{}, err
	}
	if !s.ModelLoaded() {
		metrics.IncClassification(outcome(ErrModelNotLoaded))
		return Result{}, ErrModelNotLoaded
	}
	prediction, err := s.Model.Predict(pre)
	if err != nil {
		metrics.IncClassification(outcome(err))
		return Result{}, err
	}
	metrics.IncClassification("ok")
	return Result{Prediction: prediction, Tokens: pre.Len()}, nil
}

// ClassifyFile extracts text from an uploaded resume and classifies it.
func (s *Service) ClassifyFile(ctx context.Context, data []byte, mimeType, fileName string) (FileResult, error) {
	text, err := extract.ExtractTextFromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			metrics.IncClassification("unsupported_type")
		}
		return FileResult{}, err
	}
	res, err := s.Classify(ctx, text)
	if err != nil {
		return FileResult{}, err
	}
	return FileResult{
		Result:     res,
		FileName:   strings.TrimSpace(fileName),
		TextLength: len([]rune(text)),
		Text:       text,
	}, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, textprep.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrModelNotLoaded):
		return "model_not_loaded"
	default:
		return "error"
	}
}
