// Package classifier applies a pre-fitted TF-IDF + linear model to preprocessed resume text.
//
// A Classifier is immutable after construction and safe for concurrent use.
package classifier

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"resume-builder/internal/textprep"
	"resume-builder/resume/model"
)

// Classifier maps preprocessed text to one of a fixed set of job categories.
type Classifier struct {
	labels     []model.Category
	index      map[string]int
	idf        []float64
	weights    [][]float64
	intercepts []float64
}

// Load reads and validates a model artifact from disk.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrModelNotLoaded, path, err)
	}
	artifact, err := DecodeArtifact(data)
	if err != nil {
		return nil, err
	}
	return New(artifact)
}

// New builds a Classifier from a decoded artifact.
func New(artifact Artifact) (*Classifier, error) {
	if len(artifact.Labels) == 0 {
		return nil, fmt.Errorf("%w: artifact has no labels", ErrModelNotLoaded)
	}
	if err := artifact.validateShape(); err != nil {
		return nil, err
	}

	labels := make([]model.Category, len(artifact.Labels))
	for i, l := range artifact.Labels {
		labels[i] = model.Category(l)
	}
	index := make(map[string]int, len(artifact.Vocabulary))
	for i, term := range artifact.Vocabulary {
		index[term] = i
	}
	weights := make([][]float64, len(artifact.Weights))
	for i, row := range artifact.Weights {
		weights[i] = append([]float64(nil), row...)
	}

	return &Classifier{
		labels:     labels,
		index:      index,
		idf:        append([]float64(nil), artifact.IDF...),
		weights:    weights,
		intercepts: append([]float64(nil), artifact.Intercepts...),
	}, nil
}

// Labels returns the fixed label set, in model order.
func (c *Classifier) Labels() []model.Category {
	if c == nil {
		return nil
	}
	return append([]model.Category(nil), c.labels...)
}

// Predict returns the most probable label and its softmax probability.
func (c *Classifier) Predict(text textprep.PreprocessedText) (model.CategoryPrediction, error) {
	if c == nil || len(c.labels) == 0 {
		return model.CategoryPrediction{}, ErrModelNotLoaded
	}
	probs := c.Probabilities(text)

	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return model.CategoryPrediction{
		Label:      c.labels[best],
		Confidence: clamp01(probs[best]),
	}, nil
}

// Probabilities returns one probability per label, aligned with Labels.
func (c *Classifier) Probabilities(text textprep.PreprocessedText) []float64 {
	features := vectorize(text.Tokens, c.index, c.idf)
	scores := make([]float64, len(c.labels))
	for l := range c.labels {
		scores[l] = c.intercepts[l] + dot(c.weights[l], features)
	}
	return softmax(scores)
}

func dot(row []float64, features []feature) float64 {
	var sum float64
	for _, f := range features {
		sum += row[f.index] * f.value
	}
	return sum
}

func softmax(scores []float64) []float64 {
	out := make([]float64, len(scores))
	if len(scores) == 0 {
		return out
	}
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var total float64
	for i, s := range scores {
		out[i] = math.Exp(s - maxScore)
		total += out[i]
	}
	for i := range out {
		out[i] /= total
	}
	return out
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
