package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"resume-builder/internal/textprep"
)

// Sample is one labeled training document.
type Sample struct {
	Label string
	Text  string
}

// TrainOptions tunes the offline fit.
type TrainOptions struct {
	Epochs       int
	LearningRate float64
	L2           float64
	MinDF        int
	MaxFeatures  int
	Now          func() time.Time
}

// DefaultTrainOptions returns settings that converge on small and medium corpora.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Epochs:       300,
		LearningRate: 0.5,
		L2:           1e-4,
		MinDF:        1,
		MaxFeatures:  5000,
	}
}

// Train fits vocabulary, idf and a multinomial logistic regression by
// full-batch gradient descent. The result depends only on the samples and options.
func Train(samples []Sample, opts TrainOptions) (Artifact, error) {
	opts = withTrainDefaults(opts)
	if len(samples) == 0 {
		return Artifact{}, fmt.Errorf("%w: no samples", ErrInvalidTrainingData)
	}

	labelSet := make(map[string]struct{})
	docs := make([][]string, len(samples))
	for i, s := range samples {
		if s.Label == "" {
			return Artifact{}, fmt.Errorf("%w: sample %d has no label", ErrInvalidTrainingData, i)
		}
		labelSet[s.Label] = struct{}{}
		docs[i] = textprep.Tokens(s.Text)
	}
	if len(labelSet) < 2 {
		return Artifact{}, fmt.Errorf("%w: need at least two labels, got %d", ErrInvalidTrainingData, len(labelSet))
	}
	labels := make([]string, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	labelIndex := make(map[string]int, len(labels))
	for i, l := range labels {
		labelIndex[l] = i
	}

	vocabulary, df := buildVocabulary(docs, opts.MinDF, opts.MaxFeatures)
	if len(vocabulary) == 0 {
		return Artifact{}, fmt.Errorf("%w: empty vocabulary", ErrInvalidTrainingData)
	}
	index := make(map[string]int, len(vocabulary))
	idf := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		index[term] = i
		idf[i] = smoothIDF(len(docs), df[term])
	}

	vectors := make([][]feature, len(docs))
	targets := make([]int, len(docs))
	for i, doc := range docs {
		vectors[i] = vectorize(doc, index, idf)
		targets[i] = labelIndex[samples[i].Label]
	}

	weights, intercepts := fitSoftmax(vectors, targets, len(labels), len(vocabulary), opts)

	return Artifact{
		Version:    artifactVersion,
		Labels:     labels,
		Vocabulary: vocabulary,
		IDF:        idf,
		Weights:    weights,
		Intercepts: intercepts,
		TrainedAt:  opts.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Save writes the artifact as JSON, creating parent directories as needed.
func Save(path string, artifact Artifact) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

func withTrainDefaults(opts TrainOptions) TrainOptions {
	def := DefaultTrainOptions()
	if opts.Epochs <= 0 {
		opts.Epochs = def.Epochs
	}
	if opts.LearningRate <= 0 {
		opts.LearningRate = def.LearningRate
	}
	if opts.L2 < 0 {
		opts.L2 = 0
	}
	if opts.MinDF <= 0 {
		opts.MinDF = def.MinDF
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

// buildVocabulary keeps terms seen in at least minDF documents, capped to the
// maxFeatures most frequent terms, and returns them sorted.
func buildVocabulary(docs [][]string, minDF, maxFeatures int) ([]string, map[string]int) {
	df := make(map[string]int)
	total := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			total[tok]++
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term, n := range df {
		if n >= minDF {
			terms = append(terms, term)
		}
	}
	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if total[terms[i]] != total[terms[j]] {
				return total[terms[i]] > total[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)
	return terms, df
}

func fitSoftmax(vectors [][]feature, targets []int, numLabels, numTerms int, opts TrainOptions) ([][]float64, []float64) {
	weights := make([][]float64, numLabels)
	grads := make([][]float64, numLabels)
	for l := range weights {
		weights[l] = make([]float64, numTerms)
		grads[l] = make([]float64, numTerms)
	}
	intercepts := make([]float64, numLabels)
	gradB := make([]float64, numLabels)
	scores := make([]float64, numLabels)
	n := float64(len(vectors))

	for epoch := 0; epoch < opts.Epochs; epoch++ {
		for l := range grads {
			clear(grads[l])
		}
		clear(gradB)

		for i, x := range vectors {
			for l := range scores {
				scores[l] = intercepts[l] + dot(weights[l], x)
			}
			probs := softmax(scores)
			for l, p := range probs {
				g := p
				if l == targets[i] {
					g -= 1
				}
				gradB[l] += g
				for _, f := range x {
					grads[l][f.index] += g * f.value
				}
			}
		}

		for l := range weights {
			row := weights[l]
			for j := range row {
				row[j] -= opts.LearningRate * (grads[l][j]/n + opts.L2*row[j])
			}
			intercepts[l] -= opts.LearningRate * gradB[l] / n
		}
	}
	return weights, intercepts
}
