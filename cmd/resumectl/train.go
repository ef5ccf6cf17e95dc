package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/internal/classifier"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit the category model from a labeled CSV",
	Long:  "Reads a CSV with a category column and a resume text column, fits the TF-IDF vocabulary and a multinomial logistic regression, and writes the model artifact.",
	RunE:  runTrain,
}

var (
	trainData        string
	trainOut         string
	trainLabelColumn string
	trainTextColumn  string
	trainEpochs      int
	trainMaxFeatures int
	trainMinDF       int
)

func init() {
	defaults := classifier.DefaultTrainOptions()
	trainCmd.Flags().StringVarP(&trainData, "data", "d", "", "Path to training CSV (required)")
	trainCmd.Flags().StringVarP(&trainOut, "out", "o", "", "Output artifact path (defaults to the model path)")
	trainCmd.Flags().StringVar(&trainLabelColumn, "label-column", "Category", "CSV header of the label column")
	trainCmd.Flags().StringVar(&trainTextColumn, "text-column", "Resume", "CSV header of the text column")
	trainCmd.Flags().IntVar(&trainEpochs, "epochs", defaults.Epochs, "Gradient descent epochs")
	trainCmd.Flags().IntVar(&trainMaxFeatures, "max-features", defaults.MaxFeatures, "Vocabulary size cap")
	trainCmd.Flags().IntVar(&trainMinDF, "min-df", defaults.MinDF, "Minimum document frequency for a term")

	if err := trainCmd.MarkFlagRequired("data"); err != nil {
		panic(fmt.Sprintf("failed to mark data flag as required: %v", err))
	}
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(trainData)
	if err != nil {
		return fmt.Errorf("open %s: %w", trainData, err)
	}
	defer f.Close()

	samples, err := readSamples(f, trainLabelColumn, trainTextColumn)
	if err != nil {
		return err
	}

	opts := classifier.DefaultTrainOptions()
	opts.Epochs = trainEpochs
	opts.MaxFeatures = trainMaxFeatures
	opts.MinDF = trainMinDF
	artifact, err := classifier.Train(samples, opts)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	out := trainOut
	if out == "" {
		out = cfg.ModelPath
	}
	if err := classifier.Save(out, artifact); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: wrote %s (%d samples, %d labels, %d terms)\n", out, len(samples), len(artifact.Labels), len(artifact.Vocabulary))
	return nil
}

// readSamples reads labeled rows by header name. Rows with an empty label or
// text are skipped.
func readSamples(r io.Reader, labelColumn, textColumn string) ([]classifier.Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	labelIdx, textIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case labelColumn:
			labelIdx = i
		case textColumn:
			textIdx = i
		}
	}
	if labelIdx < 0 || textIdx < 0 {
		return nil, fmt.Errorf("csv must have %q and %q columns, got %v", labelColumn, textColumn, header)
	}

	var samples []classifier.Sample
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(samples)+2, err)
		}
		if labelIdx >= len(record) || textIdx >= len(record) {
			continue
		}
		label := strings.TrimSpace(record[labelIdx])
		text := strings.TrimSpace(record[textIdx])
		if label == "" || text == "" {
			continue
		}
		samples = append(samples, classifier.Sample{Label: label, Text: text})
	}
	return samples, nil
}
