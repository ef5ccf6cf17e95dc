package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"resume-builder/internal/classifier"
	"resume-builder/internal/classify"
	"resume-builder/internal/extract"
)

// readResume returns resume text from --text, a file (PDF, DOCX, HTML or
// plain text), or stdin when the path is "-".
func readResume(ctx context.Context, text, path string) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}
	if path == "" {
		return "", errors.New("either --text or --file is required")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	out, err := extract.ExtractTextFromBytes(ctx, data, "", path)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return out, nil
}

func loadClassifyService() (*classify.Service, error) {
	c, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", cfg.ModelPath, err)
	}
	return classify.NewService(c), nil
}
