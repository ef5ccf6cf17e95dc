package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"resume-builder/resume/fields"
	"resume-builder/resume/generate"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume, cover letter or portfolio and export it",
	Long:  "Classifies the resume, extracts its fields (optionally overlaid with a fields JSON file), generates the requested document and writes it as PDF, DOCX or HTML.",
	RunE:  runGenerate,
}

var (
	generateText      string
	generateFile      string
	generateFields    string
	generateKind      string
	generateJobDesc   string
	generateJobFile   string
	generateFormat    string
	generateOut       string
	generateWriteJSON bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateText, "text", "t", "", "Resume text")
	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "Resume file (pdf, docx, html, txt) or - for stdin")
	generateCmd.Flags().StringVar(&generateFields, "fields", "", "JSON file with structured fields that override extracted ones")
	generateCmd.Flags().StringVarP(&generateKind, "kind", "k", "resume", "Document kind: resume, cover_letter or portfolio")
	generateCmd.Flags().StringVar(&generateJobDesc, "job", "", "Job description text to tailor against")
	generateCmd.Flags().StringVar(&generateJobFile, "job-file", "", "File holding the job description")
	generateCmd.Flags().StringVar(&generateFormat, "format", "pdf", "Export format: pdf, docx or html")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output path (required)")
	generateCmd.Flags().BoolVar(&generateWriteJSON, "json", false, "Also write the generated document as JSON next to the output")

	if err := generateCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	kind, err := model.ParseKind(generateKind)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(generateFormat)
	if err != nil {
		return err
	}
	engine, err := render.ParsePDFEngine(cfg.PDFEngine)
	if err != nil {
		return err
	}

	text, err := readResume(ctx, generateText, generateFile)
	if err != nil {
		return err
	}
	jobDescription := generateJobDesc
	if generateJobFile != "" {
		data, err := os.ReadFile(generateJobFile)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		jobDescription = string(data)
	}

	svc, err := loadClassifyService()
	if err != nil {
		return err
	}
	res, err := svc.Classify(ctx, text)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	fieldSet := fields.Extract(text)
	if generateFields != "" {
		raw, err := os.ReadFile(generateFields)
		if err != nil {
			return fmt.Errorf("read fields: %w", err)
		}
		var override model.ResumeFieldSet
		if err := json.Unmarshal(raw, &override); err != nil {
			return fmt.Errorf("decode fields: %w", err)
		}
		fieldSet = fields.Merge(fieldSet, override)
	}

	gen := generate.New(generate.RankWeights{
		JobOverlap: cfg.RankJobOverlapWeight,
		Category:   cfg.RankCategoryWeight,
	}, cfg.MaxSkills)
	doc, err := gen.Generate(kind, fieldSet, res.Prediction, jobDescription)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	doc.CreatedAt = time.Now().UTC()

	exporter := render.NewExporter(render.Options{PDFEngine: engine, ChromePath: cfg.ChromePath})
	artifact, err := exporter.Export(ctx, doc, format)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := writeFile(generateOut, artifact.Bytes); err != nil {
		return err
	}
	if generateWriteJSON {
		payload, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		jsonPath := strings.TrimSuffix(generateOut, filepath.Ext(generateOut)) + ".json"
		if err := writeFile(jsonPath, payload); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: wrote %s (%s, %s, %d sections)\n", generateOut, doc.Kind, doc.Category.Label, len(doc.Sections))
	for _, rec := range doc.Recommendations {
		fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s: %s\n", rec.Severity, rec.Title, rec.Action)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
