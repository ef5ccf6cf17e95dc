package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Predict the job category of a resume",
	RunE:  runClassify,
}

var (
	classifyText string
	classifyFile string
	classifyJSON bool
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyText, "text", "t", "", "Resume text")
	classifyCmd.Flags().StringVarP(&classifyFile, "file", "f", "", "Resume file (pdf, docx, html, txt) or - for stdin")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	text, err := readResume(ctx, classifyText, classifyFile)
	if err != nil {
		return err
	}
	svc, err := loadClassifyService()
	if err != nil {
		return err
	}
	res, err := svc.Classify(ctx, text)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	if classifyJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%.1f%% confidence, %d tokens)\n", res.Prediction.Label, res.Prediction.Confidence*100, res.Tokens)
	return nil
}
