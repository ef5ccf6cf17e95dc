// Command resumectl classifies resumes, generates documents and trains the
// category model from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/shared/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Resume category classifier and document generator",
	Long:  "resumectl predicts the job category of a resume, generates tailored resumes, cover letters and portfolio pages, and trains the category model.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg = config.Load()
		if modelPath != "" {
			cfg.ModelPath = modelPath
		}
	},
	SilenceUsage: true,
}

var modelPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelPath, "model", "m", "", "Path to the model artifact (overrides MODEL_PATH)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
