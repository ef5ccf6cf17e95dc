package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/resume/generate"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories the model predicts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := loadClassifyService()
		if err != nil {
			return err
		}
		for _, label := range svc.Labels() {
			marker := ""
			if !generate.KnownCategory(label) {
				marker = " (generic template)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", label, marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
