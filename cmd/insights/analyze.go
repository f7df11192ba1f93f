package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"memorycompanion/internal/insights"
	"memorycompanion/internal/model"
)

func newAnalyzeCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze reflections from a JSON file",
		Long:  "Reads a JSON array of reflections ({response_text, word_count, created_at, category, ...}) and prints the insights payload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := resolveToday(cmd)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			var reflections []model.Reflection
			if err := json.Unmarshal(data, &reflections); err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			eligible := insights.Eligible(reflections)
			since := today.AddDate(0, 0, -365)
			windowed := make([]model.Reflection, 0, len(eligible))
			for _, r := range eligible {
				if !r.CreatedAt.Before(since) {
					windowed = append(windowed, r)
				}
			}

			return printJSON(cmd.OutOrStdout(), insights.Analyze(windowed, today))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file of reflections")
	cmd.MarkFlagRequired("file")
	return cmd
}
