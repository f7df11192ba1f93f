// Command insights runs the reflection insights pipeline outside the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"memorycompanion/internal/insights"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "insights",
		Short:        "Derive personal insights from reflection history",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", os.Getenv("CONFIG_FILE"), "path to YAML config file")
	root.PersistentFlags().String("today", "", "analysis date as YYYY-MM-DD (default: current UTC date)")

	root.AddCommand(newAnalyzeCmd(), newUserCmd(), newTokenCmd())
	return root
}

// resolveToday reads --today once so every stage of a run sees the same date.
func resolveToday(cmd *cobra.Command) (time.Time, error) {
	raw, err := cmd.Flags().GetString("today")
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return insights.Day(time.Now()), nil
	}
	today, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today %q: %w", raw, err)
	}
	return today, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
