package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsenko/newsroom-engine/internal/process"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of a process",
	Long: `Status prints a process record as JSON: its lifecycle state, the composed
article once COMPLETED, or the failure reason once FAILED.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		processID, _ := cmd.Flags().GetString("process-id")
		if processID == "" {
			return fmt.Errorf("--process-id is required")
		}

		store, err := process.Open(buildConfig().Store)
		if err != nil {
			return err
		}
		defer store.Close()

		rec, err := store.Get(cmd.Context(), processID)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	},
}

func init() {
	statusCmd.Flags().String("process-id", "", "process identifier to look up")

	rootCmd.AddCommand(statusCmd)
}
