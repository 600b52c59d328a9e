package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsenko/newsroom-engine/internal/process"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Create a pending process for a topic question",
	Long: `Submit registers a new process in PENDING state and prints its identifier.
The pipeline itself is started separately with run (or over HTTP with serve),
so submission and execution can live on different schedules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		question, _ := cmd.Flags().GetString("question")
		if question == "" {
			return fmt.Errorf("--question is required")
		}

		processID, _ := cmd.Flags().GetString("process-id")
		if processID == "" {
			processID = uuid.NewString()
		}

		store, err := process.Open(buildConfig().Store)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Create(cmd.Context(), processID, question); err != nil {
			return err
		}

		fmt.Println(processID)
		return nil
	},
}

func init() {
	submitCmd.Flags().String("question", "", "topic question the article is written about")
	submitCmd.Flags().String("process-id", "", "process identifier (default: generated)")

	rootCmd.AddCommand(submitCmd)
}
