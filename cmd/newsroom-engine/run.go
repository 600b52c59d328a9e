package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsenko/newsroom-engine/internal/pipeline"
	"github.com/jsenko/newsroom-engine/internal/process"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the article pipeline for one or more submitted processes",
	Long: `Run executes the news pipeline for a submitted process: search, per-source
summarization, and final composition, committing the outcome to the process
store. Provide a single process with --process-id, or a YAML batch with
--input; batch requests are executed sequentially.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		processID, _ := cmd.Flags().GetString("process-id")
		input, _ := cmd.Flags().GetString("input")

		var requests []pipeline.Request
		switch {
		case input != "":
			rf, err := pipeline.ReadRequestFile(input)
			if err != nil {
				return err
			}
			requests = rf.Requests
		case processID != "":
			requests = []pipeline.Request{{ProcessID: processID}}
		default:
			return fmt.Errorf("either --process-id or --input is required")
		}

		cfg := buildConfig()
		log := buildLogger()

		store, err := process.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()

		mgr := buildManager(cfg, store, log)

		ctx := cmd.Context()
		failed := 0
		for _, req := range requests {
			// The question travels with the stored record; a batch file
			// carries it inline and creates the record on first sight, a
			// bare --process-id reads it back from an earlier submit.
			if req.Question == "" {
				rec, err := store.Get(ctx, req.ProcessID)
				if err != nil {
					return err
				}
				req.Question = rec.Question
			} else if _, err := store.Get(ctx, req.ProcessID); errors.Is(err, process.ErrNotFound) {
				if err := store.Create(ctx, req.ProcessID, req.Question); err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			resp, err := mgr.Run(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s\n", resp.Body)
			if resp.StatusCode != 200 {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d processes did not complete", failed, len(requests))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("process-id", "", "identifier of a submitted process to execute")
	runCmd.Flags().String("input", "", "YAML file with a batch of requests")

	rootCmd.AddCommand(runCmd)
}
