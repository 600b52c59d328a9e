package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsenko/newsroom-engine/internal/pipeline"
	"github.com/jsenko/newsroom-engine/internal/process"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pipeline over HTTP",
	Long: `Serve exposes the pipeline at POST /v1/processes. The request body is
{"processId": "...", "question": "..."}; the process is created if it does
not exist, executed synchronously, and the pipeline response is returned.
Callers are expected to impose their own request deadline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		cfg := buildConfig()
		log := buildLogger()

		store, err := process.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()

		mgr := buildManager(cfg, store, log)

		mux := http.NewServeMux()
		mux.HandleFunc("POST /v1/processes", func(w http.ResponseWriter, r *http.Request) {
			var req pipeline.Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProcessID == "" || req.Question == "" {
				http.Error(w, `{"error": "processId and question are required"}`, http.StatusBadRequest)
				return
			}

			// Submit on first sight; an existing record keeps its state and
			// the claim below decides whether this invocation proceeds.
			if _, err := store.Get(r.Context(), req.ProcessID); errors.Is(err, process.ErrNotFound) {
				if createErr := store.Create(r.Context(), req.ProcessID, req.Question); createErr != nil {
					log.Error("creating process", "processId", req.ProcessID, "err", createErr)
					http.Error(w, `{"error": "could not create process"}`, http.StatusInternalServerError)
					return
				}
			}

			resp, err := mgr.Run(r.Context(), req)
			if err != nil {
				log.Error("status store write failed", "processId", req.ProcessID, "err", err)
				http.Error(w, `{"error": "status store unavailable"}`, http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", resp.ContentType)
			w.WriteHeader(resp.StatusCode)
			w.Write(resp.Body)
		})

		fmt.Fprintf(os.Stderr, "listening on %s\n", addr)
		return http.ListenAndServe(addr, mux)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")

	rootCmd.AddCommand(serveCmd)
}
