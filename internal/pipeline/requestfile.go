// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// RequestFile is the on-disk representation of a batch of pipeline requests,
// processed sequentially by the run command.
type RequestFile struct {
	Requests []Request `yaml:"requests"`
}

// ReadRequestFile loads a request batch from a YAML file. Every request must
// carry both a process identifier and a question.
func ReadRequestFile(path string) (*RequestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}

	var rf RequestFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}

	for i, r := range rf.Requests {
		if r.ProcessID == "" || r.Question == "" {
			return nil, fmt.Errorf("request %d: process_id and question are required", i)
		}
	}
	return &rf, nil
}
