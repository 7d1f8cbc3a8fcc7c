package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rnalab/rnafold/energy"
)

// loadParams reads energy-model overrides from a YAML file on top of
// base. Only the keys present in the file are overridden, e.g.:
//
//	min_loop: 4
//	stack_bonus: -3.5
//	hairpin_per_base: 0.2
//
// The merged set is validated so a malformed file is rejected before any
// folding starts.
func loadParams(path string, base energy.Params) (energy.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("params %s: %w", path, err)
	}

	merged := base
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return base, fmt.Errorf("params %s: %w", path, err)
	}
	if err := merged.Validate(); err != nil {
		return base, fmt.Errorf("params %s: %w", path, err)
	}

	return merged, nil
}
