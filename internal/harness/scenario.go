package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: one pattern grounded
// against one knowledge base, with expectations on the result.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden
	// file when the scenario runs under golden comparison.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// KB is the path to the knowledge-base directory holding the CUE
	// documents to compile. Relative paths resolve against the scenario
	// file location.
	KB string `yaml:"kb"`

	// Pattern names the pattern to ground, as declared in the KB.
	Pattern string `yaml:"pattern"`

	// Expect declares the expected outcome.
	Expect Expectation `yaml:"expect"`
}

// Expectation declares the expected grounding outcome of a scenario.
type Expectation struct {
	// Matched is whether at least one grounding must be accepted.
	Matched bool `yaml:"matched"`

	// Groundings is the exact expected number of accepted groundings.
	// Nil skips the count check.
	Groundings *int `yaml:"groundings,omitempty"`

	// Bindings lists per-grounding subset matches. Keys and values are
	// canonical forms. Every listed map must match at least one
	// accepted grounding.
	Bindings []map[string]string `yaml:"bindings,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Returns an error
// if the file doesn't exist, is malformed, contains unknown fields
// (typos), or is missing required fields. The KB path is resolved
// relative to the scenario file's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "binding:" vs "bindings:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if !filepath.IsAbs(scenario.KB) && scenario.KB != "" {
		scenario.KB = filepath.Join(filepath.Dir(path), scenario.KB)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.KB == "" {
		return fmt.Errorf("kb is required")
	}
	if s.Pattern == "" {
		return fmt.Errorf("pattern is required")
	}
	if g := s.Expect.Groundings; g != nil && *g < 0 {
		return fmt.Errorf("expect.groundings must be non-negative")
	}
	return nil
}
