// Package scenario loads exercise scenarios: program sources paired with
// the output or diagnostic kind they must produce.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// Suite is one scenario file.
type Suite struct {
	Path      string     `yaml:"-"`
	Name      string     `yaml:"name"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is a program and its expected outcome. A scenario with a Kind
// expects a diagnostic of that kind; otherwise it expects exactly Output.
type Scenario struct {
	Name   string   `yaml:"name"`
	Prompt string   `yaml:"prompt,omitempty"`
	Source string   `yaml:"source"`
	Output []string `yaml:"output,omitempty"`
	Kind   string   `yaml:"kind,omitempty"`
}

// Load parses a scenario file.
func Load(path string) (*Suite, error) {
	if path == "" {
		return nil, fmt.Errorf("scenario: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var suite Suite
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	suite.Path = path
	if suite.Name == "" {
		suite.Name = filepath.Base(path)
	}
	for i, s := range suite.Scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("scenario: %s: scenario %d: %w", path, i+1, err)
		}
	}
	return &suite, nil
}

// LoadDir loads every *.yaml file in dir, in name order.
func LoadDir(dir string) ([]*Suite, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	suites := make([]*Suite, 0, len(paths))
	for _, path := range paths {
		suite, err := Load(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

func (s Scenario) validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("missing name")
	case s.Source == "":
		return fmt.Errorf("%s: missing source", s.Name)
	case s.Kind != "" && len(s.Output) > 0:
		return fmt.Errorf("%s: output and kind are exclusive", s.Name)
	}
	return nil
}

// Check compares an outcome with the expectation: kind is the diagnostic
// kind of a failed run, empty on success.
func (s Scenario) Check(output []string, kind string) error {
	if s.Kind != "" {
		if kind != s.Kind {
			return fmt.Errorf("%s: got %s, want diagnostic %q", s.Name, describe(output, kind), s.Kind)
		}
		return nil
	}
	if kind != "" || !slices.Equal(output, s.Output) {
		return fmt.Errorf("%s: got %s, want output %q", s.Name, describe(output, kind), s.Output)
	}
	return nil
}

func describe(output []string, kind string) string {
	if kind != "" {
		return fmt.Sprintf("diagnostic %q", kind)
	}
	return fmt.Sprintf("output %q", output)
}
