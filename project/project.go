// Package project reads the descriptor the build system hands to the
// orchestrator: the project root, the build output directory and the
// resolved test classpath elements.
package project

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fuzzmill/fuzzmill/campaign"
)

// Project is the build-system input to one campaign. Classpath elements
// are a set; duplicates carry no meaning and collapse during staging.
type Project struct {
	Root          string   `yaml:"projectRoot"`
	BuildDir      string   `yaml:"buildDir"`
	TestClasspath []string `yaml:"testClasspath"`
	// Unresolved lists dependencies the build system failed to
	// resolve. A non-empty list means the classpath is incomplete.
	Unresolved []string `yaml:"unresolved,omitempty"`
}

// Load parses a project descriptor. An incomplete upstream dependency
// resolution propagates as a ResolutionError rather than being retried.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &campaign.ResolutionError{Msg: fmt.Sprintf("failed to read project descriptor %s", path), Cause: err}
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &campaign.ConfigError{Msg: fmt.Sprintf("invalid project descriptor %s", path), Cause: err}
	}
	if len(p.Unresolved) > 0 {
		return nil, &campaign.ResolutionError{
			Msg: fmt.Sprintf("required test dependencies were not resolved: %s", strings.Join(p.Unresolved, ", ")),
		}
	}
	if p.BuildDir == "" {
		return nil, &campaign.ConfigError{Msg: fmt.Sprintf("project descriptor %s is missing buildDir", path)}
	}
	return &p, nil
}
