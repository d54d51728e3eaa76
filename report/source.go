// Package report converts the coverage data a campaign produced into
// on-disk reports. The coverage reader is an opaque collaborator behind
// the Source contract; the three output encodings are selected through
// the closed Format enumeration.
package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// Counter is a covered/missed pair for one coverage dimension.
type Counter struct {
	Covered int `json:"covered"`
	Missed  int `json:"missed"`
}

func (c Counter) Total() int { return c.Covered + c.Missed }

// ClassCoverage is the per-class record every formatter consumes.
type ClassCoverage struct {
	Package      string  `json:"package"`
	Class        string  `json:"class"`
	Instructions Counter `json:"instructions"`
	Branches     Counter `json:"branches"`
	Lines        Counter `json:"lines"`
}

// Source supplies the coverage records of a finished campaign.
type Source interface {
	Classes() ([]ClassCoverage, error)
}

// JSONSource reads coverage records from a JSON file emitted by the
// fuzzing framework's coverage collector.
type JSONSource struct {
	Path string
}

func (s JSONSource) Classes() ([]ClassCoverage, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage data %s: %w", s.Path, err)
	}
	var classes []ClassCoverage
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("failed to parse coverage data %s: %w", s.Path, err)
	}
	return classes, nil
}
