package model

import "time"

// Campaign records one fuzzing campaign invocation for the history
// directory.
type Campaign struct {
	// Unique ID for this campaign run
	ID string `json:"id"`
	// Timestamp when the campaign started
	Timestamp time.Time `json:"timestamp"`
	// Command-line arguments (including command name)
	Args []string `json:"args"`
	// Working directory where the command was run
	WorkDir string `json:"workdir"`
	// Final orchestrator state (completed or failed)
	State string `json:"state"`
	// Wall-clock time the invocation took
	Duration time.Duration `json:"duration"`
	// Target test entry point
	TargetClass  string `json:"target_class"`
	TargetMethod string `json:"target_method"`
	// Fuzzing framework that ran the campaign
	Framework string `json:"framework"`
	// Configured time budget
	Budget time.Duration `json:"budget"`
	// Git information
	Git *Git `json:"git,omitempty"`
	// Failure artifacts the framework persisted during this run
	Artifacts []Artifact `json:"artifacts,omitempty"`
	// Error message when the campaign failed
	Error string `json:"error,omitempty"`
}

// Git contains git repository information
type Git struct {
	// Git commit hash at time of execution
	Commit string `json:"commit,omitempty"`
	// Git branch at time of execution
	Branch string `json:"branch,omitempty"`
}

// Artifact represents a failure input the framework wrote to the
// campaign-state directory.
type Artifact struct {
	Size uint64 `json:"size"`
	File string `json:"file"` // relative to the campaign directory
}
