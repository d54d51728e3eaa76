package campaign

// errors.go defines the failure categories surfaced by campaign
// orchestration. Every category preserves its underlying cause; all of
// them are terminal for the current invocation.

import "fmt"

// ConfigError indicates invalid externally supplied configuration, such
// as a bad executable path or a malformed duration.
type ConfigError struct {
	Msg   string
	Cause error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// IOError indicates a filesystem failure during directory creation,
// artifact staging or report-handle creation.
type IOError struct {
	Msg   string
	Cause error
}

func (e *IOError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *IOError) Unwrap() error { return e.Cause }

// ResolutionError indicates that upstream dependency resolution was
// incomplete and the test classpath could not be determined.
type ResolutionError struct {
	Msg   string
	Cause error
}

func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *ResolutionError) Unwrap() error { return e.Cause }

// FrameworkError folds every fuzzing-framework instantiation failure
// into one category: unknown name, construction failure or an error
// returned by the framework's own initialization.
type FrameworkError struct {
	Msg   string
	Cause error
}

func (e *FrameworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *FrameworkError) Unwrap() error { return e.Cause }
