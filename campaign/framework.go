package campaign

// framework.go defines the capability contract every pluggable fuzzing
// framework satisfies, and the loader contract the orchestrator uses to
// obtain one. Concrete frameworks and their registry live in the
// framework package; keeping the contracts here lets frameworks depend
// on the campaign configuration without an import cycle.

import "context"

// Framework is a pluggable fuzzing engine. It is constructed with no
// arguments, initialized exactly once with the campaign configuration
// and free-form parameters, then run.
//
// Run is bounded by the deadline on ctx, derived from the campaign time
// budget. Enforcement is the framework's contract obligation: it must
// self-terminate at or before the deadline and persist its progress to
// the campaign-state directory incrementally, so a killed or expired
// run leaves valid, resumable state.
type Framework interface {
	Init(cfg *Config, params map[string]string) error
	Run(ctx context.Context) error
}

// FrameworkLoader resolves a framework name to a live, initialized
// instance. Every failure mode (unknown name, construction failure,
// initialization failure) surfaces as a FrameworkError.
type FrameworkLoader interface {
	New(name string, cfg *Config, params map[string]string) (Framework, error)
}
