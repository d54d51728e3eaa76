// Package framework hosts the pluggable fuzzing engines and the
// registry that resolves an engine name to a live instance. The
// registry replaces open-world runtime class lookup with an explicit
// table of constructor functions, so new engines can be added without
// touching the orchestrator.
package framework

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fuzzmill/fuzzmill/campaign"
)

// Factory constructs an uninitialized framework instance.
type Factory func() campaign.Framework

// Registry maps framework names to factories. It satisfies
// campaign.FrameworkLoader.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Registering the same name twice
// is a programming error and panics at init time.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		panic(fmt.Sprintf("framework %q registered twice", name))
	}
	r.factories[name] = factory
}

// Names returns the registered framework names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New resolves name, constructs the framework and initializes it with
// the campaign configuration and engine-specific parameters. All
// failure modes fold into a campaign.FrameworkError with the cause
// preserved.
func (r *Registry) New(name string, cfg *campaign.Config, params map[string]string) (campaign.Framework, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &campaign.FrameworkError{Msg: fmt.Sprintf("unknown fuzzing framework %q", name)}
	}
	fw := factory()
	if err := fw.Init(cfg, params); err != nil {
		return nil, &campaign.FrameworkError{Msg: fmt.Sprintf("failed to initialize fuzzing framework %q", name), Cause: err}
	}
	return fw, nil
}

// Default is the process-wide registry populated by builtin engines at
// init time.
var Default = NewRegistry()
