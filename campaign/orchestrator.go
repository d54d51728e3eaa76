package campaign

// orchestrator.go drives one campaign through a single linear pipeline:
// validate the executable, prepare directories and stage the manifest
// jar, assemble the configuration, load the framework and run it under
// the time budget. Every step error is terminal; partial on-disk state
// is left for diagnosis and safely reused on the next invocation.

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// State tracks the orchestrator through its pipeline.
type State int

const (
	StateUninitialized State = iota
	StateValidated
	StateStaged
	StateRunning
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateValidated:
		return "validated"
	case StateStaged:
		return "staged"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// TestJarName is the fixed name of the staged manifest artifact inside
// the library directory.
const TestJarName = "test.jar"

// Options are the externally supplied inputs to one campaign. The time
// budget arrives already parsed (see ParseBudget); the classpath
// elements come from the build-system collaborator.
type Options struct {
	OutputRoot    string
	TargetClass   string
	TargetMethod  string
	JavaExec      string
	JavaOptions   []string
	Budget        time.Duration
	Framework     string
	FrameworkArgs map[string]string
	Classpath     []string
}

// Orchestrator owns the campaign pipeline and the framework instance it
// loads. It is single-threaded and synchronous; the only concurrency it
// introduces is the failure watcher running alongside the framework.
type Orchestrator struct {
	logger zerolog.Logger
	loader FrameworkLoader
	opts   Options
	state  State
	cfg    *Config
}

func NewOrchestrator(logger zerolog.Logger, loader FrameworkLoader, opts Options) *Orchestrator {
	return &Orchestrator{
		logger: logger,
		loader: loader,
		opts:   opts,
		state:  StateUninitialized,
	}
}

// State reports the pipeline state reached so far.
func (o *Orchestrator) State() State { return o.state }

// Config returns the assembled campaign configuration, or nil before
// staging has completed.
func (o *Orchestrator) Config() *Config { return o.cfg }

// Run executes the pipeline to completion or the first error.
func (o *Orchestrator) Run(ctx context.Context) error {
	if err := ValidateJavaExec(o.opts.JavaExec); err != nil {
		return o.fail(err)
	}
	o.state = StateValidated

	layout := NewLayout(o.opts.OutputRoot)
	if err := layout.Ensure(); err != nil {
		return o.fail(err)
	}

	testJar := filepath.Join(layout.LibraryDir(), TestJarName)
	if err := StageManifestJar(o.opts.Classpath, testJar); err != nil {
		return o.fail(err)
	}
	o.logger.Debug().Str("jar", testJar).Int("elements", len(o.opts.Classpath)).Msg("Staged test manifest jar")

	cfg, err := NewConfig(o.opts.TargetClass, o.opts.TargetMethod, o.opts.Budget,
		layout.CampaignDir(), o.opts.JavaOptions, testJar, o.opts.JavaExec)
	if err != nil {
		return o.fail(err)
	}
	o.cfg = cfg
	o.state = StateStaged

	fw, err := o.loader.New(o.opts.Framework, cfg, o.opts.FrameworkArgs)
	if err != nil {
		return o.fail(err)
	}

	o.logger.Info().
		Str("framework", o.opts.Framework).
		Str("target", cfg.TargetClass()+"#"+cfg.TargetMethod()).
		Dur("budget", cfg.Budget()).
		Msg("Starting fuzzing campaign")

	// The deadline context carries the budget down to the framework;
	// the orchestrator never kills an overrunning framework itself.
	runCtx, cancel := context.WithTimeout(ctx, cfg.Budget())
	defer cancel()

	watchCtx, stopWatch := context.WithCancel(runCtx)
	o.state = StateRunning

	var g errgroup.Group
	g.Go(func() error {
		WatchFailures(watchCtx, o.logger, cfg.CampaignDir())
		return nil
	})
	g.Go(func() error {
		defer stopWatch()
		return fw.Run(runCtx)
	})
	if err := g.Wait(); err != nil {
		return o.fail(err)
	}

	o.state = StateCompleted
	o.logger.Info().Str("campaign_dir", cfg.CampaignDir()).Msg("Fuzzing campaign completed")
	return nil
}

func (o *Orchestrator) fail(err error) error {
	o.state = StateFailed
	return err
}
