package campaign

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// noopFramework satisfies the contract and returns immediately.
type noopFramework struct {
	inited  bool
	ran     bool
	lastCtx context.Context
	runErr  error
}

func (f *noopFramework) Init(cfg *Config, params map[string]string) error {
	f.inited = true
	return nil
}

func (f *noopFramework) Run(ctx context.Context) error {
	f.ran = true
	f.lastCtx = ctx
	return f.runErr
}

// stubLoader resolves exactly one framework name.
type stubLoader struct {
	name string
	fw   *noopFramework
}

func (l stubLoader) New(name string, cfg *Config, params map[string]string) (Framework, error) {
	if name != l.name {
		return nil, &FrameworkError{Msg: fmt.Sprintf("unknown fuzzing framework %q", name)}
	}
	if err := l.fw.Init(cfg, params); err != nil {
		return nil, &FrameworkError{Msg: "failed to initialize fuzzing framework", Cause: err}
	}
	return l.fw, nil
}

func writeJavaExec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "java")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	return path
}

func testOptions(t *testing.T, outputRoot string) Options {
	return Options{
		OutputRoot:   outputRoot,
		TargetClass:  "com.example.Target",
		TargetMethod: "fuzzTest",
		JavaExec:     writeJavaExec(t),
		Budget:       time.Second,
		Framework:    "noop",
	}
}

func TestOrchestratorCompletes(t *testing.T) {
	outputRoot := filepath.Join(t.TempDir(), "fuzzmill")
	fw := &noopFramework{}
	orch := NewOrchestrator(zerolog.Nop(), stubLoader{name: "noop", fw: fw}, testOptions(t, outputRoot))

	require.Equal(t, StateUninitialized, orch.State())
	require.NoError(t, orch.Run(context.Background()))
	require.Equal(t, StateCompleted, orch.State())
	require.True(t, fw.inited)
	require.True(t, fw.ran)

	// The layout exists and the staged artifact is a valid manifest jar.
	layout := NewLayout(outputRoot)
	for _, dir := range []string{layout.LibraryDir(), layout.CampaignDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}
	jar := filepath.Join(layout.LibraryDir(), TestJarName)
	require.Contains(t, readManifest(t, jar), "Manifest-Version: 1.0")

	cfg := orch.Config()
	require.NotNil(t, cfg)
	require.Equal(t, "com.example.Target", cfg.TargetClass())
	require.Equal(t, "fuzzTest", cfg.TargetMethod())
	require.Equal(t, jar, cfg.TestJar())
}

func TestOrchestratorPassesBudgetDeadline(t *testing.T) {
	outputRoot := filepath.Join(t.TempDir(), "fuzzmill")
	fw := &noopFramework{}
	orch := NewOrchestrator(zerolog.Nop(), stubLoader{name: "noop", fw: fw}, testOptions(t, outputRoot))

	require.NoError(t, orch.Run(context.Background()))

	deadline, ok := fw.lastCtx.Deadline()
	require.True(t, ok, "framework context must carry the budget deadline")
	require.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
}

func TestOrchestratorUnknownFrameworkLeavesStagingIntact(t *testing.T) {
	outputRoot := filepath.Join(t.TempDir(), "fuzzmill")
	opts := testOptions(t, outputRoot)
	opts.Framework = "does-not-exist"
	orch := NewOrchestrator(zerolog.Nop(), stubLoader{name: "noop", fw: &noopFramework{}}, opts)

	err := orch.Run(context.Background())
	var fwErr *FrameworkError
	require.ErrorAs(t, err, &fwErr)
	require.Equal(t, StateFailed, orch.State())

	// No cleanup or rollback: directories and artifact remain for the
	// next invocation.
	layout := NewLayout(outputRoot)
	_, err = os.Stat(filepath.Join(layout.LibraryDir(), TestJarName))
	require.NoError(t, err)
	_, err = os.Stat(layout.CampaignDir())
	require.NoError(t, err)
}

func TestOrchestratorInvalidExecHasNoSideEffects(t *testing.T) {
	outputRoot := filepath.Join(t.TempDir(), "fuzzmill")
	opts := testOptions(t, outputRoot)
	opts.JavaExec = filepath.Join(t.TempDir(), "not-java")
	orch := NewOrchestrator(zerolog.Nop(), stubLoader{name: "noop", fw: &noopFramework{}}, opts)

	err := orch.Run(context.Background())
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, StateFailed, orch.State())

	// Validation failed before any directory or staging work.
	_, statErr := os.Stat(outputRoot)
	require.True(t, os.IsNotExist(statErr))
}

func TestOrchestratorFrameworkFailureIsTerminal(t *testing.T) {
	outputRoot := filepath.Join(t.TempDir(), "fuzzmill")
	fw := &noopFramework{runErr: errors.New("engine crashed")}
	orch := NewOrchestrator(zerolog.Nop(), stubLoader{name: "noop", fw: fw}, testOptions(t, outputRoot))

	err := orch.Run(context.Background())
	require.Error(t, err)
	require.Equal(t, StateFailed, orch.State())
}
