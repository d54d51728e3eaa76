package framework

// process.go contains the builtin "process" engine: a generic wrapper
// that hands the whole campaign to an external fuzzing tool running in
// a test JVM. The subprocess resolves its classpath from the staged
// manifest jar, keeping the command line short regardless of how many
// classpath elements the build produced.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/rs/zerolog/log"

	"github.com/fuzzmill/fuzzmill/campaign"
)

func init() {
	Default.Register("process", func() campaign.Framework { return &ProcessFramework{} })
}

// ProcessFramework launches one JVM subprocess for the full campaign
// and relies on the tool inside it to fuzz the target. Output is both
// displayed and appended to logs in the campaign-state directory, so
// an interrupted campaign keeps its history across invocations.
type ProcessFramework struct {
	cfg       *campaign.Config
	extraArgs []string
}

// Init captures the configuration and engine parameters. The optional
// "args" parameter carries extra program arguments inserted before the
// target class and method.
func (f *ProcessFramework) Init(cfg *campaign.Config, params map[string]string) error {
	if f.cfg != nil {
		return errors.New("process framework initialized twice")
	}
	f.cfg = cfg
	if raw, ok := params["args"]; ok {
		f.extraArgs = strings.Fields(raw)
	}
	for key := range params {
		if key != "args" {
			return fmt.Errorf("unsupported process framework parameter %q", key)
		}
	}
	return nil
}

// Run executes the subprocess until it exits or the budget deadline on
// ctx expires. Deadline expiry is a normal campaign completion, not an
// error; the subprocess is expected to have persisted its progress
// incrementally.
func (f *ProcessFramework) Run(ctx context.Context) error {
	if f.cfg == nil {
		return errors.New("process framework not initialized")
	}

	args := f.buildArgs()
	cmd := exec.CommandContext(ctx, f.cfg.JavaExec(), args...)
	// Don't wait on inherited pipes once the JVM itself is gone.
	cmd.WaitDelay = 10 * time.Second

	log.Debug().
		Str("command", renderCommand(f.cfg.JavaExec(), args)).
		Msg("Launching test JVM")

	stdout, err := openCampaignLog(f.cfg.CampaignDir(), "stdout.log")
	if err != nil {
		return err
	}
	defer stdout.Close()
	stderr, err := openCampaignLog(f.cfg.CampaignDir(), "stderr.log")
	if err != nil {
		return err
	}
	defer stderr.Close()

	cmd.Stdout = io.MultiWriter(os.Stdout, stdout)
	cmd.Stderr = io.MultiWriter(os.Stderr, stderr)

	runErr := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		log.Info().Msg("Campaign time budget exhausted, test JVM stopped")
		return nil
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return fmt.Errorf("test JVM exited with code %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to execute test JVM: %w", runErr)
	}
	return nil
}

func (f *ProcessFramework) buildArgs() []string {
	args := append([]string{}, f.cfg.JavaOptions()...)
	args = append(args, "-cp", f.cfg.TestJar())
	args = append(args, f.extraArgs...)
	args = append(args, f.cfg.TargetClass(), f.cfg.TargetMethod())
	return args
}

// renderCommand joins the launch command with shell escaping, for logs
// only.
func renderCommand(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellescape.Quote(binary))
	for _, arg := range args {
		parts = append(parts, shellescape.Quote(arg))
	}
	return strings.Join(parts, " ")
}

func openCampaignLog(dir, name string) (*os.File, error) {
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open campaign log %s: %w", path, err)
	}
	return file, nil
}
