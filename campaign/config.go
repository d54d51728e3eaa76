package campaign

// config.go contains the immutable campaign configuration handed to the
// fuzzing framework, plus the validation performed before it may be
// constructed.

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sosodev/duration"
)

// Config aggregates everything a fuzzing framework needs to run one
// campaign. It is created once by the orchestrator and never mutated
// afterwards; frameworks needing derived values must recompute them.
type Config struct {
	targetClass  string
	targetMethod string
	budget       time.Duration
	campaignDir  string
	javaOptions  []string
	testJar      string
	javaExec     string
}

// NewConfig validates the target identification and time budget and
// constructs the configuration. The executable path is expected to have
// been validated with ValidateJavaExec beforehand.
func NewConfig(targetClass, targetMethod string, budget time.Duration, campaignDir string,
	javaOptions []string, testJar, javaExec string) (*Config, error) {
	if targetClass == "" {
		return nil, &ConfigError{Msg: "target class must be specified"}
	}
	if targetMethod == "" {
		return nil, &ConfigError{Msg: "target method must be specified"}
	}
	if budget < 0 {
		return nil, &ConfigError{Msg: fmt.Sprintf("campaign duration must not be negative: %s", budget)}
	}
	opts := make([]string, len(javaOptions))
	copy(opts, javaOptions)
	return &Config{
		targetClass:  targetClass,
		targetMethod: targetMethod,
		budget:       budget,
		campaignDir:  campaignDir,
		javaOptions:  opts,
		testJar:      testJar,
		javaExec:     javaExec,
	}, nil
}

func (c *Config) TargetClass() string { return c.targetClass }

func (c *Config) TargetMethod() string { return c.targetMethod }

func (c *Config) Budget() time.Duration { return c.budget }

func (c *Config) CampaignDir() string { return c.campaignDir }

func (c *Config) TestJar() string { return c.testJar }

func (c *Config) JavaExec() string { return c.javaExec }

// JavaOptions returns a copy; order is preserved because JVM flags may
// be positionally sensitive.
func (c *Config) JavaOptions() []string {
	opts := make([]string, len(c.javaOptions))
	copy(opts, c.javaOptions)
	return opts
}

// ParseBudget parses an ISO-8601 duration ("P1D", "PT30M") into the
// campaign time budget.
func ParseBudget(text string) (time.Duration, error) {
	if text == "" {
		return 0, &ConfigError{Msg: "campaign duration must not be empty"}
	}
	d, err := duration.Parse(text)
	if err != nil {
		return 0, &ConfigError{Msg: fmt.Sprintf("invalid campaign duration %q", text), Cause: err}
	}
	return d.ToTimeDuration(), nil
}

// ValidateJavaExec checks that path points to a regular file named like
// a java executable for the host platform. It is called before any
// directory or staging work so a bad path has no side effects.
func ValidateJavaExec(path string) error {
	if path == "" {
		return &ConfigError{Msg: "java executable must be specified"}
	}
	if !isJavaExecName(filepath.Base(path)) {
		return &ConfigError{Msg: fmt.Sprintf("invalid java executable: %s", path)}
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &ConfigError{Msg: fmt.Sprintf("invalid java executable: %s", path), Cause: err}
	}
	return nil
}

func isJavaExecName(name string) bool {
	if runtime.GOOS == "windows" {
		return name == "java.exe" || name == "javaw.exe"
	}
	return name == "java"
}

// DefaultJavaExec derives the default executable from the JAVA_HOME
// environment, falling back to the first java found on PATH. The result
// may be empty; validation rejects it later with a proper error.
func DefaultJavaExec() string {
	if home := os.Getenv("JAVA_HOME"); home != "" {
		name := "java"
		if runtime.GOOS == "windows" {
			name = "java.exe"
		}
		return filepath.Join(home, "bin", name)
	}
	if path, err := exec.LookPath("java"); err == nil {
		return path
	}
	return ""
}
