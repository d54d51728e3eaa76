package cli

// This file contains the fuzz command: campaign configuration assembly,
// orchestration and history recording.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/fuzzmill/fuzzmill/campaign"
	"github.com/fuzzmill/fuzzmill/framework"
	"github.com/fuzzmill/fuzzmill/model"
	"github.com/fuzzmill/fuzzmill/project"
)

func (a *App) fuzz(ctx *cli.Context) error {
	startTime := time.Now()

	budget, err := campaign.ParseBudget(ctx.String("duration"))
	if err != nil {
		return err
	}

	proj, err := project.Load(ctx.String("project-file"))
	if err != nil {
		return err
	}

	outputRoot := ctx.String("output-dir")
	if outputRoot == "" {
		outputRoot = filepath.Join(proj.BuildDir, "fuzzmill")
	}

	frameworkArgs, err := parseFrameworkArgs(ctx.StringSlice("framework-arg"))
	if err != nil {
		return err
	}

	record := &model.Campaign{
		ID:           uuid.NewString(),
		Timestamp:    startTime,
		Args:         os.Args,
		TargetClass:  ctx.String("class"),
		TargetMethod: ctx.String("method"),
		Framework:    ctx.String("framework"),
		Budget:       budget,
	}

	// Capture working directory
	if cwd, err := os.Getwd(); err == nil {
		record.WorkDir = cwd
	}

	// Capture git info (non-fatal if it fails)
	if commit, branch, err := a.getGitInfo(); err == nil {
		record.Git = &model.Git{
			Commit: commit,
			Branch: branch,
		}
	}

	orch := campaign.NewOrchestrator(a.logger, framework.Default, campaign.Options{
		OutputRoot:    outputRoot,
		TargetClass:   ctx.String("class"),
		TargetMethod:  ctx.String("method"),
		JavaExec:      ctx.String("java-exec"),
		JavaOptions:   ctx.StringSlice("jvm-opt"),
		Budget:        budget,
		Framework:     ctx.String("framework"),
		FrameworkArgs: frameworkArgs,
		Classpath:     proj.TestClasspath,
	})

	runErr := orch.Run(ctx.Context)

	record.State = orch.State().String()
	record.Duration = time.Since(startTime)
	if runErr != nil {
		record.Error = runErr.Error()
		a.logger.Error().Err(runErr).Str("state", record.State).Msg("Campaign failed")
	}
	if cfg := orch.Config(); cfg != nil {
		a.collectFailureArtifacts(record, cfg.CampaignDir())
	}

	// Record the campaign run (non-fatal if it fails)
	if err := a.recordCampaign(record); err != nil {
		a.logger.Warn().Err(err).Msg("Failed to record campaign history")
	}

	return runErr
}

// parseFrameworkArgs turns repeated key=value flags into the free-form
// parameter map handed to the framework.
func parseFrameworkArgs(raw []string) (map[string]string, error) {
	args := make(map[string]string, len(raw))
	for _, pair := range raw {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid framework argument %q (expected key=value)", pair)
		}
		args[key] = value
	}
	return args, nil
}
