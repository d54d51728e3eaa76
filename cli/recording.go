package cli

// This file contains campaign run recording functionality for saving
// campaign metadata and failure artifacts to the history directory.

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fuzzmill/fuzzmill/model"
)

func (a *App) recordCampaign(record *model.Campaign) error {
	// Get repository root
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("not in a git repository: %w", err)
	}
	repoRoot := strings.TrimSpace(string(output))

	// Store workdir relative to repo root
	if record.WorkDir != "" {
		if rel, err := filepath.Rel(repoRoot, record.WorkDir); err == nil {
			record.WorkDir = rel
		}
	}

	// Create directory in .fuzzmill/history/<timestamp>-<id>
	timestamp := record.Timestamp.Format("20060102-150405")
	shortID := record.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	runName := fmt.Sprintf("%s-%s", timestamp, shortID)
	runDir := filepath.Join(repoRoot, ".fuzzmill", "history", runName)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	// Write campaign metadata
	recordPath := filepath.Join(runDir, "campaign.json")
	recordJSON, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal campaign record: %w", err)
	}

	if err := os.WriteFile(recordPath, recordJSON, 0644); err != nil {
		return fmt.Errorf("failed to write campaign record: %w", err)
	}

	a.logger.Debug().Str("dir", runDir).Str("id", record.ID).Msg("Recorded campaign run")
	return nil
}

// collectFailureArtifacts registers the failure inputs the framework
// persisted under the campaign-state directory. The files themselves
// stay in place; the campaign directory is the durable corpus store.
func (a *App) collectFailureArtifacts(record *model.Campaign, campaignDir string) {
	failureDir := filepath.Join(campaignDir, "failures")
	entries, err := os.ReadDir(failureDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		record.Artifacts = append(record.Artifacts, model.Artifact{
			Size: uint64(info.Size()),
			File: filepath.Join("failures", entry.Name()),
		})
	}
	if len(record.Artifacts) > 0 {
		a.logger.Info().Int("count", len(record.Artifacts)).Msg("Campaign recorded failing inputs")
	}
}
