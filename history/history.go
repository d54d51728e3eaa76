package history

// This file contains shared history utilities for loading and parsing
// past campaign runs.

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fuzzmill/fuzzmill/model"
)

type Entry struct {
	Campaign model.Campaign
	FullPath string
}

// GetRoot returns the .fuzzmill directory path from the git repository
// root.
func GetRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	repoRoot := strings.TrimSpace(string(output))
	root := filepath.Join(repoRoot, ".fuzzmill")

	if _, err := os.Stat(root); os.IsNotExist(err) {
		return "", fmt.Errorf("no campaign runs found in %s", root)
	}

	return root, nil
}

// LoadEntries loads all campaign records from the .fuzzmill directory.
func LoadEntries(logger zerolog.Logger, root string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			recordPath := filepath.Join(path, "campaign.json")
			if _, err := os.Stat(recordPath); err == nil {
				record, err := parseCampaignJSON(recordPath)
				if err != nil {
					logger.Warn().Err(err).Str("path", recordPath).Msg("Failed to parse campaign.json")
					return nil
				}

				entries = append(entries, Entry{
					Campaign: record,
					FullPath: path,
				})
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk .fuzzmill directory: %w", err)
	}

	return entries, nil
}

// parseCampaignJSON parses a campaign.json file.
func parseCampaignJSON(path string) (model.Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Campaign{}, err
	}

	var record model.Campaign
	if err := json.Unmarshal(data, &record); err != nil {
		return model.Campaign{}, err
	}

	return record, nil
}
