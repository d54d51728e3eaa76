package cli

// This file contains the list command for displaying previous campaign
// runs.

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/fuzzmill/fuzzmill/history"
)

func (a *App) list(ctx *cli.Context) error {
	limit := ctx.Int("limit")

	root, err := history.GetRoot()
	if err != nil {
		return err
	}

	entries, err := history.LoadEntries(a.logger, root)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No campaign runs found")
		return nil
	}

	// Sort by timestamp (newest first)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Campaign.Timestamp.After(entries[j].Campaign.Timestamp)
	})

	displayRuns := entries
	if limit > 0 && limit < len(displayRuns) {
		displayRuns = displayRuns[:limit]
	}

	fmt.Printf("\n=== Campaigns (%d total) ===\n\n", len(entries))

	for _, entry := range displayRuns {
		c := entry.Campaign
		timestamp := c.Timestamp.Format("2006-01-02 15:04:05")
		duration := c.Duration.Round(time.Millisecond)

		status := "✓"
		if c.State != "completed" {
			status = "✗"
		}

		shortID := c.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		fmt.Printf("%s  %s  [%s]  state=%s  id=%s\n", status, timestamp, duration, c.State, shortID)
		fmt.Printf("   Target: %s#%s  framework=%s  budget=%s\n", c.TargetClass, c.TargetMethod, c.Framework, c.Budget)
		if len(c.Args) > 1 {
			fmt.Printf("   Args: %s\n", strings.Join(c.Args[1:], " "))
		}
		if c.WorkDir != "" {
			fmt.Printf("   Path: %s\n", c.WorkDir)
		}
		if c.Git != nil && c.Git.Commit != "" {
			shortCommit := c.Git.Commit
			if len(shortCommit) > 8 {
				shortCommit = shortCommit[:8]
			}
			fmt.Printf("   Commit: %s", shortCommit)
			if c.Git.Branch != "" {
				fmt.Printf(" (%s)", c.Git.Branch)
			}
			fmt.Println()
		}
		if c.Error != "" {
			fmt.Printf("   Error: %s\n", c.Error)
		}
		for _, artifact := range c.Artifacts {
			fmt.Printf("   failure: %s (%.1f KB)\n", artifact.File, float64(artifact.Size)/1024)
		}
		fmt.Printf("   %s\n", entry.FullPath)
		fmt.Println()
	}

	return nil
}
