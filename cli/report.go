package cli

// This file contains the report command: converting campaign coverage
// data into the requested output formats.

import (
	"github.com/urfave/cli/v2"

	"github.com/fuzzmill/fuzzmill/campaign"
	"github.com/fuzzmill/fuzzmill/report"
)

func (a *App) report(ctx *cli.Context) error {
	var formats []report.Format
	for _, name := range ctx.StringSlice("format") {
		format, err := report.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, format)
	}

	reportDir := ctx.String("report-dir")
	if err := campaign.EnsureDirectory(reportDir); err != nil {
		return err
	}

	src := report.JSONSource{Path: ctx.String("coverage")}
	if err := report.Generate(src, reportDir, formats); err != nil {
		return err
	}

	for _, format := range formats {
		a.logger.Info().Str("format", format.String()).Str("dir", reportDir).Msg("Report written")
	}
	return nil
}
