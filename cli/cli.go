package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/fuzzmill/fuzzmill/campaign"
)

const AppName = "fuzzmill"

type App struct {
	logger zerolog.Logger
	cli    *cli.App
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger: logger,
		cli: &cli.App{
			Name:  AppName,
			Usage: "Run bounded fuzzing campaigns against JVM test targets and report their coverage",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "Enable verbose (debug) logging",
				},
			},
			Before: func(ctx *cli.Context) error {
				if ctx.Bool("verbose") {
					zerolog.SetGlobalLevel(zerolog.DebugLevel)
				}
				return nil
			},
		},
	}
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "fuzz",
		Usage:  "Run one fuzzing campaign against a single test entry point",
		Action: app.fuzz,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "project-file",
				Usage: "Project descriptor produced by the build system",
				Value: "fuzzmill.yaml",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Directory for campaign output (default: <buildDir>/fuzzmill)",
			},
			&cli.StringFlag{
				Name:     "class",
				Usage:    "Fully-qualified name of the test class",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "method",
				Usage:    "Name of the test method",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "framework",
				Usage:    "Name of the fuzzing framework to use",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "framework-arg",
				Usage: "Framework-specific parameter as key=value (can be specified multiple times)",
			},
			&cli.StringSliceFlag{
				Name:  "jvm-opt",
				Usage: "JVM option for the test JVM, order preserved (can be specified multiple times)",
			},
			&cli.StringFlag{
				Name:  "java-exec",
				Usage: "Java executable to use for test JVMs",
				Value: campaign.DefaultJavaExec(),
			},
			&cli.StringFlag{
				Name:  "duration",
				Usage: "Maximum campaign duration in ISO-8601 form (e.g. P1D, PT30M)",
				Value: "P1D",
			},
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "report",
		Usage:  "Convert campaign coverage data into reports",
		Action: app.report,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "coverage",
				Usage:    "Coverage data file produced by the campaign",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "report-dir",
				Usage: "Directory to write reports into",
				Value: ".",
			},
			&cli.StringSliceFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Report format: html, csv or xml (can be specified multiple times)",
				Value:   cli.NewStringSlice("html"),
			},
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "list",
		Usage:  "List previous campaign runs",
		Action: app.list,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Limit number of results (default: 20)",
				Value:   20,
			},
		},
	})
	return app
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit[:8], date)
	}
}
