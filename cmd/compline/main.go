// Package main is the entry point for the compline CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	comcli "github.com/compline/compline/internal/cli"
	"github.com/compline/compline/internal/trace"
	"github.com/compline/compline/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	cleanup := trace.Init()
	defer cleanup()

	app := &cli.Command{
		Name:                  "compline",
		Usage:                 "Configurable line completion for interactive shells",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("COMPLINE_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "complete",
				Usage: "Print completion candidates for a command line",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "line",
						Usage:   "The command line being completed",
						Sources: cli.EnvVars("COMP_LINE"),
					},
					&cli.IntFlag{
						Name:    "point",
						Value:   -1,
						Usage:   "Cursor position within the line (defaults to end of line)",
						Sources: cli.EnvVars("COMP_POINT"),
					},
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"C"},
						Usage:   "Directory whose config drives completion (defaults to cwd)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return comcli.Complete(comcli.CompleteParams{
						LogLevel: cmd.String("log-level"),
						Dir:      cmd.String("dir"),
						Line:     cmd.String("line"),
						Point:    int(cmd.Int("point")),
						Output:   os.Stdout,
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show current compline configuration status",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"C"},
						Usage:   "Directory to inspect (defaults to cwd)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return comcli.Status(comcli.StatusParams{
						Dir: cmd.String("dir"),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a compline configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return comcli.Validate(configPath)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for compline configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return comcli.Schema(outputPath)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
