package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/pixelcade/artman/pkg/manifest"
)

const appVersion = "0.1.0"

func main() {
	app := &cli.App{
		Name:  "artman",
		Usage: "maintain the incremental artwork manifest",
		Before: func(c *cli.Context) error {
			configureLogging(c.Bool("verbose"))
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "repo",
				Value: ".",
				Usage: "artwork repository root",
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "manifest path (default <repo>/manifest.json)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output",
			},
		},
		// The pre-commit hook invokes artman with no arguments.
		DefaultCommand: "update",
		Commands: []*cli.Command{
			updateCmd(),
			resetCmd(),
			deltaCmd(),
			checkCmd(),
			{
				Name:  "version",
				Usage: "print version",
				Action: func(c *cli.Context) error {
					fmt.Println(appVersion)
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}),
	))
}

func buildConfig(c *cli.Context) manifest.Config {
	return manifest.DefaultConfig(
		c.String("repo"), c.String("manifest"),
	)
}

func printChanges(added, removed []string) {
	for _, p := range added {
		fmt.Printf("  %s %s\n",
			color.New(color.FgGreen).Sprint("+"), p,
		)
	}
	for _, p := range removed {
		fmt.Printf("  %s %s\n",
			color.New(color.FgRed).Sprint("-"), p,
		)
	}
}

// manifestChanged signals the hook to stage manifest.json. Exit 0
// means nothing was rewritten; the message has already been printed.
func manifestChanged() error {
	return cli.Exit("", 1)
}
