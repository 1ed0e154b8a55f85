package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pixelcade/artman/pkg/manifest"
)

func deltaCmd() *cli.Command {
	return &cli.Command{
		Name:  "delta",
		Usage: "list files added after a given version",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "since",
				Usage:    "version the downloader already has",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "JSON output",
			},
		},
		Action: deltaAction,
	}
}

type deltaJSON struct {
	Since   int                   `json:"since"`
	Version int                   `json:"version"`
	Files   []manifest.FileRecord `json:"files"`
	Summary deltaSummary          `json:"summary"`
}

type deltaSummary struct {
	FileCount int `json:"file_count"`
}

func deltaAction(c *cli.Context) error {
	cfg := buildConfig(c)
	since := c.Int("since")

	m, err := manifest.LoadStrict(cfg.ManifestPath)
	if err != nil {
		return err
	}

	files := m.Since(since)

	if c.Bool("json") {
		out := deltaJSON{
			Since:   since,
			Version: m.Version,
			Files:   files,
			Summary: deltaSummary{FileCount: len(files)},
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(files) == 0 {
		fmt.Printf(
			"Nothing newer than version %d.\n", since,
		)
		return nil
	}
	for _, f := range files {
		fmt.Printf("  %s (v%d)\n", f.Path, f.Added)
	}
	fmt.Printf(
		"%d file(s) added after version %d (manifest at %d)\n",
		len(files), since, m.Version,
	)
	return nil
}
