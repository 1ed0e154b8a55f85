package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/pixelcade/artman/pkg/manifest"
)

func resetCmd() *cli.Command {
	return &cli.Command{
		Name:      "reset",
		Usage:     "rebaseline the manifest at a new base version",
		ArgsUsage: "<version>",
		Description: "Discards all per-file history and tags every " +
			"currently present file at the given base version. Use " +
			"after migrating older artwork out of this tree.",
		Action: resetAction,
	}
}

func resetAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: artman reset <version>")
	}
	base, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf(
			"invalid base version %q: %w", c.Args().Get(0), err,
		)
	}

	res, err := manifest.Reset(buildConfig(c), base)
	if err != nil {
		return err
	}

	fmt.Printf(
		"Reset manifest to version %d with %d files\n",
		res.Version, res.Files,
	)
	fmt.Printf(
		"All files tagged with base version %d\n", res.Version,
	)
	return manifestChanged()
}
