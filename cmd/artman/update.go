package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pixelcade/artman/pkg/manifest"
)

func updateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "fold new and removed artwork into the manifest",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "bump the version even with no new files",
			},
		},
		Action: updateAction,
	}
}

func updateAction(c *cli.Context) error {
	cfg := buildConfig(c)
	force := c.Bool("force")

	res, err := manifest.Update(cfg, force)
	if err != nil {
		return err
	}

	printChanges(res.Added, res.Removed)
	switch {
	case len(res.Added) > 0 || len(res.Removed) > 0:
		if len(res.Added) > 0 {
			fmt.Printf(
				"Added %d new file(s) at version %d\n",
				len(res.Added), res.Version,
			)
		}
		if len(res.Removed) > 0 {
			fmt.Printf(
				"Removed %d deleted file(s) from manifest\n",
				len(res.Removed),
			)
		}
	case force:
		fmt.Printf(
			"No changes, but forced version bump to %d\n",
			res.Version,
		)
	default:
		fmt.Printf(
			"No changes detected. Manifest at version %d\n",
			res.Version,
		)
	}

	if res.Changed {
		return manifestChanged()
	}
	return nil
}
