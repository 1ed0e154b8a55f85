package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pixelcade/artman/pkg/manifest"
	"github.com/pixelcade/artman/pkg/scan"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "verify manifest invariants against the tree",
		Action: checkAction,
	}
}

func checkAction(c *cli.Context) error {
	cfg := buildConfig(c)

	fmt.Printf("Manifest: %s\n", cfg.ManifestPath)

	m, err := manifest.LoadStrict(cfg.ManifestPath)
	if err != nil {
		fmt.Printf("  Parse: FAIL (%v)\n", err)
		return fmt.Errorf("manifest check failed")
	}
	fmt.Printf(
		"  Parse: ok (version %d, base %d, %d files)\n",
		m.Version, m.BaseVersion, len(m.Files),
	)

	if err := m.Validate(); err != nil {
		fmt.Printf("  Invariants: FAIL (%v)\n", err)
		return fmt.Errorf("manifest check failed")
	}
	fmt.Printf("  Invariants: ok\n")

	current, err := scan.Scan(
		cfg.RepoRoot, cfg.Roots, cfg.Extensions, cfg.Ignores,
	)
	if err != nil {
		fmt.Printf("  Scan: FAIL (%v)\n", err)
		return fmt.Errorf("manifest check failed")
	}
	fmt.Printf("  Scan: ok (%d files)\n", len(current))

	tracked := make(map[string]struct{}, len(m.Files))
	for _, f := range m.Files {
		tracked[f.Path] = struct{}{}
	}
	untracked, vanished := 0, 0
	for p := range current {
		if _, ok := tracked[p]; !ok {
			untracked++
		}
	}
	for p := range tracked {
		if _, ok := current[p]; !ok {
			vanished++
		}
	}
	if untracked > 0 || vanished > 0 {
		fmt.Printf(
			"  Tree: STALE (%d untracked, %d vanished; run artman update)\n",
			untracked, vanished,
		)
		return fmt.Errorf("manifest check failed")
	}
	fmt.Printf("  Tree: ok (in sync)\n")

	fmt.Println("\nAll checks passed.")
	return nil
}
