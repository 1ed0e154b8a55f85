package manifest

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/pixelcade/artman/pkg/scan"
)

// Result reports what an update or reset did to the manifest.
type Result struct {
	Added   []string
	Removed []string
	Version int
	Files   int

	// Changed is true when the persisted document differs from the
	// prior state; the caller maps it onto the exit-code contract.
	Changed bool
}

// Update reconciles the stored manifest against the artwork tree.
// New paths are tagged with a bumped version, vanished paths are
// dropped, and surviving paths keep their original added version.
// The version only bumps when new files appear or force is set;
// removals alone never bump it.
func Update(cfg Config, force bool) (Result, error) {
	m := Load(cfg.ManifestPath, cfg.BaseVersion)
	existing := m.index()

	current, err := scan.Scan(
		cfg.RepoRoot, cfg.Roots, cfg.Extensions, cfg.Ignores,
	)
	if err != nil {
		return Result{}, fmt.Errorf("scan artwork: %w", err)
	}

	var added, removed []string
	for p := range current {
		if _, ok := existing[p]; !ok {
			added = append(added, p)
		}
	}
	for p := range existing {
		if _, ok := current[p]; !ok {
			removed = append(removed, p)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)

	version := m.Version
	if force || len(added) > 0 {
		version++
	}
	slog.Debug("reconciled artwork tree",
		"tracked", len(existing),
		"present", len(current),
		"added", len(added),
		"removed", len(removed),
		"version", version,
	)

	files := make([]FileRecord, 0, len(current))
	for _, p := range sortedPaths(current) {
		rec := FileRecord{Path: p, Added: version}
		if v, ok := existing[p]; ok {
			rec.Added = v
		}
		files = append(files, rec)
	}

	m.Version = version
	m.BaseVersion = cfg.BaseVersion
	m.Files = files

	if err := Save(cfg.ManifestPath, m); err != nil {
		return Result{}, err
	}

	return Result{
		Added:   added,
		Removed: removed,
		Version: version,
		Files:   len(files),
		Changed: force || len(added) > 0 || len(removed) > 0,
	}, nil
}

// Reset discards all history and re-tags every currently present
// file at base, for when older artwork is migrated out of this tree.
func Reset(cfg Config, base int) (Result, error) {
	current, err := scan.Scan(
		cfg.RepoRoot, cfg.Roots, cfg.Extensions, cfg.Ignores,
	)
	if err != nil {
		return Result{}, fmt.Errorf("scan artwork: %w", err)
	}

	m := New(base)
	for _, p := range sortedPaths(current) {
		m.Files = append(m.Files, FileRecord{
			Path:  p,
			Added: base,
		})
	}
	slog.Debug("rebaselined manifest",
		"files", len(m.Files),
		"base", base,
	)

	if err := Save(cfg.ManifestPath, m); err != nil {
		return Result{}, err
	}

	return Result{
		Version: base,
		Files:   len(m.Files),
		Changed: true,
	}, nil
}
