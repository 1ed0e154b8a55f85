// Package manifest maintains the versioned record of artwork files
// used to compute incremental download deltas.
package manifest

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Manifest is the persisted document. Files is kept sorted by path
// so diffs of manifest.json stay deterministic in version control.
type Manifest struct {
	Version     int          `json:"version"`
	BaseVersion int          `json:"base_version"`
	Files       []FileRecord `json:"files"`
}

// FileRecord tracks one artwork file and the version at which it
// first appeared. Added never changes for as long as the path exists.
type FileRecord struct {
	Path  string `json:"path"`
	Added int    `json:"added"`
}

// New returns an empty manifest starting at base.
func New(base int) Manifest {
	return Manifest{
		Version:     base,
		BaseVersion: base,
		Files:       []FileRecord{},
	}
}

// Validate checks the document invariants: version at or above the
// base, files sorted by path with no duplicates, and every path a
// safe repo-relative forward-slash path.
func (m Manifest) Validate() error {
	if m.Version < m.BaseVersion {
		return fmt.Errorf(
			"version %d below base_version %d",
			m.Version, m.BaseVersion,
		)
	}
	for i, f := range m.Files {
		if err := validateRelPath(f.Path); err != nil {
			return fmt.Errorf("files[%d]: %w", i, err)
		}
		if i > 0 {
			prev := m.Files[i-1].Path
			if f.Path == prev {
				return fmt.Errorf(
					"duplicate path %s", f.Path,
				)
			}
			if f.Path < prev {
				return fmt.Errorf(
					"files not sorted at %s", f.Path,
				)
			}
		}
		if f.Added > m.Version {
			return fmt.Errorf(
				"%s added at %d, beyond version %d",
				f.Path, f.Added, m.Version,
			)
		}
	}
	return nil
}

// Since returns the records added after version v, the set a
// downloader at version v still needs to fetch.
func (m Manifest) Since(v int) []FileRecord {
	var out []FileRecord
	for _, f := range m.Files {
		if f.Added > v {
			out = append(out, f)
		}
	}
	return out
}

// index maps path to added-version for diffing against a scan.
func (m Manifest) index() map[string]int {
	idx := make(map[string]int, len(m.Files))
	for _, f := range m.Files {
		idx[f.Path] = f.Added
	}
	return idx
}

func sortedPaths(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func validateRelPath(p string) error {
	if p == "" {
		return fmt.Errorf("empty path")
	}
	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("path contains null byte")
	}
	if strings.ContainsRune(p, '\\') {
		return fmt.Errorf(
			"path uses backslash separator: %s", p,
		)
	}
	if path.IsAbs(p) {
		return fmt.Errorf("absolute path not allowed: %s", p)
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return fmt.Errorf("path resolves to current directory")
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("path escapes repo root: %s", p)
	}
	return nil
}
