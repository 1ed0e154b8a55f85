// Package scan enumerates the artwork files that the manifest tracks.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scan walks each root under repoRoot and returns the set of
// repo-relative paths (forward slashes) whose lowercased suffix is
// in exts. Roots that do not exist contribute nothing. Entries
// matching an ignore pattern are skipped, directories included.
func Scan(
	repoRoot string,
	roots, exts, ignores []string,
) (map[string]struct{}, error) {
	suffixes := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		suffixes[strings.ToLower(e)] = struct{}{}
	}

	found := make(map[string]struct{})
	for _, root := range roots {
		dir := filepath.Join(repoRoot, root)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(
			dir,
			func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				rel, err := filepath.Rel(repoRoot, p)
				if err != nil {
					return err
				}
				rel = filepath.ToSlash(rel)
				if ignored(ignores, rel) {
					if d.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
				if d.IsDir() {
					return nil
				}
				if !d.Type().IsRegular() {
					return nil
				}
				ext := strings.ToLower(filepath.Ext(rel))
				if _, ok := suffixes[ext]; !ok {
					return nil
				}
				found[rel] = struct{}{}
				return nil
			},
		)
		if err != nil {
			return nil, err
		}
	}
	return found, nil
}

func ignored(patterns []string, rel string) bool {
	for _, pat := range patterns {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}
