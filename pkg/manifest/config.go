package manifest

import "path/filepath"

// Compiled-in defaults for the lcd-updates artwork series. R3 of the
// series starts at version 19; everything older lives in the R2
// bucket and is assumed already distributed.
const DefaultBaseVersion = 19

var (
	DefaultRoots      = []string{"lcdmarquees", "metadata"}
	DefaultExtensions = []string{
		".png", ".jpg", ".jpeg", ".gif", ".json", ".mp4",
	}
	DefaultIgnores = []string{
		"**/.git", "**/.DS_Store", "**/Thumbs.db",
	}
)

// Config carries everything an update or reset needs. It is built
// once at startup and passed in; nothing reads package globals.
type Config struct {
	RepoRoot     string
	ManifestPath string
	Roots        []string
	Extensions   []string
	Ignores      []string
	BaseVersion  int
}

// DefaultConfig returns the compiled-in configuration rooted at
// repoRoot, with the manifest at manifestPath if non-empty.
func DefaultConfig(repoRoot, manifestPath string) Config {
	if manifestPath == "" {
		manifestPath = filepath.Join(repoRoot, "manifest.json")
	}
	return Config{
		RepoRoot:     repoRoot,
		ManifestPath: manifestPath,
		Roots:        DefaultRoots,
		Extensions:   DefaultExtensions,
		Ignores:      DefaultIgnores,
		BaseVersion:  DefaultBaseVersion,
	}
}
