package manifest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Load reads the manifest at path. A missing or unreadable file and
// a file that fails to parse all degrade to a fresh manifest at
// base: losing history must never block producing a usable manifest.
func Load(path string, base int) Manifest {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("could not read manifest, starting fresh",
				"path", path,
				"error", err,
			)
		}
		return New(base)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		slog.Warn("could not parse manifest, starting fresh",
			"path", path,
			"error", err,
		)
		return New(base)
	}
	if m.Version == 0 {
		m.Version = base
	}
	if m.BaseVersion == 0 {
		m.BaseVersion = base
	}
	if m.Files == nil {
		m.Files = []FileRecord{}
	}
	return m
}

// LoadStrict reads the manifest at path without the fresh-manifest
// fallback. Used by read-only commands that should surface problems
// instead of papering over them.
func LoadStrict(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// Save writes the full document, 2-space indented with a trailing
// newline, replacing path via a rename so readers never observe a
// torn file.
func Save(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".manifest-*")
	if err != nil {
		return fmt.Errorf("create temp manifest: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close manifest: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace manifest: %w", err)
	}
	return nil
}
