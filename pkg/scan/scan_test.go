package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExts = []string{".png", ".jpg", ".json"}

func makeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

func TestScanFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"lcdmarquees/pacman.png": "img",
		"lcdmarquees/notes.txt":  "text",
		"metadata/pacman.json":   "{}",
		"metadata/build.sh":      "#!/bin/sh",
	})

	got, err := Scan(
		dir, []string{"lcdmarquees", "metadata"}, testExts, nil,
	)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "lcdmarquees/pacman.png")
	assert.Contains(t, got, "metadata/pacman.json")
	assert.NotContains(t, got, "lcdmarquees/notes.txt")
}

func TestScanLowercasesSuffix(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"lcdmarquees/GALAGA.PNG": "img",
		"lcdmarquees/dig.Jpg":    "img",
	})

	got, err := Scan(
		dir, []string{"lcdmarquees"}, testExts, nil,
	)
	assert.NoError(t, err)
	assert.Contains(t, got, "lcdmarquees/GALAGA.PNG")
	assert.Contains(t, got, "lcdmarquees/dig.Jpg")
}

func TestScanRecursesWithForwardSlashes(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"lcdmarquees/arcade/deep/frogger.png": "img",
	})

	got, err := Scan(
		dir, []string{"lcdmarquees"}, testExts, nil,
	)
	assert.NoError(t, err)
	assert.Contains(t, got, "lcdmarquees/arcade/deep/frogger.png")
}

func TestScanSkipsMissingRoots(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"metadata/a.json": "{}",
	})

	got, err := Scan(
		dir, []string{"lcdmarquees", "metadata"}, testExts, nil,
	)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestScanAllRootsMissing(t *testing.T) {
	got, err := Scan(
		t.TempDir(),
		[]string{"lcdmarquees", "metadata"},
		testExts,
		nil,
	)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanOnlyConfiguredRoots(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"stray.png":            "img",
		"other/stray.png":      "img",
		"lcdmarquees/kept.png": "img",
	})

	got, err := Scan(
		dir, []string{"lcdmarquees"}, testExts, nil,
	)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "lcdmarquees/kept.png")
}

func TestScanIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"metadata/.git/config.json": "{}",
		"metadata/pacman.json":      "{}",
		"metadata/sub/preview.json": "{}",
	})

	got, err := Scan(
		dir,
		[]string{"metadata"},
		testExts,
		[]string{"**/.git", "**/preview.json"},
	)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "metadata/pacman.json")
}

func TestScanSkipsNonRegularFiles(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"lcdmarquees/real.png": "img",
	})
	link := filepath.Join(dir, "lcdmarquees", "link.png")
	if err := os.Symlink(
		filepath.Join(dir, "lcdmarquees", "real.png"), link,
	); err != nil {
		t.Skip("symlinks not supported here")
	}

	got, err := Scan(
		dir, []string{"lcdmarquees"}, testExts, nil,
	)
	assert.NoError(t, err)
	assert.Contains(t, got, "lcdmarquees/real.png")
	assert.NotContains(t, got, "lcdmarquees/link.png")
}
