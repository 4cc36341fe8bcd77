// Package prefabs ships the segment catalog and selector scripts. Files found
// under DiskDir on disk take precedence over the bundled copies, which is
// what makes hot reload work.
package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskDir is where on-disk overrides are looked up.
var DiskDir = "prefabs"

//go:embed segments.yaml scripts/*.tengo
var bundled embed.FS

// Load reads a catalog file named relative to the prefabs root.
func Load(name string) ([]byte, error) {
	return readOverridable(relative(name))
}

// LoadScript reads a selector script. Only the base name matters; scripts
// always live under scripts/.
func LoadScript(name string) ([]byte, error) {
	return readOverridable(scriptPath(name))
}

func readOverridable(rel string) ([]byte, error) {
	if rel == "" {
		return nil, errors.New("prefabs: empty file name")
	}

	data, err := os.ReadFile(onDisk(rel))
	switch {
	case err == nil:
		return data, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("prefabs: read override %s: %w", rel, err)
	}

	data, err = bundled.ReadFile(rel)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", rel, err)
	}
	return data, nil
}

// relative accepts both "segments.yaml" and "prefabs/segments.yaml".
func relative(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "prefabs/")
}

func scriptPath(name string) string {
	if name == "" {
		return ""
	}
	return path.Join("scripts", path.Base(filepath.ToSlash(name)))
}

func onDisk(rel string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(rel))
}
