// Package pkgroot locates the topmost Python package directory above
// a file, so the analysis engine can see sibling and parent modules.
package pkgroot

import (
	"os"
	"path/filepath"
)

const markerFile = "__init__.py"

// Find walks ancestor directories of path while the parent holds an
// __init__.py marker and returns the highest ancestor that qualifies,
// or path itself when none does. A directory seen twice (symlink
// cycle) is terminal.
func Find(path string) string {
	if path == "" {
		return path
	}
	seen := map[string]bool{}
	cur := path
	for {
		parent := filepath.Dir(cur)
		if parent == cur || seen[parent] {
			return cur
		}
		seen[parent] = true
		if !isFile(filepath.Join(parent, markerFile)) {
			return cur
		}
		cur = parent
	}
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}
