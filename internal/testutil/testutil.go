// Package testutil builds archive fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conn-castle/bain-installer/internal/filetree"
)

// BuildTree returns an in-memory tree holding paths. Paths ending in "/" are
// directories; every other path is a file whose Source is the path itself.
// t is the active test; paths are slash-separated and relative to the root.
func BuildTree(t *testing.T, paths ...string) *filetree.Dir {
	t.Helper()
	root := filetree.NewRoot()
	for _, p := range paths {
		isDir := strings.HasSuffix(p, "/")
		parts := strings.Split(strings.Trim(p, "/"), "/")
		dir := root
		for i, part := range parts {
			if part == "" {
				t.Fatalf("empty path component in %q", p)
			}
			if i == len(parts)-1 && !isDir {
				dir.AddFile(part, strings.Trim(p, "/"))
				break
			}
			dir = dir.AddDir(part)
		}
	}
	return root
}

// WriteTree creates paths below dir on disk. Paths ending in "/" are
// directories; files are written with content, or with their own path when
// content has no entry for them.
// t is the active test; dir is the output directory.
func WriteTree(t *testing.T, dir string, content map[string]string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		target := filepath.Join(dir, filepath.FromSlash(strings.TrimSuffix(p, "/")))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(target, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", target, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(target), err)
		}
		data, ok := content[p]
		if !ok {
			data = p
		}
		if err := os.WriteFile(target, []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", target, err)
		}
	}
}
