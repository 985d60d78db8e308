package filetree

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/conn-castle/bain-installer/internal/messages"
)

// Load builds a tree from the directory root inside fsys.
// Only regular files and directories are recorded. Names that differ only in
// case are an error unless both are directories, which are merged.
func Load(fsys fs.FS, root string) (*Dir, error) {
	if root == "" {
		root = "."
	}
	info, err := fs.Stat(fsys, root)
	if err != nil {
		return nil, fmt.Errorf(messages.FileTreeStatFailedFmt, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(messages.FileTreeRootNotDirFmt, root)
	}

	tree := NewRoot()
	err = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf(messages.FileTreeWalkFailedFmt, p, walkErr)
		}
		if p == root {
			return nil
		}
		rel := p
		if root != "." {
			rel = strings.TrimPrefix(p, root+"/")
		}
		parent := tree
		if dir := path.Dir(rel); dir != "." {
			found, ok := tree.Find(dir, KindDir).(*Dir)
			if !ok {
				return fmt.Errorf(messages.FileTreeMissingParentFmt, rel)
			}
			parent = found
		}
		if !d.IsDir() && !d.Type().IsRegular() {
			return nil
		}
		// Directories that differ only in case are merged; any other clash would
		// silently replace an entry.
		if _, existing := parent.lookup(d.Name()); existing != nil && !(existing.IsDir() && d.IsDir()) {
			return fmt.Errorf(messages.FileTreeCaseCollisionFmt, rel, existing.Path())
		}
		if d.IsDir() {
			parent.AddDir(d.Name())
		} else {
			parent.AddFile(d.Name(), p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// WriteTo materialises the tree below dest, copying each file's content from fsys.
func (d *Dir) WriteTo(fsys fs.FS, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf(messages.FileTreeCreateDirFailedFmt, dest, err)
	}
	return d.Walk(func(e Entry) error {
		target := filepath.Join(dest, filepath.FromSlash(e.Path()))
		if e.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf(messages.FileTreeCreateDirFailedFmt, target, err)
			}
			return nil
		}
		file, ok := e.(*File)
		if !ok {
			return nil
		}
		return copyFile(fsys, file.Source, target)
	})
}

func copyFile(fsys fs.FS, source string, target string) (err error) {
	in, err := fsys.Open(source)
	if err != nil {
		return fmt.Errorf(messages.FileTreeOpenFailedFmt, source, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf(messages.FileTreeWriteFailedFmt, target, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf(messages.FileTreeWriteFailedFmt, target, closeErr)
		}
	}()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf(messages.FileTreeWriteFailedFmt, target, err)
	}
	return nil
}
