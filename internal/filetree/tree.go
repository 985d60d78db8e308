// Package filetree models the extracted contents of an archive as an in-memory
// tree that installers inspect and rearrange before anything is written to disk.
package filetree

import (
	"errors"
	"sort"
	"strings"
)

// Kind filters lookups by entry type.
type Kind int

const (
	// KindFile matches regular files.
	KindFile Kind = 1 << iota
	// KindDir matches directories.
	KindDir
	// KindAny matches files and directories.
	KindAny = KindFile | KindDir
)

// ErrCycle is returned when a directory would be moved below itself.
var ErrCycle = errors.New("cannot move a directory into itself")

// Entry is a file or directory inside a tree.
type Entry interface {
	Name() string
	Suffix() string
	IsDir() bool
	Parent() *Dir
	Path() string

	setParent(parent *Dir)
}

type node struct {
	name   string
	parent *Dir
}

// Name returns the entry name as it appeared in the archive.
func (n *node) Name() string {
	return n.name
}

// Parent returns the containing directory, or nil for a root or detached entry.
func (n *node) Parent() *Dir {
	return n.parent
}

func (n *node) setParent(parent *Dir) {
	n.parent = parent
}

// joinPath builds the slash path of a child named name inside parent.
func joinPath(parent *Dir, name string) string {
	if parent == nil || parent.parent == nil {
		return name
	}
	return parent.Path() + "/" + name
}

// File is a leaf entry backed by a path in the source filesystem.
type File struct {
	node
	// Source is the slash-separated location of the content in the backing fs.FS.
	Source string
}

// Suffix returns the text after the last dot of the file name, or "" when there is none.
func (f *File) Suffix() string {
	idx := strings.LastIndex(f.name, ".")
	if idx < 0 {
		return ""
	}
	return f.name[idx+1:]
}

// IsDir reports false.
func (f *File) IsDir() bool {
	return false
}

// Path returns the slash path relative to the tree root.
func (f *File) Path() string {
	return joinPath(f.parent, f.name)
}

// Dir is a directory entry with ordered children.
type Dir struct {
	node
	children []Entry
}

// NewRoot returns an empty root directory.
func NewRoot() *Dir {
	return &Dir{}
}

// Suffix always returns "" for directories.
func (d *Dir) Suffix() string {
	return ""
}

// IsDir reports true.
func (d *Dir) IsDir() bool {
	return true
}

// Path returns the slash path relative to the tree root; the root itself is "".
func (d *Dir) Path() string {
	if d.parent == nil {
		return ""
	}
	return joinPath(d.parent, d.name)
}

// Len returns the number of direct children.
func (d *Dir) Len() int {
	return len(d.children)
}

// Entries returns the direct children: directories first, then files,
// each group ordered case-insensitively. The returned slice is a copy.
func (d *Dir) Entries() []Entry {
	out := make([]Entry, len(d.children))
	copy(out, d.children)
	return out
}

// AddDir returns the child directory called name, creating it when missing.
// A file with the same name is replaced.
func (d *Dir) AddDir(name string) *Dir {
	if _, existing := d.lookup(name); existing != nil {
		if dir, ok := existing.(*Dir); ok {
			return dir
		}
	}
	dir := &Dir{node: node{name: name}}
	d.put(dir)
	return dir
}

// AddFile adds a file called name, replacing any entry with the same name.
func (d *Dir) AddFile(name string, source string) *File {
	file := &File{node: node{name: name}, Source: source}
	d.put(file)
	return file
}

// Find resolves a slash-separated path below d, comparing names case-insensitively.
// It returns nil when the path does not exist or the entry is not of the requested kind.
func (d *Dir) Find(path string, kind Kind) Entry {
	path = strings.Trim(strings.ReplaceAll(path, "\\", "/"), "/")
	if path == "" {
		if kind&KindDir != 0 {
			return d
		}
		return nil
	}
	current := d
	parts := strings.Split(path, "/")
	for i, part := range parts {
		_, entry := current.lookup(part)
		if entry == nil {
			return nil
		}
		if i == len(parts)-1 {
			if entry.IsDir() && kind&KindDir == 0 {
				return nil
			}
			if !entry.IsDir() && kind&KindFile == 0 {
				return nil
			}
			return entry
		}
		dir, ok := entry.(*Dir)
		if !ok {
			return nil
		}
		current = dir
	}
	return nil
}

// Remove detaches the direct child called name. It reports whether a child was removed.
func (d *Dir) Remove(name string) bool {
	idx, entry := d.lookup(name)
	if entry == nil {
		return false
	}
	d.children = append(d.children[:idx], d.children[idx+1:]...)
	entry.setParent(nil)
	return true
}

// Clear detaches every child.
func (d *Dir) Clear() {
	for _, child := range d.children {
		child.setParent(nil)
	}
	d.children = nil
}

// Insert moves entry into d, detaching it from its previous parent and
// replacing any child with the same name.
func (d *Dir) Insert(entry Entry) error {
	if dir, ok := entry.(*Dir); ok && dir.isAncestorOf(d) {
		return ErrCycle
	}
	if parent := entry.Parent(); parent != nil {
		parent.detach(entry)
	}
	d.put(entry)
	return nil
}

// Merge moves every child of src into d. Directories that exist on both sides
// are merged recursively; other name clashes are resolved in favour of src.
// It returns the number of entries of d that were replaced. src is left empty.
func (d *Dir) Merge(src *Dir) (int, error) {
	if src == d {
		return 0, nil
	}
	if src.isAncestorOf(d) {
		return 0, ErrCycle
	}
	replaced := 0
	for _, child := range src.Entries() {
		_, existing := d.lookup(child.Name())
		srcDir, srcIsDir := child.(*Dir)
		dstDir, dstIsDir := existing.(*Dir)
		if srcIsDir && dstIsDir {
			n, err := dstDir.Merge(srcDir)
			if err != nil {
				return replaced, err
			}
			replaced += n
			src.detach(child)
			continue
		}
		if existing != nil {
			replaced++
		}
		if err := d.Insert(child); err != nil {
			return replaced, err
		}
	}
	return replaced, nil
}

// Walk visits every entry below d depth-first, in Entries order.
func (d *Dir) Walk(fn func(Entry) error) error {
	for _, child := range d.children {
		if err := fn(child); err != nil {
			return err
		}
		if dir, ok := child.(*Dir); ok {
			if err := dir.Walk(fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Paths lists every entry below d in walk order. Directory paths end with "/".
func (d *Dir) Paths() []string {
	paths := []string{}
	_ = d.Walk(func(e Entry) error {
		p := e.Path()
		if e.IsDir() {
			p += "/"
		}
		paths = append(paths, p)
		return nil
	})
	return paths
}

func (d *Dir) lookup(name string) (int, Entry) {
	for i, child := range d.children {
		if strings.EqualFold(child.Name(), name) {
			return i, child
		}
	}
	return -1, nil
}

func (d *Dir) detach(entry Entry) {
	for i, child := range d.children {
		if child == entry {
			d.children = append(d.children[:i], d.children[i+1:]...)
			entry.setParent(nil)
			return
		}
	}
}

// put stores entry, replacing a same-named child, and restores ordering.
func (d *Dir) put(entry Entry) {
	if idx, existing := d.lookup(entry.Name()); existing != nil {
		existing.setParent(nil)
		d.children = append(d.children[:idx], d.children[idx+1:]...)
	}
	entry.setParent(d)
	d.children = append(d.children, entry)
	sort.SliceStable(d.children, func(i, j int) bool {
		a, b := d.children[i], d.children[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		return strings.ToLower(a.Name()) < strings.ToLower(b.Name())
	})
}

func (d *Dir) isAncestorOf(other *Dir) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == d {
			return true
		}
	}
	return false
}
