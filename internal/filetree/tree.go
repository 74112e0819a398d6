package filetree

import (
	"errors"
	"strings"
)

// SkipFolder can be returned from a WalkFunc to skip a folder's children.
var SkipFolder = errors.New("skip this folder")

// Entry is a node visited by Walk.
type Entry struct {
	Path  string
	Name  string
	Depth int
	Node  Node
}

// IsFolder reports whether the entry is a folder.
func (e Entry) IsFolder() bool { return e.Node.Kind() == KindFolder }

// WalkFunc is called for every node visited by Walk.
type WalkFunc func(e Entry) error

// Tree is an immutable snapshot of the folder hierarchy. The root only ever
// holds folders because files must be created inside an existing folder.
type Tree struct {
	root *Folder
}

// New returns a tree with the given empty root folders. Names are split on
// the separator, so "a/b" creates a nested folder.
func New(folders ...string) *Tree {
	t := &Tree{root: NewFolder()}
	for _, name := range folders {
		if next, err := t.CreateFolder(name); err == nil {
			t = next
		}
	}
	return t
}

// Root returns the root folder. Callers must not retain it across mutations
// expecting it to change.
func (t *Tree) Root() *Folder { return t.root }

// Lookup returns the node at path. The empty path resolves to the root.
func (t *Tree) Lookup(path string) (Node, bool) {
	var cur Node = t.root
	for _, seg := range Split(path) {
		folder, ok := cur.(*Folder)
		if !ok {
			return nil, false
		}
		cur, ok = folder.Child(seg)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Folder resolves path to a folder.
func (t *Tree) Folder(path string) (*Folder, error) {
	n, ok := t.Lookup(path)
	if !ok {
		return nil, missing("lookup", Join(path))
	}
	folder, ok := n.(*Folder)
	if !ok {
		return nil, missing("lookup", Join(path))
	}
	return folder, nil
}

// ReadFile returns the content of the file at path.
func (t *Tree) ReadFile(path string) (string, error) {
	n, ok := t.Lookup(path)
	if !ok {
		return "", missing("read", Join(path))
	}
	file, ok := n.(*File)
	if !ok {
		return "", missing("read", Join(path))
	}
	return file.Content(), nil
}

// CreateFolder creates every missing folder along path. It fails when a
// segment is bound to a file, or when the final segment is already bound.
func (t *Tree) CreateFolder(path string) (*Tree, error) {
	const op = "create folder"
	segments := Split(path)
	if len(segments) == 0 {
		return t, invalid(op, path, "")
	}
	for _, seg := range segments {
		if !validSegment(seg) {
			return t, invalid(op, Join(path), seg)
		}
	}

	root := t.root.clone()
	cur := root
	for i, seg := range segments {
		soFar := strings.Join(segments[:i+1], Separator)
		child, ok := cur.Child(seg)
		if !ok {
			created := NewFolder()
			cur.set(seg, created)
			cur = created
			continue
		}
		folder, isFolder := child.(*Folder)
		if !isFolder {
			return t, collision(op, soFar, seg, KindFile)
		}
		if i == len(segments)-1 {
			return t, collision(op, soFar, seg, KindFolder)
		}
		owned := folder.clone()
		cur.set(seg, owned)
		cur = owned
	}
	return &Tree{root: root}, nil
}

// CreateFile binds an empty file named name inside the existing folder at
// folderPath. The root itself is not a valid target.
func (t *Tree) CreateFile(folderPath, name string) (*Tree, error) {
	const op = "create file"
	name = strings.TrimSpace(name)
	target := Join(folderPath, name)
	if !validSegment(name) || strings.Contains(name, Separator) {
		return t, invalid(op, target, name)
	}
	if len(Split(folderPath)) == 0 {
		return t, missing(op, Join(folderPath))
	}

	return t.update(op, folderPath, func(parent *Folder) error {
		if existing, ok := parent.Child(name); ok {
			return collision(op, target, name, existing.Kind())
		}
		parent.set(name, NewFile(""))
		return nil
	})
}

// WriteFile replaces the content of the existing file at path.
func (t *Tree) WriteFile(path, content string) (*Tree, error) {
	const op = "write file"
	name := Base(path)
	return t.update(op, Dir(path), func(parent *Folder) error {
		existing, ok := parent.Child(name)
		if !ok || existing.Kind() != KindFile {
			return missing(op, Join(path))
		}
		parent.set(name, NewFile(content))
		return nil
	})
}

// RemoveFile unbinds the file at path.
func (t *Tree) RemoveFile(path string) (*Tree, error) {
	const op = "remove file"
	name := Base(path)
	return t.update(op, Dir(path), func(parent *Folder) error {
		existing, ok := parent.Child(name)
		if !ok || existing.Kind() != KindFile {
			return missing(op, Join(path))
		}
		parent.remove(name)
		return nil
	})
}

// update clones every folder from the root down to folderPath and hands the
// cloned target to fn. The original tree is returned untouched on error.
func (t *Tree) update(op, folderPath string, fn func(parent *Folder) error) (*Tree, error) {
	root := t.root.clone()
	cur := root
	for _, seg := range Split(folderPath) {
		child, ok := cur.Child(seg)
		if !ok {
			return t, missing(op, Join(folderPath))
		}
		folder, ok := child.(*Folder)
		if !ok {
			return t, missing(op, Join(folderPath))
		}
		owned := folder.clone()
		cur.set(seg, owned)
		cur = owned
	}
	if err := fn(cur); err != nil {
		return t, err
	}
	return &Tree{root: root}, nil
}

// Walk visits every node depth-first in insertion order. Returning
// SkipFolder from fn for a folder skips its children.
func (t *Tree) Walk(fn WalkFunc) error {
	err := walkFolder(t.root, "", 0, fn)
	if errors.Is(err, SkipFolder) {
		return nil
	}
	return err
}

func walkFolder(folder *Folder, prefix string, depth int, fn WalkFunc) error {
	for _, name := range folder.names {
		child := folder.children[name]
		path := name
		if prefix != "" {
			path = prefix + Separator + name
		}
		err := fn(Entry{Path: path, Name: name, Depth: depth, Node: child})
		sub, isFolder := child.(*Folder)
		switch {
		case errors.Is(err, SkipFolder):
			continue
		case err != nil:
			return err
		case isFolder:
			if err := walkFolder(sub, path, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats counts folders and files in the tree.
func (t *Tree) Stats() (folders, files int) {
	_ = t.Walk(func(e Entry) error {
		if e.IsFolder() {
			folders++
		} else {
			files++
		}
		return nil
	})
	return folders, files
}

// Equal reports whether both trees hold the same names, kinds and content.
// Child order is ignored.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	return folderEqual(t.root, other.root)
}

func folderEqual(a, b *Folder) bool {
	if a == b {
		return true
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for name, ac := range a.children {
		bc, ok := b.children[name]
		if !ok {
			return false
		}
		switch av := ac.(type) {
		case *File:
			bv, ok := bc.(*File)
			if !ok || av.content != bv.content {
				return false
			}
		case *Folder:
			bv, ok := bc.(*Folder)
			if !ok || !folderEqual(av, bv) {
				return false
			}
		}
	}
	return true
}
