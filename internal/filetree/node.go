// Package filetree implements the in-memory folder/file tree edited by the
// scratch editor. Trees are persistent: every mutation returns a new *Tree
// that shares untouched folders with the previous one.
package filetree

// Kind identifies the variant of a Node.
type Kind int

// Node kinds.
const (
	KindFolder Kind = iota
	KindFile
)

// String returns a human-readable name for the node kind.
func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Node is either a *Folder or a *File. The unexported marker keeps the set
// of variants closed to this package.
type Node interface {
	Kind() Kind
	node()
}

// File is a leaf holding text content. Files are immutable once bound in a
// tree; writing content binds a new *File.
type File struct {
	content string
}

// NewFile returns a file node with the given content.
func NewFile(content string) *File {
	return &File{content: content}
}

// Kind implements Node.
func (f *File) Kind() Kind { return KindFile }

func (f *File) node() {}

// Content returns the stored text.
func (f *File) Content() string { return f.content }

// Folder is an ordered mapping from names to child nodes. Children keep the
// order in which they were first bound.
type Folder struct {
	names    []string
	children map[string]Node
}

// NewFolder returns an empty folder.
func NewFolder() *Folder {
	return &Folder{children: make(map[string]Node)}
}

// Kind implements Node.
func (f *Folder) Kind() Kind { return KindFolder }

func (f *Folder) node() {}

// Len returns the number of direct children.
func (f *Folder) Len() int { return len(f.names) }

// Names returns the child names in insertion order.
func (f *Folder) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Child returns the node bound to name.
func (f *Folder) Child(name string) (Node, bool) {
	n, ok := f.children[name]
	return n, ok
}

// Each calls fn for every child in insertion order.
func (f *Folder) Each(fn func(name string, n Node)) {
	for _, name := range f.names {
		fn(name, f.children[name])
	}
}

// clone copies the folder's own bindings. Child nodes are shared.
func (f *Folder) clone() *Folder {
	c := &Folder{
		names:    make([]string, len(f.names)),
		children: make(map[string]Node, len(f.children)),
	}
	copy(c.names, f.names)
	for k, v := range f.children {
		c.children[k] = v
	}
	return c
}

// set binds name to n, keeping the original position when rebinding.
// Only call on folders owned by an in-progress mutation.
func (f *Folder) set(name string, n Node) {
	if _, exists := f.children[name]; !exists {
		f.names = append(f.names, name)
	}
	f.children[name] = n
}

func (f *Folder) remove(name string) {
	if _, exists := f.children[name]; !exists {
		return
	}
	delete(f.children, name)
	for i, existing := range f.names {
		if existing == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			break
		}
	}
}
