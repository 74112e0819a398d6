package app

import (
	"strings"

	"github.com/chmouel/lazyscratch/internal/filetree"
)

// explorerRow is one visible line of the explorer pane.
type explorerRow struct {
	path      string
	name      string
	depth     int
	folder    bool
	collapsed bool
	children  int
}

// explorer flattens the tree into rows and tracks the cursor by path, so the
// cursor stays on the same entry when the tree is replaced.
type explorer struct {
	rows      []explorerRow
	cursor    int
	offset    int
	collapsed map[string]bool
}

func newExplorer() *explorer {
	return &explorer{collapsed: make(map[string]bool)}
}

// rebuild recomputes the visible rows from tree.
func (e *explorer) rebuild(tree *filetree.Tree) {
	current := ""
	if row, ok := e.current(); ok {
		current = row.path
	}

	rows := make([]explorerRow, 0, len(e.rows))
	_ = tree.Walk(func(entry filetree.Entry) error {
		row := explorerRow{
			path:   entry.Path,
			name:   entry.Name,
			depth:  entry.Depth,
			folder: entry.IsFolder(),
		}
		if folder, ok := entry.Node.(*filetree.Folder); ok {
			row.children = folder.Len()
		}
		if row.folder && e.collapsed[entry.Path] {
			row.collapsed = true
			rows = append(rows, row)
			return filetree.SkipFolder
		}
		rows = append(rows, row)
		return nil
	})
	e.rows = rows

	for path := range e.collapsed {
		if _, ok := tree.Lookup(path); !ok {
			delete(e.collapsed, path)
		}
	}

	if current != "" && e.selectPath(current) {
		return
	}
	e.clamp()
}

func (e *explorer) clamp() {
	if e.cursor >= len(e.rows) {
		e.cursor = len(e.rows) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

// current returns the row under the cursor.
func (e *explorer) current() (explorerRow, bool) {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return explorerRow{}, false
	}
	return e.rows[e.cursor], true
}

func (e *explorer) move(delta int) {
	e.cursor += delta
	e.clamp()
}

func (e *explorer) top() {
	e.cursor = 0
}

func (e *explorer) bottom() {
	e.cursor = len(e.rows) - 1
	e.clamp()
}

// selectPath moves the cursor to path when it is visible.
func (e *explorer) selectPath(path string) bool {
	for i, row := range e.rows {
		if row.path == path {
			e.cursor = i
			return true
		}
	}
	return false
}

// reveal expands every folder above path. The rows must be rebuilt after.
func (e *explorer) reveal(path string) {
	dir := filetree.Dir(path)
	for dir != "" {
		delete(e.collapsed, dir)
		dir = filetree.Dir(dir)
	}
}

// toggle collapses or expands the folder at path.
func (e *explorer) toggle(path string) {
	if e.collapsed[path] {
		delete(e.collapsed, path)
		return
	}
	e.collapsed[path] = true
}

// targetFolder returns the folder that new entries are created in: the
// folder under the cursor, or the parent of the file under the cursor.
func (e *explorer) targetFolder() string {
	row, ok := e.current()
	if !ok {
		return ""
	}
	if row.folder {
		return row.path
	}
	return filetree.Dir(row.path)
}

// scroll keeps the cursor inside a window of height rows and returns the
// visible slice bounds.
func (e *explorer) scroll(height int) (start, end int) {
	if height <= 0 {
		return 0, 0
	}
	if e.cursor < e.offset {
		e.offset = e.cursor
	}
	if e.cursor >= e.offset+height {
		e.offset = e.cursor - height + 1
	}
	if maxOffset := len(e.rows) - height; e.offset > maxOffset {
		e.offset = maxInt(maxOffset, 0)
	}
	end = minInt(len(e.rows), e.offset+height)
	return e.offset, end
}

func (r explorerRow) indent() string {
	return strings.Repeat("  ", r.depth)
}
