package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/chmouel/lazyscratch/internal/filetree"
	"github.com/chmouel/lazyscratch/internal/log"
	"github.com/chmouel/lazyscratch/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Workspace holds the scratch file tree together with the current selection
// and its edit buffer. Every mutating operation validates before committing
// and reports its outcome as a notification.
type Workspace struct {
	tree      *filetree.Tree
	selection models.Selection
	buffer    string
	revision  uint64
	duration  time.Duration
	logger    *zap.SugaredLogger
}

// NewWorkspace creates a workspace whose root holds the given folders.
func NewWorkspace(folders []string, duration time.Duration) *Workspace {
	if duration <= 0 {
		duration = models.DefaultNotificationDuration
	}
	return &Workspace{
		tree:     filetree.New(folders...),
		duration: duration,
		logger:   log.Named("workspace"),
	}
}

// SetNotificationDuration changes the duration attached to new notifications.
func (w *Workspace) SetNotificationDuration(d time.Duration) {
	if d > 0 {
		w.duration = d
	}
}

// Tree returns the current snapshot. Snapshots are never mutated.
func (w *Workspace) Tree() *filetree.Tree { return w.tree }

// Selection returns the file loaded in the edit buffer.
func (w *Workspace) Selection() models.Selection { return w.selection }

// CurrentFile returns the selected path, or "" when nothing is selected.
func (w *Workspace) CurrentFile() string { return w.selection.Path() }

// CurrentContent returns the edit buffer.
func (w *Workspace) CurrentContent() string { return w.buffer }

// Revision increases each time the tree changes.
func (w *Workspace) Revision() uint64 { return w.revision }

// Dirty reports whether the edit buffer differs from the stored content.
func (w *Workspace) Dirty() bool {
	if w.selection.IsZero() {
		return false
	}
	stored, err := w.tree.ReadFile(w.selection.Path())
	if err != nil {
		return true
	}
	return stored != w.buffer
}

// CreateFolder creates name under parentPath, creating missing parents. An
// empty name means the prompt was cancelled and nothing happens; the boolean
// result reports whether a notification was produced.
func (w *Workspace) CreateFolder(parentPath, name string) (models.Notification, bool) {
	if filetree.Join(name) == "" {
		return models.Notification{}, false
	}
	path := filetree.Join(parentPath, name)

	next, err := w.tree.CreateFolder(path)
	if err != nil {
		w.logger.Debugw("create folder rejected", "path", path, "error", err)
		var treeErr *filetree.Error
		switch {
		case errors.As(err, &treeErr) && errors.Is(err, filetree.ErrNameCollision) && treeErr.Existing == filetree.KindFile:
			return w.failure(fmt.Sprintf("A file named %s already exists at this location!", treeErr.Name)), true
		case errors.Is(err, filetree.ErrNameCollision):
			return w.failure("Folder already exists!"), true
		default:
			return w.failure(fmt.Sprintf("Invalid folder name %q!", name)), true
		}
	}

	w.commit(next)
	w.logger.Debugw("folder created", "path", path)
	return w.success("Folder created!"), true
}

// CreateFile binds an empty file inside the existing folder at folderPath
// and selects it with an empty buffer. An empty name is a cancelled prompt.
func (w *Workspace) CreateFile(folderPath, name string) (models.Notification, bool) {
	if filetree.Join(name) == "" {
		return models.Notification{}, false
	}
	folderPath = filetree.Join(folderPath)

	next, err := w.tree.CreateFile(folderPath, name)
	if err != nil {
		w.logger.Debugw("create file rejected", "folder", folderPath, "name", name, "error", err)
		switch {
		case errors.Is(err, filetree.ErrNameCollision):
			return w.failure("File already exists in this folder!"), true
		case errors.Is(err, filetree.ErrMissingTarget):
			return w.failure(fmt.Sprintf("Folder %s does not exist!", folderPath)), true
		default:
			return w.failure(fmt.Sprintf("Invalid file name %q!", name)), true
		}
	}

	w.commit(next)
	w.selection = models.Selection{Folder: folderPath, File: filetree.Base(name)}
	w.buffer = ""
	w.logger.Debugw("file created", "path", w.selection.Path())
	return w.success("File created!"), true
}

// OpenFile selects the file and loads its stored content into the buffer.
func (w *Workspace) OpenFile(folderPath, fileName string) error {
	sel := models.Selection{Folder: filetree.Join(folderPath), File: fileName}
	content, err := w.tree.ReadFile(sel.Path())
	if err != nil {
		return err
	}
	w.selection = sel
	w.buffer = content
	w.logger.Debugw("file opened", "path", sel.Path())
	return nil
}

// SetBuffer replaces the edit buffer. The tree is not touched until SaveFile.
func (w *Workspace) SetBuffer(content string) {
	if w.selection.IsZero() {
		return
	}
	w.buffer = content
}

// SaveFile writes the edit buffer into the selected file. Without a
// selection nothing happens and no notification is produced.
func (w *Workspace) SaveFile() (models.Notification, bool) {
	if w.selection.IsZero() {
		return models.Notification{}, false
	}
	path := w.selection.Path()

	stored, err := w.tree.ReadFile(path)
	if err == nil && stored == w.buffer {
		return w.success("File saved!"), true
	}

	next, err := w.tree.WriteFile(path, w.buffer)
	if err != nil {
		w.logger.Debugw("save rejected", "path", path, "error", err)
		return w.failure(fmt.Sprintf("Cannot save %s: it no longer exists!", path)), true
	}

	w.commit(next)
	w.logger.Debugw("file saved", "path", path, "bytes", len(w.buffer))
	return w.success("File saved!"), true
}

// DeleteFile removes the file. Deleting the selected file clears the
// selection and the buffer.
func (w *Workspace) DeleteFile(folderPath, fileName string) models.Notification {
	sel := models.Selection{Folder: filetree.Join(folderPath), File: fileName}
	path := sel.Path()

	next, err := w.tree.RemoveFile(path)
	if err != nil {
		w.logger.Debugw("delete rejected", "path", path, "error", err)
		return w.failure(fmt.Sprintf("File %s does not exist!", path))
	}

	w.commit(next)
	if w.selection == sel {
		w.selection = models.Selection{}
		w.buffer = ""
	}
	w.logger.Debugw("file deleted", "path", path)
	return w.success("File deleted!")
}

func (w *Workspace) commit(next *filetree.Tree) {
	w.tree = next
	w.revision++
}

func (w *Workspace) success(description string) models.Notification {
	return w.notification("Success", description, models.SeveritySuccess)
}

func (w *Workspace) failure(description string) models.Notification {
	return w.notification("Error", description, models.SeverityError)
}

func (w *Workspace) notification(title, description string, severity models.Severity) models.Notification {
	return models.Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Severity:    severity,
		Duration:    w.duration,
		Closable:    true,
	}
}
