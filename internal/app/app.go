// Package app implements the lazyscratch terminal UI: an explorer pane
// listing scratch folders and files next to an editor for the selected file.
package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/chmouel/lazyscratch/internal/app/screen"
	"github.com/chmouel/lazyscratch/internal/app/services"
	"github.com/chmouel/lazyscratch/internal/app/state"
	"github.com/chmouel/lazyscratch/internal/config"
	"github.com/chmouel/lazyscratch/internal/log"
	"github.com/chmouel/lazyscratch/internal/theme"
)

const (
	minExplorerWidth = 24
	minEditorWidth   = 30
)

// Model is the Bubble Tea model for the scratch editor. All state is owned by
// the update loop; the workspace is only touched from Update.
type Model struct {
	config    *config.AppConfig
	theme     *theme.Theme
	workspace *services.Workspace
	watch     *services.ConfigWatchService
	logger    *zap.SugaredLogger

	view     state.ViewState
	screens  *screen.Manager
	explorer *explorer
	editor   textarea.Model
	// editorPath is the file whose content the textarea currently holds.
	editorPath string
	toasts     *toastStack
	icons      *iconCache

	quitting bool
}

// NewModel creates the application model from cfg.
func NewModel(cfg *config.AppConfig) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		config:    cfg,
		theme:     theme.GetTheme(cfg.Theme),
		workspace: services.NewWorkspace(cfg.DefaultFolders, cfg.ToastDuration),
		logger:    log.Named("app"),
		screens:   screen.NewManager(),
		explorer:  newExplorer(),
		editor:    newEditor(),
		toasts:    newToastStack(cfg.MaxToasts),
		icons:     newIconCache(),
	}
	m.applyEditorTheme()
	m.explorer.rebuild(m.workspace.Tree())
	return m
}

// Init starts the configuration watcher when enabled.
func (m *Model) Init() tea.Cmd {
	return m.startConfigWatcher()
}

// Update dispatches Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil

	case configChangedMsg:
		return m, m.handleConfigChanged()

	case configReloadedMsg:
		return m, m.handleConfigReloaded(msg)
	}

	// cursor blink and other textarea internals
	if m.view.FocusedPane == state.PaneEditor && m.hasSelection() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Close releases background resources.
func (m *Model) Close() {
	m.stopConfigWatcher()
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.stopConfigWatcher()
	return tea.Quit
}

func (m *Model) hasSelection() bool {
	return m.workspace.CurrentFile() != ""
}

func (m *Model) debugf(format string, args ...any) {
	m.logger.Debugf(format, args...)
}
