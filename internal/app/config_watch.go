package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/chmouel/lazyscratch/internal/app/services"
	"github.com/chmouel/lazyscratch/internal/config"
	"github.com/chmouel/lazyscratch/internal/models"
	"github.com/chmouel/lazyscratch/internal/theme"
)

func (m *Model) startConfigWatcher() tea.Cmd {
	if !m.config.WatchConfig || m.config.Path == "" {
		return nil
	}
	if m.watch != nil && m.watch.Started {
		return nil
	}
	if m.watch == nil {
		m.watch = services.NewConfigWatchService(m.debugf)
	}
	started, err := m.watch.Start(m.config.Path)
	if err != nil {
		m.debugf("config watcher: %v", err)
		return nil
	}
	if !started {
		return nil
	}
	m.debugf("watching %s", m.config.Path)
	return m.waitForConfigEvent()
}

func (m *Model) stopConfigWatcher() {
	if m.watch == nil || !m.watch.Started {
		return
	}
	m.watch.Stop()
}

func (m *Model) waitForConfigEvent() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	events := m.watch.NextEvent()
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-events
		if !ok {
			return nil
		}
		return configChangedMsg{}
	}
}

// handleConfigChanged re-arms the watcher and, outside the debounce window,
// schedules a reload once the burst of editor writes has settled.
func (m *Model) handleConfigChanged() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	m.watch.ResetWaiting()
	next := m.waitForConfigEvent()
	if !m.watch.ShouldReload(time.Now()) {
		return next
	}
	current := m.config
	reload := tea.Tick(services.ConfigWatchDebounce, func(time.Time) tea.Msg {
		cfg, err := current.Reload()
		return configReloadedMsg{cfg: cfg, err: err}
	})
	return tea.Batch(next, reload)
}

func (m *Model) handleConfigReloaded(msg configReloadedMsg) tea.Cmd {
	if msg.err != nil {
		m.debugf("config reload: %v", msg.err)
		return m.notify(m.appNotification("Error", fmt.Sprintf("Could not reload configuration: %v", msg.err), models.SeverityError), true)
	}
	m.applyConfig(msg.cfg)
	return m.notify(m.appNotification("Success", "Configuration reloaded!", models.SeveritySuccess), true)
}

// applyConfig takes the presentation settings from cfg. The initial folders
// only matter at startup and are left alone.
func (m *Model) applyConfig(cfg *config.AppConfig) {
	if cfg == nil {
		return
	}
	if theme.Exists(cfg.Theme) {
		m.config.Theme = cfg.Theme
		m.theme = theme.GetTheme(cfg.Theme)
		m.applyEditorTheme()
	}
	m.config.ShowIcons = cfg.ShowIcons
	if cfg.ExplorerWidth > 0 {
		m.config.ExplorerWidth = cfg.ExplorerWidth
	}
	if cfg.ToastDuration > 0 {
		m.config.ToastDuration = cfg.ToastDuration
		m.workspace.SetNotificationDuration(cfg.ToastDuration)
	}
	if cfg.MaxToasts > 0 {
		m.config.MaxToasts = cfg.MaxToasts
		m.toasts.setMax(cfg.MaxToasts)
	}
	m.applyLayout(m.computeLayout())
}

func (m *Model) appNotification(title, description string, severity models.Severity) models.Notification {
	return models.Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Severity:    severity,
		Duration:    m.config.ToastDuration,
		Closable:    true,
	}
}
