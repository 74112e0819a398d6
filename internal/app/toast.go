package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazyscratch/internal/models"
)

const defaultMaxToasts = 3

// toastStack holds the notifications currently on screen, oldest first.
type toastStack struct {
	items []models.Notification
	max   int
}

func newToastStack(maxToasts int) *toastStack {
	if maxToasts <= 0 {
		maxToasts = defaultMaxToasts
	}
	return &toastStack{max: maxToasts}
}

// push shows n and returns the command that expires it.
func (s *toastStack) push(n models.Notification) tea.Cmd {
	s.items = append(s.items, n)
	if over := len(s.items) - s.max; over > 0 {
		s.items = append([]models.Notification(nil), s.items[over:]...)
	}

	duration := n.Duration
	if duration <= 0 {
		duration = models.DefaultNotificationDuration
	}
	id := n.ID
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// expire removes the toast with the given ID. Unknown IDs are ignored.
func (s *toastStack) expire(id string) bool {
	for i, n := range s.items {
		if n.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// dismiss removes every closable toast.
func (s *toastStack) dismiss() bool {
	kept := s.items[:0]
	for _, n := range s.items {
		if !n.Closable {
			kept = append(kept, n)
		}
	}
	changed := len(kept) != len(s.items)
	s.items = kept
	return changed
}

func (s *toastStack) setMax(maxToasts int) {
	if maxToasts <= 0 {
		return
	}
	s.max = maxToasts
	if over := len(s.items) - s.max; over > 0 {
		s.items = append([]models.Notification(nil), s.items[over:]...)
	}
}

func (s *toastStack) len() int {
	return len(s.items)
}

// visible returns the toasts newest first.
func (s *toastStack) visible() []models.Notification {
	out := make([]models.Notification, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out
}
