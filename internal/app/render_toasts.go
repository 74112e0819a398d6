package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/chmouel/lazyscratch/internal/models"
)

const maxToastWidth = 44

// renderToasts renders the notification stack, newest on top.
func (m *Model) renderToasts(layout layoutDims) string {
	if m.toasts.len() == 0 {
		return ""
	}
	width := minInt(maxToastWidth, maxInt(layout.width/2, 20))

	blocks := make([]string, 0, m.toasts.len())
	for _, n := range m.toasts.visible() {
		blocks = append(blocks, m.renderToast(n, width))
	}
	return lipgloss.JoinVertical(lipgloss.Right, blocks...)
}

func (m *Model) renderToast(n models.Notification, width int) string {
	accent := m.theme.SuccessFg
	if n.IsError() {
		accent = m.theme.ErrorFg
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(width - 2)

	inner := width - box.GetHorizontalFrameSize()
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(n.Title)
	description := lipgloss.NewStyle().Foreground(m.theme.TextFg).Render(wordwrap.String(n.Description, maxInt(inner, 1)))
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, description))
}
