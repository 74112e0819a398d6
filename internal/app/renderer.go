package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the active screen for the Bubble Tea program.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Wait for window size before rendering full UI
	if m.view.WindowWidth == 0 || m.view.WindowHeight == 0 {
		return "Loading..."
	}

	layout := m.computeLayout()
	m.applyLayout(layout)

	header := m.renderHeader(layout)
	body := truncateToHeight(m.renderBody(layout), layout.bodyHeight)
	footer := m.renderFooter(layout)

	baseView := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if toasts := m.renderToasts(layout); toasts != "" {
		left := maxInt(layout.width-lipgloss.Width(toasts)-1, 0)
		baseView = overlayAt(baseView, toasts, layout.headerHeight, left)
	}

	if m.screens.IsActive() {
		return m.overlayPopup(baseView, m.screens.Current().View(), 3)
	}
	return baseView
}

// overlayPopup overlays a popup horizontally centred on top of the base view.
func (m *Model) overlayPopup(base, popup string, marginTop int) string {
	if base == "" || popup == "" {
		return base
	}
	baseWidth := lipgloss.Width(strings.SplitN(base, "\n", 2)[0])
	popupWidth := lipgloss.Width(strings.SplitN(popup, "\n", 2)[0])
	return overlayAt(base, popup, marginTop, maxInt((baseWidth-popupWidth)/2, 0))
}

// overlayAt places popup at row top and column left of base, preserving the
// portions of the base that fall outside the popup bounds so that
// underlying box borders remain visible.
func overlayAt(base, popup string, top, left int) string {
	if base == "" || popup == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")
	baseWidth := lipgloss.Width(baseLines[0])

	for i, line := range popupLines {
		row := top + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}

		lineWidth := lipgloss.Width(line)
		leftPart := ansi.Truncate(baseLines[row], left, "")
		if w := lipgloss.Width(leftPart); w < left {
			leftPart += strings.Repeat(" ", left-w)
		}
		rightPart := ansi.TruncateLeft(baseLines[row], left+lineWidth, "")

		newLine := leftPart + line + rightPart
		if w := lipgloss.Width(newLine); w < baseWidth {
			newLine += strings.Repeat(" ", baseWidth-w)
		}
		baseLines[row] = newLine
	}

	return strings.Join(baseLines, "\n")
}
