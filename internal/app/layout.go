package app

// layoutDims holds computed layout dimensions for the UI.
type layoutDims struct {
	width              int
	height             int
	headerHeight       int
	footerHeight       int
	bodyHeight         int
	gapX               int
	explorerWidth      int
	editorWidth        int
	explorerInnerWidth int
	editorInnerWidth   int
	innerHeight        int
}

// setWindowSize updates the window dimensions and applies the layout.
func (m *Model) setWindowSize(width, height int) {
	m.view.WindowWidth = width
	m.view.WindowHeight = height
	m.applyLayout(m.computeLayout())
	if help, ok := m.screens.Current().(interface{ SetSize(int, int) }); ok {
		help.SetSize(width, height)
	}
}

// computeLayout splits the body between the explorer and the editor using
// the configured explorer width percentage.
func (m *Model) computeLayout() layoutDims {
	width := m.view.WindowWidth
	height := m.view.WindowHeight
	if width <= 0 {
		width = 120
	}
	if height <= 0 {
		height = 40
	}

	headerHeight := 1
	footerHeight := 1
	gapX := 1
	bodyHeight := maxInt(height-headerHeight-footerHeight, 6)

	percent := m.config.ExplorerWidth
	if percent <= 0 {
		percent = 30
	}
	explorerWidth := (width - gapX) * percent / 100
	if explorerWidth < minExplorerWidth {
		explorerWidth = minExplorerWidth
	}
	editorWidth := width - explorerWidth - gapX
	if editorWidth < minEditorWidth {
		editorWidth = minEditorWidth
		explorerWidth = maxInt(width-editorWidth-gapX, 1)
	}

	frameX := m.paneStyle(false).GetHorizontalFrameSize()
	frameY := m.paneStyle(false).GetVerticalFrameSize()

	return layoutDims{
		width:              width,
		height:             height,
		headerHeight:       headerHeight,
		footerHeight:       footerHeight,
		bodyHeight:         bodyHeight,
		gapX:               gapX,
		explorerWidth:      explorerWidth,
		editorWidth:        editorWidth,
		explorerInnerWidth: maxInt(1, explorerWidth-frameX),
		editorInnerWidth:   maxInt(1, editorWidth-frameX),
		innerHeight:        maxInt(1, bodyHeight-frameY),
	}
}

// applyLayout sizes the textarea to the editor pane. The pane title and the
// path line take two rows.
func (m *Model) applyLayout(layout layoutDims) {
	m.editor.SetWidth(layout.editorInnerWidth)
	m.editor.SetHeight(maxInt(1, layout.innerHeight-2))
}

// explorerPageSize is the number of rows visible in the explorer.
func (m *Model) explorerPageSize() int {
	return maxInt(1, m.computeLayout().innerHeight-1)
}
