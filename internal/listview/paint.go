package listview

// Paint pass. Cost is proportional to the number of visible rows, never to
// the total item count: the loop skips straight to the first row at the
// render offset and stops as soon as the viewport is full.

// Sort-arrow glyph table: process-wide, immutable, indexed by direction and
// interaction state.
type arrowGlyphs struct {
	normal, hover, press string
}

var (
	arrowUp   = arrowGlyphs{normal: "▲", hover: "▲", press: "▲"}
	arrowDown = arrowGlyphs{normal: "▼", hover: "▼", press: "▼"}
)

// Palette is the set of fills the engine itself paints with (header, frame,
// scrollbar, empty-search message). Row fills are the items' business.
type Palette struct {
	TitleBar       Fill
	TitleText      Fill
	TitleSeparator Fill
	ArrowNormal    Fill
	ArrowHover     Fill
	ArrowPress     Fill
	Background     Fill
	SearchEmpty    Fill
	Scrollbar      Fill
	ScrollbarHover Fill
	ScrollbarDrag  Fill
}

// SetPalette installs the engine's own fills.
func (v *View) SetPalette(p Palette) { v.palette = p }

// VisibleRange returns the inclusive render-index range a paint pass will
// touch for the current offset and viewport, clipped to valid indices.
// Returns (0, -1) when nothing is visible.
func (v *View) VisibleRange() (first, last int) {
	if len(v.renderItems) == 0 || v.rowHeight <= 0 {
		return 0, -1
	}
	// The bottom row is included even when only partially visible.
	first = v.renderOffset / v.rowHeight
	last = (v.renderOffset + v.scrollAreaHeight()) / v.rowHeight
	first = max(0, first)
	last = min(last, len(v.renderItems)-1)
	if first > last {
		return 0, -1
	}
	return first, last
}

// Paint draws the widget onto s: header, row backgrounds and per-column
// foregrounds for the visible slice, the empty-search message, the optional
// frame, and the scrollbar when it is showing.
func (v *View) Paint(s Surface) {
	width := v.vp.Width()
	height := v.vp.Height()
	widget := Rect{W: width, H: height}

	v.paintTitle(s, width)

	// Content background below the header.
	content := Rect{Y: v.titleHeight, W: width, H: height - v.titleHeight}
	s.FillRect(content, v.palette.Background)

	first, last := v.VisibleRange()
	if last >= 0 {
		widths := v.renderWidths()
		for row := first; row <= last; row++ {
			item := v.renderItems[row]
			rowRect := Rect{
				X: 0,
				Y: v.titleHeight + row*v.rowHeight - v.renderOffset,
				W: width,
				H: v.rowHeight,
			}
			clipped := rowRect.Intersect(content)
			if clipped.Empty() {
				continue
			}

			selected := indexOfMatch(v.selection, item) != -1
			hovered := v.drawHovered != nil && item.SameAs(v.drawHovered)

			item.DrawBackground(clipped, s, row, selected, hovered)

			colX := 0
			for col, w := range widths {
				if w <= 0 {
					continue
				}
				cell := Rect{X: colX, Y: rowRect.Y, W: w, H: v.rowHeight}.Intersect(content)
				if !cell.Empty() {
					item.DrawForeground(cell, s, col, row, selected, hovered)
				}
				colX += w
			}
		}
	}

	// Centered notice when a search matched nothing.
	if v.searchText != "" && len(v.renderItems) == 0 {
		s.Text(content, AlignCenter, "No search result", v.palette.SearchEmpty)
	}

	if v.drawFrame {
		s.StrokeRect(widget, v.frameFill)
	}

	if v.ScrollbarVisible() {
		v.paintScrollbar(s)
		// Visible because the offset moved: let the host arm the
		// auto-hide timer. Hover visibility hides on mouse leave.
		if v.oldRenderOffset != v.renderOffset && v.armScrollbarHide != nil {
			v.armScrollbarHide()
		}
	}
}

// paintTitle draws the header bar: column titles, separators between them,
// and the sort arrow on the active column with hover/press feedback.
func (v *View) paintTitle(s Surface, width int) {
	if v.titleHeight <= 0 {
		return
	}
	bar := Rect{W: width, H: v.titleHeight}
	s.FillRect(bar, v.palette.TitleBar)

	widths := v.renderWidths()
	colX := 0
	for col, w := range widths {
		if w <= 0 {
			continue
		}
		if col < len(v.columns) {
			cell := Rect{X: colX + v.titlePadding, Y: 0, W: w - v.titlePadding, H: v.titleHeight}
			s.Text(cell.Intersect(bar), AlignLeft|AlignVCenter, v.columns[col].Title, v.palette.TitleText)
		}
		colX += w

		if col < len(widths)-1 {
			sep := Rect{X: colX - 1, Y: 0, W: 1, H: v.titleHeight}
			s.FillRect(sep.Intersect(bar), v.palette.TitleSeparator)
		}

		if col == v.sortColumn {
			glyphs := arrowUp
			if v.sortDesc {
				glyphs = arrowDown
			}
			glyph, fill := glyphs.normal, v.palette.ArrowNormal
			switch {
			case v.titlePressColumn == v.sortColumn:
				glyph, fill = glyphs.press, v.palette.ArrowPress
			case v.titleHoverColumn == v.sortColumn:
				glyph, fill = glyphs.hover, v.palette.ArrowHover
			}
			arrow := Rect{X: colX - v.titleArrowPadding - 1, Y: 0, W: 1, H: v.titleHeight}
			s.Text(arrow.Intersect(bar), AlignCenter, glyph, fill)
		}
	}
}

// paintScrollbar draws the thumb along the right edge; wider while hovered
// or dragged so it is easier to grab.
func (v *View) paintScrollbar(s Surface) {
	fill := v.palette.Scrollbar
	barW := v.scrollbarWidth
	switch {
	case v.draggingScrollbar:
		fill = v.palette.ScrollbarDrag
		barW = v.scrollbarDragWidth
	case v.mouseAtScrollbar:
		fill = v.palette.ScrollbarHover
		barW = v.scrollbarDragWidth
	}

	thumb := Rect{
		X: v.vp.Width() - barW - v.scrollbarPadding,
		Y: v.scrollbarY(),
		W: barW,
		H: v.scrollbarHeight(),
	}
	s.FillRect(thumb, fill)
}
