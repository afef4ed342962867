package listview

// Pointer and keyboard routing. A pointer position is classified into
// exactly one region, tested in priority order: scrollbar, then title bar,
// then row content. The engine tolerates arbitrarily coarse or fine event
// streams; no batching is assumed.

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
)

// Key identifies a navigation key the engine understands. Anything else is
// the host's business.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySelectAll // the host's select-all chord, e.g. ctrl+a
)

// MousePress routes a button press.
func (v *View) MousePress(p Point, b Button, mods Modifiers) {
	switch {
	case v.atScrollArea(p.X):
		v.scrollbarPress(p.Y)
	case v.atTitleArea(p.Y):
		v.titlePress(p, b)
	default:
		v.contentPress(p, b, mods)
	}
}

// MouseMove routes pointer motion: scrollbar drag first, then scrollbar
// hover transitions, then header hover, then row hover.
func (v *View) MouseMove(p Point) {
	if v.draggingScrollbar {
		v.renderOffset = v.scrollbarOffsetForY(p.Y)
		v.vp.RequestRepaint()
		return
	}
	if at := v.atScrollArea(p.X); at != v.mouseAtScrollbar {
		v.mouseAtScrollbar = at
		v.vp.RequestRepaint()
		return
	}
	if v.atTitleArea(p.Y) {
		v.titleHover(p.X)
		return
	}
	v.contentHover(p)
}

// MouseRelease ends a scrollbar drag or a header press, and reports the row
// release to the host.
func (v *View) MouseRelease(p Point, b Button) {
	if v.draggingScrollbar {
		v.draggingScrollbar = false
		v.vp.RequestRepaint()
	} else if v.titlePressColumn != -1 {
		v.titlePressColumn = -1
		v.vp.RequestRepaint()
	}

	idx := v.rowIndexAt(p.Y)
	if idx >= 0 && idx < len(v.renderItems) && v.onItemReleased != nil {
		col, left := v.columnAt(p.X, v.renderWidths())
		v.onItemReleased(v.renderItems[idx], col, v.cellPoint(p, left, idx))
	}
}

// MouseLeave clears hover state and begins hiding the scrollbar.
func (v *View) MouseLeave() {
	v.lastHovered = nil
	v.drawHovered = nil
	v.mouseHovered = nil
	v.HideScrollbar()
}

// KeyPress maps a navigation key plus modifiers onto the select/scroll
// operations. Unknown keys are ignored.
func (v *View) KeyPress(k Key, mods Modifiers) {
	ctrl := mods&ModCtrl != 0
	shift := mods&ModShift != 0

	switch k {
	case KeyHome:
		switch {
		case ctrl:
			v.CtrlScrollToHome()
		case shift:
			v.ShiftSelectToHome()
		default:
			v.SelectFirst()
		}
	case KeyEnd:
		switch {
		case ctrl:
			v.CtrlScrollToEnd()
		case shift:
			v.ShiftSelectToEnd()
		default:
			v.SelectLast()
		}
	case KeyUp:
		if shift {
			v.ShiftSelectToPrev()
		} else {
			v.SelectPrev()
		}
	case KeyDown:
		if shift {
			v.ShiftSelectToNext()
		} else {
			v.SelectNext()
		}
	case KeyPageUp:
		switch {
		case ctrl:
			v.CtrlScrollPageUp()
		case shift:
			v.ShiftSelectPageUp()
		default:
			v.ScrollPageUp()
		}
	case KeyPageDown:
		switch {
		case ctrl:
			v.CtrlScrollPageDown()
		case shift:
			v.ShiftSelectPageDown()
		default:
			v.ScrollPageDown()
		}
	case KeySelectAll:
		v.SelectAll()
	}
}

// atScrollArea reports whether x is inside the scrollbar hit zone along the
// right edge (the drag width, wider than the idle thumb).
func (v *View) atScrollArea(x int) bool {
	w := v.vp.Width()
	return x > w-v.scrollbarDragWidth-v.scrollbarPadding && x < w
}

// atTitleArea reports whether y is inside the header.
func (v *View) atTitleArea(y int) bool {
	return y >= 0 && y < v.titleHeight
}

// rowIndexAt maps a widget-space y to a render index. May be out of range;
// callers bounds-check.
func (v *View) rowIndexAt(y int) int {
	return (v.renderOffset + y - v.titleHeight) / v.rowHeight
}

// cellPoint converts a widget-space point to coordinates inside the hit
// row/column cell.
func (v *View) cellPoint(p Point, columnLeft, rowIndex int) Point {
	return Point{
		X: p.X - columnLeft,
		Y: v.renderOffset + p.Y - v.titleHeight - rowIndex*v.rowHeight,
	}
}

// titlePress handles header clicks: left click sorts by the hit column,
// right click offers the toggleable-column menu.
func (v *View) titlePress(p Point, b Button) {
	switch b {
	case ButtonLeft:
		if !v.sortConfigured() {
			return
		}
		col, _ := v.columnAt(p.X, v.renderWidths())
		if col >= len(v.columns) {
			return
		}
		// Switching columns starts from descending; clicking the
		// active column flips its direction.
		if col != v.sortColumn {
			v.sortOrders[col] = true
		} else {
			v.sortOrders[col] = !v.sortOrders[col]
		}
		v.sortColumn = col
		v.sortDesc = v.sortOrders[col]
		if v.onSortChanged != nil {
			v.onSortChanged(v.sortColumn, v.sortDesc)
		}
		v.sortRenderItems(col, v.sortOrders[col])
		if col != v.titlePressColumn {
			v.titlePressColumn = col
		}
		v.vp.RequestRepaint()

	case ButtonRight:
		if v.onHeaderRightMenu == nil {
			return
		}
		var toggleable []int
		for i := range v.columns {
			if i != v.alwaysVisibleColumn {
				toggleable = append(toggleable, i)
			}
		}
		v.onHeaderRightMenu(p, toggleable)
	}
}

// scrollbarPress starts a thumb drag, or jump-scrolls when the press lands
// on the track outside the thumb.
func (v *View) scrollbarPress(y int) {
	barY := v.scrollbarY()
	barH := v.scrollbarHeight()
	if y > barY && y < barY+barH {
		v.draggingScrollbar = true
		return
	}
	v.renderOffset = v.scrollbarOffsetForY(y)
	v.vp.RequestRepaint()
}

// contentPress handles clicks in the row area: blank-area clicks clear the
// selection (unless configured to keep it), ctrl toggles membership, shift
// extends from the anchor, a plain click selects exactly the hit row, and a
// right click selects the row if needed and reports the selection.
func (v *View) contentPress(p Point, b Button, mods Modifiers) {
	idx := v.rowIndexAt(p.Y)
	if idx < 0 {
		return
	}
	if idx >= len(v.renderItems) {
		if !v.keepSelectionOnBlank {
			v.ClearSelections(true)
		}
		v.vp.RequestRepaint()
		return
	}

	switch b {
	case ButtonLeft:
		item := v.renderItems[idx]
		switch {
		case !v.singleSelect && mods&ModCtrl != 0:
			if i := indexOfMatch(v.selection, item); i != -1 {
				v.selection = append(v.selection[:i], v.selection[i+1:]...)
			} else {
				v.AddSelections([]Item{item}, true)
			}
		case !v.singleSelect && mods&ModShift != 0 && len(v.selection) > 0:
			anchor := indexOfMatch(v.renderItems, v.lastSelected)
			v.shiftSelectRange(min(idx, anchor), max(idx, anchor))
		default:
			v.ClearSelections(true)
			v.AddSelections([]Item{item}, true)
		}

		if v.onItemPressed != nil {
			col, left := v.columnAt(p.X, v.renderWidths())
			v.onItemPressed(item, col, v.cellPoint(p, left, idx))
		}
		v.vp.RequestRepaint()

	case ButtonRight:
		item := v.renderItems[idx]
		if indexOfMatch(v.selection, item) == -1 {
			v.ClearSelections(true)
			v.AddSelections([]Item{item}, true)
			v.vp.RequestRepaint()
		}
		if len(v.selection) > 0 && v.onRightClick != nil {
			v.onRightClick(p, v.Selections())
		}
	}
}

// titleHover tracks which header column is under the pointer, for arrow
// hover feedback.
func (v *View) titleHover(x int) {
	hover := -1
	if v.sortConfigured() {
		if col, _ := v.columnAt(x, v.renderWidths()); col < len(v.columns) {
			hover = col
		}
	}
	if hover != v.titleHoverColumn {
		v.titleHoverColumn = hover
		v.vp.RequestRepaint()
	}
}

// contentHover tracks the hovered row/column and fires the hover hooks.
func (v *View) contentHover(p Point) {
	idx := v.rowIndexAt(p.Y)
	if idx < 0 || idx >= len(v.renderItems) {
		return
	}
	item := v.renderItems[idx]
	col, left := v.columnAt(p.X, v.renderWidths())

	if v.drawHovered == nil || !item.SameAs(v.drawHovered) {
		v.drawHovered = item
		v.vp.RequestRepaint()
	}

	if v.onHoverChanged != nil {
		v.onHoverChanged(v.mouseHovered, item, col, v.cellPoint(p, left, idx))
	}
	v.mouseHovered = item

	if v.lastHovered == nil || !item.SameAs(v.lastHovered) || col != v.lastHoverCol {
		v.lastHovered = item
		v.lastHoverCol = col
	}
}

// sortConfigured reports whether header sorting is usable: a comparator and
// an order flag per column.
func (v *View) sortConfigured() bool {
	return len(v.sorters) != 0 &&
		len(v.sorters) == len(v.columns) &&
		len(v.sortOrders) == len(v.columns)
}
