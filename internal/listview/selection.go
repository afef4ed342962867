package listview

// Selection operations. All of them work over the render sequence (what the
// user currently sees), not the full item list: selecting "next" after a
// search or sort moves through rows in their on-screen order.

// AddSelections appends items to the selection. With recordAnchor the last
// added item becomes the anchor for subsequent shift ranges.
func (v *View) AddSelections(items []Item, recordAnchor bool) {
	v.selection = append(v.selection, items...)
	if recordAnchor && len(v.selection) > 0 {
		v.lastSelected = v.selection[len(v.selection)-1]
	}
}

// ClearSelections empties the selection. With clearAnchor the shift anchor
// is dropped too; range operations keep it so shift+click after a plain
// click still extends from the original row.
func (v *View) ClearSelections(clearAnchor bool) {
	v.selection = v.selection[:0]
	if clearAnchor {
		v.lastSelected = nil
	}
}

// Selections returns the selected items, in selection order.
func (v *View) Selections() []Item {
	return append([]Item(nil), v.selection...)
}

// IsSelected reports whether item is in the selection.
func (v *View) IsSelected(item Item) bool {
	return indexOfMatch(v.selection, item) != -1
}

// SelectAll selects every rendered item and scrolls to the top. No-op in
// single-select mode.
func (v *View) SelectAll() {
	if v.singleSelect {
		v.log.Debug().Msg("select-all ignored in single-select mode")
		return
	}
	v.oldRenderOffset = v.renderOffset
	v.ClearSelections(true)
	v.AddSelections(append([]Item(nil), v.renderItems...), true)
	v.renderOffset = 0
	v.vp.RequestRepaint()
}

// SelectFirst selects the first rendered item and scrolls to the top.
// No-op on an empty view.
func (v *View) SelectFirst() {
	if len(v.renderItems) == 0 {
		return
	}
	v.oldRenderOffset = v.renderOffset
	v.ClearSelections(true)
	v.AddSelections([]Item{v.renderItems[0]}, true)
	v.renderOffset = 0
	v.vp.RequestRepaint()
}

// SelectLast selects the last rendered item and scrolls to the bottom.
func (v *View) SelectLast() {
	if len(v.renderItems) == 0 {
		return
	}
	v.oldRenderOffset = v.renderOffset
	v.ClearSelections(true)
	v.AddSelections([]Item{v.renderItems[len(v.renderItems)-1]}, true)
	v.renderOffset = v.bottomOffset()
	v.vp.RequestRepaint()
}

// SelectNext moves the selection one row down.
func (v *View) SelectNext() { v.SelectNextWithOffset(1) }

// SelectPrev moves the selection one row up.
func (v *View) SelectPrev() { v.SelectPrevWithOffset(1) }

// SelectNextWithOffset collapses the selection to the row `offset` past its
// bottommost member, scrolling just enough to keep it visible. With nothing
// selected it selects the first row.
func (v *View) SelectNextWithOffset(offset int) {
	v.oldRenderOffset = v.renderOffset
	if len(v.selection) == 0 {
		v.SelectFirst()
		return
	}
	last := 0
	for _, sel := range v.selection {
		if i := indexOfMatch(v.renderItems, sel); i > last {
			last = i
		}
	}
	last = min(len(v.renderItems)-1, last+offset)
	if last < 0 {
		return
	}

	v.ClearSelections(false)
	v.AddSelections([]Item{v.renderItems[last]}, true)

	// Scroll down only when the target row fell below the viewport.
	rowBelow := last + 1
	if (v.renderOffset+v.scrollAreaHeight())/v.rowHeight < rowBelow {
		v.renderOffset = v.clampOffset(rowBelow*v.rowHeight - v.vp.Height() + v.titleHeight)
	}
	v.vp.RequestRepaint()
}

// SelectPrevWithOffset collapses the selection to the row `offset` before
// its topmost member; the counterpart of SelectNextWithOffset.
func (v *View) SelectPrevWithOffset(offset int) {
	v.oldRenderOffset = v.renderOffset
	if len(v.selection) == 0 {
		v.SelectFirst()
		return
	}
	first := len(v.renderItems)
	for _, sel := range v.selection {
		if i := indexOfMatch(v.renderItems, sel); i != -1 && i < first {
			first = i
		}
	}
	if first == len(v.renderItems) {
		return
	}
	first = max(0, first-offset)

	v.ClearSelections(true)
	v.AddSelections([]Item{v.renderItems[first]}, true)

	// Scroll up only when the target row rose above the viewport.
	rowAbove := first - 1
	if v.renderOffset/v.rowHeight > rowAbove {
		v.renderOffset = v.clampOffset(rowAbove*v.rowHeight + v.titleHeight)
	}
	v.vp.RequestRepaint()
}

// ShiftSelectToNext grows or shrinks the shift range by one row downward.
func (v *View) ShiftSelectToNext() {
	if !v.singleSelect {
		v.shiftSelectNextWithOffset(1)
	}
}

// ShiftSelectToPrev grows or shrinks the shift range by one row upward.
func (v *View) ShiftSelectToPrev() {
	if !v.singleSelect {
		v.shiftSelectPrevWithOffset(1)
	}
}

// ShiftSelectPageDown extends the shift range by a viewport's worth of rows.
func (v *View) ShiftSelectPageDown() {
	if !v.singleSelect {
		v.shiftSelectNextWithOffset(v.scrollAreaHeight() / v.rowHeight)
	}
}

// ShiftSelectPageUp extends the shift range upward by a viewport of rows.
func (v *View) ShiftSelectPageUp() {
	if !v.singleSelect {
		v.shiftSelectPrevWithOffset(v.scrollAreaHeight() / v.rowHeight)
	}
}

// ShiftSelectToEnd selects from the anchor to the last row and scrolls to
// the bottom. With an empty selection it degenerates to SelectLast.
func (v *View) ShiftSelectToEnd() {
	if v.singleSelect {
		return
	}
	if len(v.selection) == 0 {
		v.SelectLast()
		return
	}
	anchor := indexOfMatch(v.renderItems, v.lastSelected)
	v.shiftSelectRange(anchor, len(v.renderItems)-1)
	v.renderOffset = v.bottomOffset()
	v.vp.RequestRepaint()
}

// ShiftSelectToHome selects from the first row to the anchor and scrolls to
// the top. With an empty selection it degenerates to SelectFirst.
func (v *View) ShiftSelectToHome() {
	if v.singleSelect {
		return
	}
	if len(v.selection) == 0 {
		v.SelectFirst()
		return
	}
	anchor := indexOfMatch(v.renderItems, v.lastSelected)
	v.shiftSelectRange(0, anchor)
	v.renderOffset = 0
	v.vp.RequestRepaint()
}

// shiftSelectRange replaces the selection with renderItems[start..end]
// inclusive, keeping the anchor untouched so the range can keep pivoting
// around it.
func (v *View) shiftSelectRange(start, end int) {
	v.ClearSelections(false)
	var items []Item
	for i, it := range v.renderItems {
		if i >= start && i <= end {
			items = append(items, it)
		}
	}
	v.AddSelections(items, false)
}

// shiftSelectNextWithOffset: when the anchor sits at the top of the range
// the bottom edge extends down; otherwise the top edge contracts down.
func (v *View) shiftSelectNextWithOffset(offset int) {
	v.oldRenderOffset = v.renderOffset
	if len(v.selection) == 0 {
		v.SelectFirst()
		return
	}
	first, last := v.selectionBounds()
	if first == -1 {
		return
	}
	anchor := indexOfMatch(v.renderItems, v.lastSelected)

	var start, end int
	if first == anchor {
		start = first
		end = min(len(v.renderItems)-1, last+offset)
	} else {
		start = min(len(v.renderItems)-1, first+offset)
		end = last
	}
	v.shiftSelectRange(start, end)

	if (v.renderOffset+v.vp.Height())/v.rowHeight <= end+1 {
		v.renderOffset = v.clampOffset((end+1)*v.rowHeight + v.titleHeight - v.vp.Height())
	}
	v.vp.RequestRepaint()
}

// shiftSelectPrevWithOffset mirrors shiftSelectNextWithOffset upward.
func (v *View) shiftSelectPrevWithOffset(offset int) {
	v.oldRenderOffset = v.renderOffset
	if len(v.selection) == 0 {
		v.SelectFirst()
		return
	}
	first, last := v.selectionBounds()
	if first == -1 {
		return
	}
	anchor := indexOfMatch(v.renderItems, v.lastSelected)

	var start, end int
	if last == anchor {
		start = max(0, first-offset)
		end = anchor
	} else {
		start = first
		end = max(0, last-offset)
	}
	v.shiftSelectRange(start, end)

	if v.renderOffset/v.rowHeight >= start {
		v.renderOffset = v.clampOffset((start-1)*v.rowHeight + v.titleHeight)
	}
	v.vp.RequestRepaint()
}

// selectionBounds returns the lowest and highest render indices covered by
// the selection, or (-1, -1) when no selected item is currently rendered.
func (v *View) selectionBounds() (first, last int) {
	first, last = len(v.renderItems), -1
	for _, sel := range v.selection {
		i := indexOfMatch(v.renderItems, sel)
		if i == -1 {
			continue
		}
		if i < first {
			first = i
		}
		if i > last {
			last = i
		}
	}
	if last == -1 {
		return -1, -1
	}
	return first, last
}

func indexOfMatch(items []Item, target Item) int {
	if target == nil {
		return -1
	}
	for i, it := range items {
		if it.SameAs(target) {
			return i
		}
	}
	return -1
}
