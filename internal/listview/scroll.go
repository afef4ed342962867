package listview

// Scroll state and scrollbar geometry. The render offset is the number of
// units scrolled from the top of the render sequence; every mutation passes
// through clampOffset so the invariant
// 0 <= renderOffset <= max(0, totalContentHeight - scrollAreaHeight)
// holds after any operation, however hostile the input.

// RenderOffset returns the current scroll offset.
func (v *View) RenderOffset() int { return v.renderOffset }

// SetRenderOffset scrolls to offset, clamped to the content bounds.
func (v *View) SetRenderOffset(offset int) {
	v.oldRenderOffset = v.renderOffset
	v.renderOffset = v.clampOffset(offset)
	v.vp.RequestRepaint()
}

// Wheel scrolls by delta wheel steps (positive scrolls up, matching wheel
// conventions); each step moves one scroll unit.
func (v *View) Wheel(delta int) {
	if delta == 0 {
		return
	}
	v.oldRenderOffset = v.renderOffset
	v.renderOffset = v.clampOffset(v.renderOffset - delta*v.scrollUnit)
	v.vp.RequestRepaint()
}

// ScrollPageDown moves the selection a page down.
func (v *View) ScrollPageDown() {
	v.SelectNextWithOffset(v.scrollAreaHeight() / v.rowHeight)
}

// ScrollPageUp moves the selection a page up.
func (v *View) ScrollPageUp() {
	v.SelectPrevWithOffset(v.scrollAreaHeight() / v.rowHeight)
}

// CtrlScrollPageDown scrolls a page down without touching the selection.
func (v *View) CtrlScrollPageDown() {
	v.oldRenderOffset = v.renderOffset
	v.renderOffset = v.clampOffset(v.renderOffset + v.scrollAreaHeight())
	v.vp.RequestRepaint()
}

// CtrlScrollPageUp scrolls a page up without touching the selection.
func (v *View) CtrlScrollPageUp() {
	v.oldRenderOffset = v.renderOffset
	v.renderOffset = v.clampOffset(v.renderOffset - v.scrollAreaHeight())
	v.vp.RequestRepaint()
}

// CtrlScrollToHome scrolls to the top without touching the selection.
func (v *View) CtrlScrollToHome() {
	v.oldRenderOffset = v.renderOffset
	v.renderOffset = 0
	v.vp.RequestRepaint()
}

// CtrlScrollToEnd scrolls to the bottom without touching the selection.
func (v *View) CtrlScrollToEnd() {
	v.oldRenderOffset = v.renderOffset
	v.renderOffset = v.bottomOffset()
	v.vp.RequestRepaint()
}

// clampOffset bounds an offset to [0, bottom].
func (v *View) clampOffset(offset int) int {
	return max(0, min(offset, v.bottomOffset()))
}

// bottomOffset is the largest legal offset: content height minus the scroll
// area, or 0 when everything fits.
func (v *View) bottomOffset() int {
	total := v.itemsTotalHeight()
	if total > v.vp.Height()-v.titleHeight {
		return total - v.vp.Height() + v.titleHeight
	}
	return 0
}

// itemsTotalHeight is the height of the whole render sequence.
func (v *View) itemsTotalHeight() int {
	return len(v.renderItems) * v.rowHeight
}

// scrollAreaHeight is the widget height minus the header.
func (v *View) scrollAreaHeight() int {
	return v.vp.Height() - v.titleHeight
}

// scrollbarHeight is the thumb height: proportional to the visible share of
// the content but never below the configured minimum, so the thumb stays
// grabbable however long the list gets.
func (v *View) scrollbarHeight() int {
	total := v.itemsTotalHeight()
	if total <= 0 {
		return v.scrollbarMinHeight
	}
	h := int(float64(v.scrollAreaHeight()) / float64(total) * float64(v.vp.Height()))
	return max(h, v.scrollbarMinHeight)
}

// scrollbarY is the thumb's top edge, bounded so the thumb never hangs past
// the widget bottom.
func (v *View) scrollbarY() int {
	total := v.itemsTotalHeight()
	if total <= 0 {
		return v.titleHeight
	}
	y := int(float64(v.renderOffset)/float64(total)*float64(v.scrollAreaHeight())) + v.titleHeight
	return min(y, v.vp.Height()-v.scrollbarHeight())
}

// scrollbarOffsetForY maps a pointer Y on the scrollbar track to a render
// offset: the thumb centers on the pointer, linearly across the track.
func (v *View) scrollbarOffsetForY(y int) int {
	area := v.scrollAreaHeight()
	if area <= 0 {
		return 0
	}
	pos := float64(y-v.scrollbarHeight()/2-v.titleHeight) / float64(area)
	return v.clampOffset(int(pos * float64(v.itemsTotalHeight())))
}

// ScrollbarVisible reports whether the scrollbar would paint right now.
func (v *View) ScrollbarVisible() bool {
	if v.itemsTotalHeight() <= v.scrollAreaHeight() {
		return false
	}
	return v.mouseAtScrollbar || v.oldRenderOffset != v.renderOffset
}
