package listview

import "sort"

// Item is a row the view can sequence, compare and delegate painting to.
// The engine never interprets item content; row appearance is entirely up to
// the item, which makes the set of row kinds open-ended.
type Item interface {
	// SameAs reports logical identity. Used to re-match selection and
	// hover anchors across refreshes and to remove items.
	SameAs(other Item) bool
	// DrawBackground paints the full-width row background. rect is the
	// row's on-screen rect, already clipped to the content area.
	DrawBackground(rect Rect, s Surface, row int, selected, hovered bool)
	// DrawForeground paints one column cell of the row.
	DrawForeground(rect Rect, s Surface, column, row int, selected, hovered bool)
}

// AddItems appends items to the list. Only the new items are run through
// the active search filter (an incremental extension, not a re-filter); if a
// sort column is active the whole render sequence is re-sorted so the new
// rows land in order.
func (v *View) AddItems(items []Item) {
	v.items = append(v.items, items...)
	v.renderItems = append(v.renderItems, v.filterItems(items)...)

	if v.sortColumn != -1 {
		v.sortRenderItems(v.sortColumn, v.sortDesc)
	}
	v.vp.RequestRepaint()
}

// RemoveItem removes the first item matching SameAs from both sequences,
// from the selection, and from the hover/selection anchors. If the removal
// leaves the offset past the new bottom it backs up by one row.
func (v *View) RemoveItem(item Item) {
	if item == nil {
		return
	}
	v.items = removeFirstMatch(v.items, item)
	v.renderItems = removeFirstMatch(v.renderItems, item)
	v.selection = removeFirstMatch(v.selection, item)
	if v.lastSelected != nil && v.lastSelected.SameAs(item) {
		v.lastSelected = nil
	}
	v.dropHoverIf(item)

	if v.renderOffset >= v.itemsTotalHeight()-v.vp.Height() {
		v.renderOffset = v.clampOffset(v.renderOffset - v.rowHeight)
	}
	v.vp.RequestRepaint()
}

// ClearItems empties the list. Selection and hover anchors are dropped with
// it, so no dangling references can survive a clear.
func (v *View) ClearItems() {
	v.items = nil
	v.renderItems = nil
	v.selection = nil
	v.lastSelected = nil
	v.lastHovered = nil
	v.drawHovered = nil
	v.mouseHovered = nil
}

// RefreshItems replaces the whole list. Selection and the hover/selection
// anchors are preserved by re-matching against the new set with SameAs
// (quadratic, fine for a refresh path), the active sort is re-applied, and
// the scroll offset is clamped to the new bounds.
func (v *View) RefreshItems(items []Item) {
	var newSelection []Item
	for _, it := range items {
		for _, sel := range v.selection {
			if it.SameAs(sel) {
				newSelection = append(newSelection, it)
				break
			}
		}
	}
	newLastSelected := rematch(items, v.lastSelected)
	newLastHovered := rematch(items, v.lastHovered)

	v.ClearItems()
	v.items = append(v.items, items...)
	v.renderItems = append(v.renderItems, v.filterItems(items)...)

	if v.sortColumn != -1 {
		v.sortRenderItems(v.sortColumn, v.sortDesc)
	}

	v.selection = newSelection
	v.lastSelected = newLastSelected
	v.lastHovered = newLastHovered

	v.renderOffset = v.clampOffset(v.renderOffset)
	v.vp.RequestRepaint()
}

// Search filters the render sequence by query. Clearing a previously active
// query restores the full list in original insertion order; the active sort
// column is deliberately not re-applied on that path.
func (v *View) Search(query string) {
	if query == "" && v.searchText != query {
		v.searchText = query
		v.renderItems = append(v.renderItems[:0:0], v.items...)
	} else {
		v.searchText = query
		v.renderItems = v.filterItems(v.items)
	}
	// Narrowing the match set can strand the offset past the new bottom.
	v.renderOffset = v.clampOffset(v.renderOffset)
	v.vp.RequestRepaint()
}

// Items returns the logical item sequence in insertion order.
func (v *View) Items() []Item { return v.items }

// RenderItems returns the currently rendered (filtered/sorted) sequence.
func (v *View) RenderItems() []Item { return v.renderItems }

// filterItems applies the active query; with no query or no predicate the
// input passes through unchanged.
func (v *View) filterItems(items []Item) []Item {
	if v.searchText == "" || v.searchFunc == nil {
		return append([]Item(nil), items...)
	}
	var out []Item
	for _, it := range items {
		if v.searchFunc(it, v.searchText) {
			out = append(out, it)
		}
	}
	return out
}

// sortRenderItems sorts the render sequence in place with the column's
// comparator. Gated on the comparator vector matching the column count, so
// a misconfigured caller degrades to an unsorted view instead of a panic.
func (v *View) sortRenderItems(column int, descending bool) {
	if len(v.sorters) == 0 || len(v.sorters) != len(v.columns) || len(v.sortOrders) != len(v.columns) {
		v.log.Warn().Int("column", column).Msg("sort skipped: comparator count does not match columns")
		return
	}
	if column < 0 || column >= len(v.sorters) || v.sorters[column] == nil {
		v.log.Warn().Int("column", column).Msg("sort skipped: no comparator for column")
		return
	}
	fn := v.sorters[column]
	sort.Slice(v.renderItems, func(i, j int) bool {
		return fn(v.renderItems[i], v.renderItems[j], descending)
	})
}

func (v *View) dropHoverIf(item Item) {
	if v.lastHovered != nil && v.lastHovered.SameAs(item) {
		v.lastHovered = nil
	}
	if v.drawHovered != nil && v.drawHovered.SameAs(item) {
		v.drawHovered = nil
	}
	if v.mouseHovered != nil && v.mouseHovered.SameAs(item) {
		v.mouseHovered = nil
	}
}

func removeFirstMatch(items []Item, target Item) []Item {
	for i, it := range items {
		if it.SameAs(target) {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

func rematch(items []Item, target Item) Item {
	if target == nil {
		return nil
	}
	for _, it := range items {
		if it.SameAs(target) {
			return it
		}
	}
	return nil
}
