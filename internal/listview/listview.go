// Package listview implements a custom-painted, virtualized list view: it
// owns the item sequence, the filtered/sorted render sequence, selection,
// scroll offset and column layout, and paints only the viewport-sized slice
// of rows through a Surface. Scrolling, hit-testing, sorting, searching and
// multi-selection are all done with explicit geometry math rather than a
// retained widget tree.
//
// The engine is strictly single-threaded: every operation runs to completion
// on the host's event loop before control returns, so no locking is needed.
// Hosts with background data sources must marshal mutating calls onto that
// loop themselves.
package listview

import (
	"github.com/rs/zerolog"
)

// WidthAuto marks a column that absorbs the space left over after all fixed
// columns are laid out.
const WidthAuto = -1

// Column describes one column of the view.
type Column struct {
	Title   string
	Width   int // fixed width, or WidthAuto
	Visible bool
}

// SortFunc is a strict-weak-ordering predicate for one column. The
// descending flag parameterizes the direction so a single function covers
// both orders.
type SortFunc func(a, b Item, descending bool) bool

// SearchFunc reports whether an item matches the active query.
type SearchFunc func(item Item, query string) bool

// Notification hooks. All fire synchronously from within the operation that
// caused them.
type (
	// HoverFunc fires when the hovered (item, column) pair changes.
	// prev may be nil on the first hover.
	HoverFunc func(prev, cur Item, column int, cell Point)
	// PressFunc fires on row press/release with the in-cell point.
	PressFunc func(item Item, column int, cell Point)
	// RightClickFunc fires with the selection at the time of the click.
	RightClickFunc func(p Point, selection []Item)
	// SortChangedFunc fires after a header click changes the active sort.
	SortChangedFunc func(column int, descending bool)
	// ColumnVisibleFunc fires when a column is toggled, with the full
	// visibility vector for persistence.
	ColumnVisibleFunc func(column int, visible bool, all []bool)
	// HeaderMenuFunc fires on header right-click with the indices of the
	// columns the host may offer to toggle.
	HeaderMenuFunc func(p Point, toggleable []int)
)

// View is the list engine. The zero value is not usable; construct with New.
type View struct {
	vp  Viewport
	log zerolog.Logger

	items       []Item // owned, insertion order
	renderItems []Item // filtered/sorted references into items

	selection    []Item // order-preserving; last element is most recent
	lastSelected Item   // anchor for shift ranges
	lastHovered  Item
	drawHovered  Item
	mouseHovered Item
	lastHoverCol int

	columns             []Column
	alwaysVisibleColumn int

	sorters    []SortFunc
	sortOrders []bool
	sortColumn int // -1 when no active sort
	sortDesc   bool

	searchText string
	searchFunc SearchFunc

	rowHeight   int
	titleHeight int
	scrollUnit  int

	renderOffset    int
	oldRenderOffset int

	titlePadding      int
	titleArrowPadding int

	scrollbarWidth     int
	scrollbarDragWidth int
	scrollbarMinHeight int
	scrollbarPadding   int

	mouseAtScrollbar  bool
	draggingScrollbar bool
	titleHoverColumn  int
	titlePressColumn  int

	singleSelect         bool
	keepSelectionOnBlank bool

	drawFrame bool
	frameFill Fill
	palette   Palette

	// Armed by Paint when the scrollbar became visible due to an offset
	// change; the host owns the actual timer and calls HideScrollbar.
	armScrollbarHide func()

	onHoverChanged    HoverFunc
	onItemPressed     PressFunc
	onItemReleased    PressFunc
	onRightClick      RightClickFunc
	onSortChanged     SortChangedFunc
	onColumnVisible   ColumnVisibleFunc
	onHeaderRightMenu HeaderMenuFunc
}

// New returns a view painting into vp. Geometry defaults are terminal-cell
// sized; hosts working in pixels override them via the setters.
func New(vp Viewport) *View {
	return &View{
		vp:                  vp,
		log:                 zerolog.Nop(),
		sortColumn:          -1,
		titleHoverColumn:    -1,
		titlePressColumn:    -1,
		lastHoverCol:        -1,
		alwaysVisibleColumn: -1,
		rowHeight:           1,
		scrollUnit:          1,
		scrollbarWidth:      1,
		scrollbarDragWidth:  2,
		scrollbarMinHeight:  3,
	}
}

// SetLogger installs a diagnostics logger. Ignored and clamped operations
// are recorded at warn level; the engine never surfaces them as errors.
func (v *View) SetLogger(log zerolog.Logger) { v.log = log }

// SetRowHeight sets the fixed height of every row. The wheel scroll unit
// follows the row height.
func (v *View) SetRowHeight(h int) {
	if h <= 0 {
		v.log.Warn().Int("height", h).Msg("ignoring non-positive row height")
		return
	}
	v.rowHeight = h
	v.scrollUnit = h
}

// RowHeight returns the fixed row height.
func (v *View) RowHeight() int { return v.rowHeight }

// SetColumns configures the column layout and the header height. A zero
// titleHeight hides the header entirely.
func (v *View) SetColumns(cols []Column, titleHeight int) {
	v.columns = append([]Column(nil), cols...)
	v.titleHeight = titleHeight
}

// SetAlwaysVisibleColumn marks one column as not toggleable from the header
// menu. -1 means every column may be hidden.
func (v *View) SetAlwaysVisibleColumn(i int) { v.alwaysVisibleColumn = i }

// SetColumnVisibility replaces the visibility flags. The flag count must
// match the column count; a mismatch is a caller bug and is ignored.
func (v *View) SetColumnVisibility(visible []bool) {
	if len(visible) != len(v.columns) {
		v.log.Warn().
			Int("flags", len(visible)).
			Int("columns", len(v.columns)).
			Msg("column visibility flags do not match column count; ignored")
		return
	}
	for i := range v.columns {
		v.columns[i].Visible = visible[i]
	}
}

// ColumnVisibility returns the current visibility vector.
func (v *View) ColumnVisibility() []bool {
	out := make([]bool, len(v.columns))
	for i, c := range v.columns {
		out[i] = c.Visible
	}
	return out
}

// ToggleColumnVisible flips one column's visibility. Out-of-range indices
// and the always-visible column are ignored.
func (v *View) ToggleColumnVisible(i int) {
	if i < 0 || i >= len(v.columns) {
		v.log.Warn().Int("column", i).Msg("toggle of unknown column ignored")
		return
	}
	if i == v.alwaysVisibleColumn {
		v.log.Warn().Int("column", i).Msg("toggle of always-visible column ignored")
		return
	}
	v.columns[i].Visible = !v.columns[i].Visible
	if v.onColumnVisible != nil {
		v.onColumnVisible(i, v.columns[i].Visible, v.ColumnVisibility())
	}
	v.vp.RequestRepaint()
}

// SetColumnSorters registers one comparator per column and optionally an
// initial sort. sortColumn -1 leaves the view unsorted until a header click.
// A comparator count that does not match the column count disables header
// sorting until fixed; that is a caller bug, reported once here.
func (v *View) SetColumnSorters(sorters []SortFunc, sortColumn int, descending bool) {
	if len(sorters) != 0 && len(sorters) != len(v.columns) {
		v.log.Warn().
			Int("sorters", len(sorters)).
			Int("columns", len(v.columns)).
			Msg("sorter count does not match column count; header sorting disabled")
	}
	v.sorters = sorters
	v.sortOrders = make([]bool, len(sorters))
	if sortColumn != -1 && (sortColumn < 0 || sortColumn >= len(sorters)) {
		v.log.Warn().Int("column", sortColumn).Msg("initial sort column out of range; ignored")
		sortColumn = -1
	}
	v.sortColumn = sortColumn
	v.sortDesc = descending
	if sortColumn != -1 {
		v.sortOrders[sortColumn] = descending
		v.sortRenderItems(sortColumn, descending)
	}
}

// SortState returns the active sort column (-1 if none) and its direction.
func (v *View) SortState() (column int, descending bool) {
	return v.sortColumn, v.sortDesc
}

// SetSearchFunc registers the predicate used to build the render sequence
// while a query is active.
func (v *View) SetSearchFunc(fn SearchFunc) { v.searchFunc = fn }

// SearchText returns the active query, empty when none.
func (v *View) SearchText() string { return v.searchText }

// SetSingleSelect toggles single-selection mode. While enabled, select-all
// and every shift/ctrl range operation is a no-op.
func (v *View) SetSingleSelect(single bool) { v.singleSelect = single }

// KeepSelectionOnBlankClick keeps the current selection when the user
// clicks below the last row.
func (v *View) KeepSelectionOnBlankClick(keep bool) { v.keepSelectionOnBlank = keep }

// SetFrame toggles drawing an outline around the widget.
func (v *View) SetFrame(enabled bool, f Fill) {
	v.drawFrame = enabled
	v.frameFill = f
}

// SetScrollbarMetrics configures scrollbar geometry: the idle and drag
// widths of the thumb, the minimum thumb height, and the right padding.
func (v *View) SetScrollbarMetrics(width, dragWidth, minHeight, padding int) {
	v.scrollbarWidth = width
	v.scrollbarDragWidth = dragWidth
	v.scrollbarMinHeight = minHeight
	v.scrollbarPadding = padding
}

// SetTitlePadding configures header text/arrow padding.
func (v *View) SetTitlePadding(text, arrow int) {
	v.titlePadding = text
	v.titleArrowPadding = arrow
}

// OnHoverChanged installs the hover notification hook.
func (v *View) OnHoverChanged(fn HoverFunc) { v.onHoverChanged = fn }

// OnItemPressed installs the row press hook.
func (v *View) OnItemPressed(fn PressFunc) { v.onItemPressed = fn }

// OnItemReleased installs the row release hook.
func (v *View) OnItemReleased(fn PressFunc) { v.onItemReleased = fn }

// OnRightClick installs the row right-click hook.
func (v *View) OnRightClick(fn RightClickFunc) { v.onRightClick = fn }

// OnSortChanged installs the sort change hook.
func (v *View) OnSortChanged(fn SortChangedFunc) { v.onSortChanged = fn }

// OnColumnVisibleChanged installs the column toggle hook.
func (v *View) OnColumnVisibleChanged(fn ColumnVisibleFunc) { v.onColumnVisible = fn }

// OnHeaderRightClick installs the header context-menu hook.
func (v *View) OnHeaderRightClick(fn HeaderMenuFunc) { v.onHeaderRightMenu = fn }

// OnScrollbarShown installs the auto-hide arming hook; Paint calls it when
// the scrollbar becomes visible because the offset changed. The host should
// (re)arm a single fire-once timer and call HideScrollbar when it fires.
func (v *View) OnScrollbarShown(fn func()) { v.armScrollbarHide = fn }

// HideScrollbar ends the scrollbar's visible period.
func (v *View) HideScrollbar() {
	v.mouseAtScrollbar = false
	v.oldRenderOffset = v.renderOffset
	v.vp.RequestRepaint()
}

// renderWidths returns the widths of the columns as painted: hidden columns
// are 0, the auto column absorbs the remaining widget width (never negative).
// With no columns configured the full widget width is a single span so rows
// still paint.
func (v *View) renderWidths() []int {
	w := v.vp.Width()
	if len(v.columns) == 0 {
		return []int{w}
	}
	out := make([]int, len(v.columns))
	fixed := 0
	for _, c := range v.columns {
		if c.Width != WidthAuto && c.Visible {
			fixed += c.Width
		}
	}
	for i, c := range v.columns {
		switch {
		case !c.Visible:
			out[i] = 0
		case c.Width == WidthAuto:
			out[i] = max(0, w-fixed)
		default:
			out[i] = c.Width
		}
	}
	return out
}

// columnAt returns the column index under x by scanning the painted widths
// left to right, plus the column's left edge. Returns len(columns) when x is
// right of the last column.
func (v *View) columnAt(x int, widths []int) (col, left int) {
	for i, w := range widths {
		if w > 0 {
			if x >= left && x < left+w {
				return i, left
			}
			left += w
		}
	}
	return len(widths), left
}
