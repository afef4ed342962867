package listview

import (
	"fmt"
	"strings"
	"testing"
)

// rowItem is the test item: identity by ID, painting recorded by the
// surface rather than the item.
type rowItem struct {
	ID   string
	Rank int
}

func (r *rowItem) SameAs(other Item) bool {
	o, ok := other.(*rowItem)
	return ok && o.ID == r.ID
}

func (r *rowItem) DrawBackground(rect Rect, s Surface, row int, selected, hovered bool) {
	s.FillRect(rect, Fill{Bg: "row:" + r.ID})
}

func (r *rowItem) DrawForeground(rect Rect, s Surface, column, row int, selected, hovered bool) {
	s.Text(rect, AlignLeft, r.ID, Fill{})
}

// recordingSurface captures draw calls for assertions.
type recordingSurface struct {
	fills   []string
	texts   []string
	strokes int
}

func (r *recordingSurface) FillRect(rect Rect, f Fill) {
	r.fills = append(r.fills, fmt.Sprintf("%s@%d,%d %dx%d", f.Bg, rect.X, rect.Y, rect.W, rect.H))
}

func (r *recordingSurface) StrokeRect(rect Rect, f Fill) { r.strokes++ }

func (r *recordingSurface) Text(rect Rect, align Align, s string, f Fill) {
	r.texts = append(r.texts, s)
}

func (r *recordingSurface) Blit(rect Rect, lines []string) {}

// newTestView builds a view over a fixed-size viewport with n rows named
// item-0..item-n-1, Rank following insertion order.
func newTestView(t *testing.T, width, height, rowHeight, n int) (*View, []*rowItem) {
	t.Helper()
	v := New(ViewportFunc{
		WidthFunc:  func() int { return width },
		HeightFunc: func() int { return height },
	})
	v.SetRowHeight(rowHeight)
	rows := make([]*rowItem, n)
	items := make([]Item, n)
	for i := range rows {
		rows[i] = &rowItem{ID: fmt.Sprintf("item-%d", i), Rank: i}
		items[i] = rows[i]
	}
	v.AddItems(items)
	return v, rows
}

func renderIDs(v *View) string {
	var ids []string
	for _, it := range v.RenderItems() {
		ids = append(ids, it.(*rowItem).ID)
	}
	return strings.Join(ids, ",")
}

func selectionIDs(v *View) string {
	var ids []string
	for _, it := range v.Selections() {
		ids = append(ids, it.(*rowItem).ID)
	}
	return strings.Join(ids, ",")
}

func rankSorter(a, b Item, descending bool) bool {
	ra, rb := a.(*rowItem).Rank, b.(*rowItem).Rank
	if descending {
		return ra > rb
	}
	return ra < rb
}

func assertOffsetInvariant(t *testing.T, v *View, step string) {
	t.Helper()
	bottom := max(0, len(v.RenderItems())*v.RowHeight()-v.scrollAreaHeight())
	if off := v.RenderOffset(); off < 0 || off > bottom {
		t.Fatalf("%s: render offset %d outside [0,%d]", step, off, bottom)
	}
}

func TestOffsetClampInvariant(t *testing.T) {
	v, rows := newTestView(t, 80, 100, 20, 50)

	steps := []struct {
		name string
		op   func()
	}{
		{"wheel up at top", func() { v.Wheel(3) }},
		{"wheel down", func() { v.Wheel(-5) }},
		{"set huge offset", func() { v.SetRenderOffset(1 << 30) }},
		{"set negative offset", func() { v.SetRenderOffset(-999) }},
		{"ctrl page down", func() { v.CtrlScrollPageDown() }},
		{"ctrl end", func() { v.CtrlScrollToEnd() }},
		{"remove at bottom", func() { v.RemoveItem(rows[49]) }},
		{"ctrl home", func() { v.CtrlScrollToHome() }},
		{"ctrl page up at top", func() { v.CtrlScrollPageUp() }},
	}
	for _, s := range steps {
		s.op()
		assertOffsetInvariant(t, v, s.name)
	}
}

func TestVisibleRange(t *testing.T) {
	cases := []struct {
		name        string
		offset      int
		wantFirst   int
		wantLast    int
		titleHeight int
	}{
		{name: "top", offset: 0, wantFirst: 0, wantLast: 5},
		{name: "mid row boundary", offset: 40, wantFirst: 2, wantLast: 7},
		{name: "partial rows both ends", offset: 30, wantFirst: 1, wantLast: 6},
		{name: "bottom", offset: 900, wantFirst: 45, wantLast: 49},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, _ := newTestView(t, 80, 100, 20, 50)
			v.SetRenderOffset(tc.offset)
			first, last := v.VisibleRange()
			if first != tc.wantFirst || last != tc.wantLast {
				t.Fatalf("visible range = [%d,%d], want [%d,%d]", first, last, tc.wantFirst, tc.wantLast)
			}
		})
	}
}

func TestVisibleRangeEmpty(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 0)
	if first, last := v.VisibleRange(); last != -1 {
		t.Fatalf("expected empty range, got [%d,%d]", first, last)
	}
}

func TestRemoveItemPurgesSelection(t *testing.T) {
	v, rows := newTestView(t, 80, 100, 20, 5)
	v.AddSelections([]Item{rows[1], rows[2], rows[3]}, true)

	v.RemoveItem(rows[2])

	if got := selectionIDs(v); got != "item-1,item-3" {
		t.Fatalf("selection after removal = %q, want %q", got, "item-1,item-3")
	}
	if got := renderIDs(v); strings.Contains(got, "item-2") {
		t.Fatalf("removed item still rendered: %q", got)
	}
	if len(v.Items()) != 4 {
		t.Fatalf("expected 4 items after removal, got %d", len(v.Items()))
	}
}

func TestRemoveAnchorClearsIt(t *testing.T) {
	v, rows := newTestView(t, 80, 100, 20, 5)
	v.AddSelections([]Item{rows[2]}, true)
	v.RemoveItem(rows[2])

	// With a dead anchor, shift range degenerates to single-endpoint select.
	v.ShiftSelectToEnd()
	if got := selectionIDs(v); got != "item-4" {
		t.Fatalf("shift-to-end after anchor removal selected %q, want %q", got, "item-4")
	}
}

func TestSearchRoundTrip(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 6)
	v.SetColumns([]Column{{Title: "Name", Width: WidthAuto, Visible: true}}, 0)
	v.SetSearchFunc(func(it Item, q string) bool {
		return strings.Contains(it.(*rowItem).ID, q)
	})
	v.SetColumnSorters([]SortFunc{func(a, b Item, desc bool) bool { return rankSorter(a, b, !desc) }}, 0, false)

	before := renderIDs(v)
	v.Search("item-3")
	if got := renderIDs(v); got != "item-3" {
		t.Fatalf("search result = %q, want %q", got, "item-3")
	}

	// Clearing the query restores insertion order, not the sorted order.
	v.Search("")
	if got := renderIDs(v); got != "item-0,item-1,item-2,item-3,item-4,item-5" {
		t.Fatalf("render order after clearing search = %q, want insertion order (was %q before)", got, before)
	}
}

func TestSearchWhileScrolledClampsOffset(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 50)
	v.SetSearchFunc(func(it Item, q string) bool {
		return strings.Contains(it.(*rowItem).ID, q)
	})
	v.CtrlScrollToEnd()
	if got := v.RenderOffset(); got != 900 {
		t.Fatalf("offset at bottom = %d, want 900", got)
	}

	// Narrowing to a single match must pull the offset back so the
	// remaining row is actually painted.
	v.Search("item-7")
	if got := renderIDs(v); got != "item-7" {
		t.Fatalf("search result = %q, want %q", got, "item-7")
	}
	assertOffsetInvariant(t, v, "after narrowing search")
	first, last := v.VisibleRange()
	if first != 0 || last != 0 {
		t.Fatalf("visible range = [%d,%d], want [0,0]", first, last)
	}
}

func TestAddItemsFiltersOnlyNewItems(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 3)
	v.SetSearchFunc(func(it Item, q string) bool {
		return strings.Contains(it.(*rowItem).ID, q)
	})
	v.Search("item")

	// One match, one miss: only the match is appended to the render set.
	v.AddItems([]Item{&rowItem{ID: "item-extra"}, &rowItem{ID: "other"}})

	if got := renderIDs(v); got != "item-0,item-1,item-2,item-extra" {
		t.Fatalf("render after incremental add = %q", got)
	}
	if len(v.Items()) != 5 {
		t.Fatalf("all items should include misses, got %d", len(v.Items()))
	}
}

func TestSortToggleIdempotence(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 5)
	v.SetColumns([]Column{{Title: "Name", Width: WidthAuto, Visible: true}}, 10)
	v.SetColumnSorters([]SortFunc{rankSorter}, -1, false)

	before := renderIDs(v)

	// First click starts descending; second flips back.
	v.MousePress(Point{X: 5, Y: 5}, ButtonLeft, 0)
	if got := renderIDs(v); got != "item-4,item-3,item-2,item-1,item-0" {
		t.Fatalf("after first header click = %q", got)
	}
	if _, desc := v.SortState(); !desc {
		t.Fatalf("expected descending after first click")
	}

	v.MousePress(Point{X: 5, Y: 5}, ButtonLeft, 0)
	if got := renderIDs(v); got != before {
		t.Fatalf("after second header click = %q, want pre-sort order %q", got, before)
	}
	if _, desc := v.SortState(); desc {
		t.Fatalf("expected ascending after second click")
	}
}

func TestHeaderClickSwitchColumnResetsOrder(t *testing.T) {
	v, _ := newTestView(t, 100, 100, 20, 3)
	v.SetColumns([]Column{
		{Title: "A", Width: 50, Visible: true},
		{Title: "B", Width: WidthAuto, Visible: true},
	}, 10)
	v.SetColumnSorters([]SortFunc{rankSorter, rankSorter}, -1, false)

	// Activate column 0 and flip it to ascending.
	v.MousePress(Point{X: 5, Y: 5}, ButtonLeft, 0)
	v.MousePress(Point{X: 5, Y: 5}, ButtonLeft, 0)
	if _, desc := v.SortState(); desc {
		t.Fatalf("column 0 should be ascending")
	}

	// Switching to column 1 starts from descending regardless of history.
	v.MousePress(Point{X: 60, Y: 5}, ButtonLeft, 0)
	if col, desc := v.SortState(); col != 1 || !desc {
		t.Fatalf("after switch: column=%d descending=%v, want 1/true", col, desc)
	}
}

func TestShiftClickRange(t *testing.T) {
	v, rows := newTestView(t, 80, 100, 20, 5) // A..E

	// Click B, shift-click D.
	v.MousePress(Point{X: 5, Y: 20}, ButtonLeft, 0)
	v.MousePress(Point{X: 5, Y: 60}, ButtonLeft, ModShift)

	if got := selectionIDs(v); got != "item-1,item-2,item-3" {
		t.Fatalf("shift range selection = %q, want B,C,D", got)
	}

	// The anchor stays at B: extending to E re-pivots around it.
	v.MousePress(Point{X: 5, Y: 80}, ButtonLeft, ModShift)
	if got := selectionIDs(v); got != "item-1,item-2,item-3,item-4" {
		t.Fatalf("second shift range = %q, want B..E", got)
	}
	_ = rows
}

func TestCtrlClickTogglesMembership(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 5)

	v.MousePress(Point{X: 5, Y: 0}, ButtonLeft, 0)
	v.MousePress(Point{X: 5, Y: 40}, ButtonLeft, ModCtrl)
	if got := selectionIDs(v); got != "item-0,item-2" {
		t.Fatalf("ctrl-click add = %q", got)
	}

	v.MousePress(Point{X: 5, Y: 40}, ButtonLeft, ModCtrl)
	if got := selectionIDs(v); got != "item-0" {
		t.Fatalf("ctrl-click remove = %q", got)
	}
}

func TestBlankClickClearsSelection(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 2)
	v.MousePress(Point{X: 5, Y: 0}, ButtonLeft, 0)

	v.MousePress(Point{X: 5, Y: 90}, ButtonLeft, 0) // below last row
	if got := selectionIDs(v); got != "" {
		t.Fatalf("blank click kept selection %q", got)
	}

	v.KeepSelectionOnBlankClick(true)
	v.MousePress(Point{X: 5, Y: 0}, ButtonLeft, 0)
	v.MousePress(Point{X: 5, Y: 90}, ButtonLeft, 0)
	if got := selectionIDs(v); got != "item-0" {
		t.Fatalf("blank click should keep selection, got %q", got)
	}
}

func TestScrollbarJumpScroll(t *testing.T) {
	// 50 rows x 20 = 1000 of content in a 100-high viewport.
	v, _ := newTestView(t, 80, 100, 20, 50)

	// Thumb height: max(100/1000*100, 3) = 10. Clicking the track at
	// y=50 maps to (50 - 10/2 - 0)/100 * 1000 = 450.
	if got := v.scrollbarHeight(); got != 10 {
		t.Fatalf("scrollbar height = %d, want 10", got)
	}
	v.MousePress(Point{X: 79, Y: 50}, ButtonLeft, 0)
	if got := v.RenderOffset(); got != 450 {
		t.Fatalf("jump scroll offset = %d, want 450", got)
	}
}

func TestScrollbarMinHeight(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 100000)
	v.SetScrollbarMetrics(1, 2, 3, 0)
	if got := v.scrollbarHeight(); got != 3 {
		t.Fatalf("scrollbar height = %d, want floor of 3", got)
	}
}

func TestScrollbarDrag(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 50)

	barY := v.scrollbarY()
	v.MousePress(Point{X: 79, Y: barY + 1}, ButtonLeft, 0)
	v.MouseMove(Point{X: 79, Y: 50})
	if got := v.RenderOffset(); got != 450 {
		t.Fatalf("drag offset = %d, want 450", got)
	}

	// Dragging past the ends clamps.
	v.MouseMove(Point{X: 79, Y: 10000})
	if got := v.RenderOffset(); got != 900 {
		t.Fatalf("drag past bottom = %d, want 900", got)
	}
	v.MouseMove(Point{X: 79, Y: -10000})
	if got := v.RenderOffset(); got != 0 {
		t.Fatalf("drag past top = %d, want 0", got)
	}
	v.MouseRelease(Point{X: 79, Y: 0}, ButtonLeft)
}

func TestHitTestPriorityScrollbarOverTitle(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 50)
	v.SetColumns([]Column{{Title: "Name", Width: WidthAuto, Visible: true}}, 10)
	v.SetColumnSorters([]SortFunc{rankSorter}, -1, false)

	// A press in the corner where the scrollbar zone overlaps the header
	// must go to the scrollbar, not start a sort.
	v.MousePress(Point{X: 79, Y: 5}, ButtonLeft, 0)
	if col, _ := v.SortState(); col != -1 {
		t.Fatalf("corner press sorted column %d; scrollbar should win", col)
	}
}

func TestSelectNextOnEmpty(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 0)
	v.SelectNext()
	v.SelectPrev()
	v.SelectFirst()
	v.SelectLast()
	v.SelectAll()
	if got := selectionIDs(v); got != "" {
		t.Fatalf("selection on empty view = %q", got)
	}
}

func TestSelectNextFromNothingSelectsFirst(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 5)
	v.SelectNext()
	if got := selectionIDs(v); got != "item-0" {
		t.Fatalf("selection = %q, want first item", got)
	}
}

func TestSelectNextAutoScrollsMinimally(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 50)
	v.SelectFirst()

	// Walk down to the first row below the fold.
	for i := 0; i < 5; i++ {
		v.SelectNext()
	}
	if got := selectionIDs(v); got != "item-5" {
		t.Fatalf("selection = %q, want item-5", got)
	}
	// Minimum scroll: one row, bringing row 5 to the bottom edge.
	if got := v.RenderOffset(); got != 20 {
		t.Fatalf("offset after walk = %d, want 20", got)
	}

	// Walking back up does not scroll until the selection leaves the top.
	v.SelectPrev()
	if got := v.RenderOffset(); got != 20 {
		t.Fatalf("offset after one up = %d, want 20 (no scroll)", got)
	}
}

func TestSingleSelectDisablesMultiOps(t *testing.T) {
	v, rows := newTestView(t, 80, 100, 20, 5)
	v.SetSingleSelect(true)

	v.SelectAll()
	if got := selectionIDs(v); got != "" {
		t.Fatalf("select-all in single-select mode = %q", got)
	}

	v.AddSelections([]Item{rows[0]}, true)
	v.ShiftSelectToNext()
	v.ShiftSelectToEnd()
	v.ShiftSelectPageDown()
	if got := selectionIDs(v); got != "item-0" {
		t.Fatalf("shift ops in single-select mode changed selection to %q", got)
	}

	// Ctrl-click falls back to plain select.
	v.MousePress(Point{X: 5, Y: 40}, ButtonLeft, ModCtrl)
	if got := selectionIDs(v); got != "item-2" {
		t.Fatalf("ctrl-click in single-select mode = %q", got)
	}
}

func TestRefreshPreservesSelectionBySameAs(t *testing.T) {
	v, rows := newTestView(t, 80, 100, 20, 4)
	v.AddSelections([]Item{rows[1], rows[3]}, true)

	// Fresh instances with overlapping identities.
	replacement := []Item{
		&rowItem{ID: "item-3", Rank: 0},
		&rowItem{ID: "item-1", Rank: 1},
		&rowItem{ID: "item-9", Rank: 2},
	}
	v.RefreshItems(replacement)

	if got := selectionIDs(v); got != "item-3,item-1" {
		t.Fatalf("selection after refresh = %q, want re-matched item-3,item-1", got)
	}

	// The anchor (item-3, the last one selected) survived the refresh:
	// shift-to-end covers anchor..end in the new render order.
	v.ShiftSelectToEnd()
	if got := selectionIDs(v); got != "item-3,item-1,item-9" {
		t.Fatalf("shift after refresh = %q, want anchor..end", got)
	}
}

func TestKeyboardNavigation(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 50)

	v.KeyPress(KeyDown, 0)
	if got := selectionIDs(v); got != "item-0" {
		t.Fatalf("first key-down = %q", got)
	}
	v.KeyPress(KeyDown, 0)
	if got := selectionIDs(v); got != "item-1" {
		t.Fatalf("second key-down = %q", got)
	}
	v.KeyPress(KeyDown, ModShift)
	if got := selectionIDs(v); got != "item-1,item-2" {
		t.Fatalf("shift key-down = %q", got)
	}
	v.KeyPress(KeyEnd, 0)
	if got := selectionIDs(v); got != "item-49" {
		t.Fatalf("end = %q", got)
	}
	if got := v.RenderOffset(); got != 900 {
		t.Fatalf("offset after end = %d, want bottom", got)
	}

	// Ctrl+Home scrolls without touching the selection.
	v.KeyPress(KeyHome, ModCtrl)
	if got := selectionIDs(v); got != "item-49" {
		t.Fatalf("ctrl+home changed selection to %q", got)
	}
	if got := v.RenderOffset(); got != 0 {
		t.Fatalf("offset after ctrl+home = %d", got)
	}

	v.KeyPress(KeySelectAll, ModCtrl)
	if got := len(v.Selections()); got != 50 {
		t.Fatalf("select-all selected %d items", got)
	}
}

func TestAutoColumnWidth(t *testing.T) {
	v, _ := newTestView(t, 100, 100, 20, 1)
	v.SetColumns([]Column{
		{Title: "A", Width: 30, Visible: true},
		{Title: "B", Width: WidthAuto, Visible: true},
		{Title: "C", Width: 20, Visible: true},
	}, 10)

	got := v.renderWidths()
	want := []int{30, 50, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("render widths = %v, want %v", got, want)
		}
	}

	// Hidden columns collapse to zero and return their space to auto.
	v.SetColumnVisibility([]bool{true, true, false})
	got = v.renderWidths()
	if got[1] != 70 || got[2] != 0 {
		t.Fatalf("render widths with hidden column = %v", got)
	}
}

func TestAutoColumnWidthClampsNegative(t *testing.T) {
	v, _ := newTestView(t, 40, 100, 20, 1)
	v.SetColumns([]Column{
		{Title: "A", Width: 60, Visible: true},
		{Title: "B", Width: WidthAuto, Visible: true},
	}, 10)

	got := v.renderWidths()
	if got[1] != 0 {
		t.Fatalf("over-constrained auto column = %d, want 0", got[1])
	}
}

func TestColumnVisibilityMismatchIgnored(t *testing.T) {
	v, _ := newTestView(t, 100, 100, 20, 1)
	v.SetColumns([]Column{
		{Title: "A", Width: 30, Visible: true},
		{Title: "B", Width: WidthAuto, Visible: true},
	}, 10)

	v.SetColumnVisibility([]bool{false}) // wrong arity: ignored
	if vis := v.ColumnVisibility(); !vis[0] || !vis[1] {
		t.Fatalf("mismatched visibility vector was applied: %v", vis)
	}
}

func TestToggleAlwaysVisibleColumnIgnored(t *testing.T) {
	v, _ := newTestView(t, 100, 100, 20, 1)
	v.SetColumns([]Column{
		{Title: "A", Width: 30, Visible: true},
		{Title: "B", Width: WidthAuto, Visible: true},
	}, 10)
	v.SetAlwaysVisibleColumn(0)

	v.ToggleColumnVisible(0)
	v.ToggleColumnVisible(7) // out of range
	if vis := v.ColumnVisibility(); !vis[0] {
		t.Fatalf("always-visible column was hidden")
	}

	v.ToggleColumnVisible(1)
	if vis := v.ColumnVisibility(); vis[1] {
		t.Fatalf("toggleable column was not hidden")
	}
}

func TestRemoveLastItemBacksOffsetUp(t *testing.T) {
	v, rows := newTestView(t, 80, 100, 20, 6) // 120 content, 100 viewport
	v.CtrlScrollToEnd()
	if got := v.RenderOffset(); got != 20 {
		t.Fatalf("offset at bottom = %d, want 20", got)
	}

	v.RemoveItem(rows[5])
	if got := v.RenderOffset(); got != 0 {
		t.Fatalf("offset after bottom removal = %d, want 0", got)
	}
	assertOffsetInvariant(t, v, "after removal")
}

func TestItemPressAndReleaseHooks(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 10)

	var pressed, released []string
	v.OnItemPressed(func(item Item, column int, cell Point) {
		pressed = append(pressed, fmt.Sprintf("%s col=%d cell=%d,%d", item.(*rowItem).ID, column, cell.X, cell.Y))
	})
	v.OnItemReleased(func(item Item, column int, cell Point) {
		released = append(released, item.(*rowItem).ID)
	})

	v.MousePress(Point{X: 5, Y: 45}, ButtonLeft, 0)
	if got, want := strings.Join(pressed, ";"), "item-2 col=0 cell=5,5"; got != want {
		t.Fatalf("press hook = %q, want %q", got, want)
	}
	if got := selectionIDs(v); got != "item-2" {
		t.Fatalf("selection after press = %q, want %q", got, "item-2")
	}

	v.MouseRelease(Point{X: 5, Y: 45}, ButtonLeft)
	if got, want := strings.Join(released, ";"), "item-2"; got != want {
		t.Fatalf("release hook = %q, want %q", got, want)
	}
}

func TestHoverChangedHook(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 10)

	var hovers []string
	v.OnHoverChanged(func(prev, cur Item, column int, cell Point) {
		p := "<nil>"
		if prev != nil {
			p = prev.(*rowItem).ID
		}
		hovers = append(hovers, p+">"+cur.(*rowItem).ID)
	})

	v.MouseMove(Point{X: 10, Y: 25})
	v.MouseMove(Point{X: 10, Y: 45})
	if got, want := strings.Join(hovers, ";"), "<nil>>item-1;item-1>item-2"; got != want {
		t.Fatalf("hover transitions = %q, want %q", got, want)
	}
}

func TestRightClickSelectsAndReportsSelection(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 10)

	var gotSel string
	var gotAt Point
	v.OnRightClick(func(p Point, selection []Item) {
		gotAt = p
		var ids []string
		for _, it := range selection {
			ids = append(ids, it.(*rowItem).ID)
		}
		gotSel = strings.Join(ids, ",")
	})

	v.MousePress(Point{X: 12, Y: 65}, ButtonRight, 0)
	if gotSel != "item-3" {
		t.Fatalf("right-click selection = %q, want %q", gotSel, "item-3")
	}
	if gotAt != (Point{X: 12, Y: 65}) {
		t.Fatalf("right-click point = %+v", gotAt)
	}
	if got := selectionIDs(v); got != "item-3" {
		t.Fatalf("selection after right click = %q, want %q", got, "item-3")
	}
}

func TestRightClickOnSelectedKeepsSelection(t *testing.T) {
	v, rows := newTestView(t, 80, 100, 20, 10)
	v.AddSelections([]Item{rows[1], rows[2]}, true)

	fired := 0
	v.OnRightClick(func(p Point, selection []Item) { fired = len(selection) })

	v.MousePress(Point{X: 12, Y: 25}, ButtonRight, 0)
	if got := selectionIDs(v); got != "item-1,item-2" {
		t.Fatalf("selection = %q, want %q", got, "item-1,item-2")
	}
	if fired != 2 {
		t.Fatalf("right-click reported %d selected, want 2", fired)
	}
}

func TestMouseLeaveClearsHover(t *testing.T) {
	v, _ := newTestView(t, 80, 100, 20, 10)
	v.MouseMove(Point{X: 10, Y: 25})
	v.MouseLeave()

	fired := false
	v.OnHoverChanged(func(prev, cur Item, column int, cell Point) {
		if prev != nil {
			t.Fatalf("prev hover not cleared: %v", prev)
		}
		fired = true
	})
	v.MouseMove(Point{X: 10, Y: 25})
	if !fired {
		t.Fatalf("hover hook did not fire after re-enter")
	}
}

func TestCtrlArrowBehavesAsPlainArrow(t *testing.T) {
	// Only Home/End/PgUp/PgDn have ctrl scroll variants; ctrl with the
	// arrow keys still moves the selection.
	v, _ := newTestView(t, 80, 100, 20, 10)
	v.KeyPress(KeyDown, ModCtrl)
	if got := selectionIDs(v); got != "item-0" {
		t.Fatalf("selection after ctrl+down = %q, want %q", got, "item-0")
	}
	v.KeyPress(KeyDown, ModCtrl)
	v.KeyPress(KeyUp, ModCtrl)
	if got := selectionIDs(v); got != "item-0" {
		t.Fatalf("selection after ctrl round trip = %q, want %q", got, "item-0")
	}
	if off := v.RenderOffset(); off != 0 {
		t.Fatalf("ctrl+arrow scrolled without selection: offset %d", off)
	}
}
