package tui

import (
	"fmt"
	"strings"

	"listkit/internal/listview"
	"listkit/internal/store"
)

// Column indices of the browser table.
const (
	colName = iota
	colKind
	colSize
	colModified
	columnCount
)

// fileRow adapts one store row to the list engine. Identity follows the
// database primary key so refreshed snapshots re-match selection.
type fileRow struct {
	store.Row
}

func (r *fileRow) SameAs(other listview.Item) bool {
	o, ok := other.(*fileRow)
	return ok && o.ID == r.ID
}

func (r *fileRow) DrawBackground(rect listview.Rect, s listview.Surface, row int, selected, hovered bool) {
	normal, sel, hov := rowFills()
	fill := normal
	switch {
	case selected:
		fill = sel
	case hovered:
		fill = hov
	}
	s.FillRect(rect, fill)
}

func (r *fileRow) DrawForeground(rect listview.Rect, s listview.Surface, column, row int, selected, hovered bool) {
	normal, sel, _ := rowFills()
	fill := listview.Fill{Fg: normal.Fg}
	if selected {
		fill = listview.Fill{Fg: sel.Fg}
	}

	// One cell of padding at each cell edge.
	cell := listview.Rect{X: rect.X + 1, Y: rect.Y, W: rect.W - 2, H: rect.H}

	switch column {
	case colName:
		s.Text(cell, listview.AlignLeft|listview.AlignVCenter, r.Name, fill)
	case colKind:
		kind := fill
		if !selected {
			kind = mutedFill()
		}
		s.Text(cell, listview.AlignLeft|listview.AlignVCenter, r.Kind, kind)
	case colSize:
		s.Text(cell, listview.AlignRight|listview.AlignVCenter, humanSize(r.Size), fill)
	case colModified:
		s.Text(cell, listview.AlignLeft|listview.AlignVCenter, r.Modified.Format("2006-01-02 15:04"), fill)
	}
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// browserColumns is the fixed column layout. Name flexes; the rest are sized
// for their widest content.
func browserColumns() []listview.Column {
	return []listview.Column{
		{Title: "Name", Width: listview.WidthAuto, Visible: true},
		{Title: "Kind", Width: 12, Visible: true},
		{Title: "Size", Width: 12, Visible: true},
		{Title: "Modified", Width: 18, Visible: true},
	}
}

// browserSorters returns one comparator per column. Ties fall back to the
// row id so every order is total and stable across resorts.
func browserSorters() []listview.SortFunc {
	pick := func(descending, less, greater bool) bool {
		if descending {
			return greater
		}
		return less
	}
	wrap := func(f func(a, b *fileRow, descending bool) bool) listview.SortFunc {
		return func(a, b listview.Item, descending bool) bool {
			return f(a.(*fileRow), b.(*fileRow), descending)
		}
	}
	byID := func(a, b *fileRow, d bool) bool {
		return pick(d, a.ID < b.ID, a.ID > b.ID)
	}
	return []listview.SortFunc{
		colName: wrap(func(a, b *fileRow, d bool) bool {
			if a.Name != b.Name {
				return pick(d, a.Name < b.Name, a.Name > b.Name)
			}
			return byID(a, b, d)
		}),
		colKind: wrap(func(a, b *fileRow, d bool) bool {
			if a.Kind != b.Kind {
				return pick(d, a.Kind < b.Kind, a.Kind > b.Kind)
			}
			return byID(a, b, d)
		}),
		colSize: wrap(func(a, b *fileRow, d bool) bool {
			if a.Size != b.Size {
				return pick(d, a.Size < b.Size, a.Size > b.Size)
			}
			return byID(a, b, d)
		}),
		colModified: wrap(func(a, b *fileRow, d bool) bool {
			if !a.Modified.Equal(b.Modified) {
				return pick(d, a.Modified.Before(b.Modified), a.Modified.After(b.Modified))
			}
			return byID(a, b, d)
		}),
	}
}

// matchRow is the search predicate: case-insensitive substring over name
// and kind.
func matchRow(item listview.Item, query string) bool {
	r, ok := item.(*fileRow)
	if !ok {
		return false
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Kind), q)
}
