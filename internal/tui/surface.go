package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"listkit/internal/listview"
)

// cellSurface rasterizes the engine's draw calls onto a terminal cell grid.
// Cells carry their fill so the final render can batch runs of identical
// styling into single styled segments.
type cellSurface struct {
	w, h  int
	runes [][]rune
	fills [][]listview.Fill
}

func newCellSurface(w, h int) *cellSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &cellSurface{w: w, h: h}
	s.runes = make([][]rune, h)
	s.fills = make([][]listview.Fill, h)
	for y := 0; y < h; y++ {
		s.runes[y] = make([]rune, w)
		s.fills[y] = make([]listview.Fill, w)
		for x := 0; x < w; x++ {
			s.runes[y][x] = ' '
		}
	}
	return s
}

func (s *cellSurface) clip(r listview.Rect) listview.Rect {
	return r.Intersect(listview.Rect{W: s.w, H: s.h})
}

// FillRect paints the rect's background, leaving cell runes blank.
func (s *cellSurface) FillRect(r listview.Rect, f listview.Fill) {
	r = s.clip(r)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.runes[y][x] = ' '
			s.fills[y][x] = f
		}
	}
}

// StrokeRect outlines the rect with box-drawing characters.
func (s *cellSurface) StrokeRect(r listview.Rect, f listview.Fill) {
	clipped := s.clip(r)
	if clipped.Empty() {
		return
	}
	set := func(x, y int, ch rune) {
		if x >= clipped.X && x < clipped.X+clipped.W && y >= clipped.Y && y < clipped.Y+clipped.H {
			s.runes[y][x] = ch
			cell := &s.fills[y][x]
			cell.Fg = f.Fg
			cell.Bold = f.Bold
			cell.Faint = f.Faint
		}
	}
	x2, y2 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x2; x++ {
		set(x, r.Y, '─')
		set(x, y2, '─')
	}
	for y := r.Y + 1; y < y2; y++ {
		set(r.X, y, '│')
		set(x2, y, '│')
	}
	set(r.X, r.Y, '┌')
	set(x2, r.Y, '┐')
	set(r.X, y2, '└')
	set(x2, y2, '┘')
}

// Text draws a single run aligned inside the rect, cut to the rect's width.
// Wide runes occupy two cells; the shadow cell renders as empty.
func (s *cellSurface) Text(r listview.Rect, align listview.Align, text string, f listview.Fill) {
	if r.Empty() || text == "" {
		return
	}
	if w := xansi.StringWidth(text); w > r.W {
		text = xansi.Cut(text, 0, r.W)
	}
	tw := xansi.StringWidth(text)

	x := r.X
	switch {
	case align&listview.AlignHCenter != 0:
		x = r.X + (r.W-tw)/2
	case align&listview.AlignRight != 0:
		x = r.X + r.W - tw
	}
	y := r.Y
	switch {
	case align&listview.AlignVCenter != 0:
		y = r.Y + (r.H-1)/2
	case align&listview.AlignBottom != 0:
		y = r.Y + r.H - 1
	}
	if y < 0 || y >= s.h {
		return
	}

	for _, ch := range text {
		cw := xansi.StringWidth(string(ch))
		if cw == 0 {
			continue
		}
		if x >= 0 && x < s.w {
			s.runes[y][x] = ch
			cell := &s.fills[y][x]
			cell.Fg = f.Fg
			cell.Bold = f.Bold
			cell.Faint = f.Faint
			cell.Reverse = f.Reverse
			if f.Bg != "" {
				cell.Bg = f.Bg
			}
		}
		if cw == 2 && x+1 >= 0 && x+1 < s.w {
			s.runes[y][x+1] = 0 // shadow of a wide rune
			s.fills[y][x+1] = s.fills[y][max(0, x)]
		}
		x += cw
	}
}

// Blit copies pre-rendered plain-text lines into the rect, clipped.
func (s *cellSurface) Blit(r listview.Rect, lines []string) {
	for i, line := range lines {
		if i >= r.H {
			break
		}
		s.Text(listview.Rect{X: r.X, Y: r.Y + i, W: r.W, H: 1}, listview.AlignLeft, line, listview.Fill{})
	}
}

// Render flattens the grid into styled terminal lines, batching runs of
// cells that share a fill so the output stays compact.
func (s *cellSurface) Render() string {
	var b strings.Builder
	for y := 0; y < s.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var runFill listview.Fill
		started := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(fillStyle(runFill).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < s.w; x++ {
			ch := s.runes[y][x]
			if ch == 0 {
				continue // covered by a wide rune
			}
			f := s.fills[y][x]
			if !started || f != runFill {
				flush()
				runFill = f
				started = true
			}
			run.WriteRune(ch)
		}
		flush()
	}
	return b.String()
}

// Line returns one row as plain text, for tests.
func (s *cellSurface) Line(y int) string {
	if y < 0 || y >= s.h {
		return ""
	}
	var b strings.Builder
	for _, ch := range s.runes[y] {
		if ch != 0 {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
