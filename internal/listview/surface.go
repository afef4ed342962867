package listview

// Collaborator contracts. The engine computes geometry and issues primitive
// draw calls; it has no knowledge of how (or where) they are rasterized. The
// same engine can therefore paint to a terminal cell grid, an image, or a
// recording surface in tests.

// Rect is an axis-aligned rectangle in surface units (cells or pixels).
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the overlap of r and o (possibly empty).
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Point is a position in surface units.
type Point struct {
	X, Y int
}

// Align positions a text run inside its rect.
type Align int

const (
	AlignLeft Align = 1 << iota
	AlignRight
	AlignHCenter
	AlignTop
	AlignBottom
	AlignVCenter

	AlignCenter = AlignHCenter | AlignVCenter
)

// Fill describes how a primitive is painted. Colors are in the host theme's
// vocabulary (ANSI index or hex string); empty means "inherit". Terminal
// surfaces map Faint onto what a pixel surface would express as opacity.
type Fill struct {
	Fg, Bg  string
	Bold    bool
	Faint   bool
	Reverse bool
}

// Surface accepts the engine's draw calls. Rects are pre-clipped by the
// engine; surfaces must additionally clip to their own bounds so that a
// stale geometry can never paint outside the widget.
type Surface interface {
	// FillRect paints the rect with the fill's background.
	FillRect(r Rect, f Fill)
	// StrokeRect outlines the rect.
	StrokeRect(r Rect, f Fill)
	// Text draws a single run aligned inside the rect, cut to fit.
	Text(r Rect, align Align, s string, f Fill)
	// Blit copies pre-rendered lines into the rect, clipped.
	Blit(r Rect, lines []string)
}

// Viewport is the host window the engine paints into. Width and Height are
// polled, never cached across operations; RequestRepaint must be cheap and
// idempotent because the engine calls it after every visible-state change.
type Viewport interface {
	Width() int
	Height() int
	RequestRepaint()
}

// ViewportFunc adapts plain functions to Viewport; handy in hosts and tests.
type ViewportFunc struct {
	WidthFunc   func() int
	HeightFunc  func() int
	RepaintFunc func()
}

func (v ViewportFunc) Width() int  { return v.WidthFunc() }
func (v ViewportFunc) Height() int { return v.HeightFunc() }
func (v ViewportFunc) RequestRepaint() {
	if v.RepaintFunc != nil {
		v.RepaintFunc()
	}
}
