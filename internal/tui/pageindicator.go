package tui

import (
	"strings"

	"github.com/rs/zerolog"
)

// pageIndicator is the dot strip in the status bar showing which viewport
// page of the list is in view.
type pageIndicator struct {
	count   int
	current int
	log     zerolog.Logger
}

func newPageIndicator(log zerolog.Logger) *pageIndicator {
	return &pageIndicator{log: log}
}

// SetPageCount sets the number of pages, clamping the current page if the
// count shrank under it.
func (p *pageIndicator) SetPageCount(n int) {
	if n < 0 {
		n = 0
	}
	p.count = n
	if p.current >= n {
		p.current = max(0, n-1)
	}
}

// SetCurrentPage jumps to page i. Out-of-range indices are ignored with a
// warning rather than clamped, so a stale caller cannot silently move the
// indicator.
func (p *pageIndicator) SetCurrentPage(i int) {
	if i < 0 || i >= p.count {
		p.log.Warn().Int("page", i).Int("count", p.count).Msg("page out of range; ignored")
		return
	}
	p.current = i
}

// NextPage advances one page, wrapping to the first after the last.
func (p *pageIndicator) NextPage() {
	if p.count == 0 {
		return
	}
	p.current = (p.current + 1) % p.count
}

// PrevPage goes back one page, wrapping to the last before the first.
func (p *pageIndicator) PrevPage() {
	if p.count == 0 {
		return
	}
	p.current = (p.current - 1 + p.count) % p.count
}

func (p *pageIndicator) CurrentPage() int { return p.current }
func (p *pageIndicator) PageCount() int   { return p.count }

// Render returns the dot strip, e.g. "· · ● · ·". Empty with 0 or 1 pages.
func (p *pageIndicator) Render() string {
	if p.count <= 1 {
		return ""
	}
	dots := make([]string, p.count)
	for i := range dots {
		if i == p.current {
			dots[i] = "●"
		} else {
			dots[i] = "·"
		}
	}
	return strings.Join(dots, " ")
}
