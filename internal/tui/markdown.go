package tui

import (
	"strconv"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width + style. Creating a renderer with
	// WithAutoStyle can trigger terminal capability/background queries that
	// may block on some terminals, so we pick the style ourselves and cache.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func renderMarkdown(md string, width int) string {
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

const helpMarkdown = `# listkit

## Navigation

- **↑ / ↓** move the selection
- **PgUp / PgDn** move by a page, **Home / End** jump to the ends
- **Ctrl+PgUp/PgDn/Home/End** scroll without moving the selection
- **[ / ]** previous / next page

## Selection

- **Click** selects a row, **Ctrl+Click** toggles it
- **Shift+Click** or **Shift+↑/↓** extends the range from the anchor
- **Ctrl+A** selects everything

## Columns

- **Click a header** to sort by that column; click again to flip the order
- **Right-click a header** to show or hide columns

## Search

- **/** starts a search, **Esc** clears it

Press **?** or **Esc** to close this help.
`
