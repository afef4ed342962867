package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"listkit/internal/listview"
	"listkit/internal/store"
)

const scrollbarHideDelay = 1200 // milliseconds

// viewportSize is the engine's window into the terminal: the full width and
// everything above the status bar.
type viewportSize struct {
	w, h int
}

func (v *viewportSize) Width() int      { return v.w }
func (v *viewportSize) Height() int     { return v.h }
func (v *viewportSize) RequestRepaint() {}

// columnMenu is the header right-click overlay. Held by pointer so the
// engine's header-menu hook can open it from inside an event dispatch.
type columnMenu struct {
	open    bool
	columns []int // toggleable column indices
	cursor  int
}

type scrollbarHideMsg struct{ seq int }

type appModel struct {
	st  *store.Store
	log zerolog.Logger

	vp   *viewportSize
	view *listview.View

	search    textinput.Model
	searching bool

	showHelp bool
	menu     *columnMenu
	pages    *pageIndicator

	// Bumped each time the scrollbar shows due to scrolling; the matching
	// hide message is ignored when stale.
	hideSeq int

	status string
}

func newAppModel(st *store.Store, rows []store.Row, state *store.ViewState, log zerolog.Logger) appModel {
	applyColorProfilePreference()
	applyThemePreference()

	vp := &viewportSize{w: 80, h: 24}
	view := listview.New(vp)
	view.SetLogger(log)
	view.SetColumns(browserColumns(), 1)
	view.SetAlwaysVisibleColumn(colName)
	view.SetColumnSorters(browserSorters(), state.SortColumn, state.SortDescending)
	view.SetSearchFunc(matchRow)
	view.SetPalette(enginePalette())
	view.SetTitlePadding(1, 1)
	view.KeepSelectionOnBlankClick(false)

	items := make([]listview.Item, len(rows))
	for i, r := range rows {
		items[i] = &fileRow{Row: r}
	}
	view.AddItems(items)

	if len(state.ColumnsVisible) == columnCount {
		view.SetColumnVisibility(state.ColumnsVisible)
	}
	if state.Search != "" {
		view.Search(state.Search)
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 128
	ti.SetValue(state.Search)

	menu := &columnMenu{}
	view.OnHeaderRightClick(func(p listview.Point, toggleable []int) {
		menu.open = true
		menu.columns = toggleable
		menu.cursor = 0
	})
	view.OnSortChanged(func(column int, descending bool) {
		log.Debug().Int("column", column).Bool("descending", descending).Msg("sort changed")
	})
	view.OnColumnVisibleChanged(func(column int, visible bool, all []bool) {
		log.Debug().Int("column", column).Bool("visible", visible).Msg("column toggled")
	})

	m := appModel{
		st:     st,
		log:    log,
		vp:     vp,
		view:   view,
		search: ti,
		menu:   menu,
		pages:  newPageIndicator(log),
	}
	m.syncPages()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

// listHeight is the engine viewport height: terminal minus the status bar.
func listHeight(termHeight int) int { return max(0, termHeight-1) }

// syncPages recomputes the page strip from the engine's scroll state.
func (m *appModel) syncPages() {
	pageH := m.vp.Height() - 1 // content area below the header row
	if pageH <= 0 {
		m.pages.SetPageCount(0)
		return
	}
	total := len(m.view.RenderItems()) * m.view.RowHeight()
	count := (total + pageH - 1) / pageH
	m.pages.SetPageCount(count)
	m.pages.SetCurrentPage(min(max(0, count-1), m.view.RenderOffset()/pageH))
}

// gotoPage scrolls so the indicator's current page tops the viewport.
func (m *appModel) gotoPage() {
	pageH := m.vp.Height() - 1
	if pageH <= 0 {
		return
	}
	m.view.SetRenderOffset(m.pages.CurrentPage() * pageH)
}

// currentViewState snapshots the engine state for persistence.
func (m appModel) currentViewState() *store.ViewState {
	col, desc := m.view.SortState()
	return &store.ViewState{
		Version:        1,
		SortColumn:     col,
		SortDescending: desc,
		ColumnsVisible: m.view.ColumnVisibility(),
		Search:         m.view.SearchText(),
	}
}

func (m appModel) View() string {
	w, h := m.vp.w, m.vp.h
	if w <= 0 || h <= 0 {
		return ""
	}

	surface := newCellSurface(w, h)
	m.view.Paint(surface)
	body := surface.Render()

	lines := []string{body, m.statusLine(w)}
	out := strings.Join(lines, "\n")

	switch {
	case m.showHelp:
		help := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MaxWidth(w - 2).
			Render(renderMarkdown(helpMarkdown, min(w-8, 64)))
		return lipgloss.Place(w, h+1, lipgloss.Center, lipgloss.Center, help)
	case m.menu.open:
		return lipgloss.Place(w, h+1, lipgloss.Center, lipgloss.Center, m.renderColumnMenu())
	}
	return out
}

func (m appModel) statusLine(width int) string {
	if m.searching {
		return statusBarStyle().Width(width).Render(m.search.View())
	}

	left := fmt.Sprintf(" %d rows", len(m.view.RenderItems()))
	if n := len(m.view.Selections()); n > 0 {
		left += fmt.Sprintf(", %d selected", n)
	}
	if q := m.view.SearchText(); q != "" {
		left += fmt.Sprintf("  /%s", q)
	}
	right := m.pages.Render() + "  ? help "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle().Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m appModel) renderColumnMenu() string {
	vis := m.view.ColumnVisibility()
	cols := browserColumns()
	var b strings.Builder
	b.WriteString("Columns\n\n")
	for i, ci := range m.menu.columns {
		mark := " "
		if ci < len(vis) && vis[ci] {
			mark = "x"
		}
		cursor := "  "
		if i == m.menu.cursor {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s[%s] %s\n", cursor, mark, cols[ci].Title)
	}
	b.WriteString("\nspace toggle · esc close")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Render(strings.TrimRight(b.String(), "\n"))
}
