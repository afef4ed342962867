package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"listkit/internal/listview"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.w = msg.Width
		m.vp.h = listHeight(msg.Height)
		// Resizing can strand the offset past the new bottom.
		m.view.SetRenderOffset(m.view.RenderOffset())
		m.syncPages()
		return m, nil

	case scrollbarHideMsg:
		if msg.seq == m.hideSeq {
			m.view.HideScrollbar()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

// armScrollbarHide starts the auto-hide countdown when the last operation
// made the scrollbar visible by scrolling.
func (m *appModel) armScrollbarHide() tea.Cmd {
	if !m.view.ScrollbarVisible() {
		return nil
	}
	m.hideSeq++
	seq := m.hideSeq
	return tea.Tick(scrollbarHideDelay*time.Millisecond, func(time.Time) tea.Msg {
		return scrollbarHideMsg{seq: seq}
	})
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays swallow keys first.
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}
	if m.menu.open {
		return m.updateColumnMenuKey(msg)
	}
	if m.searching {
		return m.updateSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.saveViewState()
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.searching = true
		m.search.SetValue(m.view.SearchText())
		m.search.CursorEnd()
		return m, m.search.Focus()

	case "esc":
		if m.view.SearchText() != "" {
			m.view.Search("")
			m.syncPages()
			return m, nil
		}
		m.view.ClearSelections(true)
		return m, nil

	case "c":
		m.menu.open = true
		m.menu.columns = toggleableColumns()
		m.menu.cursor = 0
		return m, nil

	case "[":
		m.pages.PrevPage()
		m.gotoPage()
		m.syncPages()
		return m, m.armScrollbarHide()

	case "]":
		m.pages.NextPage()
		m.gotoPage()
		m.syncPages()
		return m, m.armScrollbarHide()

	case "x", "delete":
		// Drop the selected rows from this session's view.
		for _, it := range m.view.Selections() {
			m.view.RemoveItem(it)
		}
		m.syncPages()
		return m, nil
	}

	if key, mods, ok := navKey(msg.String()); ok {
		m.view.KeyPress(key, mods)
		m.syncPages()
		return m, m.armScrollbarHide()
	}
	return m, nil
}

// navKey maps a bubbletea key string onto the engine's navigation keys.
func navKey(s string) (listview.Key, listview.Modifiers, bool) {
	var mods listview.Modifiers
	switch {
	case len(s) > 6 && s[:6] == "shift+":
		mods, s = listview.ModShift, s[6:]
	case len(s) > 5 && s[:5] == "ctrl+":
		mods, s = listview.ModCtrl, s[5:]
	}

	switch s {
	case "up":
		return listview.KeyUp, mods, true
	case "down":
		return listview.KeyDown, mods, true
	case "home":
		return listview.KeyHome, mods, true
	case "end":
		return listview.KeyEnd, mods, true
	case "pgup":
		return listview.KeyPageUp, mods, true
	case "pgdown":
		return listview.KeyPageDown, mods, true
	case "a":
		if mods == listview.ModCtrl {
			return listview.KeySelectAll, mods, true
		}
	}
	return listview.KeyNone, 0, false
}

func (m appModel) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.view.Search("")
		m.syncPages()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.view.SearchText() {
		m.view.Search(q)
		m.syncPages()
	}
	return m, cmd
}

func (m appModel) updateColumnMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "c", "enter":
		m.menu.open = false
	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case "down", "j":
		if m.menu.cursor < len(m.menu.columns)-1 {
			m.menu.cursor++
		}
	case " ", "space":
		if m.menu.cursor < len(m.menu.columns) {
			m.view.ToggleColumnVisible(m.menu.columns[m.menu.cursor])
		}
	}
	return m, nil
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.menu.open {
		return m, nil
	}

	p := listview.Point{X: msg.X, Y: msg.Y}
	if msg.Y >= m.vp.h {
		return m, nil // status bar
	}

	var mods listview.Modifiers
	if msg.Shift {
		mods |= listview.ModShift
	}
	if msg.Ctrl {
		mods |= listview.ModCtrl
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.view.Wheel(3)
		m.syncPages()
		return m, m.armScrollbarHide()
	case tea.MouseButtonWheelDown:
		m.view.Wheel(-3)
		m.syncPages()
		return m, m.armScrollbarHide()
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.view.MousePress(p, listview.ButtonLeft, mods)
		case tea.MouseButtonRight:
			m.view.MousePress(p, listview.ButtonRight, mods)
		}
		m.syncPages()
		return m, m.armScrollbarHide()

	case tea.MouseActionRelease:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.view.MouseRelease(p, listview.ButtonLeft)
		case tea.MouseButtonRight:
			m.view.MouseRelease(p, listview.ButtonRight)
		}
		return m, nil

	case tea.MouseActionMotion:
		m.view.MouseMove(p)
		m.syncPages()
		return m, m.armScrollbarHide()
	}
	return m, nil
}

// toggleableColumns lists the columns the user may hide; Name stays.
func toggleableColumns() []int {
	var out []int
	for i := 0; i < columnCount; i++ {
		if i != colName {
			out = append(out, i)
		}
	}
	return out
}

// saveViewState persists sort/columns/search best effort on quit.
func (m *appModel) saveViewState() {
	if m.st == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := m.st.SaveViewState(ctx, m.currentViewState()); err != nil {
		m.log.Warn().Err(err).Msg("could not save view state")
	}
}
