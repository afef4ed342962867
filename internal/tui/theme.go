package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"listkit/internal/listview"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so every color is an adaptive pair and the background detection can be
// forced through the environment when a terminal misreports it.

func ac(light, dark string) string {
	if lipgloss.HasDarkBackground() {
		return dark
	}
	return light
}

// applyColorProfilePreference sets Lip Gloss's color profile. Only NO_COLOR
// can disable colors; termenv.EnvColorProfile also honors CLICOLOR, which is
// meant for piped CLI output and would blank a TUI.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	// Smaller termenv profile values mean more colors. Probing
	// under-reports on some terminals, so an env hint may upgrade the
	// detected profile but never downgrade it.
	profile := termenv.ColorProfile()
	if hint := envProfileHint(); hint < profile {
		profile = hint
	}
	lipgloss.SetColorProfile(profile)
}

// envProfileHint reads the color support TERM/COLORTERM advertise.
func envProfileHint() termenv.Profile {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return termenv.TrueColor
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "256color") {
		return termenv.ANSI256
	}
	return termenv.Ascii
}

// applyThemePreference overrides Lip Gloss's background detection when the
// environment states a preference; otherwise the built-in probe stands.
func applyThemePreference() {
	if dark, ok := backgroundPreference(); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

// backgroundPreference resolves the background darkness from the
// environment, strongest signal first: LISTKIT_TUI_THEME=light|dark, then
// LISTKIT_TUI_DARKBG as a bool, then the COLORFGBG heuristic.
func backgroundPreference() (dark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LISTKIT_TUI_THEME"))) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}

	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("LISTKIT_TUI_DARKBG"))); err == nil {
		return b, true
	}

	// COLORFGBG is usually "fg;bg" (sometimes more segments); the last
	// segment is the background index, with 0-6 counting as dark.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return bg < 7, true
		}
	}
	return false, false
}

// enginePalette builds the list engine's fills for the current background.
func enginePalette() listview.Palette {
	return listview.Palette{
		TitleBar:       listview.Fill{Bg: ac("252", "236"), Fg: ac("235", "252")},
		TitleText:      listview.Fill{Fg: ac("235", "252"), Bold: true},
		TitleSeparator: listview.Fill{Bg: ac("250", "240")},
		ArrowNormal:    listview.Fill{Fg: ac("240", "245")},
		ArrowHover:     listview.Fill{Fg: ac("27", "75")},
		ArrowPress:     listview.Fill{Fg: ac("27", "75"), Bold: true},
		Background:     listview.Fill{Bg: ac("255", "235")},
		SearchEmpty:    listview.Fill{Fg: ac("240", "243"), Faint: true},
		Scrollbar:      listview.Fill{Bg: ac("250", "240")},
		ScrollbarHover: listview.Fill{Bg: ac("245", "245")},
		ScrollbarDrag:  listview.Fill{Bg: ac("27", "62")},
	}
}

// Row fills, used by the item delegates.
func rowFills() (normal, selected, hovered listview.Fill) {
	normal = listview.Fill{Fg: ac("235", "252"), Bg: ac("255", "235")}
	selected = listview.Fill{Fg: ac("235", "255"), Bg: ac("#e9e9e9", "#262626")}
	hovered = listview.Fill{Fg: ac("235", "252"), Bg: ac("254", "237")}
	return normal, selected, hovered
}

func mutedFill() listview.Fill {
	return listview.Fill{Fg: ac("240", "243"), Faint: lipgloss.HasDarkBackground()}
}

// fillStyle maps an engine fill onto a lipgloss style.
func fillStyle(f listview.Fill) lipgloss.Style {
	st := lipgloss.NewStyle()
	if f.Fg != "" {
		st = st.Foreground(lipgloss.Color(f.Fg))
	}
	if f.Bg != "" {
		st = st.Background(lipgloss.Color(f.Bg))
	}
	if f.Bold {
		st = st.Bold(true)
	}
	if f.Faint {
		st = st.Faint(true)
	}
	if f.Reverse {
		st = st.Reverse(true)
	}
	return st
}

func statusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ac("240", "245"))).
		Background(lipgloss.Color(ac("252", "236")))
}
