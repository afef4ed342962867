package tui

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestBackgroundPreference(t *testing.T) {
	cases := []struct {
		name     string
		theme    string
		darkbg   string
		colorfg  string
		wantDark bool
		wantOK   bool
	}{
		{name: "theme dark wins", theme: "dark", darkbg: "false", wantDark: true, wantOK: true},
		{name: "theme light wins", theme: "LIGHT", colorfg: "15;0", wantDark: false, wantOK: true},
		{name: "darkbg bool", darkbg: "true", wantDark: true, wantOK: true},
		{name: "colorfgbg light", colorfg: "0;15", wantDark: false, wantOK: true},
		{name: "colorfgbg dark", colorfg: "15;default;0", wantDark: true, wantOK: true},
		{name: "no signal", wantOK: false},
		{name: "garbage ignored", theme: "sepia", darkbg: "maybe", colorfg: "abc", wantOK: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LISTKIT_TUI_THEME", tc.theme)
			t.Setenv("LISTKIT_TUI_DARKBG", tc.darkbg)
			t.Setenv("COLORFGBG", tc.colorfg)
			dark, ok := backgroundPreference()
			if ok != tc.wantOK || (ok && dark != tc.wantDark) {
				t.Fatalf("backgroundPreference() = (%v, %v), want (%v, %v)", dark, ok, tc.wantDark, tc.wantOK)
			}
		})
	}
}

func TestEnvProfileHint(t *testing.T) {
	cases := []struct {
		name      string
		term      string
		colorterm string
		want      termenv.Profile
	}{
		{name: "truecolor", colorterm: "truecolor", want: termenv.TrueColor},
		{name: "24bit beats term", term: "xterm-256color", colorterm: "24bit", want: termenv.TrueColor},
		{name: "256color", term: "screen-256color", want: termenv.ANSI256},
		{name: "no hint", term: "vt100", want: termenv.Ascii},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TERM", tc.term)
			t.Setenv("COLORTERM", tc.colorterm)
			if got := envProfileHint(); got != tc.want {
				t.Fatalf("envProfileHint() = %v, want %v", got, tc.want)
			}
		})
	}
}
