package render

import (
	"strings"
	"testing"
)

func TestLookup_UnknownFallsBackToDark(t *testing.T) {
	got := Lookup("no-such-theme")
	if len(got.palette) != len(styles[ThemeDark].palette) {
		t.Errorf("Expected the dark palette, got %d colors", len(got.palette))
	}
}

func TestLookup_KnownThemes(t *testing.T) {
	for _, theme := range []Theme{ThemeDark, ThemeLight, ThemeMono} {
		s := Lookup(theme)
		if s.Header == nil || s.Idle == nil || s.Footer == nil {
			t.Errorf("Theme %q has a nil sprint function", theme)
		}
	}
}

func TestStyleBar_WrapsAndTolerates(t *testing.T) {
	dark := Lookup(ThemeDark)

	for _, id := range []int{0, 1, 7, 100, -3} {
		out := dark.Bar(id)("x")
		if !strings.Contains(out, "x") {
			t.Errorf("Bar(%d) lost its argument: %q", id, out)
		}
	}

	// Mono has no palette; bars degrade to plain text.
	if got := Lookup(ThemeMono).Bar(5)("x"); got != "x" {
		t.Errorf("Expected plain output for mono, got %q", got)
	}
}
