package svgicon

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/svgicon/cssom"
	"github.com/npillmayer/svgicon/iconcache"
	"github.com/npillmayer/svgicon/maybe"
	"github.com/stretchr/testify/assert"
)

func TestParseMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon")
	defer teardown()
	//
	for _, tc := range []struct {
		value, name, color string
		hasColor           bool
	}{
		{"svgicon(star, red)", "star", "red", true},
		{"svgicon(star)", "star", "", false},
		{"svgicon(star,red)", "star", "red", true},
		{"svgicon(star,  red)", "star", " red", true},
		{"svgicon(star, )", "star", "", false},
		{"svgicon(star, red, large)", "star", "red", true},
		{"svgicon( star)", "star", "", false},
		{"svgicon(star, #c00) no-repeat", "star", "#c00", true},
	} {
		name, color, err := ParseMarker(tc.value)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.value, err)
			continue
		}
		if name != tc.name {
			t.Errorf("%q: expected name %q, is %q", tc.value, tc.name, name)
		}
		c, ok := color.Get()
		if ok != tc.hasColor || c != tc.color {
			t.Errorf("%q: expected color %q (%v), is %v", tc.value, tc.color, tc.hasColor, color)
		}
	}
}

func TestParseMarkerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon")
	defer teardown()
	//
	for _, value := range []string{"svgicon", "svgicon()", "svgicon(, red)", "svgicon(star", "svgicon(star,\nred)"} {
		if _, _, err := ParseMarker(value); err == nil {
			t.Errorf("expected %q to be rejected", value)
		}
	}
}

func TestMediaContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon")
	defer teardown()
	//
	decl := cssom.NewDeclaration("background", "svgicon(star)", false)
	plain := cssom.NewDeclaration("background", "svgicon(star)", false)
	cssom.NewStyleSheet().Append(
		cssom.NewRule(".a").Append(plain),
		cssom.NewAtRule("media", "screen").Append(
			cssom.NewAtRule("supports", "(display: grid)").Append(
				cssom.NewAtRule("media", "(min-width: 10px)").Append(
					cssom.NewRule(".b").Append(decl)))),
	)
	assert.Equal(t, iconcache.NoMedia, MediaContext(plain))
	assert.Equal(t, iconcache.InMedia("screen"), MediaContext(decl))
}

func TestRequestOutsideOfRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon")
	defer teardown()
	//
	decl := cssom.NewDeclaration("src", "svgicon(star)", false)
	cssom.NewStyleSheet().Append(cssom.NewAtRule("font-face", "").Append(decl))
	_, err := requestFrom(decl)
	var merr *MalformedMarkerError
	if !errors.As(err, &merr) {
		t.Fatalf("expected malformed marker error, got %v", err)
	}
	assert.Equal(t, "not inside a style rule", merr.Reason)
}

func TestColorWarning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon")
	defer teardown()
	//
	for _, c := range []string{"red", "#c00", "rgb(1,2,3)", "transparent"} {
		req := Request{Name: "star", Color: maybe.Just(c)}
		if w := colorWarning(req, ".a"); w != "" {
			t.Errorf("expected %q to be accepted, warning is %q", c, w)
		}
	}
	if w := colorWarning(Request{Name: "star", Color: maybe.Nothing[string]()}, ".a"); w != "" {
		t.Errorf("expected no warning without a color, is %q", w)
	}
	w := colorWarning(Request{Name: "star", Color: maybe.Just("reddish")}, ".a")
	assert.Contains(t, w, `"reddish"`)
	assert.Contains(t, w, `".a"`)
}
