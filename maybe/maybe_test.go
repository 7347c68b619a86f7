package maybe_test

import (
	"testing"

	. "github.com/npillmayer/svgicon/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just("red") // infers type
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%s)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != "red" {
		t.Errorf("expected v to be red, is %#v", v)
	}

	var w string
	nothing := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%s)", w)
	case m.Nothing():
		nothing = true
	}
	if !nothing || w != "" {
		t.Errorf("expected y to match Nothing, w = %#v", w)
	}
}

func TestMaybeGet(t *testing.T) {
	if c, ok := Just("#000").Get(); !ok || c != "#000" {
		t.Errorf("expected Get to return #000, is %q/%v", c, ok)
	}
	if _, ok := Nothing[string]().Get(); ok {
		t.Error("expected Nothing.Get to report no value")
	}
	if Nothing[string]().WithDefault("blue") != "blue" {
		t.Error("expected Nothing to default to blue, isn't")
	}
}

func TestNonZero(t *testing.T) {
	if NonZero("").IsJust() {
		t.Error("expected empty string to be Nothing")
	}
	if !NonZero(" ").IsJust() {
		t.Error("expected a blank to be a value")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Just("red"), Just("red")) {
		t.Error("expected Just(red) == Just(red)")
	}
	if Equal(Just("red"), Just("Red")) {
		t.Error("expected colors to be compared verbatim")
	}
	if Equal(Just(""), Nothing[string]()) {
		t.Error("expected Just(\"\") to differ from Nothing")
	}
	if !Equal(nil, Nothing[string]()) {
		t.Error("expected nil to be treated as Nothing")
	}
}

func TestMaybeMapAndThen(t *testing.T) {
	x := Just(7).Map(func(n int) int { return n * 2 })
	if x.WithDefault(0) != 14 {
		t.Errorf("expected Map to double 7, is %v", x)
	}
	half := func(n int) Maybe[int] {
		if n%2 != 0 {
			return Nothing[int]()
		}
		return Just(n / 2)
	}
	if AndThen(half, Just(7)).IsJust() {
		t.Error("expected AndThen(half, 7) to be Nothing")
	}
	if AndThen(half, x).WithDefault(0) != 7 {
		t.Error("expected AndThen(half, 14) to be 7")
	}
}
