package maybe

import (
	"strconv"
	"testing"
)

func TestJustGet(t *testing.T) {
	v, ok := Just(7).Get()
	if !ok || v != 7 {
		t.Errorf("expected Just(7) to unwrap to 7, got %d (ok=%v)", v, ok)
	}
}

func TestNothingGet(t *testing.T) {
	v, ok := Nothing[int]().Get()
	if ok || v != 0 {
		t.Errorf("expected Nothing to unwrap to zero value, got %d (ok=%v)", v, ok)
	}
	if !Nothing[int]().IsNothing() {
		t.Error("expected IsNothing to hold for Nothing")
	}
}

func TestZeroValueIsNothing(t *testing.T) {
	var m Maybe[string]
	if !m.IsNothing() {
		t.Error("expected the zero value of Maybe to be Nothing")
	}
}

func TestWithDefault(t *testing.T) {
	if n := Nothing[int]().WithDefault(42); n != 42 {
		t.Errorf("expected default 42, got %d", n)
	}
	if n := Just(1).WithDefault(42); n != 1 {
		t.Errorf("expected wrapped 1, got %d", n)
	}
}

func TestMapMethod(t *testing.T) {
	double := func(n int) int { return 2 * n }
	if v := Just(3).Map(double).WithDefault(-1); v != 6 {
		t.Errorf("expected mapped value 6, got %d", v)
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing to survive Map")
	}
}

func TestAndThen(t *testing.T) {
	parse := func(s string) Maybe[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Nothing[int]()
		}
		return Just(n)
	}
	if v := AndThen(parse, Just("17")).WithDefault(-1); v != 17 {
		t.Errorf("expected 17, got %d", v)
	}
	if !AndThen(parse, Just("x")).IsNothing() {
		t.Error("expected failed chain to be Nothing")
	}
}

func TestMapFunc(t *testing.T) {
	itoa := Map(strconv.Itoa, Just(5))
	if s := itoa.WithDefault("?"); s != "5" {
		t.Errorf("expected \"5\", got %q", s)
	}
}
