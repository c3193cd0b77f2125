package tempo

import (
	"math"
	"strings"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %f, want 5", got)
	}
	if got := Lerp(10, 0, 1); got != 0 {
		t.Errorf("Lerp(10, 0, 1) = %f, want 0", got)
	}
	if got := Lerp(-5, 5, 0.25); got != -2.5 {
		t.Errorf("Lerp(-5, 5, 0.25) = %f, want -2.5", got)
	}
}

func TestLerpVec2(t *testing.T) {
	got := LerpVec2(Vec2{0, 10}, Vec2{10, 20}, 0.5)
	if got != (Vec2{5, 15}) {
		t.Errorf("LerpVec2 = %+v, want {5 15}", got)
	}
}

func TestLerpColor(t *testing.T) {
	got := LerpColor(Color{R: 1, A: 1}, Color{B: 1, A: 0}, 0.5)
	want := Color{R: 0.5, B: 0.5, A: 0.5}
	if got != want {
		t.Errorf("LerpColor = %+v, want %+v", got, want)
	}
}

func TestTweenTableHasWasabiNames(t *testing.T) {
	for _, name := range []string{
		"linear", "accelerate", "decelerate", "accel_decel",
		"in_elastic", "out_elastic", "in_out_elastic",
		"bounce_end", "bounce_start", "bounce_start_end",
	} {
		if _, ok := tweenFuncs[name]; !ok {
			t.Errorf("tween %q is not registered", name)
		}
	}
}

func TestTweenNamesSorted(t *testing.T) {
	names := TweenNames()
	if len(names) != len(tweenFuncs) {
		t.Fatalf("len = %d, want %d", len(names), len(tweenFuncs))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestRegisterTween(t *testing.T) {
	RegisterTween("hold", func(tt, b, c, d float32) float32 { return b })
	defer delete(tweenFuncs, "hold")

	fn := tweenFunc("hold")
	if got := applyTween(fn, 0.7); got != 0 {
		t.Errorf("hold tween = %f, want 0", got)
	}
}

func TestUnknownTweenPanicListsNames(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("unknown tween did not panic")
		}
		err, ok := r.(usageError)
		if !ok {
			t.Fatalf("panic value = %T, want usageError", r)
		}
		if !strings.Contains(err.Error(), "linear") {
			t.Errorf("panic message %q does not list known tweens", err.Error())
		}
	}()
	tweenFunc("wobble")
}

func TestApplyTweenLinear(t *testing.T) {
	for _, frac := range []float64{0, 0.25, 0.5, 1} {
		if got := applyTween(ease.Linear, frac); math.Abs(got-frac) > 1e-6 {
			t.Errorf("linear(%f) = %f, want %f", frac, got, frac)
		}
	}
}

func TestApplyTweenClampsOvershoot(t *testing.T) {
	if got := applyTween(ease.Linear, 1.7); got != 1 {
		t.Errorf("linear(1.7) = %f, want clamped to 1", got)
	}
}

func TestApplyTweenEndpoints(t *testing.T) {
	// Every registered tween must map 0 to ~0 and 1 to ~1.
	for name, fn := range tweenFuncs {
		if got := applyTween(fn, 0); math.Abs(got) > 1e-3 {
			t.Errorf("%s(0) = %f, want ~0", name, got)
		}
		if got := applyTween(fn, 1); math.Abs(got-1) > 1e-3 {
			t.Errorf("%s(1) = %f, want ~1", name, got)
		}
	}
}
