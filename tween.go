package tempo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// BlendFunc blends between two values of the same shape given a fraction in
// [0, 1]. Blend functions are consumed by the package-level [Interpolate].
type BlendFunc[T any] func(from, to T, frac float64) T

// Lerp linearly interpolates between two scalars.
func Lerp(from, to, frac float64) float64 {
	return from + (to-from)*frac
}

// Vec2 is a 2D vector used for positions, offsets, and directions.
type Vec2 struct {
	X, Y float64
}

// LerpVec2 linearly interpolates both components of a Vec2.
func LerpVec2(from, to Vec2, frac float64) Vec2 {
	return Vec2{
		X: Lerp(from.X, to.X, frac),
		Y: Lerp(from.Y, to.Y, frac),
	}
}

// Color represents an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// LerpColor linearly interpolates all four components of a Color.
func LerpColor(from, to Color, frac float64) Color {
	return Color{
		R: Lerp(from.R, to.R, frac),
		G: Lerp(from.G, to.G, frac),
		B: Lerp(from.B, to.B, frac),
		A: Lerp(from.A, to.A, frac),
	}
}

// tweenFuncs maps tween names to [gween] easing functions. The names match
// the wasabi2d/pgzero animate() vocabulary so assets and tutorials port over
// directly.
//
// [gween]: https://github.com/tanema/gween
var tweenFuncs = map[string]ease.TweenFunc{
	"linear":           ease.Linear,
	"accelerate":       ease.InQuad,
	"decelerate":       ease.OutQuad,
	"accel_decel":      ease.InOutQuad,
	"in_elastic":       ease.InElastic,
	"out_elastic":      ease.OutElastic,
	"in_out_elastic":   ease.InOutElastic,
	"bounce_end":       ease.OutBounce,
	"bounce_start":     ease.InBounce,
	"bounce_start_end": ease.InOutBounce,
}

// RegisterTween adds (or replaces) a named easing function for use with
// Interpolate. Like the rest of the package this table is not synchronized;
// register tweens during setup.
func RegisterTween(name string, fn ease.TweenFunc) {
	tweenFuncs[name] = fn
}

// TweenNames returns the registered tween names in sorted order.
func TweenNames() []string {
	names := make([]string, 0, len(tweenFuncs))
	for name := range tweenFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tweenFunc looks up a named easing function, panicking with the known names
// on a miss: an unknown tween name is a programming error, caught in
// development.
func tweenFunc(name string) ease.TweenFunc {
	fn, ok := tweenFuncs[name]
	if !ok {
		panic(usageError{fmt.Sprintf(
			"tempo: unknown tween %q (known: %s)",
			name, strings.Join(TweenNames(), ", "),
		)})
	}
	return fn
}

// applyTween remaps a linear fraction through an easing function.
// Input past 1 is clamped.
func applyTween(fn ease.TweenFunc, frac float64) float64 {
	if frac > 1 {
		frac = 1
	}
	return float64(fn(float32(frac), 0, 1, 1))
}
