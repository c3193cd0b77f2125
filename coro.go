package tempo

import "iter"

// Sleep suspends the task for the given number of clock seconds and returns
// the requested duration. The value is the duration asked for, not a
// separately measured one — the resumption fires on the first tick at or
// past the deadline.
func (co *Coro) Sleep(seconds float64) float64 {
	co.await(newFuture(waitDelay, seconds))
	return seconds
}

// NextFrame suspends the task until the next tick and returns the clock time
// that elapsed across the suspension. This may exceed one nominal frame if
// the tick's dt was large.
func (co *Coro) NextFrame() float64 {
	start := co.clock.t
	co.await(newFuture(waitTick, 0))
	return co.clock.t - start
}

// FrameLimit bounds a [Coro.Frames] loop. Set Seconds or Frames, not both;
// the zero value means unbounded.
type FrameLimit struct {
	// Seconds stops the loop once the cumulative elapsed time reaches this
	// many seconds. The overshooting value is still yielded, so a polling
	// loop is guaranteed to observe one value at or past the limit and
	// needs no separate completion check.
	Seconds float64

	// Frames stops the loop after exactly this many frames.
	Frames int
}

// Frames suspends once per frame and yields the cumulative elapsed clock
// time after each suspension:
//
//	for elapsed := range co.Frames(tempo.FrameLimit{Seconds: 2}) {
//		bar.Width = fullWidth * elapsed / 2
//	}
//
// The sequence is lazy and restartable: each range loop starts timing afresh
// from the current clock time. Frames panics if the limit sets both bounds.
func (co *Coro) Frames(limit FrameLimit) iter.Seq[float64] {
	if limit.Seconds > 0 && limit.Frames > 0 {
		panic(usageError{"tempo: FrameLimit must set Seconds or Frames, not both"})
	}
	return func(yield func(float64) bool) {
		start := co.clock.t
		for f := 1; ; f++ {
			co.NextFrame()
			now := co.clock.t - start
			if !yield(now) {
				return
			}
			if limit.Seconds > 0 && now >= limit.Seconds {
				return
			}
			if limit.Frames > 0 && f == limit.Frames {
				return
			}
		}
	}
}

// Interpolate yields values blended from from to to over duration seconds,
// one per frame, shaped by the named tween (see [TweenNames]). The final
// value is exactly to, regardless of floating-point accumulation or frame
// overshoot. Methods cannot be generic; the scalar case is wrapped as
// [Coro.Interpolate].
func Interpolate[T any](co *Coro, from, to T, duration float64, tween string, blend BlendFunc[T]) iter.Seq[T] {
	fn := tweenFunc(tween)
	return func(yield func(T) bool) {
		for elapsed := range co.Frames(FrameLimit{Seconds: duration}) {
			if elapsed >= duration {
				yield(to)
				return
			}
			frac := applyTween(fn, elapsed/duration)
			if !yield(blend(from, to, frac)) {
				return
			}
		}
	}
}

// Interpolate yields float64 values between from and to over duration
// seconds, one per frame:
//
//	for x := range co.Interpolate(0, 320, 1.5, "accel_decel") {
//		ship.X = x
//	}
//
// For vector or color values use the package-level [Interpolate] with a
// blend function such as [LerpVec2].
func (co *Coro) Interpolate(from, to, duration float64, tween string) iter.Seq[float64] {
	return Interpolate(co, from, to, duration, tween, Lerp)
}
