// Package tempo is a frame-driven clock, event scheduler, and cooperative
// coroutine driver for game loops.
//
// Tempo does not measure time itself. You feed a [Clock] elapsed seconds once
// per frame via [Clock.Tick], and it fires whatever came due: one-shot and
// repeating timers, per-tick subscriptions, and suspended task resumptions.
// Because time only moves when you move it, a clock can be paused (skip the
// call), slowed or accelerated (scale dt), or run alongside an independent
// real-time clock.
//
// # Quick start
//
// Drive a clock from an [ebiten.Game]:
//
//	type Game struct{ clock *tempo.Clock }
//
//	func (g *Game) Update() error {
//		g.clock.Tick(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
// and schedule work on it:
//
//	clock.Schedule(tempo.Strong(func(dt float64) { spawnBoss() }), 30)
//	clock.ScheduleInterval(tempo.Weak(player, (*Player).Regenerate), 1.0)
//
// # Weak callbacks
//
// Callbacks are handles built with [Strong] or [Weak]. Weak callbacks
// reference their owner non-owningly: when nothing else keeps the owner
// alive, the registration evaporates instead of updating a leaked object
// forever. This mirrors how willow nodes stop animating once disposed —
// prefer [Weak] for anything bound to an entity's lifetime.
//
// # Tasks
//
// Multi-frame behavior reads as linear code inside a task. The body runs on
// its own goroutine but in strict lockstep with the clock, so there is no
// parallelism to reason about:
//
//	task := tempo.Start(clock, func(co *tempo.Coro) int {
//		co.Sleep(1.0)
//		for x := range co.Interpolate(0, 320, 1.5, "accel_decel") {
//			ship.X = x
//		}
//		return 42
//	})
//
// [Coro.Sleep], [Coro.NextFrame], [Coro.Frames], and [Coro.Interpolate] are
// the suspension points; each hands control back to whatever called Tick
// until the wait is satisfied. [Task.Cancel] unwinds the body synchronously,
// running its deferred cleanup.
//
// Easing for Interpolate comes from [gween]'s ease package, under the
// wasabi2d tween names ("linear", "accelerate", "bounce_end", ...); register
// your own with [RegisterTween].
//
// Tempo is single-threaded by design: drive a Clock and call its methods
// from one goroutine, typically the game's update loop.
//
// [gween]: https://github.com/tanema/gween
package tempo
