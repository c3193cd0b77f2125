package tempo

import (
	"container/heap"
	"fmt"
	"os"
)

// event is a pending scheduled firing, owned by the clock's heap.
type event struct {
	time   float64 // absolute clock time at which to fire
	cb     Callback
	repeat float64 // repeat interval; 0 means one-shot
}

// eventHeap is a binary min-heap keyed by scheduled time. Ordering among
// events with equal times is unspecified; callers must not depend on the
// relative firing order of simultaneous events.
type eventHeap []event

func (h eventHeap) Len() int           { return len(h) }
func (h eventHeap) Less(i, j int) bool { return h[i].time < h[j].time }
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(event)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Clock is a frame-driven event scheduler. Time advances only when [Clock.Tick]
// is called with an externally measured delta, which makes clocks pausable
// (skip the call) and scalable (scale dt before passing it in).
//
// Independent clocks are fully isolated: a game might drive one clock in real
// time for UI and a second, pausable clock for gameplay, ticking each at its
// own rate.
//
// A Clock is not safe for concurrent use. Drive it, and call its scheduling
// methods, from a single goroutine — typically the game's Update loop.
type Clock struct {
	// OnFault is invoked when a scheduled callback panics. The faulting
	// registration has already been removed when OnFault runs. If nil,
	// faults are reported on stderr.
	OnFault func(err error)

	t        float64
	events   eventHeap
	eachTick []Callback
	nextTick []TickFunc
	fired    bool
}

// NewClock creates a clock with its time cursor at zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the clock's current time in seconds. It only moves forward,
// and only inside Tick.
func (c *Clock) Now() float64 {
	return c.t
}

// Fired reports whether any callback ran during the most recent Tick.
func (c *Clock) Fired() bool {
	return c.fired
}

// Schedule registers cb to fire once, delay seconds from now.
func (c *Clock) Schedule(cb Callback, delay float64) {
	heap.Push(&c.events, event{time: c.t + delay, cb: cb})
}

// ScheduleInterval registers cb to fire every interval seconds, first firing
// interval seconds from now.
//
// Each occurrence is scheduled relative to the time of the previous firing,
// not the originally requested time: if ticks consistently overshoot, the
// series drifts late rather than bunching up to catch up.
func (c *Clock) ScheduleInterval(cb Callback, interval float64) {
	heap.Push(&c.events, event{time: c.t + interval, cb: cb, repeat: interval})
}

// ScheduleUnique schedules cb to fire once, delay seconds from now,
// first removing any pending occurrence with the same identity. At most one
// instance of cb is pending afterward, timed from this call.
func (c *Clock) ScheduleUnique(cb Callback, delay float64) {
	c.Unschedule(cb)
	c.Schedule(cb, delay)
}

// Unschedule removes every pending event and every per-tick subscription
// whose identity matches cb (see [Callback.Equal]). Expired weak entries
// encountered along the way are purged as well.
func (c *Clock) Unschedule(cb Callback) {
	// Fresh slices, not in-place filtering: Unschedule is commonly called
	// from inside a callback while Tick is iterating the old storage.
	kept := make(eventHeap, 0, len(c.events))
	for _, ev := range c.events {
		if ev.cb.key == cb.key || ev.cb.expired() {
			continue
		}
		kept = append(kept, ev)
	}
	c.events = kept
	heap.Init(&c.events)

	subs := make([]Callback, 0, len(c.eachTick))
	for _, s := range c.eachTick {
		if s.key == cb.key || s.expired() {
			continue
		}
		subs = append(subs, s)
	}
	c.eachTick = subs
}

// CallSoon registers fn to be called exactly once, on the very next Tick,
// with that tick's dt. Next-tick callbacks are always strongly held and fire
// ahead of the persistent EachTick subscriptions.
func (c *Clock) CallSoon(fn TickFunc) {
	c.nextTick = append(c.nextTick, fn)
}

// EachTick registers cb to be called on every Tick with the elapsed dt.
// The subscription persists until unscheduled, its weak owner expires, or
// the callback panics.
func (c *Clock) EachTick(cb Callback) {
	c.eachTick = append(c.eachTick, cb)
}

// Clear removes all pending events and per-tick subscriptions.
func (c *Clock) Clear() {
	c.events = nil
	c.eachTick = nil
}

// Tick advances the clock by dt seconds and fires all due work: next-tick
// callbacks first, then each-tick subscriptions (both in registration order),
// then heap events in non-decreasing scheduled-time order.
//
// Tick never panics because of a callback failure. A panicking callback is
// reported through OnFault and its registration is permanently removed —
// for repeating events this cancels the whole series. The removal is
// deliberate even when the failure might have been transient: a callback
// that panicked once is not retried.
func (c *Clock) Tick(dt float64) {
	c.fired = false
	c.t += dt
	c.fireEachTick(dt)

	for len(c.events) > 0 && c.events[0].time <= c.t {
		ev := heap.Pop(&c.events).(event)
		fn := ev.cb.deref()
		if fn == nil {
			continue // expired weak target: drop without firing
		}
		if ev.repeat > 0 {
			// Reschedule before invoking so a panic can cancel the
			// fresh occurrence via Unschedule below.
			heap.Push(&c.events, event{time: c.t + ev.repeat, cb: ev.cb, repeat: ev.repeat})
		}
		c.fired = true
		if err := c.invoke(fn, dt); err != nil {
			c.fault(err)
			c.Unschedule(ev.cb)
		}
	}
}

// fireEachTick runs the one-shot next-tick queue followed by the persistent
// subscriptions, then drops subscriptions that expired or panicked.
func (c *Clock) fireEachTick(dt float64) {
	soon := c.nextTick
	c.nextTick = nil
	for _, fn := range soon {
		c.fired = true
		if err := c.invoke(fn, dt); err != nil {
			c.fault(err)
		}
	}

	var dead map[callbackKey]bool
	for _, cb := range c.eachTick {
		fn := cb.deref()
		if fn == nil {
			if dead == nil {
				dead = make(map[callbackKey]bool)
			}
			dead[cb.key] = true
			continue
		}
		c.fired = true
		if err := c.invoke(fn, dt); err != nil {
			c.fault(err)
			if dead == nil {
				dead = make(map[callbackKey]bool)
			}
			dead[cb.key] = true
		}
	}
	if dead == nil {
		return
	}
	// Filter the live slice, not the iteration snapshot: a callback may have
	// unscheduled entries or registered new ones during the pass.
	subs := c.eachTick[:0]
	for _, s := range c.eachTick {
		if dead[s.key] {
			continue
		}
		subs = append(subs, s)
	}
	c.eachTick = subs
}

// invoke calls fn, converting a panic into an error.
func (c *Clock) invoke(fn TickFunc, dt float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("callback fault: %w", e)
			} else {
				err = fmt.Errorf("callback fault: %v", r)
			}
		}
	}()
	fn(dt)
	return nil
}

func (c *Clock) fault(err error) {
	if c.OnFault != nil {
		c.OnFault(err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tempo] %v\n", err)
}
