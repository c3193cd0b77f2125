package tempo

import (
	"reflect"
	"weak"
)

// TickFunc is the callback signature used throughout the scheduler. Per-tick
// subscriptions receive the elapsed time passed to [Clock.Tick]; scheduled
// events receive the dt of the tick in which they fire.
type TickFunc func(dt float64)

// Callback is an ownership-tagged handle to a [TickFunc]. A strong callback
// keeps its target alive for as long as it is scheduled; a weak callback does
// not, and is silently dropped once its owner has been garbage collected.
//
// Weak is the right default for object-bound behavior: with strong references
// it is very easy to leak an object that is perpetually updated even though
// nothing else refers to it. Use [Strong] only when the clock itself should
// own the target (fire-and-forget timers, task resumptions).
//
// The zero Callback is invalid and is dropped like an expired weak reference
// if scheduled.
type Callback struct {
	fn   TickFunc        // strong target; nil for weak callbacks
	bind func() TickFunc // weak rebind; returns nil once the owner is gone
	key  callbackKey
}

// callbackKey is the identity used by Unschedule and ScheduleUnique.
// Comparable: weak callbacks match by (owner, method code), strong callbacks
// by a unique serial assigned at construction.
type callbackKey struct {
	owner  any     // weak.Pointer[T] for weak callbacks, nil otherwise
	code   uintptr // method code pointer for weak callbacks
	serial uint64
}

// callbackSerial is a plain counter (no atomic — tempo is single-threaded,
// like the rest of the phanxgames stack).
var callbackSerial uint64

// Strong creates a callback that owns fn. Identity is per-handle: to
// unschedule it later, keep the returned Callback and pass the same value.
func Strong(fn TickFunc) Callback {
	callbackSerial++
	return Callback{fn: fn, key: callbackKey{serial: callbackSerial}}
}

// Weak creates a callback bound weakly to owner. The owner and the method are
// referenced separately and re-bound at invocation time, so retention follows
// the owner's lifetime: once nothing else references the owner, the callback
// expires and is removed from any clock it was scheduled on, without error.
//
// Identity is (owner, method): Weak(o, m) constructed twice compares equal,
// so Unschedule works with a freshly built handle.
//
// Plain funcs and closures cannot be weakly referenced in Go; use [Strong]
// for those.
func Weak[T any](owner *T, method func(owner *T, dt float64)) Callback {
	wp := weak.Make(owner)
	return Callback{
		bind: func() TickFunc {
			o := wp.Value()
			if o == nil {
				return nil
			}
			return func(dt float64) { method(o, dt) }
		},
		key: callbackKey{owner: wp, code: reflect.ValueOf(method).Pointer()},
	}
}

// Equal reports whether two callbacks share an identity for the purposes of
// [Clock.Unschedule] and [Clock.ScheduleUnique].
func (cb Callback) Equal(other Callback) bool {
	return cb.key == other.key
}

// deref returns the live target, or nil if the callback has expired
// (or is the zero Callback).
func (cb Callback) deref() TickFunc {
	if cb.fn != nil {
		return cb.fn
	}
	if cb.bind != nil {
		return cb.bind()
	}
	return nil
}

// expired reports whether a weak callback's owner has been collected.
// Strong callbacks never expire; the zero Callback is always expired.
func (cb Callback) expired() bool {
	if cb.fn != nil {
		return false
	}
	if cb.bind != nil {
		return cb.bind() == nil
	}
	return true
}
