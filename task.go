package tempo

import (
	"errors"
	"fmt"
)

// TaskState describes where a task is in its lifecycle.
type TaskState uint8

const (
	TaskRunning   TaskState = iota // currently executing body code
	TaskSuspended                  // waiting for a scheduled resumption
	TaskDone                       // body returned; result available
	TaskFaulted                    // body panicked; terminal
	TaskCancelled                  // cancelled via Cancel; terminal
)

// ErrCancelled is recorded as a task's error when it is cancelled.
var ErrCancelled = errors.New("tempo: task cancelled")

// taskCancelled is the panic payload injected into a task body at its
// pending suspension point when the task is cancelled.
type taskCancelled struct{}

// resumeSignal travels driver → body.
type resumeSignal struct {
	dt     float64
	cancel bool
}

// yieldSignal travels body → driver.
type yieldSignal struct {
	fut   *future // non-nil: the body suspended on this wait
	err   error   // body panic, or ErrCancelled after an injected cancel
	usage bool    // structural error: re-panic toward the task's owner
}

// Coro is the handle a task body uses to suspend itself. It is passed to the
// body function by [Start] and is only valid inside that function, on the
// goroutine that runs it — the suspension methods hand control back to the
// clock and block until the matching resumption fires.
type Coro struct {
	clock  *Clock
	resume chan resumeSignal
	yield  chan yieldSignal
}

// Clock returns the clock this task is driven by.
func (co *Coro) Clock() *Clock {
	return co.clock
}

// await consumes f, suspends the body, and blocks until the driver resumes
// it. Returns the dt of the tick that satisfied the wait.
func (co *Coro) await(f *future) float64 {
	f.consume()
	co.yield <- yieldSignal{fut: f}
	sig := <-co.resume
	if sig.cancel {
		panic(taskCancelled{})
	}
	return sig.dt
}

// Task drives a cooperative coroutine forward against a clock. The body runs
// on its own goroutine, but strictly in lockstep with the clock: it only
// executes between a resumption firing and the next suspension point, so
// there is no parallelism anywhere — body code may freely touch the same
// state as the rest of the frame.
//
// A task holds at most one scheduled resumption at any instant. The clock
// references that resumption strongly while the task is suspended; the task
// itself is owned by whoever started it.
//
// A suspended task that is abandoned (neither resumed, because its clock is
// no longer ticked, nor cancelled) keeps its body goroutine parked forever.
// Cancel tasks you no longer want.
type Task[R any] struct {
	clock  *Clock
	co     *Coro
	stepCb Callback
	state  TaskState
	result R
	err    error
}

// Start runs fn as a cooperative task against c. The body executes
// immediately, up to its first suspension point or to completion, before
// Start returns; the returned task is already Suspended or Done.
//
// Structural errors in the body — awaiting a spent future, misconfigured
// frame limits — panic out of Start (or, if they occur on a later
// resumption, are reported as clock faults and leave the task Faulted).
func Start[R any](c *Clock, fn func(co *Coro) R) *Task[R] {
	t := &Task[R]{
		clock: c,
		co: &Coro{
			clock:  c,
			resume: make(chan resumeSignal),
			yield:  make(chan yieldSignal),
		},
	}
	t.stepCb = Strong(t.step)
	go t.run(fn)
	t.step(0)
	return t
}

// Go starts a task with no result. See [Start].
func (c *Clock) Go(fn func(co *Coro)) *Task[struct{}] {
	return Start(c, func(co *Coro) struct{} {
		fn(co)
		return struct{}{}
	})
}

// run is the body goroutine: it waits for the initial step, executes fn, and
// reports the outcome. Panics are translated into yield signals so the
// driver decides how they surface.
func (t *Task[R]) run(fn func(co *Coro) R) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case taskCancelled:
				t.co.yield <- yieldSignal{err: ErrCancelled}
			case usageError:
				t.co.yield <- yieldSignal{err: v, usage: true}
			default:
				t.co.yield <- yieldSignal{err: fmt.Errorf("task panicked: %v", v)}
			}
		}
	}()
	sig := <-t.co.resume
	if sig.cancel {
		panic(taskCancelled{})
	}
	t.result = fn(t.co)
	t.co.yield <- yieldSignal{}
}

// step resumes the body with dt and translates its next yield into a clock
// scheduling call. Any stale prior resumption is removed first, so a task
// can never be re-entered twice for one suspension.
func (t *Task[R]) step(dt float64) {
	switch t.state {
	case TaskDone, TaskFaulted, TaskCancelled:
		return // stale resumption after the task finished
	}
	t.clock.Unschedule(t.stepCb)
	t.state = TaskRunning

	t.co.resume <- resumeSignal{dt: dt}
	sig := <-t.co.yield

	switch {
	case sig.fut != nil:
		t.state = TaskSuspended
		switch sig.fut.kind {
		case waitDelay:
			t.clock.Schedule(t.stepCb, sig.fut.seconds)
		case waitTick:
			t.clock.CallSoon(t.step)
		}
	case sig.usage:
		t.state = TaskFaulted
		t.err = sig.err
		panic(sig.err)
	case sig.err != nil:
		t.state = TaskFaulted
		t.err = sig.err
		t.clock.fault(sig.err)
	default:
		t.state = TaskDone
	}
}

// Cancel stops a suspended task. The cancellation is injected at the body's
// pending suspension point and unwinds it synchronously — deferred cleanup
// along the body's stack runs before Cancel returns — then the pending
// resumption is removed from the clock. Cancelling a finished task is a
// no-op. Cancel must not be called from inside the task's own body.
func (t *Task[R]) Cancel() {
	if t.state != TaskSuspended {
		return
	}
	t.co.resume <- resumeSignal{cancel: true}
	sig := <-t.co.yield
	t.state = TaskCancelled
	t.err = sig.err
	t.clock.Unschedule(t.stepCb)
}

// State returns the task's current lifecycle state.
func (t *Task[R]) State() TaskState {
	return t.state
}

// Result returns the body's return value. The boolean is false unless the
// task completed normally.
func (t *Task[R]) Result() (R, bool) {
	if t.state != TaskDone {
		var zero R
		return zero, false
	}
	return t.result, true
}

// Err returns the terminal error of a Faulted or Cancelled task, nil
// otherwise.
func (t *Task[R]) Err() error {
	return t.err
}
