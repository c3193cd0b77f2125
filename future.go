package tempo

import (
	"fmt"
	"os"
	"runtime"
)

// waitKind identifies what a suspended task is waiting for.
type waitKind uint8

const (
	waitDelay waitKind = iota // resume after a number of clock seconds
	waitTick                  // resume on the next tick
)

// future is a single-use wait descriptor yielded by a task body at a
// suspension point. It is created by the Coro helpers and consumed exactly
// once by Coro.await.
type future struct {
	kind    waitKind
	seconds float64 // valid for waitDelay
	awaited *bool
}

func newFuture(kind waitKind, seconds float64) *future {
	awaited := new(bool)
	f := &future{kind: kind, seconds: seconds, awaited: awaited}
	// A future that is constructed but never awaited is almost certainly a
	// programmer error (the wait it describes will never happen). Report it
	// if the future is collected unconsumed; this is diagnostic only.
	runtime.AddCleanup(f, func(flag *bool) {
		if !*flag {
			_, _ = fmt.Fprintf(os.Stderr, "[tempo] warning: clock future was never awaited\n")
		}
	}, awaited)
	return f
}

// consume marks the future awaited. Awaiting the same future twice is a
// structural error in the task body and panics.
func (f *future) consume() {
	if *f.awaited {
		panic(usageError{"tempo: future awaited twice"})
	}
	*f.awaited = true
}

// usageError marks panics caused by structurally broken task code
// (as opposed to faults in user callbacks, which are caught and logged).
// They propagate out of Start to the code that owns the task.
type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }
