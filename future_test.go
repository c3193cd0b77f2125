package tempo

import "testing"

func TestFutureConsumeTwicePanics(t *testing.T) {
	f := newFuture(waitTick, 0)
	f.consume()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("second consume did not panic")
		}
		if _, ok := r.(usageError); !ok {
			t.Fatalf("panic value = %T, want usageError", r)
		}
	}()
	f.consume()
}

func TestFutureDescribesWait(t *testing.T) {
	d := newFuture(waitDelay, 2.5)
	if d.kind != waitDelay || d.seconds != 2.5 {
		t.Errorf("delay future = {kind %d, seconds %f}, want {waitDelay, 2.5}", d.kind, d.seconds)
	}
	n := newFuture(waitTick, 0)
	if n.kind != waitTick {
		t.Errorf("tick future kind = %d, want waitTick", n.kind)
	}
}
