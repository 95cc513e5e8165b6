package core

import (
	"testing"
	"time"
)

func TestCoarseClock(t *testing.T) {
	StartCoarseClock()

	// Give the ticker a chance to publish at least one value.
	time.Sleep(2 * time.Millisecond)

	got := CoarseNow()
	if d := time.Since(got); d < 0 || d > 100*time.Millisecond {
		t.Errorf("CoarseNow() is %v behind time.Now()", d)
	}
}

func TestCoarseClock_StartIdempotent(t *testing.T) {
	StartCoarseClock()
	StartCoarseClock()
	if CoarseNow().IsZero() {
		t.Error("CoarseNow() returned zero time")
	}
}
