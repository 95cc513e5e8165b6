// Package console provides the asynchronous print queue that delivers
// column-aligned messages to the terminal.
//
// A Queue decouples callers from terminal I/O: Enqueue hands the
// message to a dedicated worker goroutine over a buffered channel and
// returns immediately, while PrintSync formats and writes on the
// calling goroutine. Both paths serialize their writes through one
// terminal guard, so no two messages ever interleave at the character
// level, and both share one width hint, so their columns line up.
//
// The worker idles on the channel, batch-drains whatever is queued,
// and on Shutdown finishes the remaining items before stopping. A poll
// interval bounds how long a missed wake-up can delay the shutdown
// check. Delivery order is the order in which enqueue operations
// complete on the channel; for genuinely concurrent callers the
// wall-clock call order is unspecified.
//
// Terminal write failures are reported on the side-channel diagnostic
// logger and accumulated for Shutdown; they never stop the worker and
// never propagate back to the caller of Enqueue, whose call has
// already returned by the time the write happens.
//
// The package default queue writes to os.Stdout and mirrors the Queue
// API at package level.
package console
