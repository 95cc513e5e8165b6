package console_test

import (
	"io"
	"time"

	"conlog/console"
	"conlog/core"
)

// Create a queue with the default configuration and print through it.
func ExampleNewQueue() {
	q := console.NewQueue(console.Config{
		Writer: io.Discard,
	})
	defer q.Shutdown()

	q.Enqueue("starting up", "example", core.Info)
	q.PrintSync("already down", "example", core.Error)
}

// Tune the handoff buffer and the shutdown drain window.
func ExampleNewQueue_buffered() {
	q := console.NewQueue(console.Config{
		Writer:       io.Discard,
		BufferSize:   4096,
		DrainTimeout: time.Second,
	})
	defer q.Shutdown()

	q.SetMinColumnWidth(24)
	q.Enqueue("ready", "example", core.Info)
}
