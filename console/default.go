package console

import (
	"sync"

	"conlog/core"
)

var (
	defaultQueue *Queue
	defaultMu    sync.RWMutex
)

func init() {
	// Initialize the default queue writing to stdout
	defaultQueue = NewQueue(Config{})
}

// Default returns the default queue
func Default() *Queue {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultQueue
}

// SetDefault sets the default queue. The previous queue is not shut
// down; callers that replace it own its lifecycle.
func SetDefault(q *Queue) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultQueue = q
}

// Package-level convenience functions using the default queue

// Enqueue prints asynchronously using the default queue
func Enqueue(message, name string, sev core.Severity) {
	Default().Enqueue(message, name, sev)
}

// PrintSync prints synchronously using the default queue
func PrintSync(message, name string, sev core.Severity) error {
	return Default().PrintSync(message, name, sev)
}

// SetMinColumnWidth raises the default queue's name-column floor
func SetMinColumnWidth(width int) {
	Default().SetMinColumnWidth(width)
}

// Shutdown drains and stops the default queue
func Shutdown() error {
	return Default().Shutdown()
}
