package console

import (
	"sync/atomic"

	"conlog/core"
)

// OverflowPolicy defines how Enqueue behaves when the queue is full
type OverflowPolicy int

const (
	// Block waits for space (with timeout, then writes synchronously)
	Block OverflowPolicy = iota
	// DropNewest drops the incoming request when the queue is full
	DropNewest
	// DropOldest drops the oldest queued request to make room
	DropOldest
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case Block:
		return "Block"
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	default:
		return "Unknown"
	}
}

// DefaultPolicy blocks for every severity, so no request is silently
// dropped while the queue is running.
func DefaultPolicy() map[core.Severity]OverflowPolicy {
	return map[core.Severity]OverflowPolicy{
		core.Info:    Block,
		core.Warning: Block,
		core.Error:   Block,
	}
}

// Stats tracks queue statistics
type Stats struct {
	dropped   [3]atomic.Uint64 // indexed by core.Severity
	blocked   atomic.Uint64
	processed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a severity
func (s *Stats) IncrementDropped(sev core.Severity) {
	if int(sev) < len(s.dropped) {
		s.dropped[sev].Add(1)
	}
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	s.blocked.Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// Dropped returns the dropped count for a severity
func (s *Stats) Dropped(sev core.Severity) uint64 {
	if int(sev) >= len(s.dropped) {
		return 0
	}
	return s.dropped[sev].Load()
}

// TotalDropped returns the total dropped across all severities
func (s *Stats) TotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Blocked returns the blocked count
func (s *Stats) Blocked() uint64 {
	return s.blocked.Load()
}

// Processed returns the processed count
func (s *Stats) Processed() uint64 {
	return s.processed.Load()
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Dropped        map[core.Severity]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Dropped: map[core.Severity]uint64{
			core.Info:    s.Dropped(core.Info),
			core.Warning: s.Dropped(core.Warning),
			core.Error:   s.Dropped(core.Error),
		},
		BlockedTotal:   s.Blocked(),
		ProcessedTotal: s.Processed(),
	}
}
