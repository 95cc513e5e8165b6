package core

import (
	"sync/atomic"

	"github.com/mattn/go-runewidth"
)

// DefaultNameWidth is the initial floor of the name column.
const DefaultNameWidth = 40

// WidthHint tracks the widest component name seen so far, in display
// columns. The value is monotonically non-decreasing and is shared by
// the synchronous and asynchronous print paths so both render identical
// columns.
type WidthHint struct {
	nameWidth atomic.Int64
}

// NewWidthHint creates a hint starting at DefaultNameWidth.
func NewWidthHint() *WidthHint {
	h := &WidthHint{}
	h.nameWidth.Store(DefaultNameWidth)
	return h
}

// Observe widens the hint to cover name.
func (h *WidthHint) Observe(name string) {
	h.Raise(runewidth.StringWidth(name))
}

// Raise widens the hint to at least width. Narrower values are ignored;
// the hint never shrinks.
func (h *WidthHint) Raise(width int) {
	for {
		cur := h.nameWidth.Load()
		if int64(width) <= cur {
			return
		}
		if h.nameWidth.CompareAndSwap(cur, int64(width)) {
			return
		}
	}
}

// NameWidth returns the current name column width.
func (h *WidthHint) NameWidth() int {
	return int(h.nameWidth.Load())
}
