package formatter

import (
	"bytes"
	"io"
	"sync"

	"conlog/core"
	"conlog/terminal"
)

// Formatter defines the interface for print-request formatters
type Formatter interface {
	// Format formats a print request into bytes
	Format(req *core.Request) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a print request and writes it directly to the writer
	FormatTo(req *core.Request, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRequest formats a print request into the given buffer.
	FormatRequest(req *core.Request, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// Widths is the shared name-column hint. The synchronous and
	// asynchronous print paths must use the same hint so their columns
	// line up. Nil gets a fresh hint.
	Widths *core.WidthHint
	// TerminalWidth supplies the column count of the target device on
	// each call, so the layout follows resizes. Nil means the fallback
	// width of package terminal.
	TerminalWidth func() int
}

// applyDefaults fills in zero-value fields with defaults.
func (c *Config) applyDefaults() {
	if c.Widths == nil {
		c.Widths = core.NewWidthHint()
	}
	if c.TerminalWidth == nil {
		c.TerminalWidth = func() int { return terminal.FallbackWidth }
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
