// Package formatter renders print requests into column-aligned text.
//
// ColumnFormatter produces the terminal layout: a fixed-width timestamp
// column, a fixed-width severity column, a name column that grows with
// the widest name seen so far, and the message right-aligned against
// the terminal edge. Multi-line messages keep every continuation line
// on the same right margin:
//
//	[2026-08-25 14:03:07.251] [INFO]     (engine)                 started
//	[2026-08-25 14:03:07.252] [WARNING]  (engine)          cache disabled
//	                                              falling back to direct reads
//
// The Formatter interface returns a byte slice; BufferFormatter and
// WriterFormatter are optional interfaces that let handlers skip the
// intermediate allocation. All three are implemented by ColumnFormatter
// and are safe for concurrent use.
package formatter
