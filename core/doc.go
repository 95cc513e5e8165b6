// Package core defines the shared types used across the conlog toolkit.
//
// It provides the Severity type with its fixed console labels, the
// Request type that represents a single message handed to the print
// queue, and the WidthHint type that tracks the widest component name
// seen so far.
//
// Request objects are pooled via sync.Pool so the enqueue path stays
// allocation-free. Callers get a Request with GetRequest and the
// consumer must return it with PutRequest once the message has been
// written.
//
// WidthHint is the single shared width counter for both the synchronous
// and asynchronous print paths. Its value only grows, so columns never
// jump back to a narrower layout mid-run.
package core
