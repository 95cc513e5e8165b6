package core

import "time"

// TimestampLayout renders local time at millisecond precision,
// e.g. "2026-08-25 14:03:07.251". Every rendered timestamp has the same
// width, which keeps the timestamp column fixed.
const TimestampLayout = "2006-01-02 15:04:05.000"

// TimestampWidth is the rendered width of TimestampLayout in columns.
const TimestampWidth = len(TimestampLayout)

// AppendTimestamp appends t rendered with TimestampLayout to b and
// returns the extended slice.
func AppendTimestamp(b []byte, t time.Time) []byte {
	return t.AppendFormat(b, TimestampLayout)
}
