// Package errfmt formats messages destined for error values with the
// same timestamp, severity, and name columns as console output, so a
// thrown error reads like the surrounding log lines.
//
// Unlike the console layout, the name segment is not padded and the
// message block is aligned to its own widest line rather than to the
// terminal edge, since the text ends up inside an error string of
// unknown destination.
package errfmt

import (
	"errors"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"conlog/core"
)

// Message returns the formatted block for message. The first row ends
// with the first message line right-aligned to the widest line of the
// message; every continuation line is right-aligned to the width of
// that first row.
func Message(message, name string, sev core.Severity) string {
	lines := strings.Split(message, "\n")
	widest := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}

	var b strings.Builder
	b.WriteByte('[')
	b.Write(core.AppendTimestamp(nil, time.Now()))
	b.WriteString("] ")
	b.WriteByte('[')
	b.WriteString(text.Pad(sev.String()+"]", core.MaxLabelWidth+2, ' '))
	b.WriteByte('(')
	b.WriteString(name)
	b.WriteString(") ")
	b.WriteString(text.AlignRight.Apply(lines[0], widest))
	b.WriteByte('\n')

	// Width of the first row, which every continuation row matches.
	firstRow := 1 + core.TimestampWidth + 2 +
		1 + core.MaxLabelWidth + 2 +
		1 + runewidth.StringWidth(name) + 2 + widest

	for _, line := range lines[1:] {
		b.WriteString(text.AlignRight.Apply(line, firstRow))
		b.WriteByte('\n')
	}
	return b.String()
}

// New returns an error whose text is the formatted block for message.
func New(message, name string, sev core.Severity) error {
	return errors.New(Message(message, name, sev))
}
