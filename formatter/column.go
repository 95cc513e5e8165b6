package formatter

import (
	"bytes"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"conlog/core"
)

// ColumnFormatter formats print requests into the aligned console
// layout: fixed timestamp and severity columns, a name column as wide
// as the widest name seen so far, and the message right-aligned against
// the terminal edge.
type ColumnFormatter struct {
	Config
}

// NewColumnFormatter creates a new column formatter
func NewColumnFormatter(cfg Config) *ColumnFormatter {
	cfg.applyDefaults()
	return &ColumnFormatter{Config: cfg}
}

// Format formats a request as an aligned text block
func (f *ColumnFormatter) Format(req *core.Request) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRequest(req, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a request and writes it directly to the writer
func (f *ColumnFormatter) FormatTo(req *core.Request, w io.Writer) error {
	buf := getBuffer()

	f.FormatRequest(req, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRequest appends the aligned text block for req to buf. A
// message with N embedded line breaks produces exactly N+1 rows, all
// sharing one right margin. Rows wider than the terminal are emitted
// unpadded rather than wrapped.
func (f *ColumnFormatter) FormatRequest(req *core.Request, buf *bytes.Buffer) {
	row := f.TerminalWidth() - 1
	label := req.Severity.String()

	// [2026-08-25 14:03:07.251] [WARNING]  (name)
	buf.WriteByte('[')
	buf.Write(core.AppendTimestamp(buf.AvailableBuffer(), req.Time))
	buf.WriteString("] ")
	buf.WriteByte('[')
	buf.WriteString(text.Pad(label+"]", core.MaxLabelWidth+2, ' '))
	buf.WriteByte('(')
	buf.WriteString(text.Pad(req.Name+")", f.Widths.NameWidth()+2, ' '))

	headerWidth := f.headerWidth(req.Name)

	lines := strings.Split(req.Message, "\n")
	if remainder := row - headerWidth; remainder > 0 {
		buf.WriteString(text.AlignRight.Apply(lines[0], remainder))
	} else {
		buf.WriteString(lines[0])
	}
	buf.WriteByte('\n')

	for _, line := range lines[1:] {
		if row > 0 {
			buf.WriteString(text.AlignRight.Apply(line, row))
		} else {
			buf.WriteString(line)
		}
		buf.WriteByte('\n')
	}
}

// headerWidth returns the display width of the three prefix columns.
// The name field widens past the hint when a name overflows it, which
// only happens when the formatter is used without observing names first.
func (f *ColumnFormatter) headerWidth(name string) int {
	nameField := runewidth.StringWidth(name) + 1
	if w := f.Widths.NameWidth() + 2; w > nameField {
		nameField = w
	}
	// "[ts] " + "[LABEL]   " + "(name)   "
	return 1 + core.TimestampWidth + 2 + 1 + core.MaxLabelWidth + 2 + 1 + nameField
}
