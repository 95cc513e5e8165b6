package core

// Severity represents the importance of a console message.
type Severity uint8

const (
	// Info for general informational messages
	Info Severity = iota
	// Warning for conditions worth attention but not failures
	Warning
	// Error for failures
	Error
)

// MaxLabelWidth is one column wider than the widest label (WARNING), so
// fixed-width severity fields always keep a pad column after the label.
const MaxLabelWidth = 8

// String returns the fixed console label for the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
