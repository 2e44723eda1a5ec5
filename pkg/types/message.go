package types

// Severity classifies a user-facing message
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityNote    Severity = "NOTE"
	SeverityInfo    Severity = "INFO"
)

// Message is a notification handed to a MessageSink
type Message struct {
	// Severity of the message
	Severity Severity `json:"severity"`

	// Text is the rendered, localized message
	Text string `json:"text"`

	// Path is the filesystem path the message is about, if any
	Path string `json:"path,omitempty"`
}
