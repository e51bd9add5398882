package logger

// Exported for white-box tests of the error chain formatting.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// Message returns the message of an entry returned by CollectErrorEntries.
func (e errorEntry) Message() string { return e.message }

// Metadata returns the metadata of an entry returned by CollectErrorEntries.
func (e errorEntry) Metadata() map[string]any { return e.metadata }
