package notifications

// Severity picks the banner drawn above the comment list
type Severity int

const (
	// Info marks work still in flight, like a delete waiting out its delay
	Info Severity = iota
	// Success shows the store's confirmation until it expires
	Success
	// Error shows the store's failure message until the next action clears it
	Error
)
