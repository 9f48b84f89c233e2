package scanpage

// Focus constants for the scan page: keys go to the domain input or to the
// result views
const (
	FocusInput = iota
	FocusResults
)

// DefaultWidth is the default terminal width fallback
const DefaultWidth = 80
