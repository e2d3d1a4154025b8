package ports

// Clipboard defines the interface for reading the system clipboard.
type Clipboard interface {
	// ReadAll returns the current clipboard text.
	ReadAll() (string, error)
}
