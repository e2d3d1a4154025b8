package clipboard

import "github.com/atotto/clipboard"

// Clipboard implements ports.Clipboard on the system clipboard.
type Clipboard struct{}

// New returns the clipboard, or nil when no provider is available on
// this system (callers treat nil as "no clipboard").
func New() *Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return &Clipboard{}
}

// ReadAll returns the current clipboard text.
func (c *Clipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}
