package ports

// Opener defines the interface for handing links to the operating
// system. One implementation exists per platform.
type Opener interface {
	// OpenFile launches a file with its default application.
	OpenFile(path string) error

	// RevealFile shows a file selected in the system file manager.
	RevealFile(path string) error

	// OpenDir opens a directory in the system file manager.
	OpenDir(path string) error

	// OpenURL opens a URL in the default browser.
	OpenURL(url string) error
}
