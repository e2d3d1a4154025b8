package ports

// TitleFetcher defines the interface for resolving a web page title,
// used to name URL entries.
type TitleFetcher interface {
	// Title returns the page title for a URL.
	Title(url string) (string, error)
}
