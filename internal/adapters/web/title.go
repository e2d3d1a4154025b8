package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	fetchTimeout = time.Second
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0.0.0 Safari/537.36"
)

// TitleFetcher implements ports.TitleFetcher by fetching the page and
// extracting the first <title> element. Everything is bounded by a
// short timeout; callers fall back to the raw URL on any failure.
type TitleFetcher struct {
	client *http.Client
}

// NewTitleFetcher creates a fetcher with the default timeout.
func NewTitleFetcher() *TitleFetcher {
	return &TitleFetcher{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Title returns the page title for a URL.
func (f *TitleFetcher) Title(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", err
	}

	title := findTitle(doc)
	if title == "" {
		return "", fmt.Errorf("no title element in %s", url)
	}
	return title, nil
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		var b strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
		return strings.TrimSpace(b.String())
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}
