package domain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// LinkKind discriminates the three things an entry can point at
type LinkKind int

const (
	LinkFile LinkKind = iota
	LinkDirectory
	LinkURL
)

func (k LinkKind) String() string {
	switch k {
	case LinkFile:
		return "file"
	case LinkDirectory:
		return "directory"
	case LinkURL:
		return "url"
	default:
		return "unknown"
	}
}

// Link is a tagged reference to a file, directory, or URL.
// The kind is never stored; it is re-inferred from the raw target
// at every deserialization boundary.
type Link struct {
	Kind   LinkKind
	Target string
}

// InferLink classifies a raw string: absolute paths become File or
// Directory (by filesystem probe), everything else is a URL.
func InferLink(raw string) Link {
	if filepath.IsAbs(raw) {
		if info, err := os.Stat(raw); err == nil && info.IsDir() {
			return Link{Kind: LinkDirectory, Target: raw}
		}
		return Link{Kind: LinkFile, Target: raw}
	}
	return Link{Kind: LinkURL, Target: raw}
}

func (l Link) String() string {
	return l.Target
}

// BaseName returns the last path element for file and directory links,
// and the raw target for URLs.
func (l Link) BaseName() string {
	switch l.Kind {
	case LinkFile, LinkDirectory:
		return filepath.Base(l.Target)
	default:
		return l.Target
	}
}

// MarshalJSON stores only the raw target string.
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Target)
}

// UnmarshalJSON re-infers the kind from the stored string.
func (l *Link) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = InferLink(raw)
	return nil
}

// PreferredFile is the quick-launch target resolved from a link.
type PreferredFile struct {
	File      Link
	Extension string // without leading dot, empty when the file has none
}

// PreferredFile resolves the quick-launch target for a link given the
// configured suffix layers (most-preferred layer first).
//
// A file link is its own preferred file. For a directory link the files
// inside are grouped by extension and the layers are walked in order:
// a layer matching exactly one file wins, a layer matching several
// aborts the search (ambiguous), a layer matching none falls through.
// URL links have no preferred file. A nil result with nil error means
// no preferred file exists.
func (l Link) PreferredFile(layers [][]string) (*PreferredFile, error) {
	switch l.Kind {
	case LinkFile:
		return &PreferredFile{File: l, Extension: extensionOf(l.Target)}, nil

	case LinkDirectory:
		dirEntries, err := os.ReadDir(l.Target)
		if err != nil {
			return nil, err
		}

		byExt := make(map[string][]string)
		for _, de := range dirEntries {
			if de.IsDir() {
				continue
			}
			ext := extensionOf(de.Name())
			if ext == "" {
				continue
			}
			byExt[ext] = append(byExt[ext], filepath.Join(l.Target, de.Name()))
		}

		for _, layer := range layers {
			var (
				matched    string
				matchedExt string
				count      int
			)
			for _, suffix := range layer {
				for _, path := range byExt[suffix] {
					matched = path
					matchedExt = suffix
					count++
				}
			}
			switch count {
			case 0:
				continue
			case 1:
				return &PreferredFile{File: InferLink(matched), Extension: matchedExt}, nil
			default:
				// Ambiguous layer: give up rather than guess.
				return nil, nil
			}
		}
		return nil, nil

	default:
		return nil, nil
	}
}

func extensionOf(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}
