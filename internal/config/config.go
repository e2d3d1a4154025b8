package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the project configuration file, whose presence marks a
// directory as a flist project.
const FileName = "flist.toml"

// DefaultMaxArchive bounds the archive when max_archive is not configured.
const DefaultMaxArchive = 100

// Config is the per-project configuration stored in flist.toml.
type Config struct {
	// MaxArchive bounds the archived entry list.
	MaxArchive int `toml:"max_archive"`
	// PreferredSuffixes holds quick-launch suffix layers, most
	// preferred layer first.
	PreferredSuffixes [][]string `toml:"preferred_suffixes"`
}

// Default returns the configuration used when fields are absent.
func Default() Config {
	return Config{MaxArchive: DefaultMaxArchive}
}

// New builds a config, substituting the default archive bound for
// non-positive values.
func New(maxArchive int, preferredSuffixes [][]string) Config {
	if maxArchive <= 0 {
		maxArchive = DefaultMaxArchive
	}
	return Config{MaxArchive: maxArchive, PreferredSuffixes: preferredSuffixes}
}

// Load reads flist.toml from the project root. A missing or malformed
// file is an error; absent fields take defaults.
func Load(root string) (Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return cfg, nil
}

// Save writes flist.toml to the project root, omitting fields that
// hold their defaults.
func (c Config) Save(root string) error {
	// Shadow struct so defaults are omitted from the file.
	out := struct {
		MaxArchive        *int       `toml:"max_archive,omitempty"`
		PreferredSuffixes [][]string `toml:"preferred_suffixes,omitempty"`
	}{
		PreferredSuffixes: c.PreferredSuffixes,
	}
	if c.MaxArchive != DefaultMaxArchive {
		out.MaxArchive = &c.MaxArchive
	}
	data, err := toml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, FileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ParseQuickLaunch parses the quick-launch flag syntax: layers are
// comma-separated, suffixes within a layer are pipe-separated.
// "exe,md|pdf" yields [["exe"], ["md", "pdf"]].
func ParseQuickLaunch(s string) [][]string {
	if s == "" {
		return nil
	}
	var layers [][]string
	for _, layer := range strings.Split(s, ",") {
		layers = append(layers, strings.Split(layer, "|"))
	}
	return layers
}
