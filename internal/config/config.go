// Package config owns each surface's ClientConfig: where the API lives and
// which key, if any, to present. Precedence is always explicit value >
// stored value > compiled default, and storage is read before every
// authenticated request rather than cached.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// DefaultAPIURL is the compiled-in service location, overridable through
// the SHRTNR_API_URL environment variable.
const DefaultAPIURL = "https://short.automatorprojects.space"

// Config is one surface's locally persisted settings. Field names are
// fixed; existing ~/.shrtnr files must keep decoding.
type Config struct {
	APIURL string `json:"apiUrl,omitempty"`
	APIKey string `json:"apiKey,omitempty"`
}

// Provider abstracts the per-surface storage backend so drivers are
// testable without touching real persistent state.
type Provider interface {
	Load() (Config, error)
	Save(Config) error
}

// BaseDefault returns the compiled default base URL after applying the
// environment override.
func BaseDefault() string {
	if v := strings.TrimSpace(os.Getenv("SHRTNR_API_URL")); v != "" {
		return v
	}
	return DefaultAPIURL
}

// Resolve merges an explicit override (flags, UI fields) over stored
// settings over the compiled default.
func Resolve(explicit Config, stored Config) Config {
	out := Config{
		APIURL: strings.TrimSpace(explicit.APIURL),
		APIKey: strings.TrimSpace(explicit.APIKey),
	}
	if out.APIURL == "" {
		out.APIURL = strings.TrimSpace(stored.APIURL)
	}
	if out.APIURL == "" {
		out.APIURL = BaseDefault()
	}
	if out.APIKey == "" {
		out.APIKey = strings.TrimSpace(stored.APIKey)
	}
	return out
}

// FileStore persists Config as a single JSON document. Reads of a missing
// or unparsable file yield a zero Config, matching the reference client's
// tolerance for a damaged config file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is the CLI's config file, ~/.shrtnr.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shrtnr"
	}
	return filepath.Join(home, ".shrtnr")
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (Config, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Config{}, nil
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, nil
	}
	return cfg, nil
}

func (s *FileStore) Save(cfg Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	return os.WriteFile(s.path, append(b, '\n'), 0o644)
}
