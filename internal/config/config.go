package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds dexview's runtime settings.
type Config struct {
	APIBaseURL       string
	RequestTimeout   time.Duration // zero means no client-side timeout
	LogFile          string
	LogLevel         string
	Format           string
	Species          []string
	DropStaleResults bool
}

const (
	defaultConfigPath     = "~/.config/dexview/config.toml"
	defaultLogFile        = "~/.local/share/dexview/dexview.log"
	defaultAPIBaseURL     = "https://pokeapi.co/api/v2"
	defaultRequestTimeout = 10 * time.Second
	defaultLogLevel       = "info"
	defaultFormat         = "text"
)

// DefaultSpecies is the selection list used when the config names none.
var DefaultSpecies = []string{
	"bulbasaur",
	"charmander",
	"squirtle",
	"pikachu",
	"ditto",
	"eevee",
	"snorlax",
	"gengar",
	"mewtwo",
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:       defaultAPIBaseURL,
		RequestTimeout:   defaultRequestTimeout,
		LogFile:          mustExpand(defaultLogFile),
		LogLevel:         defaultLogLevel,
		Format:           defaultFormat,
		Species:          append([]string(nil), DefaultSpecies...),
		DropStaleResults: true,
	}
}

// Load locates and parses the dexview config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL       string   `toml:"api_base_url"`
		RequestTimeout   *string  `toml:"request_timeout"`
		LogFile          string   `toml:"log_file"`
		LogLevel         string   `toml:"log_level"`
		Format           string   `toml:"format"`
		Species          []string `toml:"species"`
		DropStaleResults *bool    `toml:"drop_stale_results"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if raw.RequestTimeout != nil {
		if v := strings.TrimSpace(*raw.RequestTimeout); v != "" {
			timeout, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, fmt.Errorf("parse request_timeout: %w", err)
			}
			if timeout < 0 {
				return Config{}, fmt.Errorf("request_timeout must be >= 0, got %s", timeout)
			}
			cfg.RequestTimeout = timeout
		}
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.Format); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if species := filterSpecies(raw.Species); len(species) > 0 {
		cfg.Species = species
	}
	if raw.DropStaleResults != nil {
		cfg.DropStaleResults = *raw.DropStaleResults
	}

	return cfg, nil
}

// filterSpecies trims entries and drops blanks and duplicates, keeping order.
// Case is preserved; the lookup lower-cases names itself.
func filterSpecies(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
