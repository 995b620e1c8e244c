package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a settings file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// settingsNames are tried in order in each search directory.
var settingsNames = []string{"settings.yaml", "settings.yml", "settings.toml", "settings.json"}

// Load loads and validates the settings.
// Search order: customPath -> ~/.pong/settings.* -> ./settings.* -> embedded default
func Load(customPath string) (Settings, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		return cfg, customPath, err
	}

	// Try user config directory, then the working directory
	for _, dir := range []string{userConfigDir(), "."} {
		if dir == "" {
			continue
		}
		for _, name := range settingsNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			cfg, err := LoadFile(path)
			return cfg, path, err
		}
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultSettingsYAML, FormatYAML)
	if err != nil {
		return DefaultSettings(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// LoadFile reads one settings file. The format follows the file extension.
// Keys missing from the file keep their default values.
func LoadFile(path string) (Settings, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Settings{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := Decode(data, format)
	if err != nil {
		return Settings{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses settings on top of the defaults and canonicalises names.
func Decode(data []byte, format Format) (Settings, error) {
	cfg := DefaultSettings()

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	case FormatJSON:
		err = json.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return Settings{}, err
	}

	cfg.canonicalise()
	return cfg, nil
}

// Marshal encodes settings in the given format.
func Marshal(cfg Settings, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(cfg, "", "  ")
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}
}

// ParseFormat accepts a format name such as "yaml", "yml", "toml" or "json".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("config: unsupported format %q (want yaml, toml or json)", name)
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("config: %s has no extension", path)
	}
	return ParseFormat(ext)
}

// canonicalise rewrites difficulty and loss policy names to their canonical
// spelling. Unknown names are left for Validate to report.
func (s *Settings) canonicalise() {
	if d, err := ParseDifficulty(string(s.Game.Difficulty)); err == nil {
		s.Game.Difficulty = d
	}
	s.Game.LossPolicy = strings.ToLower(strings.TrimSpace(s.Game.LossPolicy))
}

// userConfigDir returns ~/.pong, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong")
}
