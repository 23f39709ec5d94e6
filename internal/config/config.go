// Package config loads the optional triage configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/triage/internal/schema"
)

// Config is the triage configuration. Every field is optional.
type Config struct {
	Input   InputConfig  `json:"input"`
	Output  OutputConfig `json:"output"`
	Report  ReportConfig `json:"report"`
	LogFile string       `json:"log_file,omitempty"`
}

// InputConfig controls where test output is looked up.
type InputConfig struct {
	Directory string `json:"directory,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// OutputConfig controls which artifacts are written and where.
type OutputConfig struct {
	Directory       string `json:"directory,omitempty"`
	Spreadsheet     *bool  `json:"spreadsheet,omitempty"`
	Document        *bool  `json:"document,omitempty"`
	TimestampFormat string `json:"timestamp_format,omitempty"`
}

// ReportConfig tunes report content.
type ReportConfig struct {
	TopPatterns    int  `json:"top_patterns,omitempty"`
	TopClasses     *int `json:"top_classes,omitempty"`
	MessagePreview int  `json:"message_preview,omitempty"`
}

// SpreadsheetEnabled reports whether the .xlsx artifact is written.
func (o OutputConfig) SpreadsheetEnabled() bool {
	return o.Spreadsheet == nil || *o.Spreadsheet
}

// DocumentEnabled reports whether the Markdown artifact is written.
func (o OutputConfig) DocumentEnabled() bool {
	return o.Document == nil || *o.Document
}

// Format is a configuration file syntax.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FileNames lists the config files looked up by Discover, in priority order.
var FileNames = []string{".triage.json", ".triage.yaml", ".triage.yml", ".triage.toml"}

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (want .json, .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Discover returns the first config file from FileNames present in dir.
func Discover(dir string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load reads a config file in any supported format, validates it against the
// embedded schema, applies defaults and checks semantic constraints.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes data written in format. All formats are normalized to JSON so
// that a single schema validates them.
func Parse(data []byte, format Format) (*Config, error) {
	normalized, err := toJSON(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", format, err)
	}

	if err := schema.ValidateConfig(normalized); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path when given, otherwise the config discovered in dir,
// otherwise the defaults. The returned path is empty when defaults were used.
func LoadOrDefault(dir, path string) (*Config, string, error) {
	if path == "" {
		found, ok := Discover(dir)
		if !ok {
			return Default(), "", nil
		}
		path = found
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		if v == nil {
			v = map[string]any{}
		}
		return json.Marshal(v)
	case FormatTOML:
		v := map[string]any{}
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
